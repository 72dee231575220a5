// internal/system/progression.go
package system

import (
	"errors"
	"fmt"

	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/internal/event"
)

var (
	// ErrNoPendingLevelUp — улучшение выбрано, когда выбора никто не просил.
	ErrNoPendingLevelUp = errors.New("no pending level-up")
	// ErrUnknownUpgrade — неизвестный вид улучшения.
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

// ProgressionSystem отвечает за опыт, уровни и улучшения игрока.
type ProgressionSystem struct {
	world *entity.World
}

func NewProgressionSystem(world *entity.World) *ProgressionSystem {
	return &ProgressionSystem{world: world}
}

// OnEvent начисляет опыт за убийство врага.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if kill, ok := e.Data.(KillReport); ok {
		s.AddExperience(kill.XP)
	}
}

// AddExperience добавляет опыт и возвращает, сколько порогов пересечено.
// Каждое пересечение — отдельный отложенный выбор улучшения.
func (s *ProgressionSystem) AddExperience(amount int) int {
	p := s.world.Progress
	p.CurrentXP += amount
	crossed := 0
	for p.XPToNextLevel > 0 && p.CurrentXP >= p.XPToNextLevel {
		p.CurrentXP -= p.XPToNextLevel
		p.Level++
		p.XPToNextLevel = NextThreshold(p.XPToNextLevel)
		p.PendingLevelUps++
		crossed++
	}
	return crossed
}

// NextThreshold — floor(t * 1.2) в целых числах, без накопления ошибки float.
func NextThreshold(t int) int {
	return t * 6 / 5
}

// ApplyUpgrade повышает уровень улучшения на один. Улучшение здоровья сразу лечит до нового максимума.
func (s *ProgressionSystem) ApplyUpgrade(kind defs.UpgradeKind) error {
	if _, err := defs.ParseUpgradeKind(string(kind)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, kind)
	}
	p := s.world.Progress
	p.Upgrades[kind]++
	if kind == defs.UpgradeHealth {
		player := s.world.Player
		player.Health = MaxHealth(player.Base, p.Upgrades)
	}
	return nil
}

// ChooseUpgrade тратит один отложенный выбор. Возвращает, сколько выборов осталось.
func (s *ProgressionSystem) ChooseUpgrade(kind defs.UpgradeKind) (int, error) {
	p := s.world.Progress
	if p.PendingLevelUps <= 0 {
		return 0, ErrNoPendingLevelUp
	}
	if err := s.ApplyUpgrade(kind); err != nil {
		return p.PendingLevelUps, err
	}
	p.PendingLevelUps--
	return p.PendingLevelUps, nil
}
