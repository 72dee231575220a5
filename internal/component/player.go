// internal/component/player.go
package component

import (
	"time"

	"go-arena-survivor/internal/defs"
)

// PlayerBase — базовые значения, от которых считаются производные характеристики.
type PlayerBase struct {
	Speed       float64
	MaxHealth   float64
	ShotDelay   time.Duration
	Damage      float64
	BulletSpeed float64
}

// Player — сущность игрока. Производные характеристики здесь не хранятся.
type Player struct {
	Position
	Radius   float64
	Health   float64
	Alive    bool
	LastShot time.Time
	Aim      float64 // последний угол прицела, только для отрисовки
	Base     PlayerBase
}

// Upgrades — уровни улучшений по видам.
type Upgrades map[defs.UpgradeKind]int

// Level возвращает уровень улучшения (0, если не покупалось).
func (u Upgrades) Level(kind defs.UpgradeKind) int {
	return u[kind]
}

// PlayerStateComponent хранит информацию, специфичную для игрока,
// такую как его текущий уровень и опыт.
type PlayerStateComponent struct {
	Level           int // Текущий уровень игрока
	CurrentXP       int // Текущее количество очков опыта
	XPToNextLevel   int // Количество опыта, необходимое для следующего уровня
	PendingLevelUps int // Сколько выборов улучшений ещё не сделано
	Upgrades        Upgrades
}
