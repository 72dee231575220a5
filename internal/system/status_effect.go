// internal/system/status_effect.go
package system

import (
	"time"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
)

// BuffDuration — длительность бафа по виду.
func BuffDuration(kind defs.BuffKind) time.Duration {
	switch kind {
	case defs.BuffShield:
		return config.ShieldDuration
	case defs.BuffTripleShot:
		return config.TripleShotDuration
	case defs.BuffSpeedBoost:
		return config.SpeedBoostDuration
	case defs.BuffRage:
		return config.RageDuration
	}
	return 0
}

// StatusEffectSystem управляет жизненным циклом бафов игрока.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Activate включает баф. Повторный подбор не суммирует длительность, а сбрасывает срок.
func (s *StatusEffectSystem) Activate(kind defs.BuffKind, now time.Time) {
	buff, ok := s.world.Buffs[kind]
	if !ok {
		return
	}
	buff.Active = true
	buff.EndTime = now.Add(BuffDuration(kind))
}

// Update выключает бафы, срок которых прошёл.
func (s *StatusEffectSystem) Update(now time.Time) {
	for _, buff := range s.world.Buffs {
		if buff.Active && now.After(buff.EndTime) {
			buff.Active = false
		}
	}
}

// Remaining — сколько осталось до окончания бафа (0, если выключен).
func (s *StatusEffectSystem) Remaining(kind defs.BuffKind, now time.Time) time.Duration {
	buff, ok := s.world.Buffs[kind]
	if !ok || !buff.Active {
		return 0
	}
	left := buff.EndTime.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
