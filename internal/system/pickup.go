package system

import (
	"time"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/pkg/geom"
)

// PickupSystem собирает бонусы, которых коснулся игрок.
type PickupSystem struct {
	world       *entity.World
	combat      *CombatSystem
	progression *ProgressionSystem
	status      *StatusEffectSystem
	effects     *VisualEffectSystem
}

func NewPickupSystem(world *entity.World, combat *CombatSystem, progression *ProgressionSystem, status *StatusEffectSystem, effects *VisualEffectSystem) *PickupSystem {
	return &PickupSystem{
		world:       world,
		combat:      combat,
		progression: progression,
		status:      status,
		effects:     effects,
	}
}

// Update применяет все бонусы под игроком. Возвращает число собранных.
func (s *PickupSystem) Update(now time.Time) int {
	p := s.world.Player
	collected := 0
	for i := 0; i < len(s.world.Pickups); {
		pk := s.world.Pickups[i]
		if !geom.CircleIntersectsCircle(p.X, p.Y, p.Radius, pk.X, pk.Y, pk.Radius) {
			i++
			continue
		}
		s.Apply(pk, now)
		s.effects.Burst(pk.X, pk.Y, pk.Color, config.DefaultBurstSize)
		s.world.RemovePickup(i)
		collected++
	}
	return collected
}

// Apply применяет эффект одного бонуса.
func (s *PickupSystem) Apply(pk *component.Pickup, now time.Time) {
	switch pk.Kind {
	case defs.PickupHealth:
		s.combat.HealPlayer(config.HealthPickupAmount)
	case defs.PickupXP:
		s.progression.AddExperience(config.XPPickupAmount)
	default:
		if buff, ok := pk.Kind.Buff(); ok {
			s.status.Activate(buff, now)
		}
	}
}
