// internal/system/projectile.go
package system

import (
	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/internal/event"
	"go-arena-survivor/internal/utils"
	"go-arena-survivor/pkg/geom"
)

// KillReport — данные события EnemyKilled.
type KillReport struct {
	Kind      defs.EnemyKind
	X, Y      float64
	XP        int
	Detonated bool // exploder взорвался сам, опыт не начисляется
}

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	combatSystem    *CombatSystem
	effects         *VisualEffectSystem
}

func NewProjectileSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, combatSystem *CombatSystem, effects *VisualEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		combatSystem:    combatSystem,
		effects:         effects,
	}
}

// Update двигает снаряды и разрешает попадания: сначала стены, потом цель, потом границы арены.
func (s *ProjectileSystem) Update() {
	s.updateEnemyBullets()
	s.updatePlayerBullets()
}

func (s *ProjectileSystem) updateEnemyBullets() {
	p := s.world.Player
	for i := 0; i < len(s.world.EnemyBullets); {
		b := s.world.EnemyBullets[i]
		b.X += b.DX
		b.Y += b.DY

		if s.hitWall(b) {
			s.world.RemoveEnemyBullet(i)
			continue
		}
		if geom.CircleIntersectsCircle(b.X, b.Y, b.Radius, p.X, p.Y, p.Radius) {
			if !s.world.Buffs.IsActive(defs.BuffShield) {
				s.combatSystem.DamagePlayer(b.Damage)
			}
			s.world.RemoveEnemyBullet(i)
			continue
		}
		if geom.OutOfBounds(b.X, b.Y, s.world.Width, s.world.Height) {
			s.world.RemoveEnemyBullet(i)
			continue
		}
		i++
	}
}

func (s *ProjectileSystem) updatePlayerBullets() {
	for i := 0; i < len(s.world.PlayerBullets); {
		b := s.world.PlayerBullets[i]
		b.X += b.DX
		b.Y += b.DY

		if s.hitWall(b) || s.hitEnemy(b) || geom.OutOfBounds(b.X, b.Y, s.world.Width, s.world.Height) {
			s.world.RemovePlayerBullet(i)
			continue
		}
		i++
	}
}

// hitWall — первая стена в порядке добавления поглощает весь урон снаряда.
func (s *ProjectileSystem) hitWall(b *component.Projectile) bool {
	idx := WallAt(s.world, b.X, b.Y, b.Radius)
	if idx < 0 {
		return false
	}
	if ApplyDamage(&s.world.Walls[idx].Health, b.Damage) {
		s.world.RemoveWall(idx)
	}
	return true
}

// hitEnemy — попадание снаряда игрока в первого пересекающего врага.
func (s *ProjectileSystem) hitEnemy(b *component.Projectile) bool {
	for i, e := range s.world.Enemies {
		if !geom.CircleIntersectsCircle(b.X, b.Y, b.Radius, e.X, e.Y, e.Radius) {
			continue
		}
		dead := ApplyDamage(&e.Health, b.Damage)
		if lifesteal := s.combatSystem.Stats().Lifesteal; lifesteal > 0 {
			s.combatSystem.HealPlayer(b.Damage * lifesteal)
		}
		if dead {
			s.world.RemoveEnemy(i)
			s.kill(e)
		}
		return true
	}
	return false
}

func (s *ProjectileSystem) kill(e *component.Enemy) {
	s.effects.Burst(e.X, e.Y, e.Color, config.DefaultBurstSize)
	if s.rng.Chance(config.PickupDropChance) {
		loot := defs.PickLoot(defs.PickupTable, s.rng.Float64())
		s.world.AddPickup(&component.Pickup{
			Position: e.Position,
			Radius:   config.PickupRadius,
			Kind:     loot.Kind,
			Color:    loot.Color,
		})
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: KillReport{Kind: e.Kind, X: e.X, Y: e.Y, XP: ExperienceForKill(s.world.Wave.Number)},
	})
}
