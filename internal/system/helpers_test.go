package system

import (
	"testing"
	"time"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/internal/event"
	"go-arena-survivor/internal/utils"
	"go-arena-survivor/pkg/geom"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// fixture — мир со всеми системами на детерминированном генераторе.
type fixture struct {
	world       *entity.World
	rng         *utils.PRNGService
	dispatcher  *event.Dispatcher
	effects     *VisualEffectSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
	progression *ProgressionSystem
	status      *StatusEffectSystem
	pickups     *PickupSystem
	movement    *MovementSystem
	waves       *WaveSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		world:      entity.NewWorld(config.ScreenWidth, config.ScreenHeight),
		rng:        utils.NewPRNGService(42),
		dispatcher: event.NewDispatcher(),
	}
	f.effects = NewVisualEffectSystem(f.world, f.rng)
	f.combat = NewCombatSystem(f.world, f.rng, f.dispatcher, f.effects)
	f.projectiles = NewProjectileSystem(f.world, f.rng, f.dispatcher, f.combat, f.effects)
	f.progression = NewProgressionSystem(f.world)
	f.dispatcher.Subscribe(event.EnemyKilled, f.progression)
	f.status = NewStatusEffectSystem(f.world)
	f.pickups = NewPickupSystem(f.world, f.combat, f.progression, f.status, f.effects)
	f.movement = NewMovementSystem(f.world)
	f.waves = NewWaveSystem(f.world, defs.DefaultEnemyLibrary(), f.rng, f.dispatcher, config.SpawnStaggerFrames)
	return f
}

func (f *fixture) addEnemy(x, y float64) *component.Enemy {
	e := &component.Enemy{
		Position:    component.Position{X: x, Y: y},
		Radius:      20,
		Speed:       2,
		Health:      component.Health{Value: 30, Max: 30},
		Damage:      10,
		Kind:        defs.EnemyNormal,
		ShotDelay:   time.Second,
		LastShot:    t0,
		Projectiles: 1,
	}
	f.world.AddEnemy(e)
	return e
}

func (f *fixture) addWall(x, y, w, h, health float64) *component.Wall {
	wall := &component.Wall{
		Rect:   geom.Rect{X: x, Y: y, Width: w, Height: h},
		Health: component.Health{Value: health, Max: config.WallMaxHealth},
	}
	f.world.AddWall(wall)
	return wall
}

func (f *fixture) addPlayerBullet(x, y, dx, dy, damage float64) *component.Projectile {
	b := &component.Projectile{
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{DX: dx, DY: dy},
		Radius:   config.BulletRadius,
		Damage:   damage,
	}
	f.world.AddPlayerBullet(b)
	return b
}

func (f *fixture) addEnemyBullet(x, y, dx, dy, damage float64) *component.Projectile {
	b := &component.Projectile{
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{DX: dx, DY: dy},
		Radius:   config.EnemyBulletRadius,
		Damage:   damage,
	}
	f.world.AddEnemyBullet(b)
	return b
}
