package system

import (
	"math"
	"time"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/internal/event"
	"go-arena-survivor/internal/utils"
)

// CombatSystem управляет стрельбой игрока и атаками врагов.
type CombatSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
}

func NewCombatSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem) *CombatSystem {
	return &CombatSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		effects:         effects,
	}
}

// Stats — производные характеристики игрока на текущий момент.
func (s *CombatSystem) Stats() Stats {
	return DeriveStats(s.world.Player.Base, s.world.Progress.Upgrades, s.world.Buffs)
}

// PlayerShoot стреляет под углом angle, если перезарядка прошла.
// С тройным выстрелом вылетают снаряды под углами angle, angle−0.3, angle+0.3 за одну перезарядку.
// Возвращает число созданных снарядов.
func (s *CombatSystem) PlayerShoot(angle float64, now time.Time) int {
	p := s.world.Player
	if !p.Alive {
		return 0
	}
	stats := s.Stats()
	if now.Sub(p.LastShot) < stats.ShotDelay {
		return 0
	}

	angles := []float64{angle}
	if s.world.Buffs.IsActive(defs.BuffTripleShot) {
		angles = append(angles, angle-config.TripleShotSpread, angle+config.TripleShotSpread)
	}

	rage := s.world.Buffs.IsActive(defs.BuffRage)
	for _, a := range angles {
		crit := s.rng.Chance(stats.CritChance)
		proj := &component.Projectile{
			Position: component.Position{X: p.X, Y: p.Y},
			Velocity: component.Velocity{DX: math.Cos(a) * stats.BulletSpeed, DY: math.Sin(a) * stats.BulletSpeed},
			Radius:   config.BulletRadius,
			Damage:   ShotDamage(stats.Damage, crit, rage),
			Color:    config.BulletColor,
			Critical: crit,
		}
		if crit {
			proj.Radius = config.CritBulletRadius
			proj.Color = config.CritBulletColor
		}
		s.world.AddPlayerBullet(proj)
	}

	p.LastShot = now
	p.Aim = angle
	return len(angles)
}

// EnemyAttacks — враги стреляют по перезарядке. Враг, стоящий в стене, не стреляет.
// Exploder после первого выстрела взрывается и исчезает.
func (s *CombatSystem) EnemyAttacks(now time.Time) {
	p := s.world.Player
	for i := 0; i < len(s.world.Enemies); {
		e := s.world.Enemies[i]
		if now.Sub(e.LastShot) <= e.ShotDelay || Blocked(s.world, e.X, e.Y, e.Radius) {
			i++
			continue
		}

		angle := math.Atan2(p.Y-e.Y, p.X-e.X)
		s.fire(e, angle)
		e.LastShot = now

		if e.Explodes {
			s.world.RemoveEnemy(i)
			s.detonate(e)
			continue
		}
		i++
	}
}

// fire выпускает веер из e.Projectiles снарядов с шагом SpreadShotAngle вокруг angle.
func (s *CombatSystem) fire(e *component.Enemy, angle float64) {
	n := max(e.Projectiles, 1)
	for i := 0; i < n; i++ {
		a := angle + (float64(i)-float64(n-1)/2)*config.SpreadShotAngle
		s.world.AddEnemyBullet(&component.Projectile{
			Position: component.Position{X: e.X, Y: e.Y},
			Velocity: component.Velocity{DX: math.Cos(a) * config.EnemyBulletSpeed, DY: math.Sin(a) * config.EnemyBulletSpeed},
			Radius:   config.EnemyBulletRadius,
			Damage:   e.Damage,
			Color:    e.BulletColor,
		})
	}
}

// detonate — взрыв exploder'а. Урон падает линейно к краю радиуса, щит его не блокирует.
func (s *CombatSystem) detonate(e *component.Enemy) {
	s.effects.Burst(e.X, e.Y, e.Color, config.ExplosionBurstSize)

	p := s.world.Player
	dist := math.Hypot(p.X-e.X, p.Y-e.Y)
	if dist < config.ExplosionRadius {
		s.DamagePlayer(e.Damage * config.ExplosionDamageMul * (1 - dist/config.ExplosionRadius))
		s.effects.Shake(config.MaxShake * 1.5)
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: KillReport{Kind: e.Kind, X: e.X, Y: e.Y, Detonated: true},
	})
}

// DamagePlayer снимает здоровье без учёта щита. Здоровье не опускается ниже нуля,
// alive сбрасывается один раз. Возвращает true, если игрок погиб именно сейчас.
func (s *CombatSystem) DamagePlayer(amount float64) bool {
	p := s.world.Player
	if !p.Alive || amount <= 0 {
		return false
	}
	p.Health = math.Max(0, p.Health-amount)
	if p.Health <= 0 {
		p.Alive = false
		return true
	}
	return false
}

// HealPlayer лечит игрока, не превышая максимум.
func (s *CombatSystem) HealPlayer(amount float64) {
	p := s.world.Player
	if !p.Alive || amount <= 0 {
		return
	}
	p.Health = math.Min(s.Stats().MaxHealth, p.Health+amount)
}

// ClampPlayerHealth возвращает здоровье в [0, maxHealth].
func (s *CombatSystem) ClampPlayerHealth() {
	p := s.world.Player
	p.Health = math.Max(0, math.Min(s.Stats().MaxHealth, p.Health))
	if p.Health <= 0 {
		p.Alive = false
	}
}
