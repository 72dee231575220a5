// internal/entity/world.go
package entity

import (
	"time"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
)

// World — всё состояние одного забега. Владелец — app.Game, писатель в кадре один.
type World struct {
	Registry
	Player   *component.Player
	Progress *component.PlayerStateComponent
	Buffs    component.Buffs
	Wave     *component.Wave
	Shake    component.CameraShake
	Width    float64
	Height   float64
	Frame    int           // номер логического кадра с начала забега
	Elapsed  time.Duration // часы забега, +16 мс за кадр
}

// NewWorld создаёт мир для арены width x height с игроком в центре.
func NewWorld(width, height float64) *World {
	w := &World{Width: width, Height: height}
	w.Reset()
	return w
}

// Reset возвращает мир в начальное состояние забега.
func (w *World) Reset() {
	w.Registry.Reset()
	w.Player = &component.Player{
		Position: component.Position{X: w.Width / 2, Y: w.Height / 2},
		Radius:   config.PlayerRadius,
		Health:   config.PlayerBaseMaxHealth,
		Alive:    true,
		Base: component.PlayerBase{
			Speed:       config.PlayerBaseSpeed,
			MaxHealth:   config.PlayerBaseMaxHealth,
			ShotDelay:   config.PlayerBaseShotDelay,
			Damage:      config.PlayerBaseDamage,
			BulletSpeed: config.PlayerBaseBulletSpeed,
		},
	}
	w.Progress = &component.PlayerStateComponent{
		Level:         1,
		XPToNextLevel: config.StartXPToNextLevel,
		Upgrades:      component.Upgrades{},
	}
	w.Buffs = component.NewBuffs()
	w.Wave = &component.Wave{Number: 1}
	w.Shake = component.CameraShake{}
	w.Frame = 0
	w.Elapsed = 0
}

// LiveEnemies — живые враги плюс ещё не появившиеся из очереди.
func (w *World) LiveEnemies() int {
	return len(w.Enemies) + w.Wave.Pending()
}
