package component

import (
	"image/color"
	"time"

	"go-arena-survivor/internal/defs"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Position
	Radius      float64
	Speed       float64
	Health      Health
	Damage      float64
	Kind        defs.EnemyKind
	ShotDelay   time.Duration
	LastShot    time.Time
	Projectiles int  // снарядов в веере (spread — 3)
	Explodes    bool // exploder погибает после первой атаки
	Color       color.RGBA
	BulletColor color.RGBA
}
