// internal/component/projectile.go
package component

import "image/color"

// Projectile представляет летящий снаряд (игрока или врага).
type Projectile struct {
	Position
	Velocity
	Radius   float64
	Damage   float64
	Color    color.RGBA
	Critical bool // только для отрисовки
}
