// internal/system/movement.go
package system

import (
	"math"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/pkg/geom"
)

// MovementSystem двигает игрока и врагов с учётом стен.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// KeyboardDelta — смещение игрока от зажатых клавиш.
func KeyboardDelta(up, down, left, right bool, speed float64) (float64, float64) {
	var dx, dy float64
	if up {
		dy -= speed
	}
	if down {
		dy += speed
	}
	if left {
		dx -= speed
	}
	if right {
		dx += speed
	}
	return dx, dy
}

// JoystickDelta — смещение от виртуального джойстика. Скорость игрока не учитывается.
func JoystickDelta(jx, jy float64) (float64, float64) {
	return jx / config.JoystickDivisor, jy / config.JoystickDivisor
}

// MovePlayer сдвигает игрока на (dx, dy). По диагонали смещение умножается на 1/√2.
// Оси проверяются по отдельности, поэтому игрок скользит вдоль стены.
func (s *MovementSystem) MovePlayer(dx, dy float64) {
	p := s.world.Player
	if dx != 0 && dy != 0 {
		dx *= config.DiagonalFactor
		dy *= config.DiagonalFactor
	}

	if nx := p.X + dx; !Blocked(s.world, nx, p.Y, p.Radius) {
		p.X = nx
	}
	if ny := p.Y + dy; !Blocked(s.world, p.X, ny, p.Radius) {
		p.Y = ny
	}

	p.X = geom.Clamp(p.X, p.Radius, s.world.Width-p.Radius)
	p.Y = geom.Clamp(p.Y, p.Radius, s.world.Height-p.Radius)
}

// MoveEnemies ведёт каждого врага прямо на игрока. Если следующая позиция упирается в стену, враг стоит.
func (s *MovementSystem) MoveEnemies() {
	p := s.world.Player
	for _, e := range s.world.Enemies {
		angle := math.Atan2(p.Y-e.Y, p.X-e.X)
		nx := e.X + math.Cos(angle)*e.Speed
		ny := e.Y + math.Sin(angle)*e.Speed
		if !Blocked(s.world, nx, ny, e.Radius) {
			e.X, e.Y = nx, ny
		}
	}
}
