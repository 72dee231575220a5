// internal/system/render.go
package system

import (
	"math"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/pkg/render"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// Draw выводит арену со смещением тряски (ox, oy). HUD рисуется отдельно, без смещения.
func (s *RenderSystem) Draw(screen render.Surface, ox, oy float64) {
	screen.Translate(ox, oy)
	defer screen.Translate(0, 0)

	for _, wall := range s.world.Walls {
		screen.FillRect(wall.X, wall.Y, wall.Width, wall.Height, config.WallColor)
		drawBar(screen, wall.X, wall.Y-config.BarHeight-2, wall.Width, wall.Health)
	}

	for _, p := range s.world.Pickups {
		screen.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}

	if s.world.Player.Alive {
		s.drawPlayer(screen)
	}

	for _, b := range s.world.PlayerBullets {
		screen.FillCircle(b.X, b.Y, b.Radius, b.Color)
	}

	// Частицы гаснут вместе с остатком жизни
	for _, p := range s.world.Particles {
		screen.FillCircle(p.X, p.Y, p.Radius, render.WithAlpha(p.Color, p.Life/config.ParticleMaxLife))
	}

	for _, e := range s.world.Enemies {
		screen.FillCircle(e.X, e.Y, e.Radius, e.Color)
		drawBar(screen, e.X-config.EnemyBarWidth/2, e.Y-e.Radius-config.BarHeight-2, config.EnemyBarWidth, e.Health)
	}

	for _, b := range s.world.EnemyBullets {
		screen.FillCircle(b.X, b.Y, b.Radius, b.Color)
	}
}

// drawPlayer — треугольник остриём в сторону прицела.
func (s *RenderSystem) drawPlayer(screen render.Surface) {
	p := s.world.Player
	sin, cos := math.Sincos(p.Aim)
	rotate := func(lx, ly float64) (float64, float64) {
		return p.X + lx*cos - ly*sin, p.Y + lx*sin + ly*cos
	}
	x1, y1 := rotate(p.Radius, 0)
	x2, y2 := rotate(-p.Radius/2, -p.Radius/2)
	x3, y3 := rotate(-p.Radius/2, p.Radius/2)
	screen.FillTriangle(x1, y1, x2, y2, x3, y3, config.PlayerColor)
}

func drawBar(screen render.Surface, x, y, width float64, health component.Health) {
	screen.FillRect(x, y, width, config.BarHeight, config.BarBackColor)
	screen.FillRect(x, y, width*health.Ratio(), config.BarHeight, config.BarFillColor)
}
