package system

import (
	"image/color"
	"math"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/internal/utils"
)

// VisualEffectSystem управляет частицами и тряской камеры.
type VisualEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// Burst разбрасывает count частиц из точки (x, y).
func (s *VisualEffectSystem) Burst(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Angle()
		speed := s.rng.Range(1, 3)
		s.world.AddParticle(&component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{DX: math.Cos(angle) * speed, DY: math.Sin(angle) * speed},
			Radius:   s.rng.Range(2, 4),
			Life:     s.rng.Range(30, 30),
			Color:    c,
		})
	}
}

// Shake задаёт амплитуду тряски камеры.
func (s *VisualEffectSystem) Shake(magnitude float64) {
	s.world.Shake.Magnitude = magnitude
}

// Update двигает частицы, удаляет отжившие и гасит тряску.
func (s *VisualEffectSystem) Update() {
	particles := s.world.Particles
	for i := 0; i < len(s.world.Particles); {
		p := particles[i]
		p.X += p.DX
		p.Y += p.DY
		p.Life--
		if p.Life <= 0 {
			s.world.RemoveParticle(i)
			particles = s.world.Particles
			continue
		}
		i++
	}

	shake := &s.world.Shake
	if shake.Magnitude > 0 {
		shake.Magnitude *= config.ShakeDecay
		if shake.Magnitude < config.ShakeCutoff {
			shake.Magnitude = 0
		}
	}
}

// ShakeOffset — случайное смещение кадра для текущей амплитуды.
func ShakeOffset(rng *utils.PRNGService, magnitude float64) (float64, float64) {
	if magnitude <= 0 {
		return 0, 0
	}
	return (rng.Float64() - 0.5) * magnitude, (rng.Float64() - 0.5) * magnitude
}
