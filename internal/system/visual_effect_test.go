package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/utils"
)

func TestBurst_ParticleRanges(t *testing.T) {
	f := newFixture(t)
	f.effects.Burst(100, 100, color.RGBA{255, 0, 0, 255}, config.DefaultBurstSize)

	require.Len(t, f.world.Particles, 20)
	for _, p := range f.world.Particles {
		assert.GreaterOrEqual(t, p.Life, 30.0)
		assert.Less(t, p.Life, 60.0)
		assert.GreaterOrEqual(t, p.Radius, 2.0)
		assert.Less(t, p.Radius, 6.0)
	}
}

func TestVisualEffects_ParticlesExpire(t *testing.T) {
	f := newFixture(t)
	f.effects.Burst(100, 100, color.RGBA{255, 0, 0, 255}, 10)

	for i := 0; i < 60; i++ {
		f.effects.Update()
	}
	assert.Empty(t, f.world.Particles)
}

func TestVisualEffects_ShakeDecays(t *testing.T) {
	f := newFixture(t)
	f.effects.Shake(10)

	f.effects.Update()
	assert.InDelta(t, 9.0, f.world.Shake.Magnitude, 1e-9)

	for i := 0; i < 100; i++ {
		f.effects.Update()
	}
	assert.Zero(t, f.world.Shake.Magnitude)

	dx, dy := ShakeOffset(utils.NewPRNGService(1), 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
