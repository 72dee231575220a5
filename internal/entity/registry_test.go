package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/pkg/geom"
)

func TestRegistry_RemoveWallKeepsOrder(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 4; i++ {
		r.AddWall(&component.Wall{Rect: geom.Rect{X: float64(i)}})
	}

	r.RemoveWall(1)

	require.Len(t, r.Walls, 3)
	assert.Equal(t, []float64{0, 2, 3}, []float64{r.Walls[0].X, r.Walls[1].X, r.Walls[2].X})
}

func TestRegistry_SwapRemoveParticles(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 3; i++ {
		r.AddParticle(&component.Particle{Life: float64(i)})
	}

	r.RemoveParticle(0)

	require.Len(t, r.Particles, 2)
	assert.Equal(t, 2.0, r.Particles[0].Life, "last element takes the removed slot")
	assert.Equal(t, 1.0, r.Particles[1].Life)
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.AddEnemy(&component.Enemy{})
	r.AddPlayerBullet(&component.Projectile{})
	r.AddEnemyBullet(&component.Projectile{})
	r.AddPickup(&component.Pickup{})
	r.AddWall(&component.Wall{})
	r.AddParticle(&component.Particle{})

	r.Reset()

	assert.Empty(t, r.Enemies)
	assert.Empty(t, r.PlayerBullets)
	assert.Empty(t, r.EnemyBullets)
	assert.Empty(t, r.Pickups)
	assert.Empty(t, r.Walls)
	assert.Empty(t, r.Particles)
}
