package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/pkg/render"
)

func TestRenderSystem_DrawsWorld(t *testing.T) {
	f := newFixture(t)
	f.addEnemy(100, 100)
	f.addWall(300, 300, 100, 30, 5)
	f.addPlayerBullet(50, 50, 0, 0, 10)
	f.effects.Burst(10, 10, color.RGBA{255, 0, 0, 255}, 4)

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewRenderSystem(f.world).Draw(rec, 3, 4)

	assert.Equal(t, 1, rec.Count(render.OpFillTriangle), "player")
	// враг + снаряд + 4 частицы
	assert.Equal(t, 6, rec.Count(render.OpFillCircle))
	// стена + две полоски стены + две полоски врага
	assert.Equal(t, 5, rec.Count(render.OpFillRect))

	require.NotEmpty(t, rec.Commands)
	wall := rec.Commands[0]
	assert.Equal(t, render.OpFillRect, wall.Op)
	assert.Equal(t, 303.0, wall.X, "shake offset applied")
	assert.Equal(t, 304.0, wall.Y)
}

func TestRenderSystem_DeadPlayerHidden(t *testing.T) {
	f := newFixture(t)
	f.world.Player.Alive = false

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewRenderSystem(f.world).Draw(rec, 0, 0)

	assert.Zero(t, rec.Count(render.OpFillTriangle))
}
