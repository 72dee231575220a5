package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/event"
	"go-arena-survivor/internal/event/mocks"
)

func TestProjectiles_WallTakesPriorityOverEnemy(t *testing.T) {
	f := newFixture(t)
	e := f.addEnemy(300, 300)
	f.addWall(290, 290, 40, 40, 5)
	f.addPlayerBullet(295, 300, 5, 0, 10)

	f.projectiles.Update()

	assert.Equal(t, 30.0, e.Health.Value, "enemy behind the wall takes no damage")
	assert.Empty(t, f.world.PlayerBullets)
	assert.Empty(t, f.world.Walls, "wall with 5 hp is destroyed by 10 damage")
}

func TestProjectiles_FirstWallAbsorbs(t *testing.T) {
	f := newFixture(t)
	first := f.addWall(100, 100, 50, 50, 7)
	second := f.addWall(100, 100, 50, 50, 7)
	f.addEnemyBullet(120, 120, 0, 0, 3)

	f.projectiles.Update()

	assert.Equal(t, 4.0, first.Health.Value)
	assert.Equal(t, 7.0, second.Health.Value)
	assert.Empty(t, f.world.EnemyBullets)
}

func TestProjectiles_KillGrantsXPAndEvent(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockListener(ctrl)
	f.dispatcher.Subscribe(event.EnemyKilled, listener)
	f.world.Wave.Number = 4

	e := f.addEnemy(300, 300)
	e.Health.Value = 5
	f.addPlayerBullet(290, 300, 5, 0, 10)

	listener.EXPECT().OnEvent(gomock.Any()).Do(func(ev event.Event) {
		kill := ev.Data.(KillReport)
		assert.Equal(t, defs.EnemyNormal, kill.Kind)
		assert.Equal(t, 14, kill.XP)
	})

	f.projectiles.Update()

	assert.Empty(t, f.world.Enemies)
	assert.Empty(t, f.world.PlayerBullets)
	assert.Equal(t, 14, f.world.Progress.CurrentXP)
	assert.NotEmpty(t, f.world.Particles)
}

func TestProjectiles_Lifesteal(t *testing.T) {
	f := newFixture(t)
	f.world.Progress.Upgrades[defs.UpgradeLifesteal] = 10
	f.world.Player.Health = 100
	f.addEnemy(300, 300)
	f.addPlayerBullet(290, 300, 5, 0, 10)

	f.projectiles.Update()

	assert.InDelta(t, 101.0, f.world.Player.Health, 1e-9)
}

func TestProjectiles_LeavesArena(t *testing.T) {
	f := newFixture(t)
	f.addPlayerBullet(2, 2, -5, 0, 10)
	f.addEnemyBullet(1198, 5, 5, 0, 10)

	f.projectiles.Update()

	assert.Empty(t, f.world.PlayerBullets)
	assert.Empty(t, f.world.EnemyBullets)
}

func TestProjectiles_ShieldWindow(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	f.status.Activate(defs.BuffShield, t0)

	f.addEnemyBullet(p.X, p.Y, 0, 0, 25)
	f.projectiles.Update()
	assert.Equal(t, 200.0, p.Health, "shield absorbs the hit")
	assert.Empty(t, f.world.EnemyBullets, "projectile is still consumed")

	// на самой границе щит ещё держит
	f.status.Update(t0.Add(10 * time.Second))
	require.True(t, f.world.Buffs.IsActive(defs.BuffShield))

	f.status.Update(t0.Add(10*time.Second + time.Millisecond))
	f.addEnemyBullet(p.X, p.Y, 0, 0, 25)
	f.projectiles.Update()
	assert.Equal(t, 175.0, p.Health)
}

func TestProjectiles_EnemyBulletKillsPlayer(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	p.Health = 5
	f.addEnemyBullet(p.X, p.Y, 0, 0, 25)

	f.projectiles.Update()

	assert.Equal(t, 0.0, p.Health)
	assert.False(t, p.Alive)
}
