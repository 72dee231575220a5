package system

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/event"
)

func TestNextThreshold_NoDrift(t *testing.T) {
	// эталон — точная рациональная арифметика
	six5 := big.NewRat(6, 5)
	want := big.NewInt(config.StartXPToNextLevel)
	got := config.StartXPToNextLevel
	for i := 0; i < 60; i++ {
		r := new(big.Rat).Mul(new(big.Rat).SetInt(want), six5)
		want = new(big.Int).Quo(r.Num(), r.Denom())
		got = NextThreshold(got)
		require.Equal(t, want.Int64(), int64(got), "step %d", i+1)
	}
}

func TestAddExperience_MultipleCrossings(t *testing.T) {
	f := newFixture(t)
	p := f.world.Progress

	crossed := f.progression.AddExperience(100 + 120 + 5)

	assert.Equal(t, 2, crossed)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 5, p.CurrentXP)
	assert.Equal(t, 144, p.XPToNextLevel)
	assert.Equal(t, 2, p.PendingLevelUps)
}

func TestProgression_KillEventGrantsXP(t *testing.T) {
	f := newFixture(t)
	f.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: KillReport{XP: 12}})
	f.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: KillReport{Detonated: true}})
	assert.Equal(t, 12, f.world.Progress.CurrentXP)
}

func TestApplyUpgrade_HealthHealsToNewMax(t *testing.T) {
	f := newFixture(t)
	f.world.Player.Health = 35

	require.NoError(t, f.progression.ApplyUpgrade(defs.UpgradeHealth))

	assert.Equal(t, 220.0, f.world.Player.Health)
	assert.Equal(t, 1, f.world.Progress.Upgrades.Level(defs.UpgradeHealth))
}

func TestChooseUpgrade(t *testing.T) {
	f := newFixture(t)

	_, err := f.progression.ChooseUpgrade(defs.UpgradeDamage)
	assert.ErrorIs(t, err, ErrNoPendingLevelUp)

	f.world.Progress.PendingLevelUps = 2
	_, err = f.progression.ChooseUpgrade("jump")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)

	left, err := f.progression.ChooseUpgrade(defs.UpgradeDamage)
	require.NoError(t, err)
	assert.Equal(t, 1, left)
	assert.Equal(t, 1, f.world.Progress.Upgrades.Level(defs.UpgradeDamage))
}
