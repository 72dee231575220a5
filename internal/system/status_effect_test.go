package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-arena-survivor/internal/defs"
)

func TestStatusEffects_ExpireAfterDuration(t *testing.T) {
	f := newFixture(t)
	for _, kind := range defs.AllBuffs {
		f.status.Activate(kind, t0)
	}

	f.status.Update(t0.Add(5*time.Second + time.Millisecond))
	assert.False(t, f.world.Buffs.IsActive(defs.BuffRage))
	assert.True(t, f.world.Buffs.IsActive(defs.BuffSpeedBoost))

	f.status.Update(t0.Add(8*time.Second + time.Millisecond))
	assert.False(t, f.world.Buffs.IsActive(defs.BuffTripleShot))
	assert.True(t, f.world.Buffs.IsActive(defs.BuffShield))

	f.status.Update(t0.Add(11 * time.Second))
	for _, kind := range defs.AllBuffs {
		assert.False(t, f.world.Buffs.IsActive(kind), kind)
	}
}

func TestStatusEffects_RecollectResetsExpiry(t *testing.T) {
	f := newFixture(t)
	f.status.Activate(defs.BuffRage, t0)
	f.status.Activate(defs.BuffRage, t0.Add(3*time.Second))

	assert.Equal(t, 5*time.Second, f.status.Remaining(defs.BuffRage, t0.Add(3*time.Second)), "duration does not stack")

	f.status.Update(t0.Add(6 * time.Second))
	assert.True(t, f.world.Buffs.IsActive(defs.BuffRage))
	assert.Zero(t, f.status.Remaining(defs.BuffShield, t0))
}
