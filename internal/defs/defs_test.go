package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnemyLibrary(t *testing.T) {
	lib := DefaultEnemyLibrary()
	require.Len(t, lib, 5)

	for _, kind := range []EnemyKind{EnemyNormal, EnemyTank, EnemyFast, EnemySpread, EnemyExploder} {
		_, ok := lib.Get(kind)
		assert.True(t, ok, "missing %s", kind)
	}

	spread, _ := lib.Get(EnemySpread)
	assert.Equal(t, 3, spread.Projectiles)
	exploder, _ := lib.Get(EnemyExploder)
	assert.True(t, exploder.Explodes)
	tank, _ := lib.Get(EnemyTank)
	assert.Equal(t, 2.0, tank.HealthFactor)
}

func TestEnemyLibrary_Pick(t *testing.T) {
	lib := DefaultEnemyLibrary()

	testCases := []struct {
		roll float64
		want EnemyKind
	}{
		{0.0, EnemyTank},
		{0.149, EnemyTank},
		{0.15, EnemyFast},
		{0.31, EnemySpread},
		{0.59, EnemyExploder},
		{0.60, EnemyNormal},
		{0.999, EnemyNormal},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, lib.Pick(tc.roll).Kind, "roll %v", tc.roll)
	}
}

func TestPickLoot(t *testing.T) {
	assert.Equal(t, PickupHealth, PickLoot(PickupTable, 0.0).Kind)
	assert.Equal(t, PickupHealth, PickLoot(PickupTable, 0.69).Kind)
	assert.Equal(t, PickupXP, PickLoot(PickupTable, 0.75).Kind)
	assert.Equal(t, PickupShield, PickLoot(PickupTable, 0.82).Kind)
	assert.Equal(t, PickupTripleShot, PickLoot(PickupTable, 0.87).Kind)
	assert.Equal(t, PickupSpeedBoost, PickLoot(PickupTable, 0.93).Kind)
	assert.Equal(t, PickupRage, PickLoot(PickupTable, 0.97).Kind)
}

func TestLoadEnemyDefinitions(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "enemies.json")
	require.NoError(t, os.WriteFile(good, []byte(`[{"kind":"normal","radius":10,"health_factor":1,"shot_delay_ms":500,"spawn_threshold":1}]`), 0o644))
	lib, err := LoadEnemyDefinitions(good)
	require.NoError(t, err)
	require.Len(t, lib, 1)
	assert.Equal(t, 1, lib[0].Projectiles, "projectile count defaults to one")

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0o644))
	_, err = LoadEnemyDefinitions(empty)
	assert.ErrorIs(t, err, ErrEmptyLibrary)

	_, err = LoadEnemyDefinitions(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	lib, err = LoadEnemyDefinitions("")
	require.NoError(t, err)
	assert.Len(t, lib, 5)
}

func TestParseUpgradeKind(t *testing.T) {
	k, err := ParseUpgradeKind("lifesteal")
	require.NoError(t, err)
	assert.Equal(t, UpgradeLifesteal, k)

	_, err = ParseUpgradeKind("armor")
	assert.Error(t, err)
}

func TestPickupBuff(t *testing.T) {
	b, ok := PickupRage.Buff()
	assert.True(t, ok)
	assert.Equal(t, BuffRage, b)

	_, ok = PickupHealth.Buff()
	assert.False(t, ok)
}

func TestParseEnemyDefinitions_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		{"unknown kind", `[{"kind":"boss","radius":40,"health_factor":5,"shot_delay_ms":1000,"spawn_threshold":1}]`},
		{"reload cut reaches zero", `[{"kind":"normal","radius":20,"health_factor":1,"shot_delay_ms":1000,"max_reload_cut_ms":1000,"wave_reload_cut_ms":200,"spawn_threshold":1}]`},
		{"negative reload cut", `[{"kind":"normal","radius":20,"health_factor":1,"shot_delay_ms":1000,"max_reload_cut_ms":-10,"spawn_threshold":1}]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseEnemyDefinitions([]byte(tc.json))
			assert.Error(t, err)
		})
	}

	_, err := ParseEnemyDefinitions([]byte(`[{"kind":"boss","radius":40,"health_factor":5,"shot_delay_ms":1000,"spawn_threshold":1}]`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

// Встроенный файл — инвариант сборки: DefaultEnemyLibrary паникует, только если он сломан.
func TestEmbeddedEnemyDefinitionsAreValid(t *testing.T) {
	lib, err := ParseEnemyDefinitions(defaultEnemies)
	require.NoError(t, err)
	for _, def := range lib {
		assert.True(t, def.Kind.Known(), def.Kind)
		assert.Greater(t, def.ShotDelayMs-def.MaxReloadCutMs, 0.0, def.Kind)
	}
	assert.NotPanics(t, func() { DefaultEnemyLibrary() })
}
