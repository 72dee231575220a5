// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific enemy archetype.
type EnemyDefinition struct {
	Kind            EnemyKind  `json:"kind"`
	Radius          float64    `json:"radius"`
	SpeedMin        float64    `json:"speed_min"`
	SpeedJitter     float64    `json:"speed_jitter"`
	HealthFactor    float64    `json:"health_factor"`
	ShotDelayMs     float64    `json:"shot_delay_ms"`
	ShotJitterMs    float64    `json:"shot_jitter_ms"`
	WaveReloadCutMs float64    `json:"wave_reload_cut_ms"` // уменьшение перезарядки на единицу waveFactor
	MaxReloadCutMs  float64    `json:"max_reload_cut_ms"`
	Projectiles     int        `json:"projectiles"` // сколько снарядов в веере
	Explodes        bool       `json:"explodes"`
	SpawnThreshold  float64    `json:"spawn_threshold"` // накопительный порог для одного броска
	Color           color.RGBA `json:"color"`
	BulletColor     color.RGBA `json:"bullet_color"`
}

// EnemyLibrary — определения врагов, упорядоченные по накопительным порогам.
type EnemyLibrary []EnemyDefinition

// Get ищет определение по архетипу.
func (l EnemyLibrary) Get(kind EnemyKind) (EnemyDefinition, bool) {
	for _, def := range l {
		if def.Kind == kind {
			return def, true
		}
	}
	return EnemyDefinition{}, false
}

// Pick выбирает архетип по одному броску roll ∈ [0, 1).
// Последнее определение забирает всё, что выше последнего порога.
func (l EnemyLibrary) Pick(roll float64) EnemyDefinition {
	for _, def := range l {
		if roll < def.SpawnThreshold {
			return def
		}
	}
	return l[len(l)-1]
}
