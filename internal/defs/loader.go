// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

//go:embed data/enemies.json
var defaultEnemies []byte

// ErrEmptyLibrary возвращается, если в файле нет ни одного определения.
var ErrEmptyLibrary = errors.New("enemy library is empty")

// ErrUnknownKind — архетип, которого нет среди встроенных.
var ErrUnknownKind = errors.New("unknown enemy kind")

// DefaultEnemyLibrary возвращает встроенные определения врагов.
// Файл вшит в бинарник и проверяется тестами пакета,
// поэтому ошибка здесь возможна только в сломанной сборке.
func DefaultEnemyLibrary() EnemyLibrary {
	lib, err := ParseEnemyDefinitions(defaultEnemies)
	if err != nil {
		panic(fmt.Sprintf("embedded enemy definitions are invalid: %v", err))
	}
	return lib
}

// LoadEnemyDefinitions reads the enemy configuration file.
// Пустой путь означает встроенные определения.
func LoadEnemyDefinitions(path string) (EnemyLibrary, error) {
	if path == "" {
		return DefaultEnemyLibrary(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := ParseEnemyDefinitions(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d enemy definitions from %s", len(lib), path)
	return lib, nil
}

// ParseEnemyDefinitions разбирает и проверяет JSON с определениями врагов.
func ParseEnemyDefinitions(data []byte) (EnemyLibrary, error) {
	var lib EnemyLibrary
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if len(lib) == 0 {
		return nil, ErrEmptyLibrary
	}

	prev := 0.0
	for i, def := range lib {
		if def.Kind == "" {
			return nil, fmt.Errorf("enemy definition %d has no kind", i)
		}
		if !def.Kind.Known() {
			return nil, fmt.Errorf("enemy definition %d: %w %q", i, ErrUnknownKind, def.Kind)
		}
		if def.SpawnThreshold < prev {
			return nil, fmt.Errorf("enemy %s: spawn thresholds must be non-decreasing", def.Kind)
		}
		if def.Radius <= 0 || def.HealthFactor <= 0 || def.ShotDelayMs <= 0 {
			return nil, fmt.Errorf("enemy %s: radius, health factor and shot delay must be positive", def.Kind)
		}
		// перезарядка должна остаться положительной на любой волне
		if def.MaxReloadCutMs < 0 || def.ShotDelayMs-def.MaxReloadCutMs <= 0 {
			return nil, fmt.Errorf("enemy %s: max reload cut %.0f ms must be below shot delay %.0f ms",
				def.Kind, def.MaxReloadCutMs, def.ShotDelayMs)
		}
		if def.Projectiles < 1 {
			lib[i].Projectiles = 1
		}
		prev = def.SpawnThreshold
	}
	return lib, nil
}
