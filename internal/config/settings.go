// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Имена переменных окружения.
const (
	EnvSeed         = "ARENA_SEED"
	EnvScorePath    = "ARENA_SCORE_PATH"
	EnvScoreCodec   = "ARENA_SCORE_CODEC"
	EnvEnemyDefs    = "ARENA_ENEMY_DEFS"
	EnvPprofAddr    = "ARENA_PPROF_ADDR"
	EnvNickname     = "ARENA_NICKNAME"
	EnvSpawnStagger = "ARENA_SPAWN_STAGGER"
)

// Settings — настройки, которые можно переопределить через .env или окружение.
type Settings struct {
	Seed          int64  // 0 — сид от текущего времени
	ScorePath     string // файл хранилища рекордов
	ScoreCodec    string // "json" или "msgpack"
	EnemyDefsPath string // пусто — встроенные определения врагов
	PprofAddr     string // пусто — pprof выключен
	Nickname      string // ник по умолчанию в меню
	SpawnStagger  int    // кадров между появлениями врагов новой волны
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		ScorePath:    "scores.db",
		ScoreCodec:   "json",
		Nickname:     DefaultNickname,
		SpawnStagger: SpawnStaggerFrames,
	}
}

// LoadSettings читает envFile (если он есть) и накладывает переменные окружения на значения по умолчанию.
// Отсутствующий файл не считается ошибкой.
func LoadSettings(envFile string) (Settings, error) {
	s := DefaultSettings()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return s, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		} else {
			log.Printf("Loaded settings from %s", envFile)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(EnvScorePath); v != "" {
		s.ScorePath = v
	}
	if v := os.Getenv(EnvScoreCodec); v != "" {
		if v != "json" && v != "msgpack" {
			return s, fmt.Errorf("invalid %s: unknown codec %q", EnvScoreCodec, v)
		}
		s.ScoreCodec = v
	}
	if v := os.Getenv(EnvSpawnStagger); v != "" {
		frames, err := strconv.Atoi(v)
		if err != nil || frames < 0 {
			return s, fmt.Errorf("invalid %s: %q", EnvSpawnStagger, v)
		}
		s.SpawnStagger = frames
	}
	s.EnemyDefsPath = os.Getenv(EnvEnemyDefs)
	s.PprofAddr = os.Getenv(EnvPprofAddr)
	if v := os.Getenv(EnvNickname); v != "" {
		s.Nickname = v
	}

	return s, nil
}
