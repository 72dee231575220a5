// internal/score/leaderboard.go
package score

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"go-arena-survivor/internal/config"
)

// Record — один результат забега.
type Record struct {
	RunID    string    `json:"run_id,omitempty" msgpack:"run_id,omitempty"`
	Nickname string    `json:"nickname" msgpack:"nickname"`
	Wave     int       `json:"wave" msgpack:"wave"`
	Time     float64   `json:"time" msgpack:"time"` // секунды забега
	Level    int       `json:"level" msgpack:"level"`
	Date     time.Time `json:"date" msgpack:"date"`
}

// key — по нему отсеиваются повторы: ник, волна и время до десятых.
func (r Record) key() string {
	return fmt.Sprintf("%s-%d-%.1f", r.Nickname, r.Wave, r.Time)
}

// Leaderboard — таблица лучших результатов поверх Store.
type Leaderboard struct {
	store      Store
	codec      Codec
	maxEntries int
}

func NewLeaderboard(store Store, codec Codec) *Leaderboard {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &Leaderboard{store: store, codec: codec, maxEntries: config.LeaderboardEntries}
}

// Scores читает таблицу. Отсутствующий или испорченный блоб — пустая таблица.
func (l *Leaderboard) Scores() []Record {
	blob, err := l.store.Load(config.LeaderboardKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("Не удалось прочитать таблицу рекордов: %v", err)
		return nil
	}
	var scores []Record
	if err := l.codec.Unmarshal(blob, &scores); err != nil {
		log.Printf("Таблица рекордов повреждена, начинаем с пустой: %v", err)
		return nil
	}
	return scores
}

// AddScore добавляет результат и сохраняет не больше maxEntries лучших:
// по волне по убыванию, затем по времени по убыванию.
func (l *Leaderboard) AddScore(r Record) ([]Record, error) {
	scores := append(l.Scores(), r)
	slices.SortStableFunc(scores, func(a, b Record) int {
		if c := cmp.Compare(b.Wave, a.Wave); c != 0 {
			return c
		}
		return cmp.Compare(b.Time, a.Time)
	})

	seen := make(map[string]struct{}, len(scores))
	unique := scores[:0]
	for _, s := range scores {
		k := s.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, s)
	}
	if len(unique) > l.maxEntries {
		unique = unique[:l.maxEntries]
	}

	blob, err := l.codec.Marshal(unique)
	if err != nil {
		return unique, fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	if err := l.store.Save(config.LeaderboardKey, blob); err != nil {
		return unique, fmt.Errorf("failed to save leaderboard: %w", err)
	}
	return unique, nil
}

// Nickname возвращает последний введённый ник или "".
func (l *Leaderboard) Nickname() string {
	blob, err := l.store.Load(config.NicknameKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Не удалось прочитать ник: %v", err)
		}
		return ""
	}
	return string(blob)
}

// SaveNickname запоминает ник для следующего запуска.
func (l *Leaderboard) SaveNickname(name string) error {
	name = strings.TrimSpace(name)
	if err := l.store.Save(config.NicknameKey, []byte(name)); err != nil {
		return fmt.Errorf("failed to save nickname: %w", err)
	}
	return nil
}
