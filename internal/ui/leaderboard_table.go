// internal/ui/leaderboard_table.go
package ui

import (
	"fmt"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/pkg/render"
)

// LeaderboardTable — таблица лучших забегов на стартовом экране.
type LeaderboardTable struct {
	X, Y float64
}

func NewLeaderboardTable(x, y float64) *LeaderboardTable {
	return &LeaderboardTable{X: x, Y: y}
}

// Row — одна строка таблицы, место начинается с 1.
func Row(place int, r score.Record) string {
	return fmt.Sprintf("%2d. %-16s wave %3d  %7.1fs  lvl %d", place, r.Nickname, r.Wave, r.Time, r.Level)
}

func (t *LeaderboardTable) Draw(screen render.Surface, records []score.Record) {
	c := config.TextLightColor
	screen.Text("Leaderboard", t.X, t.Y, c)
	if len(records) == 0 {
		screen.Text("No scores yet", t.X, t.Y+config.UILineHeight, c)
		return
	}
	for i, r := range records {
		screen.Text(Row(i+1, r), t.X, t.Y+float64(i+1)*config.UILineHeight, c)
	}
}
