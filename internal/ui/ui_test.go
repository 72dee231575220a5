package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/pkg/geom"
	"go-arena-survivor/pkg/render"
)

func TestToRoman(t *testing.T) {
	testCases := map[int]string{
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for n, want := range testCases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestHUD_Draw(t *testing.T) {
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	d := HUDData{
		Wave: 3, Kills: 1, Enemies: 4,
		Health: 120.6, MaxHealth: 220,
		Elapsed: 12340 * time.Millisecond,
		Level:   2, XP: 40, XPToNext: 120,
		Buffs: []BuffTimer{{Label: "Shield", Remaining: 7200 * time.Millisecond}},
	}
	NewHUD().Draw(rec, d)

	texts := rec.Texts()
	assert.Contains(t, texts, "Wave: 3 | Kills: 1/3 | Enemies: 4")
	assert.Contains(t, texts, "Health: 120/220")
	assert.Contains(t, texts, "Time: 12.3s")
	assert.Contains(t, texts, "Level: 2 (40/120 XP)")
	assert.Contains(t, texts, "Shield: 7.2s")
	assert.Contains(t, texts, "III")

	// первая строка бафов на y=180
	for _, c := range rec.Commands {
		if c.Text == "Shield: 7.2s" {
			assert.Equal(t, 180.0, c.Y)
		}
	}
}

func TestPlayerHealthIndicator_FillRatio(t *testing.T) {
	rec := render.NewRecorder(100, 100)
	NewPlayerHealthIndicator(0, 0).Draw(rec, 50, 200)

	require.Equal(t, 2, rec.Count(render.OpFillRect))
	assert.Equal(t, float64(config.HealthBarWidth), rec.Commands[0].W)
	assert.Equal(t, config.HealthBarWidth/4.0, rec.Commands[1].W)
	assert.Equal(t, 1, rec.Count(render.OpStrokeRect))
}

func TestUpgradeMenu_Choice(t *testing.T) {
	m := NewUpgradeMenu(config.ScreenWidth, config.ScreenHeight)

	kind, ok := m.Choice(input.Snapshot{UpgradeKey: 7})
	require.True(t, ok)
	assert.Equal(t, defs.UpgradeLifesteal, kind)

	b := m.buttons[2]
	kind, ok = m.Choice(input.Snapshot{Click: true, PointerX: b.Rect.X + 1, PointerY: b.Rect.Y + 1})
	require.True(t, ok)
	assert.Equal(t, defs.UpgradeDamage, kind)

	_, ok = m.Choice(input.Snapshot{PointerX: b.Rect.X + 1, PointerY: b.Rect.Y + 1})
	assert.False(t, ok, "hover without click is not a choice")
}

func TestUpgradeMenu_DrawsAllButtons(t *testing.T) {
	m := NewUpgradeMenu(config.ScreenWidth, config.ScreenHeight)
	m.Level = 4
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	m.Draw(rec, input.Snapshot{})

	texts := rec.Texts()
	assert.Contains(t, texts, "Level 4! Choose an upgrade")
	assert.Contains(t, texts, "1. Speed +0.5")
	assert.Contains(t, texts, "7. Lifesteal +1%")
}

func TestNicknameInput_Update(t *testing.T) {
	n := NewNicknameInput(geom.Rect{Width: 200, Height: 30}, "Bob")

	n.Update(input.Snapshot{Backspace: true})
	assert.Equal(t, "Bo", n.Value())

	n.Update(input.Snapshot{Typed: []rune("b\tby")})
	assert.Equal(t, "Bobby", n.Value(), "control characters are skipped")

	n.Update(input.Snapshot{Typed: []rune("-the-very-long-name")})
	assert.Len(t, []rune(n.Value()), config.MaxNicknameLength)
}

func TestPauseOverlay(t *testing.T) {
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	DrawPauseOverlay(rec)
	assert.Equal(t, []string{"Paused", "Press ESC to resume"}, rec.Texts())
}

func TestGameOverOverlay(t *testing.T) {
	o := NewGameOverOverlay(config.ScreenWidth, config.ScreenHeight)
	r := score.Record{Nickname: "Ann", Wave: 5, Time: 61.25, Level: 3}

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	o.Draw(rec, r, input.Snapshot{})
	assert.Equal(t, []string{"Game Over", "Wave: 5", "Time: 61.2s", "Level: 3", "Restart"}, rec.Texts())

	assert.True(t, o.RestartPressed(input.Snapshot{Enter: true}))
	assert.False(t, o.RestartPressed(input.Snapshot{}))
}

func TestLeaderboardTable(t *testing.T) {
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	table := NewLeaderboardTable(0, 0)

	table.Draw(rec, nil)
	assert.Equal(t, []string{"Leaderboard", "No scores yet"}, rec.Texts())

	rec.Reset()
	table.Draw(rec, []score.Record{{Nickname: "Ann", Wave: 5, Time: 61.2, Level: 3}})
	require.Len(t, rec.Texts(), 2)
	assert.Equal(t, Row(1, score.Record{Nickname: "Ann", Wave: 5, Time: 61.2, Level: 3}), rec.Texts()[1])
}

func TestMobileControls(t *testing.T) {
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	DrawMobileControls(rec, input.Snapshot{})
	assert.Empty(t, rec.Commands)

	DrawMobileControls(rec, input.Snapshot{Touch: true, JoystickActive: true, JoystickBaseX: 100, JoystickBaseY: 500, JoystickX: 40})
	require.Equal(t, 3, rec.Count(render.OpFillCircle))
	assert.Equal(t, 140.0, rec.Commands[1].X, "knob follows the clamped vector")
}

func TestPauseButton(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewPauseButton(100, 100, config.PauseButtonSize, config.ButtonColor, config.ButtonHover)

	rec := render.NewRecorder(200, 200)
	b.Draw(rec, now)
	assert.Equal(t, 2, rec.Count(render.OpFillRect))

	b.SetPaused(true, now)
	rec.Reset()
	b.Draw(rec, now)
	assert.Equal(t, 1, rec.Count(render.OpFillTriangle))

	assert.True(t, b.IsClicked(input.Snapshot{Click: true, PointerX: 105, PointerY: 98}))
	assert.False(t, b.IsClicked(input.Snapshot{Click: true, PointerX: 10, PointerY: 10}))
}
