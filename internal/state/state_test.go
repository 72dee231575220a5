package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survivor/internal/app"
	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/pkg/render"
)

func newSession(t *testing.T) (*StateMachine, *GameState, *score.Leaderboard) {
	t.Helper()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	lb := score.NewLeaderboard(score.NewMemoryStore(), score.JSONCodec{})
	game := app.NewGame(lb, app.Options{Seed: 3, Clock: func() time.Time { return now }})

	sm := NewStateMachine()
	gs := NewGameState(sm, game)
	sm.SetState(NewMenuState(sm, gs, "guest"))
	return sm, gs, lb
}

// startRun вводит ник и жмёт Enter, затем убирает врагов и стены.
func startRun(t *testing.T, sm *StateMachine, gs *GameState) {
	t.Helper()
	sm.Update(input.Snapshot{Backspace: true, Typed: []rune("!"), Enter: true})
	require.Same(t, gs, sm.Current())
	gs.Game().World.Enemies = nil
	gs.Game().World.Walls = nil
	gs.Game().World.Wave.PendingSpawns = nil
}

func TestMenu_StartsRunWithTypedNickname(t *testing.T) {
	sm, gs, lb := newSession(t)
	startRun(t, sm, gs)

	assert.Equal(t, component.PhaseRunning, gs.Game().Phase())
	assert.Equal(t, "gues!", gs.Game().Nickname())
	assert.Equal(t, "gues!", lb.Nickname())
}

func TestMenu_PrefillsSavedNickname(t *testing.T) {
	sm, gs, lb := newSession(t)
	require.NoError(t, lb.SaveNickname("morpheus"))

	menu := NewMenuState(sm, gs, "guest")
	sm.SetState(menu)
	assert.Equal(t, "morpheus", menu.field.Value())
}

func TestGameState_PauseAndResume(t *testing.T) {
	sm, gs, _ := newSession(t)
	startRun(t, sm, gs)

	sm.Update(input.Snapshot{PauseToggle: true})
	require.IsType(t, &PauseState{}, sm.Current())
	assert.Equal(t, component.PhasePaused, gs.Game().Phase())

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm.Draw(rec)
	assert.Contains(t, rec.Texts(), "Paused")

	sm.Update(input.Snapshot{PauseToggle: true})
	assert.Same(t, gs, sm.Current())
	assert.Equal(t, component.PhaseRunning, gs.Game().Phase())
}

func TestGameState_PauseButtonClick(t *testing.T) {
	sm, gs, _ := newSession(t)
	startRun(t, sm, gs)

	b := gs.pauseButton
	sm.Update(input.Snapshot{Click: true, Fire: true, PointerX: b.X, PointerY: b.Y})

	require.IsType(t, &PauseState{}, sm.Current())
	assert.Empty(t, gs.Game().World.PlayerBullets, "pause click does not shoot")
}

func TestLevelUpState_ChoicesThenResume(t *testing.T) {
	sm, gs, _ := newSession(t)
	startRun(t, sm, gs)

	gs.Game().ProgressionSystem.AddExperience(220)
	sm.Update(input.Snapshot{})
	first, ok := sm.Current().(*LevelUpState)
	require.True(t, ok)
	assert.Equal(t, 2, first.menu.Level)

	sm.Update(input.Snapshot{UpgradeKey: 2})
	second, ok := sm.Current().(*LevelUpState)
	require.True(t, ok)
	assert.Equal(t, 3, second.menu.Level)

	sm.Update(input.Snapshot{UpgradeKey: 3})
	assert.Same(t, gs, sm.Current())
	up := gs.Game().World.Progress.Upgrades
	assert.Equal(t, 1, up.Level(defs.UpgradeHealth))
	assert.Equal(t, 1, up.Level(defs.UpgradeDamage))
}

func TestGameOverState_RestartReturnsToMenu(t *testing.T) {
	sm, gs, lb := newSession(t)
	startRun(t, sm, gs)

	gs.Game().CombatSystem.DamagePlayer(1000)
	sm.Update(input.Snapshot{})
	over, ok := sm.Current().(*GameOverState)
	require.True(t, ok)
	assert.Equal(t, "gues!", over.record.Nickname)

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm.Draw(rec)
	assert.Contains(t, rec.Texts(), "Game Over")

	sm.Update(input.Snapshot{Enter: true})
	menu, ok := sm.Current().(*MenuState)
	require.True(t, ok)
	assert.Equal(t, component.PhaseIdle, gs.Game().Phase())
	assert.Len(t, menu.scores, 1)
	assert.Len(t, lb.Scores(), 1)
}

func TestGameState_DrawHUD(t *testing.T) {
	sm, gs, _ := newSession(t)
	startRun(t, sm, gs)
	gs.Game().StatusEffectSystem.Activate(defs.BuffShield, gs.Game().Now())

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm.Draw(rec)

	texts := rec.Texts()
	assert.Contains(t, texts, "Wave: 1 | Kills: 0/1 | Enemies: 0")
	assert.Contains(t, texts, "Shield: 10.0s")
	assert.Equal(t, 1, rec.Count(render.OpFillTriangle), "player only, pause icon uses rectangles")
}

func TestGameState_HUDCountsOnlyEnemiesOnScreen(t *testing.T) {
	sm, gs, _ := newSession(t)
	startRun(t, sm, gs)
	w := gs.Game().World
	w.Wave.PendingSpawns = []int{w.Frame + 30, w.Frame + 60}

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm.Draw(rec)

	assert.Contains(t, rec.Texts(), "Wave: 1 | Kills: 0/1 | Enemies: 0")
	assert.Equal(t, 2, w.LiveEnemies(), "queued spawns still hold the wave open")
}
