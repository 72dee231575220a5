// internal/state/game_state.go
package state

import (
	"go-arena-survivor/internal/app"
	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/event"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/internal/ui"
	"go-arena-survivor/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState — идущий забег. Переходы в паузу, выбор улучшения и конец игры
// приходят событиями от app.Game.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	hud         *ui.HUD
	pauseButton *ui.PauseButton
	lastInput   input.Snapshot
}

// NewGameState подписывается на события игры. Создаётся один раз на процесс.
func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	gs := &GameState{
		sm:   sm,
		game: game,
		hud:  ui.NewHUD(),
		pauseButton: ui.NewPauseButton(
			config.ScreenWidth-config.UIMargin-config.PauseButtonSize,
			config.UIMargin+config.PauseButtonSize,
			config.PauseButtonSize,
			config.ButtonColor,
			config.ButtonHover,
		),
	}
	game.EventDispatcher.SubscribeAll(gs, event.Paused, event.Resumed, event.LevelUp, event.GameOver)
	return gs
}

// Game отдаёт симуляцию, которой управляет состояние.
func (g *GameState) Game() *app.Game {
	return g.game
}

// OnEvent переключает экран по фазе игры.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.Paused:
		g.sm.SetState(NewPauseState(g.sm, g))
	case event.Resumed:
		g.sm.SetState(g)
	case event.LevelUp:
		level, _ := e.Data.(int)
		g.sm.SetState(NewLevelUpState(g.sm, g, level))
	case event.GameOver:
		record, _ := e.Data.(score.Record)
		g.sm.SetState(NewGameOverState(g.sm, g, record))
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(in input.Snapshot) {
	g.lastInput = in
	if g.pauseButton.IsClicked(in) {
		in.PauseToggle = true
		// клик по кнопке паузы не должен стрелять
		in.Fire = false
	}
	g.game.Update(in)
}

// Draw рисует арену, HUD и экранные элементы управления.
func (g *GameState) Draw(screen render.Surface) {
	g.game.Draw(screen)
	g.hud.Draw(screen, g.hudData())
	g.pauseButton.SetPaused(g.game.Phase() == component.PhasePaused, g.game.Now())
	g.pauseButton.Draw(screen, g.game.Now())
	ui.DrawMobileControls(screen, g.lastInput)
}

func (g *GameState) hudData() ui.HUDData {
	w := g.game.World
	stats := g.game.Stats()
	d := ui.HUDData{
		Wave:      w.Wave.Number,
		Kills:     w.Wave.Kills,
		Enemies:   len(w.Enemies), // очередь появления не показываем
		Health:    w.Player.Health,
		MaxHealth: stats.MaxHealth,
		Elapsed:   w.Elapsed,
		Level:     w.Progress.Level,
		XP:        w.Progress.CurrentXP,
		XPToNext:  w.Progress.XPToNextLevel,
	}
	for _, kind := range defs.AllBuffs {
		if !w.Buffs.IsActive(kind) {
			continue
		}
		d.Buffs = append(d.Buffs, ui.BuffTimer{Label: kind.Label(), Remaining: g.game.BuffRemaining(kind)})
	}
	return d
}

func (g *GameState) Exit() {}
