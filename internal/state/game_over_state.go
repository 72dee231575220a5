// internal/state/game_over_state.go
package state

import (
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/internal/ui"
	"go-arena-survivor/pkg/render"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог забега до перезапуска.
type GameOverState struct {
	sm      *StateMachine
	gs      *GameState
	record  score.Record
	overlay *ui.GameOverOverlay
	pointer input.Snapshot
}

func NewGameOverState(sm *StateMachine, gs *GameState, record score.Record) *GameOverState {
	return &GameOverState{
		sm:      sm,
		gs:      gs,
		record:  record,
		overlay: ui.NewGameOverOverlay(config.ScreenWidth, config.ScreenHeight),
	}
}

func (s *GameOverState) Enter() {}

// Update по Restart сбрасывает игру и возвращает в меню с тем же ником.
func (s *GameOverState) Update(in input.Snapshot) {
	s.pointer = in
	if !s.overlay.RestartPressed(in) {
		return
	}
	s.gs.game.Restart()
	s.sm.SetState(NewMenuState(s.sm, s.gs, s.record.Nickname))
}

func (s *GameOverState) Draw(screen render.Surface) {
	s.gs.Draw(screen)
	s.overlay.Draw(screen, s.record, s.pointer)
}

func (s *GameOverState) Exit() {}
