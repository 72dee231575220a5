// internal/state/pause_state.go
package state

import (
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/ui"
	"go-arena-survivor/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную арену под затемнением.
type PauseState struct {
	sm *StateMachine
	gs *GameState
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	return &PauseState{sm: sm, gs: gs}
}

func (s *PauseState) Enter() {}

// Update снимает паузу по ESC или кнопке. Возврат в GameState делает событие Resumed.
func (s *PauseState) Update(in input.Snapshot) {
	if in.PauseToggle || s.gs.pauseButton.IsClicked(in) {
		s.gs.game.TogglePause()
	}
}

func (s *PauseState) Draw(screen render.Surface) {
	s.gs.Draw(screen)
	ui.DrawPauseOverlay(screen)
}

func (s *PauseState) Exit() {}
