// internal/state/level_up_state.go
package state

import (
	"log"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/ui"
	"go-arena-survivor/pkg/render"
)

var _ State = (*LevelUpState)(nil)

// LevelUpState — меню выбора улучшения. Симуляция стоит, пока выборы не закончатся.
type LevelUpState struct {
	sm      *StateMachine
	gs      *GameState
	menu    *ui.UpgradeMenu
	pointer input.Snapshot
}

func NewLevelUpState(sm *StateMachine, gs *GameState, level int) *LevelUpState {
	menu := ui.NewUpgradeMenu(config.ScreenWidth, config.ScreenHeight)
	menu.Level = level
	return &LevelUpState{sm: sm, gs: gs, menu: menu}
}

func (s *LevelUpState) Enter() {}

// Update применяет выбор. Следующий экран выбирает GameState по событию LevelUp или Resumed.
func (s *LevelUpState) Update(in input.Snapshot) {
	s.pointer = in
	kind, ok := s.menu.Choice(in)
	if !ok {
		return
	}
	if err := s.gs.game.ChooseUpgrade(kind); err != nil {
		log.Printf("Улучшение не применено: %v", err)
	}
}

func (s *LevelUpState) Draw(screen render.Surface) {
	s.gs.Draw(screen)
	s.menu.Draw(screen, s.pointer)
}

func (s *LevelUpState) Exit() {}
