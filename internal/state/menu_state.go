// internal/state/menu_state.go
package state

import (
	"log"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/internal/ui"
	"go-arena-survivor/pkg/geom"
	"go-arena-survivor/pkg/render"
)

var _ State = (*MenuState)(nil)

// MenuState — стартовый экран: ввод ника, кнопка старта и таблица рекордов.
type MenuState struct {
	sm      *StateMachine
	gs      *GameState
	field   *ui.NicknameInput
	start   *ui.Button
	table   *ui.LeaderboardTable
	scores  []score.Record
	pointer input.Snapshot
}

// NewMenuState подставляет в поле последний сохранённый ник, а если его нет — fallback.
func NewMenuState(sm *StateMachine, gs *GameState, fallback string) *MenuState {
	nickname := fallback
	if lb := gs.game.Leaderboard; lb != nil {
		if saved := lb.Nickname(); saved != "" {
			nickname = saved
		}
	}

	w, gap := float64(config.MenuButtonW), float64(config.MenuButtonGap)
	x := (config.ScreenWidth - w) / 2
	y := float64(config.ScreenHeight) / 4
	fieldRect := geom.Rect{X: x, Y: y, Width: w, Height: config.MenuButtonH}
	startRect := geom.Rect{X: x, Y: y + config.MenuButtonH + gap, Width: w, Height: config.MenuButtonH}

	return &MenuState{
		sm:    sm,
		gs:    gs,
		field: ui.NewNicknameInput(fieldRect, nickname),
		start: ui.NewButton(startRect, "Start"),
		table: ui.NewLeaderboardTable(x, startRect.Y+3*config.MenuButtonH),
	}
}

// Enter перечитывает таблицу: после забега в ней может быть новый рекорд.
func (m *MenuState) Enter() {
	if lb := m.gs.game.Leaderboard; lb != nil {
		m.scores = lb.Scores()
	}
}

func (m *MenuState) Update(in input.Snapshot) {
	m.pointer = in
	m.field.Update(in)
	if !in.Enter && !m.start.IsClicked(in) {
		return
	}
	if err := m.gs.game.StartRun(m.field.Value()); err != nil {
		log.Printf("Не удалось начать забег: %v", err)
		return
	}
	m.sm.SetState(m.gs)
}

func (m *MenuState) Draw(screen render.Surface) {
	w, _ := screen.Size()
	render.TextCentered(screen, config.WindowTitle, w/2, m.field.Rect.Y-2*config.UILineHeight, config.TextLightColor)
	screen.Text("Nickname:", m.field.Rect.X, m.field.Rect.Y-config.UILineHeight, config.TextLightColor)
	m.field.Draw(screen)
	m.start.Draw(screen, m.pointer.PointerX, m.pointer.PointerY)
	m.table.Draw(screen, m.scores)
}

func (m *MenuState) Exit() {}
