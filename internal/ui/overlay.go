// internal/ui/overlay.go
package ui

import (
	"fmt"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/pkg/geom"
	"go-arena-survivor/pkg/render"
)

// DrawPauseOverlay затемняет экран и пишет подсказку.
func DrawPauseOverlay(screen render.Surface) {
	w, h := screen.Size()
	screen.FillRect(0, 0, w, h, config.OverlayColor)
	render.TextCentered(screen, "Paused", w/2, h/2-config.UILineHeight/2, config.TextLightColor)
	render.TextCentered(screen, "Press ESC to resume", w/2, h/2+config.UILineHeight/2, config.TextLightColor)
}

// GameOverOverlay — итог забега и кнопка перезапуска.
type GameOverOverlay struct {
	restart *Button
}

func NewGameOverOverlay(width, height float64) *GameOverOverlay {
	rect := geom.Rect{
		X:      (width - config.MenuButtonW) / 2,
		Y:      height/2 + 2*config.UILineHeight,
		Width:  config.MenuButtonW,
		Height: config.MenuButtonH,
	}
	return &GameOverOverlay{restart: NewButton(rect, "Restart")}
}

// RestartPressed — клик по кнопке или Enter.
func (o *GameOverOverlay) RestartPressed(in input.Snapshot) bool {
	return in.Enter || o.restart.IsClicked(in)
}

// GameOverLines — строки итога забега.
func GameOverLines(r score.Record) []string {
	return []string{
		"Game Over",
		fmt.Sprintf("Wave: %d", r.Wave),
		fmt.Sprintf("Time: %.1fs", r.Time),
		fmt.Sprintf("Level: %d", r.Level),
	}
}

func (o *GameOverOverlay) Draw(screen render.Surface, r score.Record, in input.Snapshot) {
	w, h := screen.Size()
	screen.FillRect(0, 0, w, h, config.OverlayColor)
	lines := GameOverLines(r)
	y := h/2 - float64(len(lines))*config.UILineHeight
	for _, line := range lines {
		render.TextCentered(screen, line, w/2, y, config.TextLightColor)
		y += config.UILineHeight
	}
	o.restart.Draw(screen, in.PointerX, in.PointerY)
}
