// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-arena-survivor/internal/input"
	"go-arena-survivor/pkg/geom"
	"go-arena-survivor/pkg/render"
)

// PauseButton — круглая кнопка паузы в правом верхнем углу.
// В паузе рисуется треугольник "play", иначе две полосы.
type PauseButton struct {
	X, Y          float64
	Size          float64
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float64, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Draw рисует кнопку; после клика она ненадолго "вспухает".
func (b *PauseButton) Draw(screen render.Surface, now time.Time) {
	elapsed := now.Sub(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * scale

	if b.IsPaused {
		screen.FillTriangle(
			b.X-size, b.Y-size*1.2,
			b.X-size, b.Y+size*1.2,
			b.X+size, b.Y,
			b.PlayColor,
		)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	// Левый
	screen.FillRect(b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor)
	screen.StrokeRect(b.X-width-spacing/2, b.Y-height/2, width, height, 1, color.White)
	// Правый
	screen.FillRect(b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor)
	screen.StrokeRect(b.X+spacing/2, b.Y-height/2, width, height, 1, color.White)
}

// IsClicked — клик в пределах радиуса кнопки.
func (b *PauseButton) IsClicked(in input.Snapshot) bool {
	return in.Click && geom.CircleIntersectsCircle(in.PointerX, in.PointerY, 0, b.X, b.Y, b.Size*1.5)
}

// SetPaused синхронизирует иконку с фазой игры и запускает анимацию при смене.
func (b *PauseButton) SetPaused(paused bool, now time.Time) {
	if b.IsPaused != paused {
		b.LastClickTime = now
	}
	b.IsPaused = paused
}
