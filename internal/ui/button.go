// internal/ui/button.go
package ui

import (
	"image/color"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/pkg/geom"
	"go-arena-survivor/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       geom.Rect
	Text       string
	Hotkey     int // цифра 1–7, 0 — без клавиши
	BgColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
		TextColor:  config.TextLightColor,
	}
}

// Contains — попадает ли точка в кнопку.
func (b *Button) Contains(x, y float64) bool {
	return input.InRect(x, y, b.Rect)
}

// IsClicked — клик по кнопке или нажатие её цифры в этом кадре.
func (b *Button) IsClicked(in input.Snapshot) bool {
	if b.Hotkey != 0 && in.UpgradeKey == b.Hotkey {
		return true
	}
	return in.Click && b.Contains(in.PointerX, in.PointerY)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen render.Surface, pointerX, pointerY float64) {
	bg := b.BgColor
	if b.Contains(pointerX, pointerY) {
		bg = b.HoverColor
	}
	screen.FillRect(b.Rect.X, b.Rect.Y, b.Rect.Width, b.Rect.Height, bg)
	screen.StrokeRect(b.Rect.X, b.Rect.Y, b.Rect.Width, b.Rect.Height, 2, render.DarkenColor(bg))
	render.TextCentered(screen, b.Text, b.Rect.X+b.Rect.Width/2, b.Rect.Y+b.Rect.Height/2, b.TextColor)
}
