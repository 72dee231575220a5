// internal/ui/nickname_input.go
package ui

import (
	"unicode"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/pkg/geom"
	"go-arena-survivor/pkg/render"
)

// NicknameInput — однострочное поле ввода ника.
type NicknameInput struct {
	Rect  geom.Rect
	value []rune
}

func NewNicknameInput(rect geom.Rect, initial string) *NicknameInput {
	return &NicknameInput{Rect: rect, value: []rune(initial)}
}

func (n *NicknameInput) Value() string {
	return string(n.value)
}

// Update применяет набранные символы и Backspace. Длина ограничена MaxNicknameLength.
func (n *NicknameInput) Update(in input.Snapshot) {
	if in.Backspace && len(n.value) > 0 {
		n.value = n.value[:len(n.value)-1]
	}
	for _, r := range in.Typed {
		if !unicode.IsPrint(r) || len(n.value) >= config.MaxNicknameLength {
			continue
		}
		n.value = append(n.value, r)
	}
}

func (n *NicknameInput) Draw(screen render.Surface) {
	r := n.Rect
	screen.FillRect(r.X, r.Y, r.Width, r.Height, config.BackgroundColor)
	screen.StrokeRect(r.X, r.Y, r.Width, r.Height, 2, config.TextLightColor)
	_, h := screen.MeasureText("M")
	screen.Text(string(n.value)+"_", r.X+8, r.Y+(r.Height-h)/2, config.TextLightColor)
}
