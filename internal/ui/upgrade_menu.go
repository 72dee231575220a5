// internal/ui/upgrade_menu.go
package ui

import (
	"fmt"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/pkg/geom"
	"go-arena-survivor/pkg/render"
)

// UpgradeMenu — семь кнопок улучшений, по клику или клавишами 1–7.
type UpgradeMenu struct {
	buttons []*Button
	kinds   []defs.UpgradeKind
	Level   int // уровень, за который делается выбор
}

func NewUpgradeMenu(width, height float64) *UpgradeMenu {
	m := &UpgradeMenu{kinds: defs.AllUpgrades}
	w, h, gap := float64(config.MenuButtonW), float64(config.MenuButtonH), float64(config.MenuButtonGap)
	total := float64(len(m.kinds))*(h+gap) - gap
	top := (height-total)/2 + h
	for i, kind := range m.kinds {
		rect := geom.Rect{X: (width - w) / 2, Y: top + float64(i)*(h+gap), Width: w, Height: h}
		b := NewButton(rect, fmt.Sprintf("%d. %s", i+1, kind.Label()))
		b.Hotkey = i + 1
		m.buttons = append(m.buttons, b)
	}
	return m
}

// Choice возвращает выбранное в этом кадре улучшение.
func (m *UpgradeMenu) Choice(in input.Snapshot) (defs.UpgradeKind, bool) {
	for i, b := range m.buttons {
		if b.IsClicked(in) {
			return m.kinds[i], true
		}
	}
	return "", false
}

func (m *UpgradeMenu) Draw(screen render.Surface, in input.Snapshot) {
	w, h := screen.Size()
	screen.FillRect(0, 0, w, h, config.OverlayColor)

	title := fmt.Sprintf("Level %d! Choose an upgrade", m.Level)
	render.TextCentered(screen, title, w/2, m.buttons[0].Rect.Y-config.MenuButtonH, config.TextLightColor)
	for _, b := range m.buttons {
		b.Draw(screen, in.PointerX, in.PointerY)
	}
}
