// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-arena-survivor/pkg/render"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float64
}

const (
	xpBarWidth  = 200
	xpBarHeight = 6
	borderWidth = 1
)

var (
	xpBarColorFill = color.RGBA{70, 100, 120, 220}
	borderColor    = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float64) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// LevelText — подпись "Level: 3 (40/144 XP)".
func LevelText(level, currentXP, xpToNext int) string {
	return fmt.Sprintf("Level: %d (%d/%d XP)", level, currentXP, xpToNext)
}

// Draw отрисовывает подпись и тонкую полосу опыта под ней.
func (i *PlayerLevelIndicator) Draw(screen render.Surface, level, currentXP, xpToNext int) {
	label := LevelText(level, currentXP, xpToNext)
	screen.Text(label, i.X, i.Y, borderColor)
	_, h := screen.MeasureText(label)

	barY := i.Y + h + 2
	screen.StrokeRect(i.X, barY, xpBarWidth, xpBarHeight, borderWidth, borderColor)

	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = float64(currentXP) / float64(xpToNext)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	if fillWidth := (xpBarWidth - borderWidth*2) * fillRatio; fillWidth > 0 {
		screen.FillRect(i.X+borderWidth, barY+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill)
	}
}
