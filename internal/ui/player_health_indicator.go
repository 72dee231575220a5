// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"math"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/pkg/render"
)

// PlayerHealthIndicator отображает здоровье игрока полосой с рамкой.
type PlayerHealthIndicator struct {
	X, Y          float64
	Width, Height float64
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Width: config.HealthBarWidth, Height: config.HealthBarHeight}
}

// Draw рисует полосу: красный фон, зелёная заливка по доле здоровья, белая рамка.
func (i *PlayerHealthIndicator) Draw(screen render.Surface, health, maxHealth float64) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = math.Max(0, math.Min(1, health/maxHealth))
	}
	screen.FillRect(i.X, i.Y, i.Width, i.Height, config.BarBackColor)
	screen.FillRect(i.X, i.Y, i.Width*ratio, i.Height, config.BarFillColor)
	screen.StrokeRect(i.X, i.Y, i.Width, i.Height, 1, config.TextLightColor)
}

// HealthText — подпись "Health: 120/220".
func HealthText(health, maxHealth float64) string {
	return fmt.Sprintf("Health: %d/%d", int(math.Floor(health)), int(maxHealth))
}
