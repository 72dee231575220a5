// internal/ui/hud.go
package ui

import (
	"fmt"
	"time"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/pkg/render"
)

// BuffTimer — активный баф и сколько ему осталось.
type BuffTimer struct {
	Label     string
	Remaining time.Duration
}

// HUDData — всё, что показывает HUD за кадр. Собирается из состояния игры.
type HUDData struct {
	Wave, Kills, Enemies int
	Health, MaxHealth    float64
	Elapsed              time.Duration
	Level, XP, XPToNext  int
	Buffs                []BuffTimer
}

// HUD — левая колонка поверх арены и римский номер волны по центру.
type HUD struct {
	X, Y   float64
	health *PlayerHealthIndicator
	level  *PlayerLevelIndicator
	wave   *WaveIndicator
}

func NewHUD() *HUD {
	x, y := float64(config.UIMargin), float64(config.UIMargin)
	return &HUD{
		X:      x,
		Y:      y,
		health: NewPlayerHealthIndicator(x, y+config.UILineHeight),
		level:  NewPlayerLevelIndicator(x, y+4*config.UILineHeight),
		wave:   NewWaveIndicator(config.ScreenWidth/2, float64(config.UIMargin)),
	}
}

// WaveLine — "Wave: 3 | Kills: 1/3 | Enemies: 4".
func WaveLine(d HUDData) string {
	return fmt.Sprintf("Wave: %d | Kills: %d/%d | Enemies: %d", d.Wave, d.Kills, d.Wave, d.Enemies)
}

// TimeText — время забега с точностью до десятых.
func TimeText(elapsed time.Duration) string {
	return fmt.Sprintf("Time: %.1fs", elapsed.Seconds())
}

// BuffText — "Shield: 7.2s".
func BuffText(b BuffTimer) string {
	return fmt.Sprintf("%s: %.1fs", b.Label, b.Remaining.Seconds())
}

func (h *HUD) Draw(screen render.Surface, d HUDData) {
	c := config.TextLightColor
	line := float64(config.UILineHeight)

	screen.Text(WaveLine(d), h.X, h.Y, c)
	h.health.Draw(screen, d.Health, d.MaxHealth)
	screen.Text(HealthText(d.Health, d.MaxHealth), h.X, h.Y+2*line, c)
	screen.Text(TimeText(d.Elapsed), h.X, h.Y+3*line, c)
	h.level.Draw(screen, d.Level, d.XP, d.XPToNext)

	// бафы столбиком с y=180
	y := h.Y + 160
	for _, b := range d.Buffs {
		screen.Text(BuffText(b), h.X, y, c)
		y += line
	}

	h.wave.Draw(screen, d.Wave)
}
