// internal/ui/mobile_controls.go
package ui

import (
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/pkg/render"
)

// DrawMobileControls рисует джойстик (пока палец на экране) и кнопку огня.
// На десктопе ничего не рисует.
func DrawMobileControls(screen render.Surface, in input.Snapshot) {
	if !in.Touch {
		return
	}
	if in.JoystickActive {
		screen.FillCircle(in.JoystickBaseX, in.JoystickBaseY, config.JoystickBaseR, config.JoystickColor)
		screen.FillCircle(in.JoystickBaseX+in.JoystickX, in.JoystickBaseY+in.JoystickY, config.JoystickBaseR/2, config.JoystickColor)
	}
	w, h := screen.Size()
	fire := input.FireButtonRect(w, h)
	screen.FillCircle(fire.X+fire.Width/2, fire.Y+fire.Height/2, fire.Width/2, config.FireButtonColor)
	render.TextCentered(screen, "FIRE", fire.X+fire.Width/2, fire.Y+fire.Height/2, config.TextLightColor)
}
