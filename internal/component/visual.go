package component

import "image/color"

// Particle — косметическая частица, на игру не влияет.
type Particle struct {
	Position
	Velocity
	Radius float64
	Life   float64 // оставшиеся кадры
	Color  color.RGBA
}

// CameraShake хранит текущую амплитуду тряски камеры.
type CameraShake struct {
	Magnitude float64
}
