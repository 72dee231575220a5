package component

import (
	"image/color"

	"go-arena-survivor/internal/defs"
)

// Pickup — бонус на арене. Сам по себе не исчезает.
type Pickup struct {
	Position
	Radius float64
	Kind   defs.PickupKind
	Color  color.RGBA
}
