package component

import "go-arena-survivor/pkg/geom"

// Wall — разрушаемое препятствие. Непроходимо для движения и снарядов.
type Wall struct {
	geom.Rect
	Health Health
}
