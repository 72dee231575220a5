// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — смещение за один логический кадр
type Velocity struct {
	DX, DY float64
}
