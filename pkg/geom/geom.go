// pkg/geom/geom.go
package geom

import "math"

// Rect — осевой прямоугольник (левый верхний угол + размеры).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CircleIntersectsRect проверяет пересечение ограничивающего квадрата круга с прямоугольником.
// Используется и для блокировки движения, и для попаданий снарядов в стены.
func CircleIntersectsRect(cx, cy, r float64, rect Rect) bool {
	return cx+r > rect.X &&
		cx-r < rect.X+rect.Width &&
		cy+r > rect.Y &&
		cy-r < rect.Y+rect.Height
}

// CircleIntersectsCircle — расстояние между центрами строго меньше суммы радиусов.
func CircleIntersectsCircle(ax, ay, ar, bx, by, br float64) bool {
	return math.Hypot(ax-bx, ay-by) < ar+br
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OutOfBounds сообщает, что точка вышла за пределы арены width x height.
func OutOfBounds(x, y, width, height float64) bool {
	return x < 0 || x > width || y < 0 || y > height
}
