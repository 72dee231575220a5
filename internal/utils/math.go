package utils

import "math"

// AngleTo возвращает направление из (fromX, fromY) на (toX, toY).
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// ClampLength укорачивает вектор (x, y) до длины max, сохраняя направление.
func ClampLength(x, y, max float64) (float64, float64) {
	d := math.Hypot(x, y)
	if d <= max || d == 0 {
		return x, y
	}
	return x / d * max, y / d * max
}
