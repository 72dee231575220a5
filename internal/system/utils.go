// internal/system/utils.go
package system

import (
	"math"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/pkg/geom"
)

// ApplyDamage уменьшает здоровье и сообщает, опустилось ли оно до нуля.
// Отрицательный урон игнорируется.
func ApplyDamage(health *component.Health, damage float64) bool {
	if damage > 0 {
		health.Value -= damage
	}
	return health.Value <= 0
}

// WallAt возвращает индекс первой стены (в порядке добавления), пересекающей круг, или -1.
func WallAt(world *entity.World, x, y, r float64) int {
	for i, wall := range world.Walls {
		if geom.CircleIntersectsRect(x, y, r, wall.Rect) {
			return i
		}
	}
	return -1
}

// Blocked — пересекает ли круг хотя бы одну стену.
func Blocked(world *entity.World, x, y, r float64) bool {
	return WallAt(world, x, y, r) >= 0
}

// ExperienceForKill — опыт за убийство на волне wave: 10 + floor(log2(wave)) * 2.
func ExperienceForKill(wave int) int {
	if wave < 1 {
		wave = 1
	}
	return config.XPPerKillBase + int(math.Floor(math.Log2(float64(wave))))*2
}

// WaveFactor — множитель сложности волны: max(1, ln(wave+1)) * 0.5.
func WaveFactor(wave int) float64 {
	return math.Max(1, math.Log(float64(wave+1))) * 0.5
}
