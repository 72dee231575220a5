// internal/defs/loot_tables.go
package defs

import "image/color"

// LootEntry — одна запись таблицы выпадения бонусов.
// Threshold — накопительный порог: бонус выбирается, если бросок меньше порога.
type LootEntry struct {
	Kind      PickupKind
	Threshold float64
	Color     color.RGBA
}

// PickupTable — 70% здоровье, 10% опыт, по 5% на каждый баф.
var PickupTable = []LootEntry{
	{Kind: PickupHealth, Threshold: 0.70, Color: color.RGBA{255, 192, 203, 255}},
	{Kind: PickupXP, Threshold: 0.80, Color: color.RGBA{255, 255, 0, 255}},
	{Kind: PickupShield, Threshold: 0.85, Color: color.RGBA{0, 255, 255, 255}},
	{Kind: PickupTripleShot, Threshold: 0.90, Color: color.RGBA{255, 0, 255, 255}},
	{Kind: PickupSpeedBoost, Threshold: 0.95, Color: color.RGBA{0, 255, 0, 255}},
	{Kind: PickupRage, Threshold: 1.00, Color: color.RGBA{255, 0, 0, 255}},
}

// PickLoot выбирает запись по одному броску roll ∈ [0, 1).
func PickLoot(table []LootEntry, roll float64) LootEntry {
	for _, entry := range table {
		if roll < entry.Threshold {
			return entry
		}
	}
	return table[len(table)-1]
}
