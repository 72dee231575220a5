// internal/defs/types.go
package defs

import "fmt"

// EnemyKind — архетип врага.
type EnemyKind string

const (
	EnemyNormal   EnemyKind = "normal"
	EnemyTank     EnemyKind = "tank"
	EnemyFast     EnemyKind = "fast"
	EnemySpread   EnemyKind = "spread"
	EnemyExploder EnemyKind = "exploder"
)

// Known — один из пяти поддерживаемых архетипов.
func (k EnemyKind) Known() bool {
	switch k {
	case EnemyNormal, EnemyTank, EnemyFast, EnemySpread, EnemyExploder:
		return true
	}
	return false
}

// PickupKind — тип бонуса, выпадающего из врагов.
type PickupKind string

const (
	PickupHealth     PickupKind = "health"
	PickupXP         PickupKind = "xp"
	PickupShield     PickupKind = "shield"
	PickupTripleShot PickupKind = "triple_shot"
	PickupSpeedBoost PickupKind = "speed_boost"
	PickupRage       PickupKind = "rage"
)

// BuffKind — временный эффект на игроке.
type BuffKind string

const (
	BuffShield     BuffKind = "shield"
	BuffTripleShot BuffKind = "triple_shot"
	BuffSpeedBoost BuffKind = "speed_boost"
	BuffRage       BuffKind = "rage"
)

// AllBuffs задаёт порядок отображения бафов.
var AllBuffs = []BuffKind{BuffShield, BuffTripleShot, BuffSpeedBoost, BuffRage}

// Buff возвращает баф, который включает бонус, если он есть.
func (k PickupKind) Buff() (BuffKind, bool) {
	switch k {
	case PickupShield:
		return BuffShield, true
	case PickupTripleShot:
		return BuffTripleShot, true
	case PickupSpeedBoost:
		return BuffSpeedBoost, true
	case PickupRage:
		return BuffRage, true
	}
	return "", false
}

// Label — подпись бафа для HUD.
func (k BuffKind) Label() string {
	switch k {
	case BuffShield:
		return "Shield"
	case BuffTripleShot:
		return "Triple Shot"
	case BuffSpeedBoost:
		return "Speed Boost"
	case BuffRage:
		return "Rage"
	}
	return string(k)
}

// UpgradeKind — характеристика, которую можно улучшить при повышении уровня.
type UpgradeKind string

const (
	UpgradeSpeed       UpgradeKind = "speed"
	UpgradeHealth      UpgradeKind = "health"
	UpgradeDamage      UpgradeKind = "damage"
	UpgradeFireRate    UpgradeKind = "fire_rate"
	UpgradeBulletSpeed UpgradeKind = "bullet_speed"
	UpgradeCritChance  UpgradeKind = "crit_chance"
	UpgradeLifesteal   UpgradeKind = "lifesteal"
)

// AllUpgrades — порядок кнопок в меню повышения уровня (клавиши 1–7).
var AllUpgrades = []UpgradeKind{
	UpgradeSpeed,
	UpgradeHealth,
	UpgradeDamage,
	UpgradeFireRate,
	UpgradeBulletSpeed,
	UpgradeCritChance,
	UpgradeLifesteal,
}

// ParseUpgradeKind проверяет, что s — известное улучшение.
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	for _, k := range AllUpgrades {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown upgrade kind %q", s)
}

// Label — подпись кнопки улучшения.
func (k UpgradeKind) Label() string {
	switch k {
	case UpgradeSpeed:
		return "Speed +0.5"
	case UpgradeHealth:
		return "Max Health +20"
	case UpgradeDamage:
		return "Damage +2"
	case UpgradeFireRate:
		return "Fire Rate +10ms"
	case UpgradeBulletSpeed:
		return "Bullet Speed +0.5"
	case UpgradeCritChance:
		return "Crit Chance +1%"
	case UpgradeLifesteal:
		return "Lifesteal +1%"
	}
	return string(k)
}
