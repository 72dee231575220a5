package system

import (
	"time"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
)

// Stats — производные характеристики игрока. Никогда не хранятся, считаются при чтении.
type Stats struct {
	Speed       float64
	MaxHealth   float64
	ShotDelay   time.Duration
	Damage      float64
	BulletSpeed float64
	CritChance  float64
	Lifesteal   float64
}

// DeriveStats считает все характеристики из базы, уровней улучшений и бафов.
func DeriveStats(base component.PlayerBase, up component.Upgrades, buffs component.Buffs) Stats {
	return Stats{
		Speed:       MoveSpeed(base, up, buffs),
		MaxHealth:   MaxHealth(base, up),
		ShotDelay:   ShotDelay(base, up),
		Damage:      Damage(base, up),
		BulletSpeed: BulletSpeed(base, up),
		CritChance:  CritChance(up),
		Lifesteal:   Lifesteal(up),
	}
}

func MoveSpeed(base component.PlayerBase, up component.Upgrades, buffs component.Buffs) float64 {
	speed := base.Speed + float64(up.Level(defs.UpgradeSpeed))*config.SpeedPerLevel
	if buffs.IsActive(defs.BuffSpeedBoost) {
		speed += config.SpeedBoostBonus
	}
	return speed
}

func MaxHealth(base component.PlayerBase, up component.Upgrades) float64 {
	return base.MaxHealth + float64(up.Level(defs.UpgradeHealth))*config.HealthPerLevel
}

// ShotDelay не опускается ниже config.PlayerMinShotDelay.
func ShotDelay(base component.PlayerBase, up component.Upgrades) time.Duration {
	d := base.ShotDelay - time.Duration(up.Level(defs.UpgradeFireRate))*config.ShotDelayPerLevel
	if d < config.PlayerMinShotDelay {
		return config.PlayerMinShotDelay
	}
	return d
}

func Damage(base component.PlayerBase, up component.Upgrades) float64 {
	return base.Damage + float64(up.Level(defs.UpgradeDamage))*config.DamagePerLevel
}

func BulletSpeed(base component.PlayerBase, up component.Upgrades) float64 {
	return base.BulletSpeed + float64(up.Level(defs.UpgradeBulletSpeed))*config.BulletSpeedPerLevel
}

func CritChance(up component.Upgrades) float64 {
	return float64(up.Level(defs.UpgradeCritChance)) * config.CritChancePerLevel
}

func Lifesteal(up component.Upgrades) float64 {
	return float64(up.Level(defs.UpgradeLifesteal)) * config.LifestealPerLevel
}

// ShotDamage — урон одного снаряда игрока. Ярость перекрывает крит, а не умножается на него.
func ShotDamage(damage float64, crit, rage bool) float64 {
	switch {
	case rage:
		return damage * config.RageMultiplier
	case crit:
		return damage * config.CritMultiplier
	}
	return damage
}
