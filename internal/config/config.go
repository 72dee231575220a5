// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WindowTitle  = "Arena Survivor"

	FrameDuration = 16 * time.Millisecond // логический кадр для часов забега

	// Игрок
	PlayerRadius          = 20.0
	PlayerBaseSpeed       = 5.0
	PlayerBaseMaxHealth   = 200.0
	PlayerBaseShotDelay   = 200 * time.Millisecond
	PlayerMinShotDelay    = 50 * time.Millisecond
	PlayerBaseDamage      = 10.0
	PlayerBaseBulletSpeed = 10.0

	// Прирост за уровень улучшения
	SpeedPerLevel       = 0.5
	HealthPerLevel      = 20.0
	ShotDelayPerLevel   = 10 * time.Millisecond
	DamagePerLevel      = 2.0
	BulletSpeedPerLevel = 0.5
	CritChancePerLevel  = 0.01
	LifestealPerLevel   = 0.01

	SpeedBoostBonus    = 3.0
	CritMultiplier     = 1.5
	RageMultiplier     = 2.0
	TripleShotSpread   = 0.3
	DiagonalFactor     = 0.7071
	BulletRadius       = 5.0
	CritBulletRadius   = 7.0
	EnemyBulletSpeed   = 6.0
	EnemyBulletRadius  = 5.0
	SpreadShotAngle    = 0.3
	JoystickMaxRadius  = 40.0
	JoystickDivisor    = 8.0
	ExplosionRadius    = 100.0
	ExplosionDamageMul = 2.0

	// Опыт
	StartXPToNextLevel = 100
	XPPerKillBase      = 10
	XPPickupAmount     = 25
	HealthPickupAmount = 20.0

	// Волны
	InitialEnemies       = 2
	MaxEnemiesPerWave    = 30
	EnemiesPerWaveOffset = 2
	WallsEveryNWaves     = 3
	SpawnStaggerFrames   = 30 // ~500 мс между появлениями врагов новой волны
	MinWalls             = 5
	MaxWalls             = 10
	WallMaxHealth        = 10
	WallSpawnAttempts    = 20

	// Выпадение бонусов
	PickupDropChance = 0.2
	PickupRadius     = 10.0

	// Частицы и тряска камеры
	DefaultBurstSize   = 20
	ExplosionBurstSize = 30
	ParticleMaxLife    = 60.0
	MaxShake           = 10.0
	WaveShake          = 5.0
	ShakeDecay         = 0.9
	ShakeCutoff        = 0.1

	// Таблица рекордов
	LeaderboardKey     = "globalLeaderboard"
	NicknameKey        = "playerNickname"
	LeaderboardEntries = 10
	DefaultNickname    = "Player"
	MaxNicknameLength  = 16

	// UI
	UIMargin        = 20
	UILineHeight    = 30
	HealthBarWidth  = 200
	HealthBarHeight = 20
	EnemyBarWidth   = 40
	BarHeight       = 5
	FireButtonSize  = 80
	JoystickBaseR   = 50
	PauseButtonSize = 16
	MenuButtonW     = 320
	MenuButtonH     = 40
	MenuButtonGap   = 10
)

// Длительности бафов
const (
	ShieldDuration     = 10 * time.Second
	TripleShotDuration = 8 * time.Second
	SpeedBoostDuration = 7 * time.Second
	RageDuration       = 5 * time.Second
)

var (
	BackgroundColor = color.RGBA{15, 15, 25, 255}
	PlayerColor     = color.RGBA{255, 255, 255, 255}
	WallColor       = color.RGBA{68, 68, 68, 255}
	BarBackColor    = color.RGBA{255, 0, 0, 255}
	BarFillColor    = color.RGBA{0, 255, 0, 255}
	BulletColor     = color.RGBA{255, 0, 0, 255}
	CritBulletColor = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 178}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	JoystickColor   = color.RGBA{255, 255, 255, 60}
	FireButtonColor = color.RGBA{220, 60, 60, 160}
)
