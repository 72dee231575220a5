// internal/system/wave.go
package system

import (
	"log"
	"math"
	"time"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/internal/event"
	"go-arena-survivor/internal/utils"
	"go-arena-survivor/pkg/geom"
)

// WaveSystem создаёт врагов и стены и переключает волны.
type WaveSystem struct {
	world           *entity.World
	library         defs.EnemyLibrary
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	stagger         int // кадров между появлениями врагов новой волны
}

func NewWaveSystem(world *entity.World, library defs.EnemyLibrary, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, stagger int) *WaveSystem {
	if stagger < 0 {
		stagger = 0
	}
	ws := &WaveSystem{
		world:           world,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		stagger:         stagger,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	return ws
}

// OnEvent считает убийства текущей волны. Взрыв exploder'а тоже засчитывается,
// иначе волну с ним нельзя было бы закончить.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		s.world.Wave.Kills++
	}
}

// StartRun расставляет стены и первых врагов нового забега.
func (s *WaveSystem) StartRun(now time.Time) {
	s.SpawnWalls()
	for i := 0; i < config.InitialEnemies; i++ {
		s.SpawnEnemy(now)
	}
}

// SpawnEnemy создаёт врага в случайной точке на краю арены.
func (s *WaveSystem) SpawnEnemy(now time.Time) *component.Enemy {
	w, h := s.world.Width, s.world.Height
	var x, y float64
	switch s.rng.Intn(4) {
	case 0:
		x, y = 0, s.rng.Float64()*h
	case 1:
		x, y = w, s.rng.Float64()*h
	case 2:
		x, y = s.rng.Float64()*w, 0
	default:
		x, y = s.rng.Float64()*w, h
	}

	def := s.library.Pick(s.rng.Float64())
	enemy := NewEnemy(def, s.world.Wave.Number, x, y, s.rng, now)
	s.world.AddEnemy(enemy)
	return enemy
}

// NewEnemy собирает врага по архетипу с учётом множителя волны.
func NewEnemy(def defs.EnemyDefinition, wave int, x, y float64, rng *utils.PRNGService, now time.Time) *component.Enemy {
	wf := WaveFactor(wave)
	health := (20 + math.Floor(wf*10)) * def.HealthFactor
	reload := def.ShotDelayMs + rng.Float64()*def.ShotJitterMs - math.Min(def.MaxReloadCutMs, wf*def.WaveReloadCutMs)

	return &component.Enemy{
		Position:    component.Position{X: x, Y: y},
		Radius:      def.Radius,
		Speed:       def.SpeedMin + rng.Float64()*def.SpeedJitter,
		Health:      component.Health{Value: health, Max: health},
		Damage:      10 + math.Floor(wf*2),
		Kind:        def.Kind,
		ShotDelay:   time.Duration(reload * float64(time.Millisecond)),
		LastShot:    now,
		Projectiles: def.Projectiles,
		Explodes:    def.Explodes,
		Color:       def.Color,
		BulletColor: def.BulletColor,
	}
}

// SpawnWalls заменяет все стены новым набором из 5–10 штук.
// Стена, закрывающая игрока, перегенерируется; после WallSpawnAttempts попыток пропускается.
func (s *WaveSystem) SpawnWalls() {
	s.world.ClearWalls()
	count := config.MinWalls + s.rng.Intn(config.MaxWalls-config.MinWalls+1)
	player := s.world.Player

	for i := 0; i < count; i++ {
		for attempt := 0; attempt < config.WallSpawnAttempts; attempt++ {
			rect := geom.Rect{
				X:      s.rng.Float64() * (s.world.Width - 200),
				Y:      s.rng.Float64() * (s.world.Height - 100),
				Width:  s.rng.Range(100, 100),
				Height: s.rng.Range(20, 30),
			}
			if geom.CircleIntersectsRect(player.X, player.Y, player.Radius*2, rect) {
				continue
			}
			s.world.AddWall(&component.Wall{
				Rect:   rect,
				Health: component.Health{Value: float64(3 + s.rng.Intn(5)), Max: config.WallMaxHealth},
			})
			break
		}
	}
}

// Schedule ставит count врагов в очередь появления, по одному каждые stagger кадров.
// Первый появляется в текущем кадре.
func (s *WaveSystem) Schedule(count int) {
	wave := s.world.Wave
	start := s.world.Frame
	if n := len(wave.PendingSpawns); n > 0 && wave.PendingSpawns[n-1] >= start {
		start = wave.PendingSpawns[n-1] + s.stagger
	}
	for i := 0; i < count; i++ {
		wave.PendingSpawns = append(wave.PendingSpawns, start+i*s.stagger)
	}
}

// DrainPending создаёт всех врагов, чей кадр наступил. Вызывается до обхода врагов.
func (s *WaveSystem) DrainPending(now time.Time) int {
	wave := s.world.Wave
	spawned := 0
	for len(wave.PendingSpawns) > 0 && wave.PendingSpawns[0] <= s.world.Frame {
		wave.PendingSpawns = wave.PendingSpawns[1:]
		s.SpawnEnemy(now)
		spawned++
	}
	if len(wave.PendingSpawns) == 0 {
		wave.PendingSpawns = nil
	}
	return spawned
}

// ShouldAdvance — врагов нет ни на арене, ни в очереди, и убийств не меньше номера волны.
func (s *WaveSystem) ShouldAdvance() bool {
	return s.world.LiveEnemies() == 0 && s.world.Wave.Kills >= s.world.Wave.Number
}

// TryAdvance переключает волну, если условие выполнено. Срабатывает не больше раза за вызов.
func (s *WaveSystem) TryAdvance() bool {
	if !s.ShouldAdvance() {
		return false
	}
	wave := s.world.Wave
	wave.Kills = 0
	wave.Number++

	count := min(config.MaxEnemiesPerWave, config.EnemiesPerWaveOffset+wave.Number)
	s.Schedule(count)
	if wave.Number%config.WallsEveryNWaves == 0 {
		s.SpawnWalls()
	}
	s.world.Shake.Magnitude = config.WaveShake

	log.Printf("Волна %d: %d врагов", wave.Number, count)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveAdvanced, Data: wave.Number})
	return true
}
