// internal/app/game.go
package app

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-arena-survivor/internal/component"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/entity"
	"go-arena-survivor/internal/event"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/internal/system"
	"go-arena-survivor/internal/utils"
	"go-arena-survivor/pkg/render"
)

// Options — параметры симуляции, приходящие из настроек.
type Options struct {
	Seed         int64
	SpawnStagger int
	Library      defs.EnemyLibrary
	Clock        func() time.Time // по умолчанию time.Now
}

// Game holds the main game state and logic.
type Game struct {
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	ProgressionSystem  *system.ProgressionSystem
	StatusEffectSystem *system.StatusEffectSystem
	VisualEffectSystem *system.VisualEffectSystem
	PickupSystem       *system.PickupSystem
	RenderSystem       *system.RenderSystem
	StateSystem        *system.StateSystem
	Leaderboard        *score.Leaderboard

	clock      func() time.Time
	fxRng      *utils.PRNGService // тряска в Draw, не сбивает генератор симуляции
	nickname   string
	runID      string
	lastRecord *score.Record
}

// NewGame initializes a new game instance. leaderboard может быть nil — тогда рекорды не сохраняются.
func NewGame(leaderboard *score.Leaderboard, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Library == nil {
		opts.Library = defs.DefaultEnemyLibrary()
	}

	world := entity.NewWorld(config.ScreenWidth, config.ScreenHeight)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Leaderboard:     leaderboard,
		clock:           opts.Clock,
		fxRng:           utils.NewPRNGService(rng.Seed() + 1),
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, rng)
	g.MovementSystem = system.NewMovementSystem(world)
	g.CombatSystem = system.NewCombatSystem(world, rng, eventDispatcher, g.VisualEffectSystem)
	g.ProjectileSystem = system.NewProjectileSystem(world, rng, eventDispatcher, g.CombatSystem, g.VisualEffectSystem)
	g.ProgressionSystem = system.NewProgressionSystem(world)
	g.StatusEffectSystem = system.NewStatusEffectSystem(world)
	g.PickupSystem = system.NewPickupSystem(world, g.CombatSystem, g.ProgressionSystem, g.StatusEffectSystem, g.VisualEffectSystem)
	g.WaveSystem = system.NewWaveSystem(world, opts.Library, rng, eventDispatcher, opts.SpawnStagger)
	g.RenderSystem = system.NewRenderSystem(world)
	g.StateSystem = system.NewStateSystem()

	eventDispatcher.Subscribe(event.EnemyKilled, g.ProgressionSystem)

	log.Printf("Симуляция готова, seed=%d", rng.Seed())
	return g
}

// NormalizeNickname обрезает пробелы и длину; пустой ник заменяется на "Player".
func NormalizeNickname(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return config.DefaultNickname
	}
	if r := []rune(name); len(r) > config.MaxNicknameLength {
		name = string(r[:config.MaxNicknameLength])
	}
	return name
}

// StartRun начинает забег. Разрешено только из Idle.
func (g *Game) StartRun(nickname string) error {
	if err := g.StateSystem.Switch(component.PhaseRunning); err != nil {
		return err
	}
	g.nickname = NormalizeNickname(nickname)
	g.runID = uuid.NewString()
	g.lastRecord = nil

	if g.Leaderboard != nil {
		if err := g.Leaderboard.SaveNickname(g.nickname); err != nil {
			log.Printf("[%s] %v", g.runID, err)
		}
	}

	g.World.Reset()
	g.WaveSystem.StartRun(g.clock())

	log.Printf("[%s] Забег начат: %s", g.runID, g.nickname)
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunStarted, Data: g.nickname})
	return nil
}

// Restart сбрасывает всё состояние и возвращает в Idle.
func (g *Game) Restart() {
	g.World.Reset()
	_ = g.StateSystem.Switch(component.PhaseIdle)
	g.runID = ""
	log.Println("Перезапуск: возврат в меню")
}

// TogglePause переключает Running и Paused. В остальных фазах ничего не делает.
func (g *Game) TogglePause() bool {
	switch g.StateSystem.Current() {
	case component.PhaseRunning:
		_ = g.StateSystem.Switch(component.PhasePaused)
		g.EventDispatcher.Dispatch(event.Event{Type: event.Paused})
		return true
	case component.PhasePaused:
		_ = g.StateSystem.Switch(component.PhaseRunning)
		g.EventDispatcher.Dispatch(event.Event{Type: event.Resumed})
		return true
	}
	return false
}

// ChooseUpgrade применяет выбор игрока. Пока остаются отложенные выборы, фаза остаётся LevelUp
// и снова рассылается событие LevelUp.
func (g *Game) ChooseUpgrade(kind defs.UpgradeKind) error {
	if g.StateSystem.Current() != component.PhaseLevelUp {
		return system.ErrNoPendingLevelUp
	}
	remaining, err := g.ProgressionSystem.ChooseUpgrade(kind)
	if err != nil {
		return err
	}
	log.Printf("[%s] Улучшение %s (осталось выборов: %d)", g.runID, kind, remaining)
	if remaining > 0 {
		g.dispatchLevelUp()
		return nil
	}
	if err := g.StateSystem.Switch(component.PhaseRunning); err != nil {
		return err
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.Resumed})
	return nil
}

// Update — один логический кадр. Вне Running шаг симуляции пропускается.
func (g *Game) Update(in input.Snapshot) {
	if in.PauseToggle {
		g.TogglePause()
	}
	if !g.StateSystem.Running() {
		return
	}
	g.step(in)
}

func (g *Game) step(in input.Snapshot) {
	now := g.clock()
	w := g.World
	w.Frame++
	w.Elapsed += config.FrameDuration

	// 1. игрок
	stats := g.CombatSystem.Stats()
	var dx, dy float64
	if in.Touch && in.JoystickActive {
		dx, dy = system.JoystickDelta(in.JoystickX, in.JoystickY)
	} else {
		dx, dy = system.KeyboardDelta(in.Up, in.Down, in.Left, in.Right, stats.Speed)
	}
	g.MovementSystem.MovePlayer(dx, dy)
	aim := g.aim(in)
	if in.Fire {
		g.CombatSystem.PlayerShoot(aim, now)
	}

	// 2. враги
	g.WaveSystem.DrainPending(now)
	g.MovementSystem.MoveEnemies()
	g.CombatSystem.EnemyAttacks(now)

	// 3–6
	g.ProjectileSystem.Update()
	g.VisualEffectSystem.Update()
	g.PickupSystem.Update(now)
	g.StatusEffectSystem.Update(now)

	// 7. волна
	g.WaveSystem.TryAdvance()

	// 8. финал
	g.CombatSystem.ClampPlayerHealth()
	if !w.Player.Alive {
		g.gameOver()
		return
	}
	if w.Progress.PendingLevelUps > 0 {
		_ = g.StateSystem.Switch(component.PhaseLevelUp)
		g.dispatchLevelUp()
	}
}

// aim — угол прицела. На тач-экране целимся в первого врага или в случайную сторону.
func (g *Game) aim(in input.Snapshot) float64 {
	p := g.World.Player
	if !in.Touch {
		p.Aim = utils.AngleTo(p.X, p.Y, in.PointerX, in.PointerY)
		return p.Aim
	}
	if len(g.World.Enemies) > 0 {
		e := g.World.Enemies[0]
		p.Aim = utils.AngleTo(p.X, p.Y, e.X, e.Y)
		return p.Aim
	}
	return g.Rng.Angle()
}

func (g *Game) dispatchLevelUp() {
	level := g.World.Progress.Level - g.World.Progress.PendingLevelUps + 1
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: level})
}

// gameOver фиксирует результат. Фаза GameOver достигается один раз за забег,
// поэтому рекорд сохраняется ровно один раз.
func (g *Game) gameOver() {
	if err := g.StateSystem.Switch(component.PhaseGameOver); err != nil {
		log.Printf("[%s] %v", g.runID, err)
		return
	}
	w := g.World
	record := score.Record{
		RunID:    g.runID,
		Nickname: g.nickname,
		Wave:     w.Wave.Number,
		Time:     w.Elapsed.Seconds(),
		Level:    w.Progress.Level,
		Date:     g.clock(),
	}
	g.lastRecord = &record

	if g.Leaderboard != nil {
		if _, err := g.Leaderboard.AddScore(record); err != nil {
			log.Printf("[%s] Рекорд не сохранён: %v", g.runID, err)
		} else {
			log.Printf("[%s] Рекорд сохранён: волна %d, %.1f с", g.runID, record.Wave, record.Time)
		}
	}
	log.Printf("[%s] Игра окончена: волна %d, уровень %d", g.runID, record.Wave, record.Level)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: record})
}

// Draw рисует арену с тряской камеры.
func (g *Game) Draw(screen render.Surface) {
	ox, oy := system.ShakeOffset(g.fxRng, g.World.Shake.Magnitude)
	g.RenderSystem.Draw(screen, ox, oy)
}

// --- Public Accessors ---

func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

func (g *Game) Nickname() string {
	return g.nickname
}

func (g *Game) RunID() string {
	return g.runID
}

// LastRecord — результат последнего завершённого забега или nil.
func (g *Game) LastRecord() *score.Record {
	return g.lastRecord
}

// Stats — текущие производные характеристики игрока.
func (g *Game) Stats() system.Stats {
	return g.CombatSystem.Stats()
}

// BuffRemaining — сколько осталось до конца бафа по часам игры.
func (g *Game) BuffRemaining(kind defs.BuffKind) time.Duration {
	return g.StatusEffectSystem.Remaining(kind, g.clock())
}

// Now — текущее время по часам игры.
func (g *Game) Now() time.Time {
	return g.clock()
}
