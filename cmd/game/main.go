// cmd/game/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-arena-survivor/internal/app"
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/defs"
	"go-arena-survivor/internal/input"
	"go-arena-survivor/internal/score"
	"go-arena-survivor/internal/state"
	"go-arena-survivor/pkg/render"
)

type AppGame struct {
	stateMachine *state.StateMachine
	poller       input.Poller
	surface      *render.EbitenSurface
	showFPS      bool
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.poller.Poll())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.surface.SetTarget(screen)
	a.stateMachine.Draw(a.surface)
	if a.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), config.UIMargin, config.ScreenHeight-config.UIMargin)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		log.Fatal(err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	codec, err := score.CodecByName(settings.ScoreCodec)
	if err != nil {
		log.Fatal(err)
	}
	leaderboard := score.NewLeaderboard(score.NewFileStore(settings.ScorePath), codec)

	library, err := defs.LoadEnemyDefinitions(settings.EnemyDefsPath)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(leaderboard, app.Options{
		Seed:         settings.Seed,
		SpawnStagger: settings.SpawnStagger,
		Library:      library,
	})

	sm := state.NewStateMachine() // Создаём машину состояний
	gs := state.NewGameState(sm, game)
	sm.SetState(state.NewMenuState(sm, gs, settings.Nickname))

	a := &AppGame{
		stateMachine: sm,
		poller:       input.NewEbitenPoller(config.ScreenWidth, config.ScreenHeight),
		surface:      render.NewEbitenSurface(render.LoadFontFace(16)),
		showFPS:      settings.PprofAddr != "",
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
