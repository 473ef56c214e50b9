package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridgame/component"
	"github.com/milk9111/gridgame/ecs"
	"github.com/milk9111/gridgame/ecs/system"
	"github.com/milk9111/gridgame/prefabs"
)

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	world   *ecs.World
	driver  *system.Driver
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	last      time.Time
	lastEvent string
}

func NewGame(cfg component.Config, src system.InputSource, debug bool) *Game {
	world := system.NewSimulation(cfg)
	g := &Game{
		debug:  debug,
		world:  world,
		driver: system.NewDriver(world, src),
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close prefab watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		g.last = time.Time{}
		return nil
	}

	g.reloadPrefabs()

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if err := g.driver.Tick(dt); err != nil {
		return err
	}

	for _, evt := range g.world.Events().Drain() {
		g.lastEvent = fmt.Sprintf("%s @%d", evt.Type, evt.Tick)
		if g.debug {
			log.Printf("tick %d: %s %+v", evt.Tick, evt.Type, evt.Data)
		}
	}
	return nil
}

// restart respawns everything with the active tuning and resumes play.
func (g *Game) restart() {
	g.world = system.NewSimulation(g.world.Config())
	g.driver.World = g.world
	g.paused = false
	g.last = time.Time{}
	g.lastEvent = ""
	log.Printf("restarted")
}

// reloadPrefabs applies edited tuning between ticks. Invalid edits are logged
// and the running config is kept.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	reloadConfig := false
	for _, name := range changed {
		if filepath.Ext(name) == ".tengo" {
			g.reloadScript(name)
			continue
		}
		reloadConfig = true
	}
	if !reloadConfig {
		return
	}

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Printf("prefab reload failed: %v", err)
		return
	}
	g.world.SetConfig(cfg)
	ebiten.SetWindowSize(cfg.Camera.WindowSize())
	g.pauseUI = NewPauseUI(g)
	log.Printf("prefabs reloaded")
}

func (g *Game) reloadScript(path string) {
	script, ok := g.driver.Source.(*system.ScriptInput)
	if !ok {
		return
	}
	if strings.TrimSuffix(filepath.Base(script.Name()), ".tengo")+".tengo" != filepath.Base(path) {
		return
	}
	if err := script.Reload(); err != nil {
		log.Printf("script reload failed: %v", err)
		return
	}
	log.Printf("script reloaded: %s", filepath.Base(path))
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.world.Snapshot()
	drawWorld(screen, snap)

	if g.debug {
		drawDebugBounds(screen, snap)
		p := snap.Player
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()), 0, 0)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pos: (%.1f, %.1f) vel: (%.1f, %.1f) aiming: %t", p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.Aiming), 0, 16)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("bullets: %d  last event: %s", len(snap.Bullets), g.lastEvent), 0, 32)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Config().Camera.WindowSize()
}
