package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridgame/ecs/system"
	"github.com/milk9111/gridgame/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scriptName := flag.String("script", "", "drive the player from prefabs/scripts/<name>.tengo instead of the keyboard")
	flag.Parse()

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	var src system.InputSource = NewKeyboard()
	if *scriptName != "" {
		script, err := system.LoadScriptInput(context.Background(), *scriptName)
		if err != nil {
			log.Fatalf("load input script: %v", err)
		}
		src = script
	}

	ebiten.SetWindowSize(cfg.Camera.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowTitle("Grid-Game")

	game := NewGame(cfg, src, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
