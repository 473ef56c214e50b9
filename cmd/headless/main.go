package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/gridgame/ecs"
	"github.com/milk9111/gridgame/ecs/system"
	"github.com/milk9111/gridgame/prefabs"
)

func main() {
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	scriptName := flag.String("script", "demo", "input script under prefabs/scripts")
	every := flag.Int("every", 60, "log a snapshot every N ticks (0 disables)")
	quiet := flag.Bool("q", false, "do not log events")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	src, err := system.LoadScriptInput(ctx, *scriptName)
	if err != nil {
		log.Fatalf("load input script: %v", err)
	}

	world := system.NewSimulation(cfg)
	driver := system.NewDriver(world, src)

	for i := 0; i < *ticks; i++ {
		if err := driver.Tick(*dt); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Printf("interrupted at tick %d", world.Tick())
				break
			}
			log.Fatalf("tick: %v", err)
		}

		for _, evt := range world.Events().Drain() {
			if !*quiet {
				logEvent(evt)
			}
		}

		if *every > 0 && world.Tick()%uint64(*every) == 0 {
			logSnapshot(world.Snapshot())
		}
	}

	snap := world.Snapshot()
	logSnapshot(snap)
}

func logEvent(evt ecs.Event) {
	switch data := evt.Data.(type) {
	case ecs.JumpEvent:
		log.Printf("[%05d] jump count=%d", evt.Tick, data.Count)
	case ecs.LandEvent:
		log.Printf("[%05d] land at (%.1f, %.1f)", evt.Tick, data.Position.X, data.Position.Y)
	case ecs.FireEvent:
		log.Printf("[%05d] fire bullet=%s center=(%.1f, %.1f) damage=%.1f", evt.Tick, data.Bullet, data.Center.X, data.Center.Y, data.Damage)
	case ecs.CullEvent:
		log.Printf("[%05d] cull bullet=%s center=(%.1f, %.1f)", evt.Tick, data.Bullet, data.Center.X, data.Center.Y)
	default:
		log.Printf("[%05d] %s %+v", evt.Tick, evt.Type, evt.Data)
	}
}

func logSnapshot(snap ecs.Snapshot) {
	p := snap.Player
	log.Printf("[%05d] player pos=(%.2f, %.2f) vel=(%.2f, %.2f) charge=%.2f aiming=%t bullets=%d camera=(%.2f, %.2f)",
		snap.Tick, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.ChargeFraction, p.Aiming,
		len(snap.Bullets), snap.Camera.Target.X, snap.Camera.Target.Y)
}
