package system

import (
	"fmt"

	"github.com/milk9111/gridgame/component"
	"github.com/milk9111/gridgame/ecs"
)

// Install registers the tick systems in their fixed order: input, player,
// bullets, camera. Later systems see state already advanced by earlier ones.
func Install(w *ecs.World) {
	if w == nil {
		return
	}
	w.AddSystem(NewInputSystem())
	w.AddSystem(NewPlayerControllerSystem())
	w.AddSystem(NewBulletSystem())
	w.AddSystem(NewCameraSystem())
}

// NewSimulation builds a world with the tick systems installed.
func NewSimulation(cfg component.Config) *ecs.World {
	w := ecs.NewWorld(cfg)
	Install(w)
	return w
}

// InputSource produces the held set and edges for the next tick.
type InputSource interface {
	Poll(tick uint64) (component.InputSet, []component.Edge, error)
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func(tick uint64) (component.InputSet, []component.Edge, error)

func (f InputSourceFunc) Poll(tick uint64) (component.InputSet, []component.Edge, error) {
	return f(tick)
}

// Driver polls an input source and steps the world once per call to Tick.
type Driver struct {
	World  *ecs.World
	Source InputSource
}

func NewDriver(w *ecs.World, src InputSource) *Driver {
	return &Driver{World: w, Source: src}
}

// Tick runs one simulation step with dt seconds of elapsed time.
func (d *Driver) Tick(dt float64) error {
	if d == nil || d.World == nil {
		return fmt.Errorf("driver: world is nil")
	}
	var (
		held  component.InputSet
		edges []component.Edge
	)
	if d.Source != nil {
		var err error
		held, edges, err = d.Source.Poll(d.World.Tick() + 1)
		if err != nil {
			return fmt.Errorf("driver: poll tick %d: %w", d.World.Tick()+1, err)
		}
	}
	d.World.Step(ecs.Frame{DT: dt, Held: held, Edges: edges})
	return nil
}
