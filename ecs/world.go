package ecs

import "github.com/milk9111/gridgame/component"

// Frame is everything the presentation layer hands the core for one tick.
type Frame struct {
	DT    float64
	Held  component.InputSet
	Edges []component.Edge
}

// World owns the player, the bullet pool, the camera and system order. Only
// Step mutates it; readers take a Snapshot after the tick.
type World struct {
	config   component.Config
	entities entityStore
	systems  *Scheduler
	events   EventQueue

	player  *component.Player
	camera  *component.Camera
	bullets SparseSet[component.Bullet]

	frame Frame
	tick  uint64
}

// NewWorld creates a world with a freshly spawned player.
func NewWorld(cfg component.Config) *World {
	return &World{
		config:  cfg,
		systems: NewScheduler(),
		player:  component.NewPlayer(cfg.Player),
		camera:  component.NewCamera(cfg.Camera, cfg.World.Size),
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.systems.Add(s)
}

// Systems returns the update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.systems.Systems()
}

// Step runs every system once with f. Events from the previous tick that were
// not drained are dropped.
func (w *World) Step(f Frame) {
	if w == nil {
		return
	}
	if f.DT < 0 {
		f.DT = 0
	}
	w.events.flush()
	w.tick++
	w.frame = f
	w.systems.Update(w)
}

// Frame returns the input of the tick in progress (or the last one).
func (w *World) Frame() Frame {
	if w == nil {
		return Frame{}
	}
	return w.frame
}

// Tick returns how many ticks have run.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Config returns the active tuning.
func (w *World) Config() component.Config {
	if w == nil {
		return component.Config{}
	}
	return w.config
}

// SetConfig swaps tuning between ticks. Runtime state is kept.
func (w *World) SetConfig(cfg component.Config) {
	if w == nil {
		return
	}
	w.config = cfg
	w.player.SetParams(cfg.Player)
	w.camera.SetParams(cfg.Camera, cfg.World.Size)
}

// Player returns the player.
func (w *World) Player() *component.Player {
	if w == nil {
		return nil
	}
	return w.player
}

// Camera returns the camera tracker.
func (w *World) Camera() *component.Camera {
	if w == nil {
		return nil
	}
	return w.camera
}

// Bullets returns the bullet storage.
func (w *World) Bullets() *SparseSet[component.Bullet] {
	if w == nil {
		return nil
	}
	return &w.bullets
}

// SpawnBullet allocates an entity for b.
func (w *World) SpawnBullet(b component.Bullet) Entity {
	if w == nil {
		return 0
	}
	e := w.entities.create()
	w.bullets.Set(e, b)
	return e
}

// DespawnBullet removes a bullet and frees its entity.
func (w *World) DespawnBullet(e Entity) bool {
	if w == nil || !w.bullets.Remove(e) {
		return false
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit pushes an event stamped with the current tick.
func (w *World) Emit(t EventType, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: t, Tick: w.tick, Data: data})
}
