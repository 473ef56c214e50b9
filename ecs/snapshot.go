package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridgame/component"
)

// PlayerView is the read-only player state a renderer needs.
type PlayerView struct {
	Position       cp.Vector
	Velocity       cp.Vector
	Size           cp.Vector
	ArmPosition    cp.Vector
	ArmSize        float64
	ArmDirection   cp.Vector
	Facing         cp.Vector
	ChargeFraction float64
	Aiming         bool
}

// BulletView is one bullet box.
type BulletView struct {
	Entity      Entity
	Center      cp.Vector
	HalfExtents cp.Vector
}

// CameraView is what the renderer needs to map world to screen. It holds a
// copy of the tracker taken after the tick.
type CameraView struct {
	Target     cp.Vector
	Resolution cp.Vector
	Scale      cp.Vector

	cam component.Camera
}

// Snapshot is a copy of the world state after a tick.
type Snapshot struct {
	Tick    uint64
	World   cp.Vector
	Player  PlayerView
	Bullets []BulletView
	Camera  CameraView
}

// Snapshot copies the state readers are allowed to see.
func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}
	p := w.player
	snap := Snapshot{
		Tick:  w.tick,
		World: w.config.World.Size,
		Player: PlayerView{
			Position:       p.Position,
			Velocity:       p.Velocity,
			Size:           p.Size,
			ArmPosition:    p.ArmPosition(),
			ArmSize:        p.Params().ArmSize,
			ArmDirection:   p.ArmDirection,
			Facing:         p.FacingDirection,
			ChargeFraction: p.ChargeFraction(),
			Aiming:         p.IsAiming,
		},
		Camera: CameraView{
			Target:     w.camera.Target,
			Resolution: w.camera.Resolution(),
			Scale:      w.camera.Scale(),
			cam:        *w.camera,
		},
	}
	ents := w.bullets.Entities()
	vals := w.bullets.Values()
	snap.Bullets = make([]BulletView, len(ents))
	for i, e := range ents {
		snap.Bullets[i] = BulletView{Entity: e, Center: vals[i].Center, HalfExtents: vals[i].HalfExtents}
	}
	return snap
}

// ViewTopLeft returns the world-space top-left of the view.
func (c CameraView) ViewTopLeft() cp.Vector {
	return c.cam.ViewTopLeft()
}

// WorldToScreen maps a world point to window pixels.
func (c CameraView) WorldToScreen(p cp.Vector) cp.Vector {
	return c.cam.WorldToScreen(p)
}
