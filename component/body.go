package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridgame/common"
)

// Body is a kinematic box: position is the top-left corner in world space,
// velocity is in units per second.
type Body struct {
	Position cp.Vector
	Velocity cp.Vector
	Size     cp.Vector
}

// Contact reports what the boundary pass did during Integrate.
type Contact struct {
	ClampedX bool
	ClampedY bool
	Grounded bool
}

// Integrate advances the body one tick inside the world rectangle.
//
// The steps run in a fixed order and later steps read values written by
// earlier ones: candidate position, boundary clamp, gravity, drift, friction.
// brake scales friction while the body rests on the floor.
func (b *Body) Integrate(dt float64, world WorldParams, brake float64) Contact {
	var contact Contact
	if b == nil {
		return contact
	}

	prevPos := b.Position
	prevVel := b.Velocity
	newPos := prevPos.Add(prevVel.Mult(dt))
	newVel := prevVel

	if newPos.X < 0 || newPos.X+b.Size.X > world.Size.X {
		newPos.X = common.ClampAxis(newPos.X, 0, world.Size.X-b.Size.X)
		newVel.X = 0
		contact.ClampedX = true
	}
	if newPos.Y < 0 || newPos.Y+b.Size.Y > world.Size.Y {
		newPos.Y = common.ClampAxis(newPos.Y, 0, world.Size.Y-b.Size.Y)
		newVel.Y = 0
		contact.ClampedY = true
	}

	contact.Grounded = !(newPos.Y+b.Size.Y < world.Size.Y)
	if !contact.Grounded {
		newVel.Y += world.Gravity * dt
	}

	// drift couples displacement back into velocity
	newVel = newVel.Add(newPos.Sub(prevPos).Mult(dt))

	multiplier := 1.0
	if contact.Grounded && brake > 0 {
		multiplier = brake
	}
	newVel = newVel.Sub(prevVel.Mult(world.Friction * dt * multiplier))

	b.Position = newPos
	b.Velocity = newVel
	return contact
}

// Center returns the middle of the box.
func (b *Body) Center() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.Position.Add(b.Size.Mult(0.5))
}
