package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridgame/common"
)

// Camera smooths a look-at point toward the player and keeps the viewport
// inside the world.
type Camera struct {
	Target cp.Vector

	params CameraParams
	world  cp.Vector
}

// NewCamera creates a camera for a world of the given size.
func NewCamera(params CameraParams, world cp.Vector) *Camera {
	return &Camera{params: params, world: world}
}

// SetParams swaps viewport tuning and world size.
func (c *Camera) SetParams(params CameraParams, world cp.Vector) {
	if c == nil {
		return
	}
	c.params = params
	c.world = world
}

// Update blends the target toward pos by a fixed per-tick factor, then clamps.
func (c *Camera) Update(pos cp.Vector) {
	if c == nil {
		return
	}
	c.Target = c.Target.Add(pos.Sub(c.Target).Mult(c.params.FollowSpeed))
	c.clamp()
}

// SnapTo places the target without smoothing.
func (c *Camera) SnapTo(pos cp.Vector) {
	if c == nil {
		return
	}
	c.Target = pos
	c.clamp()
}

func (c *Camera) clamp() {
	half := c.params.Resolution.Mult(0.5)
	c.Target.X = common.ClampAxis(c.Target.X, half.X, math.Max(c.world.X, c.params.Resolution.X)-half.X)
	c.Target.Y = common.ClampAxis(c.Target.Y, half.Y, math.Max(c.world.Y, c.params.Resolution.Y)-half.Y)
}

// Resolution is the world-space size of the viewport.
func (c *Camera) Resolution() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.params.Resolution
}

// Scale maps viewport units to window pixels per axis.
func (c *Camera) Scale() cp.Vector {
	if c == nil || c.params.Resolution.X == 0 || c.params.Resolution.Y == 0 {
		return cp.Vector{X: 1, Y: 1}
	}
	return cp.Vector{
		X: c.params.Window.X / c.params.Resolution.X,
		Y: c.params.Window.Y / c.params.Resolution.Y,
	}
}

// ViewTopLeft returns the world-space top-left of the view.
func (c *Camera) ViewTopLeft() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.Target.Sub(c.params.Resolution.Mult(0.5))
}

// WorldToScreen maps a world point to window pixels.
func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	if c == nil {
		return p
	}
	rel := p.Sub(c.ViewTopLeft())
	scale := c.Scale()
	return cp.Vector{X: rel.X * scale.X, Y: rel.Y * scale.Y}
}
