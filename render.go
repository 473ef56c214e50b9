package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridgame/common"
	"github.com/milk9111/gridgame/ecs"
)

const bgTileSize = 20.0

var (
	clearColor  = color.RGBA{R: 26, G: 51, B: 77, A: 255}
	playerColor = color.RGBA{A: 255}
	armColor    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	bulletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	chargeColor = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

func drawWorld(screen *ebiten.Image, snap ecs.Snapshot) {
	screen.Fill(clearColor)
	cam := snap.Camera

	cols := int(math.Ceil(snap.World.X / bgTileSize))
	rows := int(math.Ceil(snap.World.Y / bgTileSize))
	for tx := 0; tx < cols; tx++ {
		for ty := 0; ty < rows; ty++ {
			px := float64(tx) * bgTileSize
			py := float64(ty) * bgTileSize
			c := color.RGBA{
				R: common.InterpolateU8(0, 255, px/snap.World.X),
				G: common.InterpolateU8(0, 255, (snap.World.Y-py)/snap.World.Y),
				B: 255,
				A: 255,
			}
			fillWorldRect(screen, cam, cp.Vector{X: px, Y: py}, cp.Vector{X: bgTileSize, Y: bgTileSize}, c)
		}
	}

	p := snap.Player
	fillWorldRect(screen, cam, p.Position, p.Size, playerColor)
	fillWorldRect(screen, cam, p.ArmPosition, cp.Vector{X: p.ArmSize, Y: p.ArmSize}, armColor)

	for _, b := range snap.Bullets {
		fillWorldRect(screen, cam, b.Center.Sub(b.HalfExtents), b.HalfExtents.Mult(2), bulletColor)
	}

	if p.ChargeFraction > 0 {
		w := float32(screen.Bounds().Dx()) * float32(p.ChargeFraction)
		vector.FillRect(screen, 0, float32(screen.Bounds().Dy())-6, w, 6, chargeColor, false)
	}
}

func fillWorldRect(screen *ebiten.Image, cam ecs.CameraView, pos, size cp.Vector, c color.Color) {
	tl := cam.WorldToScreen(pos)
	vector.FillRect(screen, float32(tl.X), float32(tl.Y), float32(size.X*cam.Scale.X), float32(size.Y*cam.Scale.Y), c, false)
}

var (
	debugBoundsColor = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	debugAimColor    = color.RGBA{R: 0, G: 255, B: 0, A: 200}
)

// drawDebugBounds outlines every simulated box and the aim ray.
func drawDebugBounds(screen *ebiten.Image, snap ecs.Snapshot) {
	cam := snap.Camera
	p := snap.Player
	strokeWorldBB(screen, cam, cp.BB{L: p.Position.X, B: p.Position.Y, R: p.Position.X + p.Size.X, T: p.Position.Y + p.Size.Y})
	for _, b := range snap.Bullets {
		strokeWorldBB(screen, cam, cp.NewBBForExtents(b.Center, b.HalfExtents.X, b.HalfExtents.Y))
	}

	center := p.Position.Add(p.Size.Mult(0.5))
	from := cam.WorldToScreen(center)
	to := cam.WorldToScreen(center.Add(p.ArmDirection.Mult(p.Size.Y)))
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, debugAimColor, true)
}

func strokeWorldBB(screen *ebiten.Image, cam ecs.CameraView, bb cp.BB) {
	tl := cam.WorldToScreen(cp.Vector{X: bb.L, Y: bb.B})
	w := (bb.R - bb.L) * cam.Scale.X
	h := (bb.T - bb.B) * cam.Scale.Y
	vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(w), float32(h), 1, debugBoundsColor, false)
}
