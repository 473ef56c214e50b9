package system

import "github.com/milk9111/gridgame/ecs"

// CameraSystem follows the player's position after it moved this tick.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player := w.Player()
	cam := w.Camera()
	if player == nil || cam == nil {
		return
	}
	cam.Update(player.Position)
}
