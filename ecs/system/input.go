package system

import (
	"github.com/milk9111/gridgame/component"
	"github.com/milk9111/gridgame/ecs"
)

// InputSystem applies the frame's discrete edges, then sweeps the held set.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player := w.Player()
	if player == nil {
		return
	}
	frame := w.Frame()

	for _, edge := range frame.Edges {
		switch edge {
		case component.EdgeFireRelease:
			b, ok := player.ReleaseFire()
			if !ok {
				continue
			}
			e := w.SpawnBullet(b)
			w.Emit(ecs.EventFire, ecs.FireEvent{Bullet: e, Center: b.Center, Damage: b.Damage})
		case component.EdgeAimLockRelease:
			player.SetAiming(false)
		}
	}

	if player.ProcessInputs(frame.Held) {
		w.Emit(ecs.EventJump, ecs.JumpEvent{Count: player.JumpCounter})
	}
}
