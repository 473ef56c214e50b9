package system

import "github.com/milk9111/gridgame/ecs"

// PlayerControllerSystem integrates the player body and ticks its cooldowns.
type PlayerControllerSystem struct {
	grounded bool
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player := w.Player()
	if player == nil {
		return
	}

	contact := player.Update(w.Frame().DT, w.Config().World)
	if contact.Grounded && !p.grounded {
		w.Emit(ecs.EventLand, ecs.LandEvent{Position: player.Position})
	}
	p.grounded = contact.Grounded
}
