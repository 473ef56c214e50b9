package system

import "github.com/milk9111/gridgame/ecs"

// BulletSystem moves bullets and culls the ones that left the world.
type BulletSystem struct {
	culled []ecs.Entity
}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bullets := w.Bullets()
	if bullets.Len() == 0 {
		return
	}
	dt := w.Frame().DT
	size := w.Config().World.Size

	s.culled = s.culled[:0]
	vals := bullets.Values()
	for i, e := range bullets.Entities() {
		b := &vals[i]
		b.Advance(dt)
		if !b.InWorld(size) {
			s.culled = append(s.culled, e)
		}
	}

	for _, e := range s.culled {
		b, _ := bullets.Get(e)
		if w.DespawnBullet(e) {
			w.Emit(ecs.EventBulletCulled, ecs.CullEvent{Bullet: e, Center: b.Center})
		}
	}
}
