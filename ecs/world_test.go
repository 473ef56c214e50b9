package ecs

import (
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridgame/component"
)

type recordSystem struct {
	name string
	log  *[]string
	dt   *float64
}

func (r recordSystem) Update(w *World) {
	*r.log = append(*r.log, r.name)
	if r.dt != nil {
		*r.dt = w.Frame().DT
	}
}

func TestWorldStepRunsSystemsInOrder(t *testing.T) {
	w := NewWorld(component.DefaultConfig())
	var got []string
	var dt float64
	w.AddSystem(recordSystem{name: "a", log: &got})
	w.AddSystem(nil)
	w.AddSystem(recordSystem{name: "b", log: &got, dt: &dt})

	w.Step(Frame{DT: -1})
	w.Step(Frame{DT: 0.5})

	if want := []string{"a", "b", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if w.Tick() != 2 || dt != 0.5 {
		t.Fatalf("tick=%d dt=%v", w.Tick(), dt)
	}

	w.Step(Frame{DT: -3})
	if dt != 0 {
		t.Fatalf("negative dt not clamped, got %v", dt)
	}
}

func TestWorldBulletLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		spawn        int
		despawnIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_despawn_middle", 3, 1},
		{"none_despawned", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(component.DefaultConfig())
			ents := make([]Entity, 0, c.spawn)
			for i := 0; i < c.spawn; i++ {
				ents = append(ents, w.SpawnBullet(component.Bullet{Center: cp.Vector{X: float64(i)}}))
			}
			if w.Bullets().Len() != c.spawn {
				t.Fatalf("expected %d bullets, got %d", c.spawn, w.Bullets().Len())
			}
			if c.despawnIndex >= 0 {
				e := ents[c.despawnIndex]
				if !w.DespawnBullet(e) {
					t.Fatalf("DespawnBullet should return true for live bullet")
				}
				if w.IsAlive(e) || w.Bullets().Has(e) {
					t.Fatalf("bullet should be gone after despawn")
				}
				if w.DespawnBullet(e) {
					t.Fatalf("second despawn should fail")
				}
				if w.Bullets().Len() != c.spawn-1 {
					t.Fatalf("expected %d bullets, got %d", c.spawn-1, w.Bullets().Len())
				}
			}
		})
	}
}

func TestWorldEvents(t *testing.T) {
	w := NewWorld(component.DefaultConfig())
	w.AddSystem(emitSystem{})

	w.Step(Frame{})
	w.Step(Frame{})
	evts := w.Events().Drain()
	if len(evts) != 1 {
		t.Fatalf("undrained events should be dropped each step, got %d", len(evts))
	}
	if evts[0].Tick != 2 || evts[0].Type != EventLand {
		t.Fatalf("event = %+v", evts[0])
	}
	if w.Events().Len() != 0 {
		t.Fatalf("drain left %d events", w.Events().Len())
	}
}

type emitSystem struct{}

func (emitSystem) Update(w *World) {
	w.Emit(EventLand, nil)
}

func TestWorldSetConfig(t *testing.T) {
	w := NewWorld(component.DefaultConfig())
	w.Player().Position = cp.Vector{X: 50, Y: 50}

	cfg := component.DefaultConfig()
	cfg.Player.Size = cp.Vector{X: 12, Y: 20}
	cfg.Camera.FollowSpeed = 0.5
	w.SetConfig(cfg)

	if w.Player().Size != cfg.Player.Size {
		t.Fatalf("player size = %v", w.Player().Size)
	}
	if w.Player().Position != (cp.Vector{X: 50, Y: 50}) {
		t.Fatalf("runtime state reset: %v", w.Player().Position)
	}
	if w.Config().Camera.FollowSpeed != 0.5 {
		t.Fatalf("config not swapped")
	}
}

func TestWorldSetConfigClampsCounters(t *testing.T) {
	w := NewWorld(component.DefaultConfig())
	p := w.Player()
	p.ChargingTime = 100
	p.JumpCounter = 2
	p.ShootTimer = 10

	cfg := component.DefaultConfig()
	cfg.Player.MaxCharge = 20
	cfg.Player.MaxJumps = 1
	cfg.Player.ShootCooldown = 0
	w.SetConfig(cfg)

	if p.ChargingTime != 20 || p.ChargeFraction() != 1 {
		t.Fatalf("charge=%d fraction=%v after lowering max charge", p.ChargingTime, p.ChargeFraction())
	}
	if p.JumpCounter != 1 {
		t.Fatalf("jump counter = %d, want 1", p.JumpCounter)
	}

	b, ok := p.ReleaseFire()
	if !ok {
		t.Fatalf("shot refused after cooldown was removed")
	}
	if b.HalfExtents.X > cfg.Player.BulletMaxSize || b.Damage > cfg.Player.DamagePerSize*cfg.Player.BulletMaxSize {
		t.Fatalf("bullet half=%v damage=%v exceeds max size", b.HalfExtents, b.Damage)
	}
}

func TestWorldSnapshot(t *testing.T) {
	w := NewWorld(component.DefaultConfig())
	e := w.SpawnBullet(component.Bullet{Center: cp.Vector{X: 40, Y: 30}, HalfExtents: cp.Vector{X: 2, Y: 2}})

	snap := w.Snapshot()
	if snap.World != (cp.Vector{X: 320, Y: 120}) {
		t.Fatalf("world = %v", snap.World)
	}
	if snap.Player.Position != (cp.Vector{X: 20, Y: 20}) || snap.Player.ArmSize != 5 {
		t.Fatalf("player view = %+v", snap.Player)
	}
	if len(snap.Bullets) != 1 || snap.Bullets[0].Entity != e {
		t.Fatalf("bullets = %+v", snap.Bullets)
	}

	// snapshot is a copy
	snap.Bullets[0].Center = cp.Vector{}
	if b, _ := w.Bullets().Get(e); b.Center != (cp.Vector{X: 40, Y: 30}) {
		t.Fatalf("snapshot aliases world state")
	}

	if got := snap.Camera.WorldToScreen(snap.Camera.ViewTopLeft()); got != (cp.Vector{}) {
		t.Fatalf("view origin maps to %v", got)
	}
}

func TestSnapshotCameraMatchesTracker(t *testing.T) {
	w := NewWorld(component.DefaultConfig())
	w.Camera().SnapTo(cp.Vector{X: 150, Y: 60})
	snap := w.Snapshot()

	p := cp.Vector{X: 130, Y: 40}
	if got, want := snap.Camera.WorldToScreen(p), w.Camera().WorldToScreen(p); got != want {
		t.Fatalf("snapshot maps %v to %v, tracker to %v", p, got, want)
	}
	if snap.Camera.ViewTopLeft() != w.Camera().ViewTopLeft() {
		t.Fatalf("view top-left differs")
	}

	// later camera moves do not leak into an older snapshot
	w.Camera().SnapTo(cp.Vector{X: 200, Y: 60})
	if snap.Camera.ViewTopLeft() != (cp.Vector{X: 70, Y: 0}) {
		t.Fatalf("snapshot followed the live camera: %v", snap.Camera.ViewTopLeft())
	}
}
