package system

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/gridgame/component"
)

const testInputScript = `
inputs := func(tick) {
	if tick == 2 {
		return {held: ["jump", "move_left"], edges: ["fire_release"]}
	}
	if tick % 2 == 1 {
		return {held: ["charge_fire"], edges: []}
	}
	return {held: [], edges: []}
}
`

func TestScriptInputPoll(t *testing.T) {
	src, err := NewScriptInput(context.Background(), "test", []byte(testInputScript))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name      string
		tick      uint64
		wantHeld  component.InputSet
		wantEdges int
	}{
		{"odd", 1, component.NewInputSet(component.InputChargeFire), 0},
		{"jump_and_fire", 2, component.NewInputSet(component.InputJump, component.InputMoveLeft), 1},
		{"odd_again", 3, component.NewInputSet(component.InputChargeFire), 0},
		{"idle", 4, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			held, edges, err := src.Poll(tc.tick)
			if err != nil {
				t.Fatalf("poll: %v", err)
			}
			if held != tc.wantHeld {
				t.Fatalf("held = %s, want %s", held, tc.wantHeld)
			}
			if len(edges) != tc.wantEdges {
				t.Fatalf("edges = %v", edges)
			}
			if tc.wantEdges > 0 && edges[0] != component.EdgeFireRelease {
				t.Fatalf("edge = %v", edges[0])
			}
		})
	}
}

func TestScriptInputErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		compile bool
		wantErr string
	}{
		{"unknown_input", `inputs := func(tick) { return {held: ["dash"], edges: []} }`, true, `unknown input "dash"`},
		{"unknown_edge", `inputs := func(tick) { return {held: [], edges: ["jump"]} }`, true, `unknown edge "jump"`},
		{"runtime_error", `inputs := func(tick) { return {held: [tick / 0], edges: []} }`, true, "tick 1"},
		{"bare_array", `inputs := func(tick) { return ["move_right"] }`, true, "must return a map"},
		{"no_return", `inputs := func(tick) {}`, true, "must return a map"},
		{"held_not_array", `inputs := func(tick) { return {held: "jump"} }`, true, "held must be an array"},
		{"edges_not_array", `inputs := func(tick) { return {held: [], edges: 3} }`, true, "edges must be an array"},
		{"held_element_not_string", `inputs := func(tick) { return {held: ["jump", 7]} }`, true, "held[1] must be a string"},
		{"empty_edge_name", `inputs := func(tick) { return {edges: [""]} }`, true, "edges[0] is empty"},
		{"missing_inputs", `x := 1`, false, "compile"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := NewScriptInput(context.Background(), tc.name, []byte(tc.src))
			if !tc.compile {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("compile err = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if _, _, err := src.Poll(1); err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("poll err = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestScriptInputMissingKeysAreEmpty(t *testing.T) {
	src, err := NewScriptInput(context.Background(), "partial", []byte(`inputs := func(tick) { return {held: ["jump"]} }`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	held, edges, err := src.Poll(1)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if held != component.NewInputSet(component.InputJump) || len(edges) != 0 {
		t.Fatalf("held=%s edges=%v", held, edges)
	}
}

func TestBundledScripts(t *testing.T) {
	for _, name := range []string{"demo", "idle"} {
		t.Run(name, func(t *testing.T) {
			src, err := LoadScriptInput(context.Background(), name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			w := NewSimulation(component.DefaultConfig())
			d := NewDriver(w, src)
			for i := 0; i < 500; i++ {
				if err := d.Tick(1.0 / 60.0); err != nil {
					t.Fatalf("tick %d: %v", i+1, err)
				}
			}
		})
	}
}

func TestScriptInputCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src, err := NewScriptInput(ctx, "cancel", []byte("inputs := func(tick) {\n\tn := 0\n\tfor {\n\t\tn += 1\n\t}\n\treturn {held: [], edges: []}\n}"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	cancel()
	if _, _, err := src.Poll(1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestScriptInputReload(t *testing.T) {
	src, err := LoadScriptInput(context.Background(), "idle")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Name() != "idle" {
		t.Fatalf("name = %q", src.Name())
	}
	if err := src.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if held, edges, err := src.Poll(1); err != nil || !held.Empty() || len(edges) != 0 {
		t.Fatalf("poll after reload = %s %v %v", held, edges, err)
	}
}
