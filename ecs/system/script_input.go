package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gridgame/component"
	"github.com/milk9111/gridgame/prefabs"
)

// inputDispatchScript is appended to every input script. The script must
// define inputs(tick) returning {held: [...], edges: [...]}.
const inputDispatchScript = `
__out = inputs(__tick)
`

// ScriptInput is an InputSource driven by a tengo script.
type ScriptInput struct {
	name     string
	compiled *tengo.Compiled
	ctx      context.Context
}

// LoadScriptInput compiles a script from prefabs/scripts.
func LoadScriptInput(ctx context.Context, name string) (*ScriptInput, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script input: load %s: %w", name, err)
	}
	return NewScriptInput(ctx, name, src)
}

// NewScriptInput compiles src.
func NewScriptInput(ctx context.Context, name string, src []byte) (*ScriptInput, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	script := tengo.NewScript([]byte(string(src) + "\n" + inputDispatchScript))
	_ = script.Add("__tick", 0)
	_ = script.Add("__out", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script input: compile %s: %w", name, err)
	}
	return &ScriptInput{name: name, compiled: compiled, ctx: ctx}, nil
}

// Poll runs the script for tick and converts its result.
func (s *ScriptInput) Poll(tick uint64) (component.InputSet, []component.Edge, error) {
	var held component.InputSet
	if s == nil || s.compiled == nil {
		return held, nil, fmt.Errorf("script input: not compiled")
	}
	if err := s.compiled.Set("__tick", int64(tick)); err != nil {
		return held, nil, err
	}
	if err := s.compiled.RunContext(s.ctx); err != nil {
		return held, nil, fmt.Errorf("script input: %s tick %d: %w", s.name, tick, err)
	}

	out, ok := s.compiled.Get("__out").Value().(map[string]any)
	if !ok {
		return held, nil, fmt.Errorf("script input: %s tick %d: inputs must return a map, got %s", s.name, tick, s.compiled.Get("__out").ValueType())
	}

	heldNames, err := stringList(out, "held")
	if err != nil {
		return held, nil, fmt.Errorf("script input: %s tick %d: %w", s.name, tick, err)
	}
	for _, name := range heldNames {
		id, ok := component.ParseInputID(name)
		if !ok {
			return held, nil, fmt.Errorf("script input: %s tick %d: unknown input %q", s.name, tick, name)
		}
		held = held.With(id)
	}

	edgeNames, err := stringList(out, "edges")
	if err != nil {
		return held, nil, fmt.Errorf("script input: %s tick %d: %w", s.name, tick, err)
	}
	var edges []component.Edge
	for _, name := range edgeNames {
		edge, ok := component.ParseEdge(name)
		if !ok {
			return held, nil, fmt.Errorf("script input: %s tick %d: unknown edge %q", s.name, tick, name)
		}
		edges = append(edges, edge)
	}
	return held, edges, nil
}

// stringList reads out[key] as a list of names. A missing key is an empty
// list.
func stringList(out map[string]any, key string) ([]string, error) {
	v, ok := out[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array, got %T", key, v)
	}
	names := make([]string, 0, len(items))
	for i, item := range items {
		name, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string, got %T", key, i, item)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%s[%d] is empty", key, i)
		}
		names = append(names, name)
	}
	return names, nil
}

// Reload recompiles the script from prefabs/scripts. The previous program is
// kept when the new source fails to compile.
func (s *ScriptInput) Reload() error {
	if s == nil {
		return fmt.Errorf("script input: nil")
	}
	next, err := LoadScriptInput(s.ctx, s.name)
	if err != nil {
		return err
	}
	s.compiled = next.compiled
	return nil
}

// Name returns the script name the input was loaded with.
func (s *ScriptInput) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}
