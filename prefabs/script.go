package prefabs

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
)

// SpeedInput is the set of globals a speed script sees.
type SpeedInput struct {
	Base   float64
	Spread float64
	Step   float64
	Level  int
	Roll   float64
}

var speedGlobals = []string{"base", "spread", "step", "lvl", "roll"}

// checkTimeout bounds the trial run made at compile time.
const checkTimeout = 100 * time.Millisecond

// SpeedScript is a compiled Tengo script that assigns a global "speed".
type SpeedScript struct {
	name     string
	compiled *tengo.Compiled
}

// CompileSpeedScript compiles src once and runs it once with zeroed inputs;
// globals only become defined after a run. Eval runs clones of it.
func CompileSpeedScript(name string, src []byte) (*SpeedScript, error) {
	script := tengo.NewScript(src)
	for _, g := range speedGlobals {
		if err := script.Add(g, 0.0); err != nil {
			return nil, fmt.Errorf("prefabs: script %s: add %s: %w", name, g, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: script %s: compile: %w", name, err)
	}

	trial := compiled.Clone()
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()
	if err := trial.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("prefabs: script %s: trial run: %w", name, err)
	}
	if !trial.IsDefined("speed") {
		return nil, fmt.Errorf("prefabs: script %s: does not define speed", name)
	}
	return &SpeedScript{name: name, compiled: compiled}, nil
}

// LoadSpeedScript reads and compiles a script from scripts/.
func LoadSpeedScript(name string) (*SpeedScript, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return CompileSpeedScript(name, src)
}

// Eval runs the script with in and returns the speed it assigned.
func (s *SpeedScript) Eval(ctx context.Context, in SpeedInput) (float64, error) {
	c := s.compiled.Clone()
	values := map[string]float64{
		"base":   in.Base,
		"spread": in.Spread,
		"step":   in.Step,
		"lvl":    float64(in.Level),
		"roll":   in.Roll,
	}
	for name, v := range values {
		if err := c.Set(name, v); err != nil {
			return 0, fmt.Errorf("prefabs: script %s: set %s: %w", s.name, name, err)
		}
	}
	if err := c.RunContext(ctx); err != nil {
		return 0, fmt.Errorf("prefabs: script %s: run: %w", s.name, err)
	}
	v := c.Get("speed")
	if v.IsUndefined() {
		return 0, fmt.Errorf("prefabs: script %s: speed is undefined", s.name)
	}
	return v.Float(), nil
}
