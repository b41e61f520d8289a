package preset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathdrill/internal/drill"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://mathdrill/preset.json"

// Preset is the file form of a drill plan.
//
//	{"count": 20, "operations": [{"op": "add", "max": 50, "negative": true}]}
type Preset struct {
	Count      int         `json:"count,omitempty"`
	Seed       uint64      `json:"seed,omitempty"`
	Operations []Operation `json:"operations"`
}

// Operation is one entry of Preset.Operations.
type Operation struct {
	Op       string `json:"op"`
	Max      int64  `json:"max"`
	Negative bool   `json:"negative,omitempty"`
}

// InvalidPresetError means a preset failed to parse or validate.
type InvalidPresetError struct {
	Source string
	Err    error
}

func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("invalid preset %s: %v", e.Source, e.Err)
}

func (e *InvalidPresetError) Unwrap() error { return e.Err }

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// schema returns the compiled preset schema.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Load reads and validates the preset file at path.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return parse(path, data)
}

// Parse validates data against the preset schema and decodes it.
func Parse(data []byte) (*Preset, error) {
	return parse("<input>", data)
}

func parse(source string, data []byte) (*Preset, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidPresetError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile preset schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, &InvalidPresetError{Source: source, Err: err}
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &InvalidPresetError{Source: source, Err: err}
	}
	return &p, nil
}

// Apply fills plan from the preset. Count and seed only override plan
// values when the preset sets them.
func (p *Preset) Apply(plan drill.Plan) (drill.Plan, error) {
	ops := make([]drill.OperationSpec, 0, len(p.Operations))
	for i, o := range p.Operations {
		op, err := drill.ParseOperation(o.Op)
		if err != nil {
			return plan, fmt.Errorf("operation %d: %w", i+1, err)
		}
		spec := drill.OperationSpec{Op: op, Max: o.Max, Negative: o.Negative}
		if err := spec.Validate(); err != nil {
			return plan, fmt.Errorf("operation %d: %w", i+1, err)
		}
		ops = append(ops, spec)
	}

	plan.Operations = ops
	if p.Count > 0 {
		plan.Count = p.Count
	}
	if p.Seed != 0 {
		plan.Seed = p.Seed
	}
	return plan, nil
}
