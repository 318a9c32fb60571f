// File: api.go
// Role: Constructor and BuildGraph, the package's single public
// entry-point, adapted from the teacher's builder/api.go: one
// orchestrator creates the graph, resolves the config, and runs each
// constructor in order, wrapping any failure once at the boundary.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fluxgraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig — adding operators, wiring connections, or both.
// Constructors must not panic; they report failure via error.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildGraph creates a fresh core.Graph, resolves opts into a
// builderConfig, and applies each constructor in order. The first
// constructor error aborts the remaining ones and is returned wrapped in
// ErrConstructFailed; no partial cleanup is attempted, matching the
// teacher's own "no partial cleanup by design" contract.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.New()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d: %w: %w", i, ErrConstructFailed, err)
		}
	}
	return g, nil
}
