// File: composite.go
// Role: Composite operators (spec component I): an Operator whose
// Compute delegates to a private child core.Graph, with its own outer
// Input/OutputPort set. Every Compute pushes its inputs into proxy nodes,
// bumping their versions, so the child graph recomputes from them on each
// call instead of reusing a result from an earlier invocation. The
// CallContext derived per instance keys only the child graph's
// re-entrancy check, not its cached values.
//
// Grounded on original_source/flux-graph's composite/subroutine model
// (instance_path.rs for identity, call_context.rs for cache isolation);
// spec.md names composites but leaves the exact wiring mechanism to this
// supplementation (see SPEC_FULL.md SUPPLEMENTED FEATURES).

package composite

import (
	"github.com/katalvlaran/fluxgraph/core"
)

var nextInstanceIndex uint32

// proxyInputOp is a zero-input operator living inside a composite's
// child graph; its sole purpose is to hold whatever value the outer
// graph fed into one of the composite's exposed inputs for the current
// Compute call, so ordinary inner nodes can Connect to it like any
// other source.
type proxyInputOp struct {
	id  core.NodeID
	out *core.OutputPort
}

func newProxyInputOp(kind core.Kind) *proxyInputOp {
	return &proxyInputOp{id: core.NewNodeID(), out: core.NewOutputPort("value", kind, core.TriggerAlways)}
}

func (p *proxyInputOp) ID() core.NodeID             { return p.id }
func (p *proxyInputOp) Name() string                { return "ExposedInput" }
func (p *proxyInputOp) Inputs() []*core.InputPort   { return nil }
func (p *proxyInputOp) Outputs() []*core.OutputPort { return []*core.OutputPort{p.out} }
func (p *proxyInputOp) Compute(ctx *core.EvalContext, resolve core.InputResolver) {
	// Value is pushed directly via SetValue before the owning Composite
	// evaluates its child graph each call; Compute itself does nothing.
}

// SetValue stores v as this proxy's current output, bumping its version
// so every downstream consumer's input-version memo sees a fresh value
// even when v is unchanged bit-for-bit (spec's per-call cache isolation
// is achieved this way rather than by threading CallContext through
// every cache key — see DESIGN.md).
func (p *proxyInputOp) SetValue(v core.Value) { p.out.Set(v) }

type exposedOutputBinding struct {
	innerNode core.NodeID
	innerOut  int
}

// Composite adapts a private child core.Graph to the outer core.Operator
// contract: outer inputs become child-graph proxy sources, outer outputs
// pull from named inner (node, output) pairs.
type Composite struct {
	id   core.NodeID
	name string

	child *core.Graph
	path  InstancePath

	instanceIndex uint32

	inputs  []*core.InputPort
	proxies []*proxyInputOp

	outputs []*core.OutputPort
	binding []exposedOutputBinding
}

// New constructs an empty Composite named name, with its own child graph
// sharing parentEpoch's invalidation epoch (so Animated-triggered inner
// nodes invalidate in lockstep with the rest of the engine — spec §9
// REDESIGN FLAG).
func New(name string, parentEpoch *core.Epoch) *Composite {
	idx := nextInstanceIndex
	nextInstanceIndex++
	return &Composite{
		id:            core.NewNodeID(),
		name:          name,
		child:         core.New(core.WithEpoch(parentEpoch)),
		instanceIndex: idx,
	}
}

// Child exposes the private child graph so callers can add and connect
// inner operators with the ordinary core.Graph API.
func (c *Composite) Child() *core.Graph { return c.child }

// ExposeInput declares an outer-facing input named name/constraint/def,
// and returns the inner proxy NodeID (output index 0) that inner nodes
// should Connect from to consume it.
func (c *Composite) ExposeInput(name string, constraint core.TypeConstraint, def core.Value) core.NodeID {
	c.inputs = append(c.inputs, core.NewInputPort(name, constraint, def))
	proxy := newProxyInputOp(def.Type())
	c.proxies = append(c.proxies, proxy)
	c.child.Add(proxy)
	return proxy.ID()
}

// ExposeOutput declares an outer-facing output named name/kind, sourced
// from innerNode's innerOutput index.
func (c *Composite) ExposeOutput(name string, kind core.Kind, innerNode core.NodeID, innerOutput int) {
	c.outputs = append(c.outputs, core.NewOutputPort(name, kind, core.TriggerAlways))
	c.binding = append(c.binding, exposedOutputBinding{innerNode: innerNode, innerOut: innerOutput})
}

// ID, Name, Inputs, Outputs satisfy core.Operator.
func (c *Composite) ID() core.NodeID             { return c.id }
func (c *Composite) Name() string                { return c.name }
func (c *Composite) Inputs() []*core.InputPort   { return c.inputs }
func (c *Composite) Outputs() []*core.OutputPort { return c.outputs }

// Compute feeds each exposed input's resolved value into its inner
// proxy (bumping its version, which forces the dependent child nodes to
// recompute), evaluates every exposed output against a CallContext
// derived from this composite's own instance index, and copies the
// results onto the outer OutputPorts.
func (c *Composite) Compute(ctx *core.EvalContext, resolve core.InputResolver) {
	childCallCtx := ctx.CallCtx.Child(c.instanceIndex)
	childCtx := ctx.WithCallContext(childCallCtx)

	for i, in := range c.inputs {
		v := in.Default
		if in.Connection != nil {
			v = resolve(in.Connection.Source, in.Connection.OutputIndex)
		}
		c.proxies[i].SetValue(v)
	}

	for i, b := range c.binding {
		v, err := c.child.Evaluate(b.innerNode, b.innerOut, childCtx)
		if err != nil {
			v = core.Zero(c.outputs[i].Type)
		}
		c.outputs[i].Set(v)
	}
}

var _ core.Operator = (*Composite)(nil)
