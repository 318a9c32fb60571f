// File: port.go
// Role: Port descriptors (spec component B).
// Invariant (InputPort): exactly one of Connection/Connections is
// populated according to IsMulti.
// Invariant (OutputPort): value.Type() is in the declared ValueType, or
// whatever the OutputTypeRule currently resolves to.

package core

// Connection is a directed edge endpoint: the (source node, source
// output index) an input reads from.
type Connection struct {
	Source      NodeID
	OutputIndex int
}

// TypeConstraint describes what Kind values an InputPort accepts: either a
// single type, an explicit set, or Any.
type TypeConstraint struct {
	any   bool
	kinds map[Kind]struct{}
}

// AnyType accepts every Kind.
func AnyType() TypeConstraint { return TypeConstraint{any: true} }

// ExactType accepts exactly one Kind.
func ExactType(k Kind) TypeConstraint {
	return TypeConstraint{kinds: map[Kind]struct{}{k: {}}}
}

// OneOfTypes accepts any of the given kinds.
func OneOfTypes(kinds ...Kind) TypeConstraint {
	set := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return TypeConstraint{kinds: set}
}

// Accepts reports whether k satisfies the constraint.
func (c TypeConstraint) Accepts(k Kind) bool {
	if c.any {
		return true
	}
	_, ok := c.kinds[k]
	return ok
}

// OutputTypeRule computes an output's effective type from its operator's
// current input types, e.g. "same as input 0". A nil rule means the
// output's declared Type is authoritative and fixed.
type OutputTypeRule func(inputKinds []Kind) Kind

// InputPort is an operator's typed input slot.
type InputPort struct {
	Name       string
	Constraint TypeConstraint
	Default    Value

	IsMulti     bool
	Connection  *Connection
	Connections []Connection
}

// NewInputPort constructs a single-connection input with the given
// constraint and default value.
func NewInputPort(name string, constraint TypeConstraint, def Value) *InputPort {
	return &InputPort{Name: name, Constraint: constraint, Default: def}
}

// NewMultiInputPort constructs a multi-connection input.
func NewMultiInputPort(name string, constraint TypeConstraint, def Value) *InputPort {
	return &InputPort{Name: name, Constraint: constraint, Default: def, IsMulti: true}
}

// Connected reports whether the port currently has at least one source.
func (p *InputPort) Connected() bool {
	if p.IsMulti {
		return len(p.Connections) > 0
	}
	return p.Connection != nil
}

// sources returns, in evaluation order, every Connection this port reads
// from (one for single inputs, N for multi-inputs).
func (p *InputPort) sources() []Connection {
	if p.IsMulti {
		return p.Connections
	}
	if p.Connection != nil {
		return []Connection{*p.Connection}
	}
	return nil
}

// OutputPort is an operator's typed output slot, holding the most recently
// produced Value, its staleness state, and a monotonic version counter.
type OutputPort struct {
	Name string
	Type Kind
	Rule OutputTypeRule

	value   Value
	dirty   DirtyFlag
	version uint64
}

// NewOutputPort constructs an output with a fixed declared type and the
// given dirty-flag trigger mode.
func NewOutputPort(name string, kind Kind, mode TriggerMode) *OutputPort {
	return &OutputPort{Name: name, Type: kind, value: Zero(kind), dirty: NewDirtyFlag(mode)}
}

// Value returns the most recently computed value.
func (o *OutputPort) Value() Value { return o.value }

// Version returns the monotonic counter, bumped on every Set.
func (o *OutputPort) Version() uint64 { return o.version }

// Set stores value as the output's cache and bumps its version. Operators
// call this from Compute.
func (o *OutputPort) Set(value Value) {
	o.value = value
	o.version++
}

// MarkDirty forces the output stale for every context until its next
// compute, regardless of TriggerMode — the escape hatch an operator (or
// an editor reacting to a property edit) uses to invalidate a cache that
// no connection-driven version bump would otherwise catch.
func (o *OutputPort) MarkDirty() { o.dirty.MarkDirty() }

// EffectiveType resolves Rule against inputKinds if present, else returns
// the declared Type.
func (o *OutputPort) EffectiveType(inputKinds []Kind) Kind {
	if o.Rule != nil {
		return o.Rule(inputKinds)
	}
	return o.Type
}

// TriggerInput is a push-only input port: it carries no value, only a
// connection list describing who may fire into it.
type TriggerInput struct {
	Name        string
	Connections []Connection
}

// TriggerOutput is a push-only output port. Targets records outbound
// trigger edges in connect order; firing walks them synchronously in
// that order (spec §4.5).
type TriggerOutput struct {
	Name    string
	Targets []TriggerTarget
}

// TriggerTarget names a downstream node and the index of its TriggerInput.
type TriggerTarget struct {
	Node              NodeID
	TriggerInputIndex int
}
