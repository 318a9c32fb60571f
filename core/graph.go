// File: graph.go
// Role: The graph container (spec component F): node store, connection
// index (implicit in each InputPort's own Connection/Connections), event
// fan-out, and statistics. Connect/Disconnect live here; Evaluate lives
// in evaluate.go; Fire lives in trigger.go.
//
// Concurrency (spec §5): evaluation is single-threaded and cooperative.
// Unlike the teacher's core.Graph (which guards every field with
// sync.RWMutex for safe concurrent mutation), a fluxgraph Graph is
// explicitly NOT safe for concurrent mutation — spec.md's Non-goals rule
// out parallel/distributed evaluation, so no locking is carried here.
// The one documented exception is
// CompiledGraph (see the compiler package), which may be read from
// another goroutine once Execute has returned.

package core

import "github.com/rs/zerolog"

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithEpoch shares an existing invalidation epoch instead of creating a
// fresh one — used when a composite's child graph must invalidate in
// lockstep with its parent (spec §9 REDESIGN FLAG).
func WithEpoch(e *Epoch) Option {
	return func(g *Graph) { g.epoch = e }
}

// WithLogger attaches a structured logger for internal diagnostics; the
// only thing written to it is a warning per evaluation fault.
// zerolog.Nop() is used if this option is omitted.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Graph) { g.logger = l }
}

// Graph owns a node store and drives evaluation over it.
type Graph struct {
	nodes map[NodeID]*Node
	order []NodeID // insertion order, preserved for deterministic iteration

	epoch  *Epoch
	logger zerolog.Logger

	listeners []EventListener

	// onStack guards against re-entrant evaluation (spec §4.4 "Cycle
	// handling"): keyed by (node, call context) so the same operator may
	// be legitimately evaluated concurrently-in-recursion-terms under
	// distinct composite call contexts. A key is present while its
	// evaluation is in progress; its value turns true once a re-entry into
	// it has been detected.
	onStack map[onStackKey]bool

	lastEvalVisits uint64
	cacheHits      uint64
	cacheMisses    uint64
}

type onStackKey struct {
	node NodeID
	call CallContext
}

// New constructs an empty Graph with its own invalidation epoch unless
// WithEpoch overrides it.
//
// Complexity: O(1) plus O(len(opts)).
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:   make(map[NodeID]*Node),
		onStack: make(map[onStackKey]bool),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.epoch == nil {
		g.epoch = NewEpoch()
	}
	return g
}

// Epoch returns the graph's invalidation epoch.
func (g *Graph) Epoch() *Epoch { return g.epoch }

// Subscribe registers l to receive future mutation/fault events.
func (g *Graph) Subscribe(l EventListener) { g.listeners = append(g.listeners, l) }

// Add inserts op as a new Node and returns its ID.
//
// Complexity: O(1) amortized.
func (g *Graph) Add(op Operator) NodeID {
	n := newNode(op)
	g.nodes[n.id] = n
	g.order = append(g.order, n.id)
	g.emitNodeAdded(n.id)
	return n.id
}

// Get looks up a Node by ID.
func (g *Graph) Get(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Remove deletes the node id and clears every other node's input that
// read from it, so downstream inputs don't dangle on a removed source.
// Conversion nodes attached to id are not removed, and id's own input
// ports keep their connections.
//
// Returns the removed Operator and true, or (nil, false) if id was
// unknown.
//
// Complexity: O(V) to scan and clear dangling references to id.
func (g *Graph) Remove(id NodeID) (Operator, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	// Clear any input elsewhere that pointed at this node's outputs.
	for _, other := range g.nodes {
		for _, in := range other.op.Inputs() {
			if in.IsMulti {
				filtered := in.Connections[:0]
				for _, c := range in.Connections {
					if c.Source != id {
						filtered = append(filtered, c)
					}
				}
				in.Connections = filtered
			} else if in.Connection != nil && in.Connection.Source == id {
				in.Connection = nil
			}
		}
	}
	delete(g.nodes, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.emitNodeRemoved(id)
	return n.op, true
}

// Connect wires src's output srcOut into dst's input dstIn.
//
// If the types are not directly compatible, the registered conversion
// table (RegisterConversion) is consulted; a match causes a conversion
// node to be transparently inserted and its ID returned. No match (and
// no direct compatibility) returns a TypeMismatch error without
// mutating the graph. A structurally cycle-closing edge returns
// CycleDetected without mutating the graph. Reconnecting an already
// populated single (non-multi) input without first calling Disconnect
// returns MultiplicityViolation (spec §7) — callers that want
// replace-in-place semantics must Disconnect first.
//
// Complexity: O(V+E) for the reachability (cycle) check; O(1) otherwise.
func (g *Graph) Connect(src NodeID, srcOut int, dst NodeID, dstIn int) (*NodeID, error) {
	srcNode, ok := g.nodes[src]
	if !ok {
		return nil, NewError(KindUnknownNode, src, "source node not found")
	}
	dstNode, ok := g.nodes[dst]
	if !ok {
		return nil, NewError(KindUnknownNode, dst, "target node not found")
	}
	outs := srcNode.op.Outputs()
	if srcOut < 0 || srcOut >= len(outs) {
		return nil, NewError(KindUnknownPort, src, "output index %d out of range", srcOut)
	}
	ins := dstNode.op.Inputs()
	if dstIn < 0 || dstIn >= len(ins) {
		return nil, NewError(KindUnknownPort, dst, "input index %d out of range", dstIn)
	}
	input := ins[dstIn]
	if !input.IsMulti && input.Connection != nil {
		return nil, NewError(KindMultiplicityViolation, dst,
			"input %q already connected; disconnect first", input.Name)
	}

	if g.reaches(src, dst) {
		return nil, NewError(KindCycleDetected, dst, "connecting %s->%s would close a cycle", src, dst)
	}

	srcType := outs[srcOut].Type
	if input.Constraint.Accepts(srcType) {
		g.wire(src, srcOut, dst, dstIn, input)
		g.emitConnected(Edge{src, srcOut, dst, dstIn})
		return nil, nil
	}

	factory, ok := lookupConversion(srcType, unwrapSingleAccepted(input.Constraint))
	if !ok {
		return nil, NewError(KindTypeMismatch, dst,
			"no direct or converted path from %s to input %q", srcType, input.Name)
	}
	convNode := factory(NewNodeID())
	convID := g.Add(convNode)
	// src -> conversion.input(0)
	g.wire(src, srcOut, convID, 0, convNode.Inputs()[0])
	// conversion.output(0) -> dst.input(dstIn)
	g.wire(convID, 0, dst, dstIn, input)
	g.emitConnected(Edge{src, srcOut, dst, dstIn})
	g.emitConversionInserted(convID, Edge{src, srcOut, dst, dstIn})
	return &convID, nil
}

// unwrapSingleAccepted returns the single Kind an exact TypeConstraint
// accepts, used to key the conversion table when a one-to-one conversion
// target is unambiguous. For OneOf/Any constraints (which accept several
// kinds already, so a conversion would only be consulted if none of them
// matched) this simply returns the zero Kind, which will fail to match
// the table and surface TypeMismatch — multi-kind conversion targets are
// out of scope for this core (operators that need them should accept a
// wider constraint set directly rather than relying on auto-conversion).
func unwrapSingleAccepted(c TypeConstraint) Kind {
	if c.any || len(c.kinds) != 1 {
		return KindAbsent
	}
	for k := range c.kinds {
		return k
	}
	return KindAbsent
}

// wire appends/sets the connection without any validation; callers must
// have already checked type compatibility and multiplicity.
func (g *Graph) wire(src NodeID, srcOut int, dst NodeID, dstIn int, input *InputPort) {
	c := Connection{Source: src, OutputIndex: srcOut}
	if input.IsMulti {
		input.Connections = append(input.Connections, c)
	} else {
		input.Connection = &c
	}
}

// Disconnect removes the connection feeding dst's input dstIn. If the
// source was an auto-inserted conversion node with no other consumers,
// it is removed atomically along with the edge (spec §3 "Connection"
// lifecycle, §4.6).
//
// For multi-inputs, Disconnect clears every connection on the input; use
// DisconnectIndex to remove a single multi-input connection.
func (g *Graph) Disconnect(dst NodeID, dstIn int) error {
	dstNode, ok := g.nodes[dst]
	if !ok {
		return NewError(KindUnknownNode, dst, "target node not found")
	}
	ins := dstNode.op.Inputs()
	if dstIn < 0 || dstIn >= len(ins) {
		return NewError(KindUnknownPort, dst, "input index %d out of range", dstIn)
	}
	input := ins[dstIn]
	sources := input.sources()
	if input.IsMulti {
		input.Connections = nil
	} else {
		input.Connection = nil
	}
	for _, c := range sources {
		g.emitDisconnected(Edge{c.Source, c.OutputIndex, dst, dstIn})
		g.maybeRemoveOrphanedConversion(c.Source)
	}
	return nil
}

// DisconnectIndex removes the i-th connection of a multi-input.
func (g *Graph) DisconnectIndex(dst NodeID, dstIn, i int) error {
	dstNode, ok := g.nodes[dst]
	if !ok {
		return NewError(KindUnknownNode, dst, "target node not found")
	}
	ins := dstNode.op.Inputs()
	if dstIn < 0 || dstIn >= len(ins) {
		return NewError(KindUnknownPort, dst, "input index %d out of range", dstIn)
	}
	input := ins[dstIn]
	if !input.IsMulti || i < 0 || i >= len(input.Connections) {
		return NewError(KindUnknownPort, dst, "multi-input connection %d out of range", i)
	}
	c := input.Connections[i]
	input.Connections = append(input.Connections[:i], input.Connections[i+1:]...)
	g.emitDisconnected(Edge{c.Source, c.OutputIndex, dst, dstIn})
	g.maybeRemoveOrphanedConversion(c.Source)
	return nil
}

// maybeRemoveOrphanedConversion removes id if it is a conversion node with
// no remaining consumers anywhere in the graph.
func (g *Graph) maybeRemoveOrphanedConversion(id NodeID) {
	n, ok := g.nodes[id]
	if !ok || !n.isConversion {
		return
	}
	for _, other := range g.nodes {
		for _, in := range other.op.Inputs() {
			for _, c := range in.sources() {
				if c.Source == id {
					return // still consumed
				}
			}
		}
	}
	g.Remove(id)
}

// reaches reports whether to is already an ancestor of from — i.e.
// whether a path to -> ... -> from exists by following connections
// forward. This is exactly the condition under which adding a new edge
// from->to would close a cycle (from -> to -> ... -> from). Implemented
// as a DFS that walks each node's InputPort.sources() (its upstream
// ancestors).
func (g *Graph) reaches(from, to NodeID) bool {
	if from == to {
		return true
	}
	visited := make(map[NodeID]bool)
	var visit func(NodeID) bool
	visit = func(cur NodeID) bool {
		if cur == to {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true
		n, ok := g.nodes[cur]
		if !ok {
			return false
		}
		for _, in := range n.op.Inputs() {
			for _, c := range in.sources() {
				if visit(c.Source) {
					return true
				}
			}
		}
		return false
	}
	return visit(from)
}
