// File: node.go
// Role: Node is a uniquely-identified container of one operator plus its
// input-version memo cache (spec §3). Ports are owned by the operator;
// the Graph exclusively owns its nodes.

package core

// inputKey identifies one upstream (node, output) pair consumed by a
// node's inputs, for the input-version memoization described in spec
// §4.4 ("Input version memoization").
type inputKey struct {
	node   NodeID
	output int
}

// Node wraps one Operator with the bookkeeping the evaluate algorithm
// needs: the last vector of upstream versions observed, and whether this
// node is a privileged conversion node.
type Node struct {
	id           NodeID
	op           Operator
	isConversion bool
	convFrom     Kind
	convTo       Kind

	// lastVersions records, per reached output, the (src,srcOutput)->version
	// pairs consumed the last time Compute ran, so a clean dirty-flag can
	// still be overridden by an upstream version bump (see evaluate.go).
	lastVersions map[inputKey]uint64
	everComputed bool
}

func newNode(op Operator) *Node {
	n := &Node{id: op.ID(), op: op, lastVersions: make(map[inputKey]uint64)}
	if conv, ok := op.(ConversionOperator); ok {
		n.isConversion = true
		n.convFrom, n.convTo = conv.ConversionTypes()
	}
	if tv, ok := op.(TimeVarying); ok && tv.IsTimeVarying() {
		for _, o := range op.Outputs() {
			if o.dirty.Mode == TriggerNone {
				o.dirty.Mode = TriggerAnimated
			}
		}
	}
	return n
}

// ID returns the node's identity.
func (n *Node) ID() NodeID { return n.id }

// Operator returns the wrapped operator.
func (n *Node) Operator() Operator { return n.op }

// IsConversion reports whether this node is a privileged auto-inserted
// conversion node (spec §4.6).
func (n *Node) IsConversion() bool { return n.isConversion }

// ConversionTypes returns the (from, to) pair for a conversion node; only
// meaningful when IsConversion() is true.
func (n *Node) ConversionTypes() (Kind, Kind) { return n.convFrom, n.convTo }
