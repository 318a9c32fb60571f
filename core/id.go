// File: id.go
// Role: Node identity (spec §3: "Node is a uniquely-identified (UUID v4)
// container"). Grounded on original_source/flux-core/src/id.rs, which
// wraps the Rust `uuid` crate's Uuid — github.com/google/uuid is its
// direct Go analogue (see SPEC_FULL.md DOMAIN STACK).

package core

import "github.com/google/uuid"

// NodeID uniquely identifies a Node within a Graph.
type NodeID uuid.UUID

// NilNodeID is the zero/nil UUID, returned from failed lookups.
var NilNodeID = NodeID(uuid.Nil)

// NewNodeID generates a fresh random (v4) NodeID.
func NewNodeID() NodeID { return NodeID(uuid.New()) }

// String renders the canonical "8-4-4-4-12" hex form.
func (id NodeID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether id is the nil UUID.
func (id NodeID) IsNil() bool { return id == NilNodeID }

// ParseNodeID parses the canonical string form of a NodeID.
func ParseNodeID(s string) (NodeID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilNodeID, err
	}
	return NodeID(u), nil
}
