// File: instancepath.go
// Role: InstancePath, identifying a specific nested composite-operator
// instance by its chain of ancestor node IDs. Grounded directly on
// original_source/flux-graph/src/instance_path.rs (full algebra carried
// over verbatim in spirit, supplemented per SPEC_FULL.md since spec.md
// itself only gestures at composite nesting without naming this type).

package composite

import (
	"strings"

	"github.com/katalvlaran/fluxgraph/core"
)

// InstancePath identifies one instance in the composite nesting
// hierarchy by the chain of node IDs from the outermost composite down
// to (and including) the instance itself. The zero value is the empty
// path, representing the root graph.
type InstancePath struct {
	segments []core.NodeID
}

// RootPath returns a depth-1 path naming id as the sole, topmost segment.
func RootPath(id core.NodeID) InstancePath {
	return InstancePath{segments: []core.NodeID{id}}
}

// EmptyPath returns the empty path, representing the root graph itself.
func EmptyPath() InstancePath {
	return InstancePath{}
}

// FromSegments builds a path from an explicit segment chain.
func FromSegments(segments []core.NodeID) InstancePath {
	cp := append([]core.NodeID(nil), segments...)
	return InstancePath{segments: cp}
}

// Depth returns the number of segments.
func (p InstancePath) Depth() int { return len(p.segments) }

// IsEmpty reports whether p is the root path.
func (p InstancePath) IsEmpty() bool { return len(p.segments) == 0 }

// Leaf returns the innermost (last) segment.
func (p InstancePath) Leaf() (core.NodeID, bool) {
	if len(p.segments) == 0 {
		return core.NilNodeID, false
	}
	return p.segments[len(p.segments)-1], true
}

// RootID returns the outermost (first) segment.
func (p InstancePath) RootID() (core.NodeID, bool) {
	if len(p.segments) == 0 {
		return core.NilNodeID, false
	}
	return p.segments[0], true
}

// Child appends childID, returning a new, deeper path; p is unmodified.
func (p InstancePath) Child(childID core.NodeID) InstancePath {
	cp := make([]core.NodeID, len(p.segments)+1)
	copy(cp, p.segments)
	cp[len(p.segments)] = childID
	return InstancePath{segments: cp}
}

// Parent returns the path with its last segment removed, and false if p
// has at most one segment (no parent to name).
func (p InstancePath) Parent() (InstancePath, bool) {
	if len(p.segments) <= 1 {
		return InstancePath{}, false
	}
	return InstancePath{segments: append([]core.NodeID(nil), p.segments[:len(p.segments)-1]...)}, true
}

// IsAncestorOf reports whether p is a strict prefix of other.
func (p InstancePath) IsAncestorOf(other InstancePath) bool {
	if len(p.segments) >= len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// IsDescendantOf reports whether other is a strict prefix of p.
func (p InstancePath) IsDescendantOf(other InstancePath) bool {
	return other.IsAncestorOf(p)
}

// RelativeTo returns the suffix of p beyond ancestor's segments, or false
// if ancestor is neither an ancestor of p nor equal to p.
func (p InstancePath) RelativeTo(ancestor InstancePath) (InstancePath, bool) {
	if !p.IsDescendantOf(ancestor) && !p.Equal(ancestor) {
		return InstancePath{}, false
	}
	return InstancePath{segments: append([]core.NodeID(nil), p.segments[len(ancestor.segments):]...)}, true
}

// CommonAncestor returns the longest shared prefix of p and other.
func (p InstancePath) CommonAncestor(other InstancePath) InstancePath {
	var common []core.NodeID
	for i := 0; i < len(p.segments) && i < len(other.segments); i++ {
		if p.segments[i] != other.segments[i] {
			break
		}
		common = append(common, p.segments[i])
	}
	return InstancePath{segments: common}
}

// Equal reports whether p and other name the same segment chain.
func (p InstancePath) Equal(other InstancePath) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// Segments returns the path's segment chain; callers must not mutate the
// returned slice.
func (p InstancePath) Segments() []core.NodeID { return p.segments }

// String renders the path as slash-joined node IDs, or "<root>" when empty.
func (p InstancePath) String() string {
	if len(p.segments) == 0 {
		return "<root>"
	}
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}
