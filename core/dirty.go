// File: dirty.go
// Role: The dirty-flag protocol (spec component D).
// "Dirty for context ctx" := explicit override set, OR mode==Always, OR
// (mode==Animated AND epoch != stamped epoch), OR (mode==TimeChanged AND
// ctx.Time != stamped time), OR (mode==FrameChanged AND ctx.Frame != stamped frame).

package core

// TriggerMode selects which context changes mark an output stale.
type TriggerMode int

const (
	TriggerNone TriggerMode = iota
	TriggerAlways
	TriggerAnimated
	TriggerTimeChanged
	TriggerFrameChanged
)

// DirtyFlag tracks per-output staleness relative to an EvalContext and the
// owning Graph's invalidation epoch.
type DirtyFlag struct {
	Mode TriggerMode

	stampTime  float64
	stampFrame uint64
	stampEpoch uint64
	override   bool

	// never true until the first MarkClean; a never-computed output is
	// always dirty regardless of Mode.
	initialized bool
}

// NewDirtyFlag constructs a DirtyFlag with the given trigger mode, dirty
// until its first compute.
func NewDirtyFlag(mode TriggerMode) DirtyFlag {
	return DirtyFlag{Mode: mode}
}

// IsDirtyForContext reports whether the flag is stale relative to ctx and
// the current invalidation epoch value.
func (d *DirtyFlag) IsDirtyForContext(ctx *EvalContext, epoch uint64) bool {
	if !d.initialized || d.override {
		return true
	}
	switch d.Mode {
	case TriggerAlways:
		return true
	case TriggerAnimated:
		return epoch != d.stampEpoch
	case TriggerTimeChanged:
		return ctx.Time != d.stampTime
	case TriggerFrameChanged:
		return ctx.Frame != d.stampFrame
	default: // TriggerNone
		return false
	}
}

// MarkClean stamps the flag as fresh for ctx/epoch and clears any explicit
// override.
func (d *DirtyFlag) MarkClean(ctx *EvalContext, epoch uint64) {
	d.stampTime = ctx.Time
	d.stampFrame = ctx.Frame
	d.stampEpoch = epoch
	d.override = false
	d.initialized = true
}

// MarkDirty sets the explicit override bit, forcing the next
// IsDirtyForContext to return true regardless of Mode.
func (d *DirtyFlag) MarkDirty() { d.override = true }
