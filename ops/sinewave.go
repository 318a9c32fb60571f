// File: sinewave.go
// Role: SineWave, a time-varying generator grounded on the Frequency/
// Amplitude wiring shown in original_source/examples/02_sine_wave.rs.
// Its output uses TriggerAnimated so it only recomputes when the owning
// Graph's epoch advances (spec §4.3's time-varying contract), not on
// every pull — a context whose epoch never advances reuses the cached
// sample.

package ops

import (
	"math"

	"github.com/katalvlaran/fluxgraph/core"
)

// SineWave emits Amplitude * sin(2*pi*Frequency*ctx.Time).
type SineWave struct {
	id               core.NodeID
	frequency        *core.InputPort
	amplitude        *core.InputPort
	out              *core.OutputPort
}

// NewSineWave builds a SineWave defaulting to 1 Hz, unit amplitude.
func NewSineWave() *SineWave {
	return &SineWave{
		id:        core.NewNodeID(),
		frequency: core.NewInputPort("Frequency", core.OneOfTypes(core.KindFloat, core.KindInt), core.Float(1)),
		amplitude: core.NewInputPort("Amplitude", core.OneOfTypes(core.KindFloat, core.KindInt), core.Float(1)),
		out:       core.NewOutputPort("Out", core.KindFloat, core.TriggerAnimated),
	}
}

func (s *SineWave) ID() core.NodeID             { return s.id }
func (s *SineWave) Name() string                { return "SineWave" }
func (s *SineWave) Category() string            { return "Generator" }
func (s *SineWave) Description() string         { return "Amplitude * sin(2*pi*Frequency*time)." }
func (s *SineWave) Inputs() []*core.InputPort   { return []*core.InputPort{s.frequency, s.amplitude} }
func (s *SineWave) Outputs() []*core.OutputPort { return []*core.OutputPort{s.out} }

// IsTimeVarying marks every fresh output Animated by default (spec §4.3),
// matching a generator whose result depends on the evaluation context's
// clock rather than solely on its inputs.
func (s *SineWave) IsTimeVarying() bool { return true }

func (s *SineWave) Compute(ctx *core.EvalContext, resolve core.InputResolver) {
	freq := resolveFloat(s.frequency, resolve)
	amp := resolveFloat(s.amplitude, resolve)
	sample := amp * float32(math.Sin(2*math.Pi*float64(freq)*ctx.Time))
	s.out.Set(core.Float(sample))
}
