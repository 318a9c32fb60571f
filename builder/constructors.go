// File: constructors.go
// Role: a small library of Constructor functions assembling common
// fixture shapes used across this module's tests, examples, and
// benchmarks — the operator-graph equivalent of the teacher's
// impl_path.go/impl_star.go/impl_cycle.go topology constructors.

package builder

import (
	"github.com/katalvlaran/fluxgraph/core"
	"github.com/katalvlaran/fluxgraph/ops"
)

// AddConstant adds a Constant node seeded with value and writes its
// NodeID into id for later constructors/callers to reference.
func AddConstant(value core.Value, id *core.NodeID) Constructor {
	return func(g *core.Graph, _ *builderConfig) error {
		*id = g.Add(ops.NewConstant(value))
		return nil
	}
}

// Connect wires (*src, srcOut) -> (*dst, dstIn); src and dst are read at
// Constructor-run time so they may be populated by an earlier Constructor
// in the same BuildGraph call.
func Connect(src *core.NodeID, srcOut int, dst *core.NodeID, dstIn int) Constructor {
	return func(g *core.Graph, _ *builderConfig) error {
		_, err := g.Connect(*src, srcOut, *dst, dstIn)
		return err
	}
}

// ArithmeticPipeline assembles (a + b) * c from three Constant sources
// and writes the Add and Multiply node IDs out, the shape spec §8 uses as
// its canonical worked example.
func ArithmeticPipeline(a, b, c float32, addOut, mulOut *core.NodeID) Constructor {
	return func(g *core.Graph, _ *builderConfig) error {
		aID := g.Add(ops.NewConstant(core.Float(a)))
		bID := g.Add(ops.NewConstant(core.Float(b)))
		cID := g.Add(ops.NewConstant(core.Float(c)))
		add := ops.NewAdd()
		mul := ops.NewMultiply()
		addID := g.Add(add)
		mulID := g.Add(mul)

		if _, err := g.Connect(aID, 0, addID, 0); err != nil {
			return err
		}
		if _, err := g.Connect(bID, 0, addID, 1); err != nil {
			return err
		}
		if _, err := g.Connect(addID, 0, mulID, 0); err != nil {
			return err
		}
		if _, err := g.Connect(cID, 0, mulID, 1); err != nil {
			return err
		}
		*addOut, *mulOut = addID, mulID
		return nil
	}
}

// ModulatedSineWave wires a SineWave whose Amplitude is itself driven by
// a second, slower SineWave — an amplitude-modulation fixture in the
// spirit of original_source's 02_sine_wave.rs — and writes the outer
// wave's NodeID out.
func ModulatedSineWave(carrierFreq, modFreq, modAmplitude float32, carrierOut *core.NodeID) Constructor {
	return func(g *core.Graph, _ *builderConfig) error {
		mod := ops.NewSineWave()
		modID := g.Add(mod)
		freqIn := g.Add(ops.NewConstant(core.Float(modFreq)))
		ampIn := g.Add(ops.NewConstant(core.Float(modAmplitude)))
		if _, err := g.Connect(freqIn, 0, modID, 0); err != nil {
			return err
		}
		if _, err := g.Connect(ampIn, 0, modID, 1); err != nil {
			return err
		}

		carrier := ops.NewSineWave()
		carrierID := g.Add(carrier)
		carrierFreqIn := g.Add(ops.NewConstant(core.Float(carrierFreq)))
		if _, err := g.Connect(carrierFreqIn, 0, carrierID, 0); err != nil {
			return err
		}
		if _, err := g.Connect(modID, 0, carrierID, 1); err != nil {
			return err
		}

		*carrierOut = carrierID
		return nil
	}
}

// BoolGatedSum wires n Constant(Float) sources and one Constant(Bool)
// gate into a Sum, the gate through an explicitly added BoolToFloat node
// (no auto-conversion takes place), and writes the Sum node's ID out.
func BoolGatedSum(values []float32, gate bool, sumOut *core.NodeID) Constructor {
	return func(g *core.Graph, _ *builderConfig) error {
		sum := ops.NewSum()
		sumID := g.Add(sum)
		for _, v := range values {
			cID := g.Add(ops.NewConstant(core.Float(v)))
			if _, err := g.Connect(cID, 0, sumID, 0); err != nil {
				return err
			}
		}
		// A Bool wired straight into Sum's AnyType Values input would not
		// trigger auto-conversion (AnyType already accepts Bool); route it
		// through an explicit BoolToFloat so the gate always contributes a
		// numeric 0/1 term regardless of the input constraint in use.
		gateConst := g.Add(ops.NewConstant(core.Bool(gate)))
		conv := g.Add(ops.NewBoolToFloat())
		if _, err := g.Connect(gateConst, 0, conv, 0); err != nil {
			return err
		}
		if _, err := g.Connect(conv, 0, sumID, 0); err != nil {
			return err
		}
		*sumOut = sumID
		return nil
	}
}

// RandomSumFixture adds n Constant sources with values drawn from cfg's
// seeded RNG (uniform in [0,1)) feeding a Sum, and writes the Sum node's
// ID out — useful for benchmarks that want a nontrivial but reproducible
// fan-in shape.
func RandomSumFixture(n int, sumOut *core.NodeID) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		sum := ops.NewSum()
		sumID := g.Add(sum)
		r := cfg.rand()
		for i := 0; i < n; i++ {
			cID := g.Add(ops.NewConstant(core.Float(float32(r.Float64()))))
			if _, err := g.Connect(cID, 0, sumID, 0); err != nil {
				return err
			}
		}
		*sumOut = sumID
		return nil
	}
}
