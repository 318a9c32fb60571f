// File: convert_registry.go
// Role: The conversion table (spec component G): a registry of (from, to)
// -> conversion-operator factory, consulted by Graph.Connect when a
// direct type match fails. Conversion operators themselves live outside
// this package (see the ops package) and register into this table from
// an init(), the same registry idiom as image.RegisterFormat or
// database/sql.Register — it lets core stay ignorant of any concrete
// conversion operator while still driving auto-insertion.

package core

// ConversionFactory constructs a fresh ConversionOperator instance for one
// (from, to) pair. The returned operator's ID() must be unique per call.
type ConversionFactory func(id NodeID) ConversionOperator

type conversionKey struct {
	from, to Kind
}

var conversionTable = map[conversionKey]ConversionFactory{}

// RegisterConversion installs a factory for converting from -> to. Called
// from package init() by conversion-operator implementations (see
// ops.init in the ops package). Re-registering the same pair overwrites
// the previous factory, matching the last-registered-wins convention of
// similar stdlib registries.
func RegisterConversion(from, to Kind, factory ConversionFactory) {
	conversionTable[conversionKey{from, to}] = factory
}

// lookupConversion returns the registered factory for (from, to), if any.
func lookupConversion(from, to Kind) (ConversionFactory, bool) {
	f, ok := conversionTable[conversionKey{from, to}]
	return f, ok
}

// HasConversion reports whether a registered path exists for (from, to).
func HasConversion(from, to Kind) bool {
	_, ok := conversionTable[conversionKey{from, to}]
	return ok
}
