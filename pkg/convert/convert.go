// Package convert implements the bidirectional CSS unit conversion engine.
// Everything here is pure: a mode, a number, and the current base ratios in,
// a number out. Callers own validation; a zero or negative ratio flows
// through as ±Inf or NaN rather than an error.
package convert

// Ratios holds the user-configurable base scalars the conversions are
// computed against. Passed by value on every call.
type Ratios struct {
	BaseRem        float64 `yaml:"base_rem"`        // px per 1 rem
	BaseEm         float64 `yaml:"base_em"`         // px per 1 em
	ContainerWidth float64 `yaml:"container_width"` // px, reference for %
	BaseUnit       float64 `yaml:"base_unit"`       // px per 1 base unit
}

// DefaultRatios returns the standard browser-ish defaults.
func DefaultRatios() Ratios {
	return Ratios{
		BaseRem:        16,
		BaseEm:         16,
		ContainerWidth: 1024,
		BaseUnit:       8,
	}
}

// conversion bundles a mode's two directions. Both closures are derived
// from one factor function, so forward and backward cannot drift out of
// being exact mathematical inverses.
type conversion struct {
	forward  func(v float64, r Ratios) float64
	backward func(v float64, r Ratios) float64
}

// dividesBy builds a conversion whose direct transform divides the value
// by the factor (e.g. px → rem divides by px-per-rem).
func dividesBy(factor func(Ratios) float64) conversion {
	return conversion{
		forward:  func(v float64, r Ratios) float64 { return v / factor(r) },
		backward: func(v float64, r Ratios) float64 { return v * factor(r) },
	}
}

// multipliesBy builds a conversion whose direct transform multiplies the
// value by the factor (e.g. rem → px multiplies by px-per-rem).
func multipliesBy(factor func(Ratios) float64) conversion {
	return conversion{
		forward:  func(v float64, r Ratios) float64 { return v * factor(r) },
		backward: func(v float64, r Ratios) float64 { return v / factor(r) },
	}
}

func remFactor(r Ratios) float64 { return r.BaseRem }
func emFactor(r Ratios) float64  { return r.BaseEm }
func pctFactor(r Ratios) float64 { return r.ContainerWidth / 100 }
func baseFactor(r Ratios) float64 { return r.BaseUnit }

var conversions = map[Mode]conversion{
	ModePxRem:  dividesBy(remFactor),
	ModeRemPx:  multipliesBy(remFactor),
	ModePxEm:   dividesBy(emFactor),
	ModeEmPx:   multipliesBy(emFactor),
	ModePxPct:  dividesBy(pctFactor),
	ModePctPx:  multipliesBy(pctFactor),
	ModeBasePx: multipliesBy(baseFactor),
	ModePxBase: dividesBy(baseFactor),
}

// Direct computes the transform a mode names in its declared direction:
// px-rem takes pixels and returns rems. Unrecognized modes yield 0.
func Direct(m Mode, value float64, r Ratios) float64 {
	c, ok := conversions[m]
	if !ok {
		return 0
	}
	return c.forward(value, r)
}

// Reverse computes the opposite direction of the same mode: under px-rem
// it takes rems and returns pixels. Reverse(m, Direct(m, v, r), r) == v for
// every mode, up to float rounding. Unrecognized modes yield 0.
func Reverse(m Mode, value float64, r Ratios) float64 {
	c, ok := conversions[m]
	if !ok {
		return 0
	}
	return c.backward(value, r)
}
