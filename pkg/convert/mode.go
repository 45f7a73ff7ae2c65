package convert

import "fmt"

// Mode names an ordered pair of units and thus which conversion applies.
// The first unit is the "from" side of the direct conversion.
type Mode string

const (
	ModePxRem  Mode = "px-rem"
	ModeRemPx  Mode = "rem-px"
	ModePxEm   Mode = "px-em"
	ModeEmPx   Mode = "em-px"
	ModePxPct  Mode = "px-pct"
	ModePctPx  Mode = "pct-px"
	ModeBasePx Mode = "base-px"
	ModePxBase Mode = "px-base"
)

// AllModes lists every mode in the order the picker presents them.
var AllModes = []Mode{
	ModePxRem,
	ModeRemPx,
	ModePxEm,
	ModeEmPx,
	ModePxPct,
	ModePctPx,
	ModeBasePx,
	ModePxBase,
}

// inverses pairs each mode with its opposite direction. The map is an
// involution: following it twice lands back on the starting mode.
var inverses = map[Mode]Mode{
	ModePxRem:  ModeRemPx,
	ModeRemPx:  ModePxRem,
	ModePxEm:   ModeEmPx,
	ModeEmPx:   ModePxEm,
	ModePxPct:  ModePctPx,
	ModePctPx:  ModePxPct,
	ModeBasePx: ModePxBase,
	ModePxBase: ModeBasePx,
}

// IsValid returns true if the mode is a recognized value
func (m Mode) IsValid() bool {
	_, ok := inverses[m]
	return ok
}

func (m Mode) String() string {
	return string(m)
}

// DisplayName returns the human-readable form shown in the mode picker,
// e.g. "PX → REM".
func (m Mode) DisplayName() string {
	ls := Labels(m)
	return ls.Label1 + " → " + ls.Label2
}

// Invert returns the mode converting in the opposite direction.
// Unrecognized modes are returned unchanged.
func Invert(m Mode) Mode {
	if inv, ok := inverses[m]; ok {
		return inv
	}
	return m
}

// ParseMode resolves a mode name like "px-rem". The error lists the valid
// names so CLI typos are self-explaining.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mode %q (valid: %s)", s, modeNames())
	}
	return m, nil
}

func modeNames() string {
	names := ""
	for i, m := range AllModes {
		if i > 0 {
			names += ", "
		}
		names += m.String()
	}
	return names
}

// LabelSet holds the two unit labels a mode relates, plus the input
// placeholders shown in empty fields.
type LabelSet struct {
	Label1       string
	Label2       string
	Placeholder1 string
	Placeholder2 string
}

var labelSets = map[Mode]LabelSet{
	ModePxRem:  {"PX", "REM", "px", "rem"},
	ModeRemPx:  {"REM", "PX", "rem", "px"},
	ModePxEm:   {"PX", "EM", "px", "em"},
	ModeEmPx:   {"EM", "PX", "em", "px"},
	ModePxPct:  {"PX", "%", "px", "%"},
	ModePctPx:  {"%", "PX", "%", "px"},
	ModeBasePx: {"BASE", "PX", "base", "px"},
	ModePxBase: {"PX", "BASE", "px", "base"},
}

// Labels returns the unit labels and placeholders for a mode. Unrecognized
// modes get generic labels rather than an error; the enumeration is closed,
// so this branch never fires in practice.
func Labels(m Mode) LabelSet {
	if ls, ok := labelSets[m]; ok {
		return ls
	}
	return LabelSet{"Value 1", "Value 2", "Value 1", "Value 2"}
}
