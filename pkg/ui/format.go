package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayPrecision is the number of decimal places shown for results.
// Formatting is a display policy only; the engine works in full precision.
const DisplayPrecision = 3

// FormatValue renders an engine result fixed to DisplayPrecision decimals.
// Non-finite values render as empty: a degenerate base ratio reached the
// engine and there is nothing meaningful to show.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', DisplayPrecision, 64)
}

// ParseValue parses user-typed text into a finite number. Whitespace is
// tolerated; "NaN" and "Inf" spellings are rejected even though
// strconv accepts them.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// Truncate shortens s to the given cell width, appending an ellipsis when
// anything was cut. Width-aware so wide runes do not break row alignment.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
