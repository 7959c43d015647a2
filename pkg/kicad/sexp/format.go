package sexp

import (
	"math"
	"strconv"
	"strings"
)

// unitsPerMM is the number of nanometers, KiCad's internal length unit, in
// one millimeter.
const unitsPerMM = 1e6

// FormatFloat renders a coordinate, size or angle the way footprint text
// carries it: shortest exact decimal, no exponent, no trailing zeros.
// Values are rounded to whole nanometers first so arithmetic noise such as
// -2.1449999999999996 prints as -2.145. Negative zero prints as 0.
// Magnitudes too large to scale are printed unrounded.
func FormatFloat(v float64) string {
	if scaled := v * unitsPerMM; !math.IsInf(scaled, 0) {
		v = math.Round(scaled) / unitsPerMM
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// Quote wraps s in double quotes, escaping backslashes, quotes and newlines
// so the kicadsexp lexer reads back the original string.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
