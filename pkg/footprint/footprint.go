// Package footprint holds the vocabulary shared by parametric footprint
// generators: board sides, net bindings, the error taxonomy and the package
// logger.
package footprint

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/sexp"
)

// Side selects which face of the board a footprint is mounted on.
type Side int

const (
	Front Side = iota
	Back
)

// SideFor returns Back for a reversed footprint and Front otherwise.
func SideFor(reverse bool) Side {
	if reverse {
		return Back
	}
	return Front
}

// Prefix returns the KiCad layer prefix for the side ("F" or "B").
func (s Side) Prefix() string {
	if s == Back {
		return "B"
	}
	return "F"
}

// Layer qualifies a layer suffix with the side, e.g. Back.Layer("SilkS") is "B.SilkS".
func (s Side) Layer(suffix string) string {
	return s.Prefix() + "." + suffix
}

func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

// ParseSide maps a layer name such as "B.Cu" to its side. Layers without a
// side prefix (e.g. "*.Cu", "Edge.Cuts") report ok=false.
func ParseSide(layer string) (Side, bool) {
	switch {
	case strings.HasPrefix(layer, "F."):
		return Front, true
	case strings.HasPrefix(layer, "B."):
		return Back, true
	}
	return Front, false
}

// Net is a named electrical connection. Number is the board-wide ordinal the
// layout tool uses; 0 is reserved for "unconnected".
type Net struct {
	Number int
	Name   string
}

// Clause renders the net binding as it appears inside a pad, e.g. (net 1 "GND").
func (n Net) Clause() string {
	return fmt.Sprintf("(net %d %s)", n.Number, sexp.Quote(n.Name))
}

// Validate checks that a bound net can be written without producing a
// malformed reference.
func (n Net) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("%w: net %d has no name", ErrNetBinding, n.Number)
	}
	if n.Number <= 0 {
		return fmt.Errorf("%w: net %q has number %d, want > 0", ErrNetBinding, n.Name, n.Number)
	}
	return nil
}

// Generator produces the text of one footprint from its configuration.
// Implementations must be pure so callers can run them concurrently.
type Generator[Config any] interface {
	Name() string
	Generate(cfg Config) (string, error)
}
