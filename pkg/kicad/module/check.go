package module

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
)

// Violation is one structural problem found by Check.
type Violation struct {
	Element string // e.g. "pad 3", "fp_text value"
	Message string
}

func (v Violation) String() string {
	return v.Element + ": " + v.Message
}

// Side returns the mounting side implied by the module layer.
func (m *Module) Side() (footprint.Side, bool) {
	return footprint.ParseSide(m.Layer)
}

// Check reports side-mixing and duplicate tstamps. A module whose every
// side-qualified layer agrees with its mounting layer and whose tstamps are
// unique yields no violations.
func Check(m *Module) []Violation {
	var out []Violation

	side, ok := m.Side()
	if !ok {
		return []Violation{{Element: "module", Message: fmt.Sprintf("layer %q is not a front or back layer", m.Layer)}}
	}

	checkLayer := func(element, layer string) {
		if s, sided := footprint.ParseSide(layer); sided && s != side {
			out = append(out, Violation{
				Element: element,
				Message: fmt.Sprintf("layer %s is on the %s side, module is on the %s side", layer, s, side),
			})
		}
	}

	seen := make(map[string]string)
	checkTstamp := func(element, ts string) {
		if ts == "" {
			return
		}
		if prev, dup := seen[ts]; dup {
			out = append(out, Violation{Element: element, Message: fmt.Sprintf("tstamp %s already used by %s", ts, prev)})
			return
		}
		seen[ts] = element
	}

	for _, t := range m.Texts {
		element := "fp_text " + t.Kind + " " + t.Text
		checkLayer(element, t.Layer)
		checkTstamp(element, string(t.Tstamp))
	}

	for i, p := range m.Pads {
		element := fmt.Sprintf("pad %q (#%d)", p.Number, i+1)
		for _, l := range p.Layers {
			checkLayer(element, l)
		}
		checkTstamp(element, string(p.Tstamp))
	}

	return out
}
