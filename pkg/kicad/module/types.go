// Package module reads footprint text in the legacy (module ...) form back
// into Go values and checks it for structural consistency.
package module

import (
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/sexp"
)

// Module represents one footprint definition
type Module struct {
	Name      string              // Footprint name
	Layer     string              // Mounting layer (F.Cu or B.Cu)
	Tedit     string              // Edit stamp / format tag
	Attr      []string            // Attributes (e.g., smd)
	Position  *sexp.PositionAngle // Placement, when the module carries one
	Reference string              // Reference designator text
	Value     string              // Value text
	Texts     []Text              // Every fp_text element, in file order
	Pads      []Pad               // Every pad element, in file order
}

// Text represents an fp_text element
type Text struct {
	Kind     string // reference, value or user
	Text     string
	Position sexp.PositionAngle
	Layer    string
	Tstamp   sexp.Tstamp
}

// Pad represents a footprint pad
type Pad struct {
	Number   string             // Pad number/name ("" for mechanical holes)
	Type     string             // smd, thru_hole, np_thru_hole, connect
	Shape    string             // circle, rect, oval, roundrect, ...
	Position sexp.PositionAngle // Position and rotation
	Size     sexp.Size          // Pad size
	Drill    *Drill             // Drill, nil for SMD
	Layers   []string           // Layers the pad appears on
	Net      *Net               // Connected net (if any)
	Tstamp   sexp.Tstamp
}

// Drill describes a pad's hole
type Drill struct {
	Oval   bool
	Width  float64
	Height float64
}

// Net is a pad's net binding
type Net struct {
	Number int
	Name   string
}

// IsMechanical reports whether the pad is an unnumbered non-plated hole.
func (p Pad) IsMechanical() bool {
	return p.Type == "np_thru_hole"
}

// CopperPads returns the numbered electrical pads.
func (m *Module) CopperPads() []Pad {
	var out []Pad
	for _, p := range m.Pads {
		if !p.IsMechanical() {
			out = append(out, p)
		}
	}
	return out
}

// MechanicalPads returns the non-plated holes.
func (m *Module) MechanicalPads() []Pad {
	var out []Pad
	for _, p := range m.Pads {
		if p.IsMechanical() {
			out = append(out, p)
		}
	}
	return out
}

// PadByNumber finds a pad by its number.
func (m *Module) PadByNumber(number string) (Pad, bool) {
	for _, p := range m.Pads {
		if p.Number == number {
			return p, true
		}
	}
	return Pad{}, false
}

// GetBoundingBox returns the extent of every pad in footprint-local
// coordinates. Pad rotation is ignored.
func (m *Module) GetBoundingBox() sexp.BoundingBox {
	bb := sexp.NewBoundingBox()
	for _, p := range m.Pads {
		bb.ExpandRect(p.Position.Position, p.Size)
	}
	return bb
}
