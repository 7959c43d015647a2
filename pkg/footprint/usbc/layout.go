package usbc

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/sexp"
)

// PadCount is the number of signal contacts the socket exposes.
const PadCount = 6

// contact is one row of the connector's physical pinout.
type contact struct {
	Number      int
	Label       string  // contact name printed on the silkscreen
	Offset      float64 // lateral offset in the normal orientation, mm
	Width       float64 // pad width, mm
	Tstamp      sexp.Tstamp
	LabelTstamp sexp.Tstamp
}

// contacts is ordered by pad number. Offsets are mirrored about the
// centerline; tstamps belong to the contact, never to the orientation.
var contacts = [PadCount]contact{
	{1, "B12", -2.75, 0.8, "3d416885-b8b5-4f5c-bc29-39c6376095e8", "029d749e-2289-4769-a0ce-e768bbda0cd0"},
	{2, "B9", -1.52, 0.76, "9cacb6ad-6bbf-4ffe-b0a4-2df24045e046", "70852beb-7102-4701-922b-9248dc6321b9"},
	{3, "A5", -0.5, 0.7, "272c2a78-b5f5-4b61-aed3-ec69e0e92729", "aa4294ff-e846-499a-a8cf-1632eb69d9c0"},
	{4, "B5", 0.5, 0.7, "402c62e6-8d8e-473a-a0cf-2b86e4908cd7", "226e6848-5ca6-48e1-bb24-ee9637a3e720"},
	{5, "A9", 1.52, 0.76, "10b20c6b-8045-46d1-a965-0d7dd9a1b5fa", "bad15ef1-4174-4239-b07e-7b1abace56d9"},
	{6, "A12", 2.75, 0.8, "d035bb7a-e806-42f2-ba95-a390d279aef1", "5e01567b-a9f5-4f86-b76a-2572d29d2d44"},
}

// Hole is a mechanical stabilizer hole of the socket shell.
type Hole struct {
	Position sexp.Position
	Tstamp   sexp.Tstamp
}

// StabilizerCount is the number of shell holes emitted unless skipped.
const StabilizerCount = 4

var stabilizers = [StabilizerCount]Hole{
	{sexp.Position{X: 4.32, Y: -2.6}, "7bdee640-e6be-4899-b318-a0ad1af68164"},
	{sexp.Position{X: 4.32, Y: -6.4}, "d732dada-3bdf-40ee-b2d0-4e0254c2408c"},
	{sexp.Position{X: -4.32, Y: -6.4}, "e2eaff9d-4c94-4311-bec0-a13146b760ca"},
	{sexp.Position{X: -4.32, Y: -2.6}, "e69003da-ee45-47fd-a7b8-43f97b6fde29"},
}

// Pad is one copper contact after orientation has been applied.
type Pad struct {
	Number        int
	Label         string
	LabelOffset   float64 // silkscreen label position, never merged
	LateralOffset float64
	Width         float64
	Tstamp        sexp.Tstamp
	LabelTstamp   sexp.Tstamp
	Net           *footprint.Net // nil when unconnected
}

// Footprint is the fully laid out socket, ready for rendering.
type Footprint struct {
	Side        footprint.Side
	Position    string
	Rotation    float64
	Reference   string
	Value       string
	Pads        []Pad
	Stabilizers []Hole
}

// LabelRotation is the angle of the per-contact silkscreen labels.
func (f *Footprint) LabelRotation() float64 {
	return f.Rotation + 90
}

// PadRotation is the angle of the copper pads.
func (f *Footprint) PadRotation() float64 {
	return 180 + f.Rotation
}

// Layout computes pad geometry, mounting side and net bindings for p.
//
// Reversing mirrors every lateral offset and moves all layers to the back
// side; pad numbers, labels, tstamps and net bindings stay with the physical
// contact. In symmetric mode pads 1 and 2 are merged into one contact region
// spanning both and carrying the union of nets A and B.
func Layout(p Params) (*Footprint, error) {
	flip := 1.0
	if p.Reverse {
		flip = -1.0
	}

	fp := &Footprint{
		Side:      footprint.SideFor(p.Reverse),
		Position:  p.Position,
		Rotation:  p.Rotation,
		Reference: p.Reference,
		Value:     Value,
		Pads:      make([]Pad, 0, PadCount),
	}

	for _, c := range contacts {
		net := p.Nets.Terminal(c.Number)
		if net != nil {
			if err := net.Validate(); err != nil {
				return nil, fmt.Errorf("pad %d (%s): %w", c.Number, c.Label, err)
			}
		}
		fp.Pads = append(fp.Pads, Pad{
			Number:        c.Number,
			Label:         c.Label,
			LabelOffset:   c.Offset * flip,
			LateralOffset: c.Offset * flip,
			Width:         c.Width,
			Tstamp:        c.Tstamp,
			LabelTstamp:   c.LabelTstamp,
			Net:           net,
		})
	}

	if p.Symmetric {
		if err := mergeContacts(fp.Pads, 0, 1, flip); err != nil {
			return nil, err
		}
	}

	if !p.SkipStabilizers {
		fp.Stabilizers = append([]Hole(nil), stabilizers[:]...)
	}

	if len(fp.Pads) != PadCount {
		return nil, fmt.Errorf("%w: %d pads laid out, want %d", footprint.ErrLayout, len(fp.Pads), PadCount)
	}

	footprint.Logger().Debug("usbc layout",
		zap.Stringer("side", fp.Side),
		zap.Bool("reverse", p.Reverse),
		zap.Bool("symmetric", p.Symmetric),
		zap.Int("stabilizers", len(fp.Stabilizers)))

	return fp, nil
}

// mergeContacts collapses pads i and j onto the region covering both. Their
// labels stay over the original contacts.
func mergeContacts(pads []Pad, i, j int, flip float64) error {
	a, b := contacts[i], contacts[j]

	net, err := unionNet(pads[i].Net, pads[j].Net)
	if err != nil {
		return fmt.Errorf("merging pads %d and %d: %w", a.Number, b.Number, err)
	}

	lo := math.Min(a.Offset-a.Width/2, b.Offset-b.Width/2)
	hi := math.Max(a.Offset+a.Width/2, b.Offset+b.Width/2)
	center := (lo + hi) / 2

	for _, k := range []int{i, j} {
		pads[k].LateralOffset = center * flip
		pads[k].Width = hi - lo
		pads[k].Net = net
	}
	return nil
}

// unionNet returns the single net two merged pads share. Two different nets
// on one copper region would short them, so that is rejected.
func unionNet(a, b *footprint.Net) (*footprint.Net, error) {
	switch {
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	case *a == *b:
		return a, nil
	}
	return nil, fmt.Errorf("%w: nets %q and %q would share one contact", footprint.ErrNetBinding, a.Name, b.Name)
}
