package usbc

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/sexp"
)

const (
	// Name is the footprint name written in the module header.
	Name = "usb-c-socket-lumpy"

	// Value is the fabrication-layer value text.
	Value = "usb-c-socket"

	// Tedit is the format-version edit stamp of the module header.
	Tedit = "655D029A"

	valueTstamp = "c58960d9-4cac-4036-ad2e-1aef26946dae"
)

var funcs = template.FuncMap{
	"num":   sexp.FormatFloat,
	"quote": sexp.Quote,
	"name":  func() string { return Name },
	"tedit": func() string { return Tedit },
	"valueTstamp": func() string {
		return valueTstamp
	},
}

// Element order is fixed: header, attr, placement, reference, value,
// contact labels, stabilizer holes, copper pads.
const footprintTemplate = `(module {{name}} (layer {{.Side.Layer "Cu"}}) (tedit {{tedit}})
  (attr smd)
  {{.Position}}
  (fp_text reference {{quote .Reference}} (at 0 -0.5 unlocked) (layer {{quote (.Side.Layer "SilkS")}})
    (effects (font (size 1 1) (thickness 0.15)))
  )
  (fp_text value {{quote .Value}} (at 0 1 {{num .Rotation}} unlocked) (layer {{quote (.Side.Layer "Fab")}})
    (effects (font (size 1 1) (thickness 0.15)))
    (tstamp {{valueTstamp}})
  )
{{- range .Pads}}
  (fp_text user {{quote .Label}} (at {{num .LabelOffset}} -9.25 {{num $.LabelRotation}} unlocked) (layer {{quote ($.Side.Layer "SilkS")}})
    (effects (font (size 0.7 0.7) (thickness 0.15)))
    (tstamp {{.LabelTstamp}})
  )
{{- end}}
{{- range .Stabilizers}}
  (pad "" np_thru_hole oval (at {{num .Position.X}} {{num .Position.Y}} {{num $.Rotation}}) (size 1.1 1.7) (drill oval 0.6 1.2) (layers *.Cu *.Mask) (tstamp {{.Tstamp}}))
{{- end}}
{{- range .Pads}}
  (pad {{.Number}} smd roundrect (at {{num .LateralOffset}} -6.4 {{num $.PadRotation}}) (size {{num .Width}} 1.2) (layers {{quote ($.Side.Layer "Cu")}} {{quote ($.Side.Layer "Paste")}} {{quote ($.Side.Layer "Mask")}}){{with .Net}} {{.Clause}}{{end}} (roundrect_rratio 0.25) (tstamp {{.Tstamp}}))
{{- end}}
)
`

var footprintTmpl = template.Must(template.New(Name).Funcs(funcs).Parse(footprintTemplate))

// Render serializes a laid out footprint into module text.
func Render(fp *Footprint) (string, error) {
	if fp == nil {
		return "", fmt.Errorf("%w: nil footprint", footprint.ErrLayout)
	}
	if len(fp.Pads) != PadCount {
		return "", fmt.Errorf("%w: %d pads, want %d", footprint.ErrLayout, len(fp.Pads), PadCount)
	}
	if n := len(fp.Stabilizers); n != 0 && n != StabilizerCount {
		return "", fmt.Errorf("%w: %d stabilizers, want 0 or %d", footprint.ErrLayout, n, StabilizerCount)
	}

	var b strings.Builder
	if err := footprintTmpl.Execute(&b, fp); err != nil {
		return "", fmt.Errorf("rendering %s: %w", Name, err)
	}
	return b.String(), nil
}
