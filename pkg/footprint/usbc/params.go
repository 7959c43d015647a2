package usbc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
)

// DefaultDesignator is the reference prefix used when Config.Designator is empty.
const DefaultDesignator = "USBC"

// MaxRotation bounds the magnitude of Config.Rotation in degrees.
const MaxRotation = 1e9

// Nets binds the socket's six logical terminals. A and F are the ground
// contacts, B and E carry VBUS, C and D are the data/CC contacts. Any of them
// may be nil, meaning the pad is left unconnected.
type Nets struct {
	A, B, C, D, E, F *footprint.Net
}

// Terminal returns the net bound to the terminal that feeds the given pad
// (A for 1 through F for 6).
func (n Nets) Terminal(pad int) *footprint.Net {
	switch pad {
	case 1:
		return n.A
	case 2:
		return n.B
	case 3:
		return n.C
	case 4:
		return n.D
	case 5:
		return n.E
	case 6:
		return n.F
	}
	return nil
}

// Config is the parameter set the footprint-library framework passes in.
// Nil flags take their documented default of false.
type Config struct {
	Designator      string
	Reverse         *bool
	Symmetric       *bool
	SkipStabilizers *bool
	Nets            Nets

	// Placement values computed by the caller and spliced verbatim.
	Position  string  // already-formatted clause, e.g. (at 10 20 90)
	Rotation  float64 // degrees
	Reference string  // already-formatted reference text, e.g. USBC1
}

// Params is a Config with every default applied and required fields checked.
type Params struct {
	Designator      string `validate:"required"`
	Reverse         bool
	Symmetric       bool
	SkipStabilizers bool
	Nets            Nets `validate:"-"`
	Position        string `validate:"required"`
	Rotation        float64
	Reference       string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Resolve applies defaults to cfg and fails fast on missing placement fields.
// Nets are passed through untouched; binding rules are enforced by Layout.
func Resolve(cfg Config) (Params, error) {
	p := Params{
		Designator:      cfg.Designator,
		Reverse:         flag(cfg.Reverse),
		Symmetric:       flag(cfg.Symmetric),
		SkipStabilizers: flag(cfg.SkipStabilizers),
		Nets:            cfg.Nets,
		Position:        strings.TrimSpace(cfg.Position),
		Rotation:        cfg.Rotation,
		Reference:       cfg.Reference,
	}
	if p.Designator == "" {
		p.Designator = DefaultDesignator
	}

	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			names := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				names = append(names, fe.Field())
			}
			return Params{}, fmt.Errorf("%w: missing %s", footprint.ErrConfig, strings.Join(names, ", "))
		}
		return Params{}, fmt.Errorf("%w: %v", footprint.ErrConfig, err)
	}

	if math.IsNaN(p.Rotation) || math.IsInf(p.Rotation, 0) {
		return Params{}, fmt.Errorf("%w: rotation %v is not a finite angle", footprint.ErrConfig, p.Rotation)
	}
	if math.Abs(p.Rotation) > MaxRotation {
		return Params{}, fmt.Errorf("%w: rotation %v exceeds ±%g degrees", footprint.ErrConfig, p.Rotation, float64(MaxRotation))
	}

	return p, nil
}

func flag(v *bool) bool {
	return v != nil && *v
}

// Bool returns a pointer to v, for filling Config flags.
func Bool(v bool) *bool {
	return &v
}
