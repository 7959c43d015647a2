// Package usbc generates the footprint of a six-contact USB-C receptacle
// (power and USB 2.0 data only) for normal, reversed and symmetric placement.
//
// Generation is a straight pipeline: Resolve fills defaults and checks the
// caller's placement fields, Layout applies the orientation to the fixed
// pinout, and Render writes the module text. Every step is a pure function,
// so concurrent calls need no coordination.
package usbc

import (
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
)

// Generate produces the module text for cfg. On error nothing is returned;
// the error wraps footprint.ErrConfig, footprint.ErrNetBinding or
// footprint.ErrLayout.
func Generate(cfg Config) (string, error) {
	p, err := Resolve(cfg)
	if err != nil {
		return "", err
	}

	fp, err := Layout(p)
	if err != nil {
		return "", err
	}

	out, err := Render(fp)
	if err != nil {
		return "", err
	}

	footprint.Logger().Debug("generated footprint",
		zap.String("footprint", Name),
		zap.String("reference", p.Reference),
		zap.Int("bytes", len(out)))

	return out, nil
}

// Generator exposes Generate through the footprint.Generator interface.
type Generator struct{}

var _ footprint.Generator[Config] = Generator{}

// Name returns the generator's registry name.
func (Generator) Name() string { return "usbc" }

// Generate implements footprint.Generator.
func (Generator) Generate(cfg Config) (string, error) { return Generate(cfg) }
