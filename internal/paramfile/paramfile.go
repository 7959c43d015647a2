// Package paramfile reads footprint parameter files: one "key = value" per
// line, # comments, booleans, numbers, bare words and quoted strings.
package paramfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint/usbc"
)

var parser = participle.MustBuild[File](
	participle.Lexer(ParamLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse parses a parameter file from a reader
func Parse(r io.Reader) (*File, error) {
	f, err := parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a parameter file held in memory
func ParseString(input string) (*File, error) {
	f, err := parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a parameter file from a path
func ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := parser.Parse(filename, file)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ApplyUSBC copies the file's entries onto cfg. Net names are numbered
// through nets. Keys are case-sensitive except for the aliases listed in
// usbcKeys; unknown and repeated keys are errors.
func (f *File) ApplyUSBC(cfg *usbc.Config, nets *footprint.NetTable) error {
	seen := make(map[string]bool)
	for _, e := range f.Entries {
		key, ok := usbcKeys[e.Key]
		if !ok {
			return fmt.Errorf("%s: unknown parameter %q", e.Pos, e.Key)
		}
		if seen[key] {
			return fmt.Errorf("%s: parameter %q set twice", e.Pos, e.Key)
		}
		seen[key] = true

		if err := applyUSBC(cfg, nets, key, e.Value); err != nil {
			return fmt.Errorf("%s: %s: %w", e.Pos, e.Key, err)
		}
	}
	return nil
}

// usbcKeys maps accepted spellings to canonical parameter names.
var usbcKeys = map[string]string{
	"designator":       "designator",
	"reverse":          "reverse",
	"symmetric":        "symmetric",
	"skip_stabilizers": "skip_stabilizers",
	"skipStabilizers":  "skip_stabilizers",
	"at":               "at",
	"position":         "at",
	"rotation":         "rotation",
	"rot":              "rotation",
	"ref":              "ref",
	"reference":        "ref",
	"A":                "A",
	"B":                "B",
	"C":                "C",
	"D":                "D",
	"E":                "E",
	"F":                "F",
}

func applyUSBC(cfg *usbc.Config, nets *footprint.NetTable, key string, v *Value) error {
	switch key {
	case "reverse", "symmetric", "skip_stabilizers":
		if v.Bool == nil {
			return fmt.Errorf("expected true or false, got %s", v)
		}
		b := bool(*v.Bool)
		switch key {
		case "reverse":
			cfg.Reverse = &b
		case "symmetric":
			cfg.Symmetric = &b
		default:
			cfg.SkipStabilizers = &b
		}

	case "rotation":
		if v.Number == nil {
			return fmt.Errorf("expected a number, got %s", v)
		}
		cfg.Rotation = *v.Number

	case "designator", "at", "ref":
		s, ok := v.Text()
		if !ok {
			return fmt.Errorf("expected text, got %s", v)
		}
		switch key {
		case "designator":
			cfg.Designator = s
		case "at":
			cfg.Position = s
		default:
			cfg.Reference = s
		}

	default:
		s, ok := v.Text()
		if !ok {
			return fmt.Errorf("expected a net name, got %s", v)
		}
		net := nets.Net(strings.TrimSpace(s))
		switch key {
		case "A":
			cfg.Nets.A = net
		case "B":
			cfg.Nets.B = net
		case "C":
			cfg.Nets.C = net
		case "D":
			cfg.Nets.D = net
		case "E":
			cfg.Nets.E = net
		case "F":
			cfg.Nets.F = net
		}
	}
	return nil
}
