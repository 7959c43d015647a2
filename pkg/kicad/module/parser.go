package module

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/sexp/kicadsexp"
)

// ParseFile reads and parses a footprint file
func ParseFile(filename string) (*Module, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// ParseString parses footprint text held in memory
func ParseString(s string) (*Module, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads exactly one (module ...) expression from r
func Parse(r io.Reader) (*Module, error) {
	root, err := kicadsexp.ParseOne(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	rootName, err := sexp.GetNodeName(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get root node name: %w", err)
	}
	if rootName != "module" && rootName != "footprint" {
		return nil, fmt.Errorf("not a footprint: expected 'module', got '%s'", rootName)
	}

	return parseModule(root)
}

func parseModule(node kicadsexp.Sexp) (*Module, error) {
	m := &Module{}

	name, err := sexp.GetString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprint name: %w", err)
	}
	m.Name = name

	layer, ok := sexp.GetLayer(node)
	if !ok {
		return nil, fmt.Errorf("missing required 'layer' field")
	}
	m.Layer = layer

	if teditNode, found := sexp.FindNode(node, "tedit"); found {
		m.Tedit, _ = sexp.GetString(teditNode, 1)
	}

	if attrNode, found := sexp.FindNode(node, "attr"); found {
		for _, item := range sexp.GetListItems(attrNode) {
			if item.IsLeaf() {
				m.Attr = append(m.Attr, item.String())
			}
		}
	}

	if atNode, found := sexp.FindNode(node, "at"); found {
		pos, err := sexp.GetPosition(atNode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse placement: %w", err)
		}
		m.Position = &pos
	}

	for _, textNode := range sexp.FindAllNodes(node, "fp_text") {
		text, err := parseText(textNode)
		if err != nil {
			return nil, fmt.Errorf("fp_text %d: %w", len(m.Texts)+1, err)
		}
		switch text.Kind {
		case "reference":
			m.Reference = text.Text
		case "value":
			m.Value = text.Text
		}
		m.Texts = append(m.Texts, *text)
	}

	for _, padNode := range sexp.FindAllNodes(node, "pad") {
		pad, err := parsePad(padNode)
		if err != nil {
			return nil, fmt.Errorf("pad %d: %w", len(m.Pads)+1, err)
		}
		m.Pads = append(m.Pads, *pad)
	}

	return m, nil
}

// parseText extracts an fp_text element
// Expected format: (fp_text kind "text" (at x y [angle] [unlocked]) (layer "L") (effects ...) [(tstamp t)])
func parseText(node kicadsexp.Sexp) (*Text, error) {
	kind, err := sexp.GetString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text kind: %w", err)
	}
	value, err := sexp.GetString(node, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text: %w", err)
	}

	text := &Text{Kind: kind, Text: value}

	atNode, found := sexp.FindNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	if text.Position, err = sexp.GetPosition(atNode); err != nil {
		return nil, err
	}

	layer, ok := sexp.GetLayer(node)
	if !ok {
		return nil, fmt.Errorf("missing required 'layer' field")
	}
	text.Layer = layer
	text.Tstamp, _ = sexp.GetTstamp(node)

	return text, nil
}

// parsePad extracts a pad definition from a footprint
// Expected format: (pad "number" type shape (at x y [angle]) (size w h) (layers ...) [(net n "name")] ...)
func parsePad(node kicadsexp.Sexp) (*Pad, error) {
	pad := &Pad{}

	number, err := sexp.GetString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad number: %w", err)
	}
	pad.Number = number

	if pad.Type, err = sexp.GetString(node, 2); err != nil {
		return nil, fmt.Errorf("failed to parse pad type: %w", err)
	}
	if pad.Shape, err = sexp.GetString(node, 3); err != nil {
		return nil, fmt.Errorf("failed to parse pad shape: %w", err)
	}

	atNode, found := sexp.FindNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	if pad.Position, err = sexp.GetPosition(atNode); err != nil {
		return nil, err
	}

	sizeNode, found := sexp.FindNode(node, "size")
	if !found {
		return nil, fmt.Errorf("missing required 'size' field")
	}
	if pad.Size, err = sexp.GetSize(sizeNode); err != nil {
		return nil, err
	}

	if drillNode, found := sexp.FindNode(node, "drill"); found {
		drill, err := parseDrill(drillNode)
		if err != nil {
			return nil, err
		}
		pad.Drill = drill
	}

	layersNode, found := sexp.FindNode(node, "layers")
	if !found {
		return nil, fmt.Errorf("missing required 'layers' field")
	}
	for _, item := range sexp.GetListItems(layersNode) {
		if item.IsLeaf() && item.String() != "" {
			pad.Layers = append(pad.Layers, item.String())
		}
	}

	if netNode, found := sexp.FindNode(node, "net"); found {
		num, err := sexp.GetInt(netNode, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse net number: %w", err)
		}
		name, err := sexp.GetString(netNode, 2)
		if err != nil {
			return nil, fmt.Errorf("failed to parse net name: %w", err)
		}
		pad.Net = &Net{Number: num, Name: name}
	}

	pad.Tstamp, _ = sexp.GetTstamp(node)

	return pad, nil
}

// parseDrill handles (drill d) and (drill oval w h)
func parseDrill(node kicadsexp.Sexp) (*Drill, error) {
	if sexp.HasSymbol(node, "oval") {
		w, err := sexp.GetFloat(node, 2)
		if err != nil {
			return nil, fmt.Errorf("failed to parse drill width: %w", err)
		}
		h, err := sexp.GetFloat(node, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to parse drill height: %w", err)
		}
		return &Drill{Oval: true, Width: w, Height: h}, nil
	}

	d, err := sexp.GetFloat(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse drill: %w", err)
	}
	return &Drill{Width: d, Height: d}, nil
}
