package sexp

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/sexp/kicadsexp"
)

// S-expression navigation helpers

// FindNode searches for a child list whose first symbol is key.
// Example: FindNode(sexp, "at") finds (at 100 50) in a list
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	for _, item := range SexpToSlice(s) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, err := GetNodeName(item); err == nil && name == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes finds all child nodes with the given key
func FindAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp {
	var results []kicadsexp.Sexp
	for _, item := range SexpToSlice(s) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, err := GetNodeName(item); err == nil && name == key {
			results = append(results, item)
		}
	}
	return results
}

// GetListItems returns all items in a list (excluding the first symbol/key)
// Example: GetListItems((layers "F.Cu" "B.Cu")) returns ["F.Cu", "B.Cu"]
func GetListItems(s kicadsexp.Sexp) []kicadsexp.Sexp {
	all := SexpToSlice(s)
	if len(all) <= 1 {
		return []kicadsexp.Sexp{}
	}
	return all[1:]
}

// SexpToSlice converts an s-expression list to a Go slice
func SexpToSlice(s kicadsexp.Sexp) []kicadsexp.Sexp {
	if s == nil || s.IsLeaf() {
		return nil
	}
	if l, ok := s.(*kicadsexp.List); ok {
		return l.Items()
	}

	// Foreign Sexp implementations: walk Head/Tail
	var items []kicadsexp.Sexp
	for s != nil && !s.IsLeaf() && s.LeafCount() > 0 {
		items = append(items, s.Head())
		if s.LeafCount() <= 1 {
			break
		}
		s = s.Tail()
	}
	return items
}

// Typed value extraction helpers

// GetString extracts an atom at the given index in a list.
// Index 0 is the key, 1 is first value, etc.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	if s == nil || s.IsLeaf() {
		return "", fmt.Errorf("expected list, got leaf")
	}

	items := SexpToSlice(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}

	if sym, ok := items[index].(kicadsexp.Symbol); ok {
		return string(sym), nil
	}

	return "", fmt.Errorf("expected symbol at index %d, got %T", index, items[index])
}

// GetFloat extracts a float64 value at the given index
func GetFloat(s kicadsexp.Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}

	return val, nil
}

// GetInt extracts an int value at the given index
func GetInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}

// GetNodeName returns the first symbol of a list (the node type/name)
func GetNodeName(s kicadsexp.Sexp) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil node")
	}
	if s.IsLeaf() {
		if sym, ok := s.(kicadsexp.Symbol); ok {
			return string(sym), nil
		}
		return "", fmt.Errorf("expected symbol leaf")
	}

	if sym, ok := s.Head().(kicadsexp.Symbol); ok {
		return string(sym), nil
	}

	return "", fmt.Errorf("expected symbol at head of list")
}

// HasSymbol checks if a list contains a specific bare symbol
func HasSymbol(s kicadsexp.Sexp, symbol string) bool {
	for _, item := range SexpToSlice(s) {
		if sym, ok := item.(kicadsexp.Symbol); ok && string(sym) == symbol {
			return true
		}
	}
	return false
}

// Domain-specific extraction helpers

// GetPosition extracts a PositionAngle from an (at X Y [angle] [unlocked]) node.
// Footprint text stores degrees and millimeters directly.
func GetPosition(s kicadsexp.Sexp) (PositionAngle, error) {
	key, err := GetString(s, 0)
	if err != nil {
		return PositionAngle{}, err
	}
	if key != "at" {
		return PositionAngle{}, fmt.Errorf("expected 'at', got %q", key)
	}

	x, err := GetFloat(s, 1)
	if err != nil {
		return PositionAngle{}, fmt.Errorf("failed to parse X coordinate: %w", err)
	}
	y, err := GetFloat(s, 2)
	if err != nil {
		return PositionAngle{}, fmt.Errorf("failed to parse Y coordinate: %w", err)
	}

	result := PositionAngle{Position: Position{X: x, Y: y}}

	// Angle is optional; a trailing "unlocked" is not an angle
	if angle, err := GetFloat(s, 3); err == nil {
		result.Angle = Angle(angle)
	}

	return result, nil
}

// GetSize extracts a Size from a (size W H) node.
func GetSize(s kicadsexp.Sexp) (Size, error) {
	w, err := GetFloat(s, 1)
	if err != nil {
		return Size{}, fmt.Errorf("failed to parse width: %w", err)
	}
	h, err := GetFloat(s, 2)
	if err != nil {
		return Size{}, fmt.Errorf("failed to parse height: %w", err)
	}
	return Size{Width: w, Height: h}, nil
}

// GetTstamp extracts the token from a child (tstamp ...) node, if present.
func GetTstamp(s kicadsexp.Sexp) (Tstamp, bool) {
	node, ok := FindNode(s, "tstamp")
	if !ok {
		return "", false
	}
	str, err := GetString(node, 1)
	if err != nil {
		return "", false
	}
	return Tstamp(str), true
}

// GetLayer returns the value of a child (layer ...) node.
func GetLayer(s kicadsexp.Sexp) (string, bool) {
	node, ok := FindNode(s, "layer")
	if !ok {
		return "", false
	}
	layer, err := GetString(node, 1)
	if err != nil {
		return "", false
	}
	return layer, true
}
