// Package kicadsexp provides a lightweight streaming S-expression parser
// for KiCad footprint and board text. Quoted strings are returned as a single
// atom with the quotes removed, so names containing spaces survive intact.
package kicadsexp

import (
	"fmt"
	"io"
	"strings"
)

// Sexp represents an S-expression node.
// It can be either a leaf (atom) or a list.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// LeafCount returns the number of elements in a list (1 for atoms)
	LeafCount() int

	// Head returns the first element of a list (the atom itself for atoms)
	Head() Sexp

	// Tail returns the rest of the list after the first element (nil for atoms)
	Tail() Sexp

	// String returns the string representation
	String() string
}

// Symbol represents an atomic symbol (string, number, identifier)
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// List represents a list of S-expressions
type List struct {
	elements []Sexp
}

// NewList builds a list from already parsed elements.
func NewList(elements ...Sexp) *List {
	return &List{elements: elements}
}

func (l *List) IsLeaf() bool { return false }

func (l *List) LeafCount() int {
	return len(l.elements)
}

func (l *List) Head() Sexp {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return &List{elements: l.elements[1:]}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at the given index
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.elements)
}

// Items returns the list elements. The slice must not be modified.
func (l *List) Items() []Sexp {
	return l.elements
}

// Parse parses every top-level S-expression from an io.Reader.
func Parse(r io.Reader) ([]Sexp, error) {
	parser := NewParser(r)
	return parser.ParseAll()
}

// ParseString parses S-expressions from a string (convenience function)
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}

// ParseOne parses input that must hold exactly one top-level expression.
func ParseOne(r io.Reader) (Sexp, error) {
	all, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if len(all) != 1 {
		return nil, fmt.Errorf("expected exactly one expression, got %d", len(all))
	}
	return all[0], nil
}
