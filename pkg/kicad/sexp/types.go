// Package sexp provides shared S-expression infrastructure for KiCad
// footprint text: typed extraction from parsed trees and the formatting
// rules used when emitting numbers and strings.
package sexp

// Position represents a 2D coordinate in footprint-local millimeters.
// Y grows downwards, as in KiCad.
type Position struct {
	X float64 // X coordinate in mm
	Y float64 // Y coordinate in mm
}

// Angle represents rotation in degrees
type Angle float64

// PositionAngle combines position with rotation
type PositionAngle struct {
	Position
	Angle Angle
}

// Size represents dimensions
type Size struct {
	Width  float64 // Width in mm
	Height float64 // Height in mm
}

// Tstamp is the opaque change-tracking token KiCad attaches to footprint
// elements.
type Tstamp string

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Position // Minimum (top-left) corner
	Max Position // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},
		Max: Position{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandRect grows the box to cover a rectangle of the given size centered
// on pos.
func (bb *BoundingBox) ExpandRect(pos Position, size Size) {
	bb.Expand(Position{X: pos.X - size.Width/2, Y: pos.Y - size.Height/2})
	bb.Expand(Position{X: pos.X + size.Width/2, Y: pos.Y + size.Height/2})
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}
