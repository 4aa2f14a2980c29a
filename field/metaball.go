// Package field provides scalar field evaluators for the contour
// pipeline. The core library is agnostic to how field values are
// produced; this package supplies the classic metaball influence field
// used by the demos.
package field

import (
	"math"

	"github.com/gogpu/contour"
)

// Metaball is one disc-shaped source of field influence.
type Metaball struct {
	Center contour.Point
	Radius float64

	radiusSq float64
}

// NewMetaball creates a metaball with its squared radius precomputed.
func NewMetaball(center contour.Point, radius float64) Metaball {
	return Metaball{
		Center:   center,
		Radius:   radius,
		radiusSq: radius * radius,
	}
}

// Influence returns the ball's contribution at p: radius²/distance².
// The value is 1 exactly on the ball's rim and grows without bound
// toward the center, so a threshold of 1 traces the rims of isolated
// balls and blends overlapping ones.
func (m Metaball) Influence(p contour.Point) float64 {
	d2 := m.Center.DistanceSquared(p)
	if d2 == 0 {
		return math.Inf(1)
	}
	return m.radiusSq / d2
}

// MoveTo repositions the ball.
func (m *Metaball) MoveTo(center contour.Point) {
	m.Center = center
}

// SetRadius changes the ball's radius and refreshes the cached square.
func (m *Metaball) SetRadius(radius float64) {
	m.Radius = radius
	m.radiusSq = radius * radius
}

// MetaballSet is a mutable list of metaballs implementing
// [contour.Field] as the sum of the balls' influences. The host owns
// the set and moves balls between frames; the contour pipeline only
// reads it.
type MetaballSet struct {
	balls []Metaball
}

// NewMetaballSet creates an empty set.
func NewMetaballSet() *MetaballSet {
	return &MetaballSet{}
}

// Add appends a ball and returns its index.
func (s *MetaballSet) Add(center contour.Point, radius float64) int {
	s.balls = append(s.balls, NewMetaball(center, radius))
	return len(s.balls) - 1
}

// Remove deletes the ball at index i, preserving the order of the rest.
func (s *MetaballSet) Remove(i int) {
	s.balls = append(s.balls[:i], s.balls[i+1:]...)
}

// At returns the ball at index i for in-place mutation.
func (s *MetaballSet) At(i int) *Metaball {
	return &s.balls[i]
}

// Len returns the number of balls.
func (s *MetaballSet) Len() int {
	return len(s.balls)
}

// Sample implements [contour.Field] by summing every ball's influence
// at p.
func (s *MetaballSet) Sample(p contour.Point) float64 {
	var sum float64
	for i := range s.balls {
		sum += s.balls[i].Influence(p)
	}
	return sum
}
