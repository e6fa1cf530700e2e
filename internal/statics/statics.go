// Package statics computes internal bending moments and support reactions
// for single-span girders using closed-form elastic solutions.
//
// Sign convention throughout the package:
//   - Loads: downward positive.
//   - Moments: positive for sagging (bottom fiber in tension). End moments
//     of fixed-ended girders therefore come out negative (hogging).
//
// All results assume small deflections and linear-elastic behavior, which
// is what makes superposition of multiple loads valid.
package statics

import (
	"errors"
	"fmt"
)

// Errors returned when inputs are rejected. All validation happens before
// any computation; there are no partial results.
var (
	// ErrInvalidSpan indicates a span length that is not strictly positive.
	ErrInvalidSpan = errors.New("invalid span")

	// ErrOutOfRange indicates a position outside the span interval [0, L].
	ErrOutOfRange = errors.New("position out of range")

	// ErrUnsupportedCondition indicates a support condition that is not one
	// of the two recognized values.
	ErrUnsupportedCondition = errors.New("unsupported support condition")
)

// Support is the end restraint condition of a girder. Both ends of a span
// share the same condition; mixed end conditions are not supported.
type Support int

const (
	// SupportPinned - both ends free to rotate (simply supported).
	SupportPinned Support = iota
	// SupportFixed - both ends restrained against rotation.
	SupportFixed
)

// String returns the external name of the support condition.
func (s Support) String() string {
	switch s {
	case SupportPinned:
		return "pinned"
	case SupportFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Support(%d)", int(s))
	}
}

// ParseSupport maps the external names "pinned" and "fixed" to a Support.
func ParseSupport(name string) (Support, error) {
	switch name {
	case "pinned":
		return SupportPinned, nil
	case "fixed":
		return SupportFixed, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be \"pinned\" or \"fixed\")", ErrUnsupportedCondition, name)
	}
}

// valid reports whether s is one of the recognized conditions.
func (s Support) valid() bool {
	return s == SupportPinned || s == SupportFixed
}

// PointLoad is a concentrated load on the span.
type PointLoad struct {
	F float64 // load magnitude (kN, positive downward)
	A float64 // distance from left support A to the load point (m)
}

// UniformLoad is a uniformly distributed load over the full span.
type UniformLoad struct {
	Q float64 // load intensity (kN/m, positive downward)
}

// Reactions holds the end moments and support reactions for one load case.
// For any valid input, RA + RB equals the total applied load and moment
// equilibrium about either support is satisfied.
type Reactions struct {
	MA float64 // moment at left support A (kN-m, negative = hogging)
	MB float64 // moment at right support B (kN-m)
	MF float64 // span moment: under the load for a point load, at midspan for a uniform load (kN-m)
	RA float64 // vertical reaction at support A (kN)
	RB float64 // vertical reaction at support B (kN)
}

// Girder is a single-span beam with identical end conditions. It is a
// value object: construct one per geometry, call its solver methods, and
// discard it. Methods never mutate the girder.
type Girder struct {
	Support Support
	Span    float64 // clear span L (m)
}

// NewGirder validates the geometry and support condition up front so that
// an invalid girder never reaches the formula tables.
func NewGirder(support Support, span float64) (*Girder, error) {
	if !support.valid() {
		return nil, fmt.Errorf("%w: %d (must be \"pinned\" or \"fixed\")", ErrUnsupportedCondition, int(support))
	}
	if span <= 0 {
		return nil, fmt.Errorf("%w: L=%.3f (must be positive)", ErrInvalidSpan, span)
	}
	return &Girder{Support: support, Span: span}, nil
}

// checkPosition rejects positions outside [0, L]. Positions exactly on a
// support (x = 0 or x = L) are valid: a load there is carried entirely by
// the coincident support as the limit of the closed-form solutions.
func (g *Girder) checkPosition(x float64) error {
	if x < 0 || x > g.Span {
		return fmt.Errorf("%w: a=%.3f (span is [0, %.3f])", ErrOutOfRange, x, g.Span)
	}
	return nil
}
