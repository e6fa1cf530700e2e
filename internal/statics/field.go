package statics

import (
	"fmt"
	"sort"
)

// MomentSample is one point of a sampled bending-moment diagram.
type MomentSample struct {
	X float64 // position along the span (m)
	M float64 // bending moment at X (kN-m, sagging positive)
}

// MomentField is a bending-moment diagram sampled at increasing X. It is
// the numeric series a plotting collaborator consumes.
type MomentField []MomentSample

// Extremum is the located extreme value of a sampled field. Found is
// false when no sample qualifies (e.g. a fully hogging beam has no
// sagging extremum); that is a legitimate outcome, not an error.
type Extremum struct {
	X     float64
	M     float64
	Found bool
}

// MaxSagging returns the largest positive (sagging) moment in the field
// and its position.
func (f MomentField) MaxSagging() Extremum {
	var ext Extremum
	for _, s := range f {
		if s.M > 0 && (!ext.Found || s.M > ext.M) {
			ext = Extremum{X: s.X, M: s.M, Found: true}
		}
	}
	return ext
}

// MaxHogging returns the most negative (hogging) moment in the field and
// its position.
func (f MomentField) MaxHogging() Extremum {
	var ext Extremum
	for _, s := range f {
		if s.M < 0 && (!ext.Found || s.M < ext.M) {
			ext = Extremum{X: s.X, M: s.M, Found: true}
		}
	}
	return ext
}

// SampleFieldAt evaluates the aggregate moment of the given point loads
// at each caller-supplied position. An empty position set returns an
// empty field. Positions are evaluated in the order given.
func (g *Girder) SampleFieldAt(loads []PointLoad, xs []float64) (MomentField, error) {
	// Solve each load once; every position reuses the same reactions.
	rs := make([]Reactions, len(loads))
	for i, p := range loads {
		r, err := g.PointLoadReactions(p)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	field := make(MomentField, 0, len(xs))
	for _, x := range xs {
		if err := g.checkPosition(x); err != nil {
			return nil, err
		}
		var m float64
		for i, p := range loads {
			m += pointMomentAt(rs[i], p, x)
		}
		field = append(field, MomentSample{X: x, M: m})
	}
	return field, nil
}

// SampleField evaluates the aggregate moment of the given point loads on
// a grid of n evenly spaced positions over [0, L]. Every load position is
// inserted into the grid exactly once so the diagram carries the true
// peak under each load instead of a rounded neighbor.
func (g *Girder) SampleField(loads []PointLoad, n int) (MomentField, error) {
	xs, err := g.sampleGrid(loads, n)
	if err != nil {
		return nil, err
	}
	return g.SampleFieldAt(loads, xs)
}

// SampleUniformField evaluates the quadratic moment diagram of a uniform
// load, M(x) = M_A + R_A·x - q·x²/2, on n evenly spaced positions.
func (g *Girder) SampleUniformField(u UniformLoad, n int) (MomentField, error) {
	xs, err := g.sampleGrid(nil, n)
	if err != nil {
		return nil, err
	}
	r, err := g.UniformLoadReactions(u)
	if err != nil {
		return nil, err
	}
	field := make(MomentField, 0, len(xs))
	for _, x := range xs {
		m := r.MA + r.RA*x - u.Q*x*x/2
		field = append(field, MomentSample{X: x, M: m})
	}
	return field, nil
}

// sampleGrid builds n evenly spaced positions over [0, L] and merges in
// each load position, deduplicated, sorted ascending.
func (g *Girder) sampleGrid(loads []PointLoad, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("sample count must be at least 2, got %d", n)
	}
	for _, p := range loads {
		if err := g.checkPosition(p.A); err != nil {
			return nil, err
		}
	}
	xs := make([]float64, n, n+len(loads))
	step := g.Span / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	xs[n-1] = g.Span // exact endpoint, no rounding drift

	// Each load position must appear in the grid exactly once, and must be
	// exact so the sample there carries the true peak M_F. A grid node
	// within rounding distance of the load is snapped onto it; otherwise
	// the position is inserted.
	tol := g.Span * 1e-12
	for _, p := range loads {
		present := false
		for i, x := range xs {
			if diff := x - p.A; diff < tol && diff > -tol {
				xs[i] = p.A
				present = true
				break
			}
		}
		if !present {
			xs = append(xs, p.A)
		}
	}
	sort.Float64s(xs)
	return xs, nil
}
