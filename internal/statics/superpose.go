package statics

// Superpose combines the reactions of several independent point loads by
// summing the end moments and support reactions of each load. This relies
// on the small-deflection linear-elastic assumption; it is not valid for
// loads that interact nonlinearly.
//
// The MF field of the aggregate is left zero on purpose: each load's peak
// sits at a different position, so summing the per-load local peaks
// overestimates the combined span moment. Evaluate the aggregate field
// with MomentAt or SampleField at the position of interest instead.
//
// An empty load slice is a valid input and yields all-zero reactions.
// Summation is commutative, so the order of loads never affects the
// result.
func (g *Girder) Superpose(loads []PointLoad) (Reactions, error) {
	var total Reactions
	for _, p := range loads {
		r, err := g.PointLoadReactions(p)
		if err != nil {
			return Reactions{}, err
		}
		total.MA += r.MA
		total.MB += r.MB
		total.RA += r.RA
		total.RB += r.RB
	}
	return total, nil
}

// MomentAt evaluates the aggregate bending moment of one or more point
// loads at position x by summing each load's piecewise-linear moment
// function. This is the correct way to obtain the combined span moment at
// a point of interest (e.g. midspan) for multiple loads.
func (g *Girder) MomentAt(loads []PointLoad, x float64) (float64, error) {
	if err := g.checkPosition(x); err != nil {
		return 0, err
	}
	var m float64
	for _, p := range loads {
		r, err := g.PointLoadReactions(p)
		if err != nil {
			return 0, err
		}
		m += pointMomentAt(r, p, x)
	}
	return m, nil
}

// pointMomentAt evaluates a single point load's moment diagram, which is
// piecewise linear with one breakpoint at the load position:
//
//	x <= a: M(x) = M_A + R_A·x
//	x >  a: M(x) = M_F + (R_A - F)·(x - a)
//
// The two branches agree at x = a (both equal M_F); continuity there is a
// property of the closed-form solutions, not a numerical accident.
func pointMomentAt(r Reactions, p PointLoad, x float64) float64 {
	if x <= p.A {
		return r.MA + r.RA*x
	}
	return r.MF + (r.RA-p.F)*(x-p.A)
}
