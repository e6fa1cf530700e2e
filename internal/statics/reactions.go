package statics

import "fmt"

// Closed-form reaction and end-moment formulas, one entry per
// (support condition, load kind). Keeping the formulas in tables keyed by
// the Support enum means an unrecognized condition can never reach the
// arithmetic: the lookup fails first.

type pointFormula func(f, a, l float64) Reactions

type uniformFormula func(q, l float64) Reactions

var pointFormulas = map[Support]pointFormula{
	SupportPinned: pinnedPointLoad,
	SupportFixed:  fixedPointLoad,
}

var uniformFormulas = map[Support]uniformFormula{
	SupportPinned: pinnedUniformLoad,
	SupportFixed:  fixedUniformLoad,
}

// pinnedPointLoad solves a simply supported span with a concentrated load.
//
//	M_F = F·a·b/L   R_A = F·b/L   R_B = F·a/L
func pinnedPointLoad(f, a, l float64) Reactions {
	b := l - a
	return Reactions{
		MF: f * a * b / l,
		RA: f * b / l,
		RB: f * a / l,
	}
}

// fixedPointLoad solves a fixed-ended span with a concentrated load.
//
//	M_A = -F·a·b²/L²   M_B = -F·a²·b/L²   M_F = 2·F·a²·b²/L³
//	R_A = F·(3a+b)·b²/L³   R_B = F·(a+3b)·a²/L³
func fixedPointLoad(f, a, l float64) Reactions {
	b := l - a
	l2 := l * l
	l3 := l2 * l
	return Reactions{
		MA: -f * a * b * b / l2,
		MB: -f * a * a * b / l2,
		MF: 2 * f * a * a * b * b / l3,
		RA: f * (3*a + b) * b * b / l3,
		RB: f * (a + 3*b) * a * a / l3,
	}
}

// pinnedUniformLoad solves a simply supported span under full-span UDL.
//
//	M_center = q·L²/8   R_A = R_B = q·L/2
func pinnedUniformLoad(q, l float64) Reactions {
	return Reactions{
		MF: q * l * l / 8,
		RA: q * l / 2,
		RB: q * l / 2,
	}
}

// fixedUniformLoad solves a fixed-ended span under full-span UDL.
//
//	M_A = M_B = -q·L²/12   M_center = q·L²/24   R_A = R_B = q·L/2
func fixedUniformLoad(q, l float64) Reactions {
	return Reactions{
		MA: -q * l * l / 12,
		MB: -q * l * l / 12,
		MF: q * l * l / 24,
		RA: q * l / 2,
		RB: q * l / 2,
	}
}

// PointLoadReactions returns the end moments and reactions for a single
// concentrated load. A load placed exactly over a support (A = 0 or
// A = L) yields zero span moment with all load carried by that support.
func (g *Girder) PointLoadReactions(p PointLoad) (Reactions, error) {
	if err := g.checkPosition(p.A); err != nil {
		return Reactions{}, err
	}
	solve, ok := pointFormulas[g.Support]
	if !ok {
		return Reactions{}, fmt.Errorf("%w: %d (must be \"pinned\" or \"fixed\")", ErrUnsupportedCondition, int(g.Support))
	}
	return solve(p.F, p.A, g.Span), nil
}

// UniformLoadReactions returns the end moments and reactions for a
// uniformly distributed load over the full span.
func (g *Girder) UniformLoadReactions(u UniformLoad) (Reactions, error) {
	solve, ok := uniformFormulas[g.Support]
	if !ok {
		return Reactions{}, fmt.Errorf("%w: %d (must be \"pinned\" or \"fixed\")", ErrUnsupportedCondition, int(g.Support))
	}
	return solve(u.Q, g.Span), nil
}
