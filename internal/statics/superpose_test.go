package statics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperpose_EmptyLoadSetIsZero(t *testing.T) {
	g, err := NewGirder(SupportFixed, 6)
	require.NoError(t, err)

	r, err := g.Superpose(nil)
	require.NoError(t, err)
	assert.Equal(t, Reactions{}, r)
}

// Combining two loads must equal the fieldwise sum of solving each load
// independently (linearity of the elastic solutions).
func TestSuperpose_Linearity(t *testing.T) {
	for _, s := range []Support{SupportPinned, SupportFixed} {
		g, err := NewGirder(s, 9)
		require.NoError(t, err)

		p1 := PointLoad{F: 10, A: 2.5}
		p2 := PointLoad{F: 4, A: 7}

		r1, err := g.PointLoadReactions(p1)
		require.NoError(t, err)
		r2, err := g.PointLoadReactions(p2)
		require.NoError(t, err)

		agg, err := g.Superpose([]PointLoad{p1, p2})
		require.NoError(t, err)

		assert.InDelta(t, r1.MA+r2.MA, agg.MA, tol)
		assert.InDelta(t, r1.MB+r2.MB, agg.MB, tol)
		assert.InDelta(t, r1.RA+r2.RA, agg.RA, tol)
		assert.InDelta(t, r1.RB+r2.RB, agg.RB, tol)
		assert.Zero(t, agg.MF, "aggregate MF must come from field evaluation, not summation")
	}
}

func TestSuperpose_OrderIndependent(t *testing.T) {
	g, err := NewGirder(SupportFixed, 12)
	require.NoError(t, err)

	loads := []PointLoad{{F: 5, A: 1}, {F: 8, A: 6}, {F: 3, A: 11}}
	reversed := []PointLoad{loads[2], loads[1], loads[0]}

	a, err := g.Superpose(loads)
	require.NoError(t, err)
	b, err := g.Superpose(reversed)
	require.NoError(t, err)

	assert.InDelta(t, a.MA, b.MA, tol)
	assert.InDelta(t, a.MB, b.MB, tol)
	assert.InDelta(t, a.RA, b.RA, tol)
	assert.InDelta(t, a.RB, b.RB, tol)
}

func TestSuperpose_PropagatesLoadErrors(t *testing.T) {
	g, err := NewGirder(SupportPinned, 6)
	require.NoError(t, err)

	_, err = g.Superpose([]PointLoad{{F: 10, A: 2}, {F: 10, A: 8}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// Fixed-fixed with two equal loads at the third points, F=10 kN, L=6 m:
// end moments sum to -2FL/9 = -13.333 and the midspan moment is
// FL/9 = 6.667.
func TestSuperpose_ThirdPointLoadsKnownCase(t *testing.T) {
	g, err := NewGirder(SupportFixed, 6)
	require.NoError(t, err)

	loads := []PointLoad{{F: 10, A: 2}, {F: 10, A: 4}}

	agg, err := g.Superpose(loads)
	require.NoError(t, err)
	assert.InDelta(t, -40.0/3.0, agg.MA, tol)
	assert.InDelta(t, agg.MA, agg.MB, tol)
	assert.InDelta(t, 10.0, agg.RA, tol)
	assert.InDelta(t, agg.RA, agg.RB, tol)

	m, err := g.MomentAt(loads, 3)
	require.NoError(t, err)
	assert.InDelta(t, 20.0/3.0, m, tol)
}

// Summing per-load peak values is only valid when the loads share one
// position; for loads at different positions MomentAt must be used. This
// pins the distinction down for the pinned third-point case, where the
// naive sum (4FL/9) overestimates the true midspan moment (FL/3).
func TestMomentAt_DisagreesWithNaivePeakSum(t *testing.T) {
	g, err := NewGirder(SupportPinned, 6)
	require.NoError(t, err)

	loads := []PointLoad{{F: 10, A: 2}, {F: 10, A: 4}}

	r1, err := g.PointLoadReactions(loads[0])
	require.NoError(t, err)
	r2, err := g.PointLoadReactions(loads[1])
	require.NoError(t, err)
	naive := r1.MF + r2.MF

	m, err := g.MomentAt(loads, 3)
	require.NoError(t, err)

	assert.InDelta(t, 10.0*6.0/3.0, m, tol) // F·L/3
	assert.Greater(t, naive, m)
}

func TestMomentAt_RejectsPositionOutsideSpan(t *testing.T) {
	g, err := NewGirder(SupportPinned, 6)
	require.NoError(t, err)

	_, err = g.MomentAt([]PointLoad{{F: 10, A: 2}}, 6.5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
