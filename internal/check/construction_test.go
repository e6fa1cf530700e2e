package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

const tol = 1e-9

func TestGoverning_GravityCombinations(t *testing.T) {
	// Live load present: 1.2D + 1.6L governs.
	w, combo := Governing(17.28, 9.0)
	assert.Equal(t, "2", combo.ID)
	assert.InDelta(t, 1.2*17.28+1.6*9.0, w, tol)

	// Dead load only: 1.4D governs.
	w, combo = Governing(10.0, 0)
	assert.Equal(t, "1", combo.ID)
	assert.InDelta(t, 14.0, w, tol)
}

func TestCompare(t *testing.T) {
	v := Compare(100, 120)
	assert.True(t, v.OK)
	assert.Equal(t, 100.0, v.Demand)
	assert.Equal(t, 120.0, v.Capacity)

	assert.False(t, Compare(100, 99.9).OK)
	assert.True(t, Compare(100, 100).OK)

	// Unset capacities fail every non-zero demand.
	assert.False(t, Compare(0.1, 0).OK)
}

// Default bay: 10.8 m x 10.2 m, two y girders, fixed x / pinned y.
// Mirrors the worked construction-stage numbers by hand:
// tributary 3.6 m, dead 17.28 kN/m, live 9 kN/m, w = 35.136 kN/m,
// P = 358.3872 kN at the x-girder third points.
func TestConstructionLoad_DefaultBay(t *testing.T) {
	d := config.Default()

	res, err := ConstructionLoad(d)
	require.NoError(t, err)

	assert.InDelta(t, 3.6, res.TributaryWidth, tol)
	assert.InDelta(t, 17.28, res.DeadLine, tol)
	assert.InDelta(t, 9.0, res.LiveLine, tol)
	assert.InDelta(t, 35.136, res.FactoredLine, tol)
	assert.Equal(t, "2", res.Combination.ID)

	w := res.FactoredLine
	ly := d.Geometry.YSpan
	lx := d.Geometry.XSpan

	// Y girder: pinned under uniform w.
	assert.Equal(t, statics.SupportPinned, res.Y.Support)
	assert.InDelta(t, w*ly*ly/8, res.Y.Mu, tol)
	assert.InDelta(t, w*ly/2, res.Y.Vu, tol)
	assert.Zero(t, res.Y.MuEnd)

	// X girder: two equal loads P at the third points, fixed ends.
	p := w * ly
	assert.InDelta(t, p, res.PointLoad, tol)
	require.Len(t, res.Positions, 2)
	assert.InDelta(t, lx/3, res.Positions[0], tol)
	assert.InDelta(t, 2*lx/3, res.Positions[1], tol)

	assert.Equal(t, statics.SupportFixed, res.X.Support)
	assert.InDelta(t, p*lx/9, res.X.Mu, 1e-6)       // sagging plateau between the loads
	assert.InDelta(t, -2*p*lx/9, res.X.MuEnd, 1e-6) // hogging end moment, reported only
	assert.InDelta(t, p, res.X.Vu, 1e-6)

	// No capacities configured: every verdict fails.
	assert.False(t, res.X.Bending.OK)
	assert.False(t, res.X.Shear.OK)
	assert.False(t, res.Y.Bending.OK)
	assert.False(t, res.Y.Shear.OK)

	// The sampled diagram is available for the plotting collaborator.
	assert.NotEmpty(t, res.Field)
}

// Pinned x girders with two loads: the sagging demand must come from the
// superposed diagram (P·L/3 at midspan), not from summing per-load peaks.
func TestConstructionLoad_PinnedXUsesAggregateField(t *testing.T) {
	d := config.Default()
	d.Geometry.XSupport = "pinned"

	res, err := ConstructionLoad(d)
	require.NoError(t, err)

	p := res.PointLoad
	lx := d.Geometry.XSpan
	assert.InDelta(t, p*lx/3, res.X.Mu, 1e-6)
	assert.Zero(t, res.X.MuEnd)
}

func TestConstructionLoad_SingleGirderAtMidspan(t *testing.T) {
	d := config.Default()
	d.Geometry.NumYGirders = 1
	d.Geometry.XSupport = "fixed"

	res, err := ConstructionLoad(d)
	require.NoError(t, err)

	require.Len(t, res.Positions, 1)
	assert.InDelta(t, d.Geometry.XSpan/2, res.Positions[0], tol)

	// Midspan load on fixed ends: M_F = P·L/8, M_A = -P·L/8.
	p := res.PointLoad
	lx := d.Geometry.XSpan
	assert.InDelta(t, p*lx/8, res.X.Mu, 1e-6)
	assert.InDelta(t, -p*lx/8, res.X.MuEnd, 1e-6)
}

// Any number of y girders is accepted; positions follow i·L/(n+1).
func TestConstructionLoad_ManyGirders(t *testing.T) {
	d := config.Default()
	d.Geometry.NumYGirders = 3

	res, err := ConstructionLoad(d)
	require.NoError(t, err)

	require.Len(t, res.Positions, 3)
	lx := d.Geometry.XSpan
	assert.InDelta(t, lx/4, res.Positions[0], tol)
	assert.InDelta(t, lx/2, res.Positions[1], tol)
	assert.InDelta(t, 3*lx/4, res.Positions[2], tol)

	// Tributary width shrinks with more girders.
	assert.InDelta(t, lx/4, res.TributaryWidth, tol)
}

func TestConstructionLoad_CapacityVerdicts(t *testing.T) {
	d := config.Default()
	d.Capacity = config.Capacity{
		XBending: 1000, XShear: 1000,
		YBending: 1000, YShear: 1000,
	}

	res, err := ConstructionLoad(d)
	require.NoError(t, err)

	assert.True(t, res.X.Bending.OK)
	assert.True(t, res.X.Shear.OK)
	assert.True(t, res.Y.Bending.OK)
	assert.True(t, res.Y.Shear.OK)
	assert.Equal(t, res.X.Mu, res.X.Bending.Demand)
	assert.Equal(t, 1000.0, res.X.Bending.Capacity)
}

func TestConstructionLoad_FixedYReportsEndMoment(t *testing.T) {
	d := config.Default()
	d.Geometry.YSupport = "fixed"

	res, err := ConstructionLoad(d)
	require.NoError(t, err)

	w := res.FactoredLine
	ly := d.Geometry.YSpan
	assert.InDelta(t, w*ly*ly/24, res.Y.Mu, tol)
	assert.InDelta(t, -w*ly*ly/12, res.Y.MuEnd, tol)
	// The hogging end moment is reported but plays no part in the verdict.
	assert.Equal(t, res.Y.Mu, res.Y.Bending.Demand)
}

func TestConstructionLoad_RejectsInvalidDesign(t *testing.T) {
	d := config.Default()
	d.Geometry.XSpan = -1

	_, err := ConstructionLoad(d)
	assert.Error(t, err)

	d = config.Default()
	d.Geometry.XSupport = "cantilever"
	_, err = ConstructionLoad(d)
	assert.ErrorIs(t, err, statics.ErrUnsupportedCondition)
}
