package check

import (
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

// Verdict is the outcome of comparing one demand against one capacity.
type Verdict struct {
	Demand   float64
	Capacity float64
	OK       bool
}

// Compare builds the pass/fail verdict for a demand-capacity pair. The
// capacity value is supplied by the caller; computing member capacities
// (angle and L-form sections, welds) lives outside this package.
func Compare(demand, capacity float64) Verdict {
	return Verdict{Demand: demand, Capacity: capacity, OK: demand <= capacity}
}

// GirderCheck carries the demands and verdicts of one girder direction.
//
// Only the sagging moment is checked against the bending capacity. For
// fixed-ended girders the hogging end moment is reported in MuEnd but
// deliberately not compared to anything; widening the check to end
// moments is a known open item, not an oversight to patch silently.
type GirderCheck struct {
	Support statics.Support
	Span    float64 // m

	Mu    float64 // governing sagging moment demand (kN-m)
	MuX   float64 // position of the sagging demand (m from support A)
	MuEnd float64 // hogging end moment, zero for pinned ends (kN-m)
	Vu    float64 // shear demand = end reaction (kN)

	Bending Verdict
	Shear   Verdict
}

// Result is the full outcome of the construction-load check for one bay.
type Result struct {
	// Load path
	TributaryWidth float64 // slab width carried by one y girder (m)
	DeadLine       float64 // unfactored dead line load on a y girder (kN/m)
	LiveLine       float64 // unfactored live line load on a y girder (kN/m)
	FactoredLine   float64 // governing factored line load w (kN/m)
	Combination    Combination
	PointLoad      float64   // load each y girder delivers to an x girder (kN)
	Positions      []float64 // point-load positions along the x girder (m)

	Y GirderCheck // y-direction girder under the uniform slab load
	X GirderCheck // x-direction girder under the y-girder reactions

	// Field is the sampled moment diagram of the x girder, for plotting.
	Field statics.MomentField
}

// fieldSamples is the default discretization of the x girder diagram.
// Load positions are inserted on top of this grid by the sampler.
const fieldSamples = 201

// ConstructionLoad runs the construction-stage check: the slab dead and
// live loads are factored, carried by the y girders as uniform line
// loads, delivered to the x girders as point loads at the y-girder
// positions, and the resulting demands are compared to the configured
// capacities.
func ConstructionLoad(d *config.Design) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	// One y girder carries a tributary slab strip between its neighbors.
	n := d.Geometry.NumYGirders
	tributary := d.Geometry.XSpan / float64(n+1)
	dead := d.Loads.SlabThickness * d.Loads.ConcreteDensity * tributary
	live := d.Loads.ConstructionLiveLoad * tributary
	w, combo := Governing(dead, live)

	res := &Result{
		TributaryWidth: tributary,
		DeadLine:       dead,
		LiveLine:       live,
		FactoredLine:   w,
		Combination:    combo,
	}

	// Y girder: uniform line load over its span.
	ySupport, err := statics.ParseSupport(d.Geometry.YSupport)
	if err != nil {
		return nil, err
	}
	yGirder, err := statics.NewGirder(ySupport, d.Geometry.YSpan)
	if err != nil {
		return nil, err
	}
	yr, err := yGirder.UniformLoadReactions(statics.UniformLoad{Q: w})
	if err != nil {
		return nil, err
	}
	res.Y = GirderCheck{
		Support: ySupport,
		Span:    yGirder.Span,
		Mu:      yr.MF,
		MuX:     yGirder.Span / 2,
		MuEnd:   yr.MA,
		Vu:      yr.RA,
		Bending: Compare(yr.MF, d.Capacity.YBending),
		Shear:   Compare(yr.RA, d.Capacity.YShear),
	}

	// X girder: one point load per y girder. The y girders run across the
	// full y span with a twin on either side of the bay, so each delivers
	// w times the whole y span.
	p := w * d.Geometry.YSpan
	res.PointLoad = p

	xSupport, err := statics.ParseSupport(d.Geometry.XSupport)
	if err != nil {
		return nil, err
	}
	xGirder, err := statics.NewGirder(xSupport, d.Geometry.XSpan)
	if err != nil {
		return nil, err
	}

	loads := make([]statics.PointLoad, n)
	res.Positions = make([]float64, n)
	for i := 0; i < n; i++ {
		a := float64(i+1) * d.Geometry.XSpan / float64(n+1)
		loads[i] = statics.PointLoad{F: p, A: a}
		res.Positions[i] = a
	}

	agg, err := xGirder.Superpose(loads)
	if err != nil {
		return nil, err
	}

	// The peaks of the individual loads sit at different positions, so the
	// sagging demand is taken from the superposed field, never from a sum
	// of per-load peak values.
	field, err := xGirder.SampleField(loads, fieldSamples)
	if err != nil {
		return nil, err
	}
	res.Field = field

	var muX, muXPos float64
	if sag := field.MaxSagging(); sag.Found {
		muX = sag.M
		muXPos = sag.X
	}
	res.X = GirderCheck{
		Support: xSupport,
		Span:    xGirder.Span,
		Mu:      muX,
		MuX:     muXPos,
		MuEnd:   agg.MA,
		Vu:      agg.RA,
		Bending: Compare(muX, d.Capacity.XBending),
		Shear:   Compare(agg.RA, d.Capacity.XShear),
	}

	return res, nil
}
