// Package check performs the construction-stage strength check of a
// girder grid: dead and live construction loads are factored, turned into
// girder demands through the statics core, and compared against
// caller-supplied capacities.
package check

// Combination is a strength-design load combination applied to
// construction line loads (kN/m).
type Combination struct {
	ID          string
	Description string
	// Load factors
	Dead float64 // D - slab self-weight
	Live float64 // L - construction live load
}

// ConstructionCombinations are the gravity combinations relevant during
// concrete placement. Wind, earthquake and rain cases are not considered
// for the construction stage.
var ConstructionCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Factored applies the combination's factors to unfactored line loads.
func (c Combination) Factored(dead, live float64) float64 {
	return c.Dead*dead + c.Live*live
}

// Governing returns the largest factored line load across the
// construction combinations, together with the combination producing it.
func Governing(dead, live float64) (float64, Combination) {
	var maxLoad float64
	var governing Combination

	for _, combo := range ConstructionCombinations {
		w := combo.Factored(dead, live)
		if w > maxLoad {
			maxLoad = w
			governing = combo
		}
	}

	return maxLoad, governing
}
