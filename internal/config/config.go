// Package config loads the girder-grid design inputs from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// Geometry describes the column grid and the girders spanning it.
type Geometry struct {
	XSpan       float64 `toml:"x_span"`        // column-to-column span in the x direction (m)
	YSpan       float64 `toml:"y_span"`        // column-to-column span in the y direction (m)
	NumYGirders int     `toml:"num_y_girders"` // y-direction girders framing into one x girder
	XSupport    string  `toml:"x_support"`     // "pinned" or "fixed", both ends of every x girder
	YSupport    string  `toml:"y_support"`     // "pinned" or "fixed", both ends of every y girder
}

// Loads holds the unfactored construction-stage loads.
type Loads struct {
	SlabThickness        float64 `toml:"slab_thickness"`         // m
	ConcreteDensity      float64 `toml:"concrete_density"`       // kN/m³
	ConstructionLiveLoad float64 `toml:"construction_live_load"` // kN/m²
}

// Capacity holds the member capacities the demands are checked against.
// These come from the (separate) section design; a zero capacity simply
// fails the comparison.
type Capacity struct {
	XBending float64 `toml:"x_bending"` // kN-m
	XShear   float64 `toml:"x_shear"`   // kN
	YBending float64 `toml:"y_bending"` // kN-m
	YShear   float64 `toml:"y_shear"`   // kN
}

// Design is the full design-input file.
type Design struct {
	Geometry Geometry `toml:"geometry"`
	Loads    Loads    `toml:"loads"`
	Capacity Capacity `toml:"capacity"`
}

// Default returns a populated example design (a 10.8 m x 10.2 m bay with
// two interior y girders, fixed x girders and pinned y girders).
func Default() *Design {
	return &Design{
		Geometry: Geometry{
			XSpan:       10.8,
			YSpan:       10.2,
			NumYGirders: 2,
			XSupport:    "fixed",
			YSupport:    "pinned",
		},
		Loads: Loads{
			SlabThickness:        0.2,
			ConcreteDensity:      24.0,
			ConstructionLiveLoad: 2.5,
		},
	}
}

// Load reads a design file. Keys missing from the file keep their default
// values.
func Load(path string) (*Design, error) {
	d := Default()
	if _, err := toml.DecodeFile(path, d); err != nil {
		return nil, fmt.Errorf("loading design file %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate rejects geometrically impossible or unrecognized inputs before
// any demand is computed.
func (d *Design) Validate() error {
	if d.Geometry.XSpan <= 0 {
		return fmt.Errorf("x_span must be positive, got %.3f", d.Geometry.XSpan)
	}
	if d.Geometry.YSpan <= 0 {
		return fmt.Errorf("y_span must be positive, got %.3f", d.Geometry.YSpan)
	}
	if d.Geometry.NumYGirders < 1 {
		return fmt.Errorf("num_y_girders must be at least 1, got %d", d.Geometry.NumYGirders)
	}
	if _, err := statics.ParseSupport(d.Geometry.XSupport); err != nil {
		return fmt.Errorf("x_support: %w", err)
	}
	if _, err := statics.ParseSupport(d.Geometry.YSupport); err != nil {
		return fmt.Errorf("y_support: %w", err)
	}
	if d.Loads.SlabThickness <= 0 {
		return fmt.Errorf("slab_thickness must be positive, got %.3f", d.Loads.SlabThickness)
	}
	if d.Loads.ConcreteDensity <= 0 {
		return fmt.Errorf("concrete_density must be positive, got %.3f", d.Loads.ConcreteDensity)
	}
	if d.Loads.ConstructionLiveLoad < 0 {
		return fmt.Errorf("construction_live_load must not be negative, got %.3f", d.Loads.ConstructionLiveLoad)
	}
	return nil
}
