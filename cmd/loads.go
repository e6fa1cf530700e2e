package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

// parsePointLoads converts repeated --point flag values of the form "F@a"
// (e.g. "10@2.5" for 10 kN at 2.5 m) into point loads.
func parsePointLoads(specs []string) ([]statics.PointLoad, error) {
	loads := make([]statics.PointLoad, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, "@")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point load %q: expected F@a, e.g. 10@2.5", spec)
		}
		f, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point load magnitude in %q: %v", spec, err)
		}
		a, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point load position in %q: %v", spec, err)
		}
		loads = append(loads, statics.PointLoad{F: f, A: a})
	}
	return loads, nil
}
