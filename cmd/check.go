package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/check"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	checkConfigFile string
	checkExportFile string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the construction-stage strength check for a girder grid",
	Long: `Check a girder grid against construction-stage loads defined in a TOML
design file. The slab dead load and construction live load are factored
(1.4D / 1.2D + 1.6L, whichever governs), carried by the y girders as
uniform line loads, delivered to the x girders as point loads at the
y-girder positions, and compared against the configured capacities.

Member capacities come from the section design and are read as plain
numbers from the [capacity] table of the design file. Only the sagging
moment is checked; hogging end moments of fixed-ended girders are
reported for reference.

Example design file:
  [geometry]
  x_span = 10.8
  y_span = 10.2
  num_y_girders = 2
  x_support = "fixed"
  y_support = "pinned"

  [loads]
  slab_thickness = 0.2
  concrete_density = 24.0
  construction_live_load = 2.5

  [capacity]
  x_bending = 950.0
  x_shear = 400.0
  y_bending = 520.0
  y_shear = 210.0

Examples:
  gobeam check --config design.toml
  gobeam check -c design.toml --output x-girder-bmd.png`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "", "Path to the design TOML file [required]")
	checkCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export the x-girder moment diagram to a file (png, svg, pdf)")

	checkCmd.MarkFlagRequired("config")
}

func verdictMark(v check.Verdict) string {
	if v.OK {
		return "✓"
	}
	return "✗ NG"
}

func runCheck(cmd *cobra.Command, args []string) {
	design, err := config.Load(checkConfigFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := check.ConstructionLoad(design)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONSTRUCTION LOAD CHECK")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("LOAD PATH:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tributary width:\t%.3f m\n", res.TributaryWidth)
	fmt.Fprintf(w, "  Dead line load (D):\t%.3f kN/m\n", res.DeadLine)
	fmt.Fprintf(w, "  Live line load (L):\t%.3f kN/m\n", res.LiveLine)
	fmt.Fprintf(w, "  Governing combination:\t%s\n", res.Combination.Description)
	fmt.Fprintf(w, "  Factored line load (w):\t%.3f kN/m\n", res.FactoredLine)
	fmt.Fprintf(w, "  Point load per y girder (P):\t%.3f kN\n", res.PointLoad)
	w.Flush()
	fmt.Print("  Point-load positions on x girder:")
	for _, a := range res.Positions {
		fmt.Printf(" %.3f m", a)
	}
	fmt.Println()
	fmt.Println()

	printGirderCheck("Y-DIRECTION GIRDER (uniform load)", res.Y)
	printGirderCheck("X-DIRECTION GIRDER (point loads)", res.X)

	allOK := res.X.Bending.OK && res.X.Shear.OK && res.Y.Bending.OK && res.Y.Shear.OK
	status := "ALL CHECKS PASSED"
	if !allOK {
		status = "CHECK FAILED - see ✗ items above"
	}
	fmt.Println(diagram.DrawSummaryBox("STATUS", []string{status}))

	if checkExportFile != "" {
		keys := []diagram.KeyPoint{
			{X: 0, M: res.X.MuEnd, Label: fmt.Sprintf("M_A=%.1f", res.X.MuEnd)},
			{X: res.X.MuX, M: res.X.Mu, Label: fmt.Sprintf("Mu=%.1f", res.X.Mu)},
		}
		if err := diagram.ExportMomentDiagram(res.Field, keys, res.Positions, checkExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  X-girder diagram saved to %s\n", checkExportFile)
		fmt.Println()
	}
}

func printGirderCheck(title string, gc check.GirderCheck) {
	fmt.Println(title + ":")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.3f m (%s-%s)\n", gc.Span, gc.Support, gc.Support)
	fmt.Fprintf(w, "  Bending demand (Mu):\t%.3f kN-m at x = %.3f m\n", gc.Mu, gc.MuX)
	if gc.MuEnd != 0 {
		fmt.Fprintf(w, "  End moment (not checked):\t%.3f kN-m\n", gc.MuEnd)
	}
	fmt.Fprintf(w, "  Shear demand (Vu):\t%.3f kN\n", gc.Vu)
	fmt.Fprintf(w, "  Bending:\tMu %.3f ≤ Mn %.3f\t%s\n", gc.Bending.Demand, gc.Bending.Capacity, verdictMark(gc.Bending))
	fmt.Fprintf(w, "  Shear:\tVu %.3f ≤ Vn %.3f\t%s\n", gc.Shear.Demand, gc.Shear.Capacity, verdictMark(gc.Shear))
	w.Flush()
	fmt.Println()
}
