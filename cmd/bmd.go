package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/statics"
	"github.com/spf13/cobra"
)

var (
	bmdSupport string
	bmdSpan    float64
	bmdPoints  []string
	bmdUDL     float64
	bmdSamples int
	bmdTable   bool
	bmdSketch  bool
	bmdExport  string
)

var bmdCmd = &cobra.Command{
	Use:   "bmd",
	Short: "Sample the bending-moment diagram and locate its extrema",
	Long: `Sample the bending-moment function M(x) over the span and report the
maximum sagging (positive) and hogging (negative) moments with their
positions. Point-load positions are always included in the sample grid
so the diagram carries the true peak under each load.

The sampled (x, M) series can be printed as a table, sketched in the
terminal, or exported as an image (png, svg, pdf) for reports.

Examples:
  # Fixed-ended girder with two point loads at the third points
  gobeam bmd --support fixed --span 6 --point 10@2 --point 10@4

  # Uniform load with a terminal sketch and an exported image
  gobeam bmd --support pinned --span 8 --udl 3 --diagram --output bmd.png

  # Full numeric series at 50 sample points
  gobeam bmd --support fixed --span 6 --point 10@3 --samples 50 --table`,
	Run: runBMD,
}

func init() {
	rootCmd.AddCommand(bmdCmd)

	bmdCmd.Flags().StringVarP(&bmdSupport, "support", "s", "pinned", "Support condition: pinned or fixed")
	bmdCmd.Flags().Float64VarP(&bmdSpan, "span", "L", 0, "Span length (m) [required]")
	bmdCmd.Flags().StringArrayVarP(&bmdPoints, "point", "p", nil, "Point load as F@a (kN @ m), repeatable")
	bmdCmd.Flags().Float64VarP(&bmdUDL, "udl", "q", 0, "Uniform load intensity (kN/m)")
	bmdCmd.Flags().IntVarP(&bmdSamples, "samples", "n", 100, "Number of evenly spaced sample points (>= 2)")
	bmdCmd.Flags().BoolVarP(&bmdTable, "table", "t", false, "Print the full (x, M) series")
	bmdCmd.Flags().BoolVarP(&bmdSketch, "diagram", "d", false, "Sketch the diagram in the terminal")
	bmdCmd.Flags().StringVarP(&bmdExport, "output", "o", "", "Export the diagram to a file (png, svg, pdf)")

	bmdCmd.MarkFlagRequired("span")
}

func runBMD(cmd *cobra.Command, args []string) {
	support, err := statics.ParseSupport(bmdSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	girder, err := statics.NewGirder(support, bmdSpan)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if bmdUDL != 0 && len(bmdPoints) > 0 {
		fmt.Println("Error: --udl and --point cannot be combined; run them separately.")
		return
	}
	if bmdUDL == 0 && len(bmdPoints) == 0 {
		fmt.Println("Error: provide at least one load (--point or --udl).")
		return
	}

	var (
		field         statics.MomentField
		loadPositions []float64
	)

	if bmdUDL != 0 {
		field, err = girder.SampleUniformField(statics.UniformLoad{Q: bmdUDL}, bmdSamples)
	} else {
		var loads []statics.PointLoad
		loads, err = parsePointLoads(bmdPoints)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		for _, p := range loads {
			loadPositions = append(loadPositions, p.A)
		}
		field, err = girder.SampleField(loads, bmdSamples)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sag := field.MaxSagging()
	hog := field.MaxHogging()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BENDING MOMENT DIAGRAM")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("KEY VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.3f m (%s-%s)\n", girder.Span, girder.Support, girder.Support)
	fmt.Fprintf(w, "  Samples:\t%d\n", len(field))
	fmt.Fprintf(w, "  M at A (x=0):\t%.3f kN-m\n", field[0].M)
	fmt.Fprintf(w, "  M at B (x=L):\t%.3f kN-m\n", field[len(field)-1].M)
	w.Flush()
	fmt.Println()

	var summary []string
	if sag.Found {
		summary = append(summary, fmt.Sprintf("Max sagging  M = %+.3f kN-m at x = %.3f m", sag.M, sag.X))
	} else {
		summary = append(summary, "Max sagging  none (no positive moment)")
	}
	if hog.Found {
		summary = append(summary, fmt.Sprintf("Max hogging  M = %+.3f kN-m at x = %.3f m", hog.M, hog.X))
	} else {
		summary = append(summary, "Max hogging  none (no negative moment)")
	}
	fmt.Println(diagram.DrawSummaryBox("EXTREMA", summary))

	if bmdTable {
		fmt.Println("SERIES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  x (m)\tM (kN-m)\n")
		fmt.Fprintf(w, "  ─────\t────────\n")
		for _, s := range field {
			fmt.Fprintf(w, "  %.4f\t%.4f\n", s.X, s.M)
		}
		w.Flush()
		fmt.Println()
	}

	if bmdSketch {
		fmt.Println(diagram.RenderMomentDiagram(field, 14))
		fmt.Println()
	}

	if bmdExport != "" {
		keys := []diagram.KeyPoint{
			{X: 0, M: field[0].M, Label: fmt.Sprintf("M_A=%.2f", field[0].M)},
			{X: girder.Span, M: field[len(field)-1].M, Label: fmt.Sprintf("M_B=%.2f", field[len(field)-1].M)},
		}
		if sag.Found {
			keys = append(keys, diagram.KeyPoint{X: sag.X, M: sag.M, Label: fmt.Sprintf("M_max=%.2f", sag.M)})
		}
		if err := diagram.ExportMomentDiagram(field, keys, loadPositions, bmdExport); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram saved to %s\n", bmdExport)
		fmt.Println()
	}
}
