package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Single-Span Girder Statics Tool",
	Long: `gobeam - Go Beam Statics Calculator

A CLI tool for closed-form statics of single-span girders:
end moments, support reactions and bending-moment diagrams
under point and uniform loads.

This tool helps structural engineers perform:
  - Reaction and end-moment calculation (pinned-pinned, fixed-fixed)
  - Superposition of multiple point loads
  - Bending-moment diagram sampling and extrema location
  - Construction-stage load checks for girder grids

Sign convention: downward loads positive, sagging moments positive.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Statics Calculator                              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for closed-form statics of single-span girders.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • End moments and reactions for pinned-pinned and fixed-fixed spans")
		fmt.Println("    • Superposition of multiple point loads")
		fmt.Println("    • Bending-moment diagram sampling with located extrema")
		fmt.Println("    • Construction-stage strength checks for girder grids")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
