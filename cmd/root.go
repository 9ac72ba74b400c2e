package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gospar/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gospar",
	Short: "Floating Platform Column Sizing Tool",
	Long: `gospar - Go Spar and Semisubmersible Column Sizer

A CLI tool for sizing the stiffened cylindrical columns of floating
offshore wind platforms.

This tool helps structural and naval engineers perform:
  - Column mass and ballast estimates
  - Ballast balance for static equilibrium
  - Hydrostatic stability and heel under rotor loads
  - Rigid-body natural period estimates
  - Stiffened shell buckling checks per section

Buckling checks follow API Bulletin 2U (ring-stiffened cylinders).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gospar v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Floating Platform Column Sizer                       ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing the columns of floating wind platforms.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section geometry, mass, and solid ballast")
		fmt.Println("    • Water ballast balance and hydrostatic stability")
		fmt.Println("    • Rigid-body natural periods")
		fmt.Println("    • API Bulletin 2U stiffened shell buckling checks")
		fmt.Println()
		fmt.Println("  Use 'gospar --help' to see available commands.")
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
