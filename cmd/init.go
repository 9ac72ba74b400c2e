package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gospar/internal/config"
	"github.com/spf13/cobra"
)

var (
	initOutput string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template design file",
	Long: `Write a complete spar design carrying a 5 MW turbine as a starting
point for a new design.

Examples:
  gospar init -o design.yaml
  gospar init -o design.yaml --force`,
	Run: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutput, "output", "o", "design.yaml", "Path of the design file to write")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		fmt.Printf("Error: %s already exists (use --force to overwrite)\n", initOutput)
		return
	}
	if err := config.Save(initOutput, config.Default()); err != nil {
		fmt.Printf("Error writing design: %v\n", err)
		return
	}
	fmt.Printf("  Design template written to: %s\n", initOutput)
}
