package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gospar/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gospar",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gospar v%s\n", version.Version)
		fmt.Println("Floating Platform Column Sizing Tool")
		fmt.Println("Buckling checks per API Bulletin 2U")
		fmt.Printf("Commit: %s  Built: %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
