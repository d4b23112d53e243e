package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags.
var (
	version   = "dev"
	gitCommit = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("coxswain %s (commit %s, %s)\n", version, gitCommit, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
