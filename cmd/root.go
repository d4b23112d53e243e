package cmd

import (
	"os"

	"github.com/spf13/cobra"

	logutil "github.com/coxswain-io/coxswain/utils/log"
)

var (
	kubeconfig string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "coxswain",
	Short: "GitOps reconciliation controller for Kubernetes",
	Long: `Coxswain keeps Kubernetes clusters aligned with manifests declared in git.
The controller continuously fetches each application's repository, compares the
declared manifests against the live cluster, and applies whatever drifted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logutil.SetUpLogrus(logLevel, logFormat)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&kubeconfig, "kubeconfig", "k", "", "Path to a kubeconfig. Only required if out-of-cluster.")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
