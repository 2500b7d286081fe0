// Package cmd implements pushctl, the operator CLI of the push campaign service.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pushctl",
	Short: "Operator CLI for the push campaign service",
	Long: `pushctl manages the push campaign service from the command line.

Generate VAPID keys, render store subscription QR codes and release due scheduled campaigns.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
