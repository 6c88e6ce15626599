package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information; override at build time via -ldflags "-X main.version=...".
var (
	version   = "0.1.0"
	gitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "tuicalc "+versionString())
		if gitCommit != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "commit "+gitCommit)
		}
	},
}

func versionString() string {
	return color.New(color.FgYellow, color.Bold).Sprint(version)
}
