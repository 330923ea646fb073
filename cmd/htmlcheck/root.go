// Package main provides the entry point for the htmlcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for htmlcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "htmlcheck",
		Short: "Grade HTML documents against a reference Bootstrap layout",
		Long: `htmlcheck compares HTML documents against a reference Bootstrap grid layout.
For each input it reports a textual similarity score, a structural checklist
(DOCTYPE, Bootstrap links, grid elements, custom CSS), and a heuristic
AI-writing likelihood score with the indicators that triggered it.

The reference layout ships embedded in the binary; use --reference or a
.htmlcheck configuration file to grade against a different document.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
