// Package main provides the entry point for the linkrank CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for linkrank.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkrank",
		Short: "PageRank estimation over a directory of HTML pages",
		Long: `linkrank reads a directory of HTML files, extracts the links between
them, and estimates each page's importance with two independent PageRank
estimators: a Monte-Carlo random-walk sampler and a deterministic
fixed-point iterator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewRankCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
