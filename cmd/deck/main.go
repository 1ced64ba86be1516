// Package main implements the deck CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deck",
	Short: "Agentdeck - track concurrent tasks and their dependencies",
	Long: `Agentdeck tracks concurrently running work items, typically
coding-agent runs, together with the dependency edges between them.

Tasks live in a JSONL store under the data directory. Each task carries an
ordered list of blocker task IDs; the dep subcommands derive blocked state,
transitive chains, and impact rankings from those lists.`,
	SilenceUsage: true,
}
