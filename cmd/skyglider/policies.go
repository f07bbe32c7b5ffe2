package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyglider/internal/bot"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the bot policies",
	Long:  `Shows the bot policies that can fly the glider.`,
	Args:  cobra.NoArgs,
	Run:   runPolicies,
}

func runPolicies(cmd *cobra.Command, args []string) {
	fmt.Println("Bot policies:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range bot.Policies {
		maxNameLen = max(maxNameLen, len(p.String()))
	}

	fmt.Printf("  %-2s  %-*s  %s\n", "#", maxNameLen, "Name", "Behavior")
	fmt.Printf("  %-2s  %-*s  %s\n", "-", maxNameLen, "----", "--------")
	for _, p := range bot.Policies {
		fmt.Printf("  %-2d  %-*s  %s\n", int(p), maxNameLen, p, p.Description())
	}

	fmt.Println()
	fmt.Println("Select with 'skyglider play --policy <name>' or keys 1-4 in game.")
}
