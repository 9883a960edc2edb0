package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arka/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long:  `Shows every level in play order with its brick count and hits per brick.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := game.Catalog()

	maxName := len("Level")
	for _, def := range levels {
		maxName = max(maxName, len(def.Name))
	}

	fmt.Printf("  #  %-*s  %6s  %4s\n", maxName, "Level", "Bricks", "Hits")
	fmt.Printf("  -  %-*s  %6s  %4s\n", maxName, "-----", "------", "----")

	total := 0
	for i, def := range levels {
		n := def.BrickCount()
		total += n
		fmt.Printf("  %d  %-*s  %6d  %4d\n", i+1, maxName, def.Name, n, def.BrickStrength)
	}

	fmt.Println()
	fmt.Printf("Clear all %d bricks to win.\n", total)
}
