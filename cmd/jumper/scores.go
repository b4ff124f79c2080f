package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/froghouse/jumper/internal/client"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [username]",
	Short: "Show the global top 20, or a user's stats",
	Long: `Display the global top 20 from the leaderboard API. When the API is
unreachable, the locally mirrored scores are shown instead.

With a username, shows that user's personal best and total game count
(requires the API).

Examples:
  jumper scores
  jumper scores alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	local, err := client.OpenLocal(flagLocal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening local state: %v\n", err)
		os.Exit(1)
	}
	c := client.New(flagAPI, local)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if len(args) == 1 {
		runUserStats(ctx, c, args[0])
		return
	}

	scores, err := c.Top(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Jumper - Global Top 20")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-20s  %-8d  %s %s\n", i+1, entry.Username, entry.Score, entry.Date, entry.Time)
	}
}

func runUserStats(ctx context.Context, c *client.Client, username string) {
	stats, err := c.UserStats(ctx, username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stats for %s\n", username)
	fmt.Println()
	if stats.PersonalBest == nil {
		fmt.Println("No games on the leaderboard yet.")
		return
	}
	fmt.Printf("  Personal best: %d (%s %s)\n",
		stats.PersonalBest.Score, stats.PersonalBest.Date, stats.PersonalBest.Time)
	fmt.Printf("  Games played:  %d\n", stats.TotalGames)
}
