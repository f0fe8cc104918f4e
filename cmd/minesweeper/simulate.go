package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/simulate"
)

var (
	simGames   int
	simWorkers int
)

func init() {
	simCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Autoplay many random games concurrently",
		Long: `Autoplay many random games concurrently and report how they ended.

Examples:
  minesweeper simulate --games 1000
  minesweeper simulate -d expert --games 200 --workers 4 --seed 7`,
		RunE: runSimulate,
	}
	simCmd.Flags().IntVarP(&simGames, "games", "n", 0, "number of games (default from config)")
	simCmd.Flags().IntVarP(&simWorkers, "workers", "w", 0, "concurrent games (default from config)")

	rootCmd.AddCommand(simCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	d, err := cfg.Preset()
	if err != nil {
		return err
	}

	opts := simulate.Options{
		Params:  d.Params(),
		Games:   cfg.Simulate.Games,
		Workers: cfg.Simulate.Workers,
		Seed:    cfg.Seed,
	}
	if cmd.Flags().Changed("games") {
		opts.Games = simGames
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = simWorkers
	}

	report, err := simulate.Run(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"%s: played %d, cleared %d, exploded %d, %.1f moves/game\n",
		d, report.Played, report.Cleared, report.Exploded,
		float64(report.Moves)/float64(max(report.Played, 1)),
	)
	return nil
}
