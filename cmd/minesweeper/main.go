package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/difficulty"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/simulate"
)

var (
	log = logrus.New()

	configPath     string
	difficultyName string
	seed           uint64

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:           "minesweeper",
		Short:         "Minesweeper rules engine playground",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}
)

func init() {
	const usage = "config file path"
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", usage)
	rootCmd.PersistentFlags().StringVarP(&difficultyName, "difficulty", "d", "", "easy, experienced, expert or custom")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 = random)")
}

func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = difficultyName
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.SetupLogging(log, minefield.Log, difficulty.Log, simulate.Log); err != nil {
		return err
	}

	log.Debug("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")
	return nil
}

// newGame builds a minefield for the configured difficulty and a logger
// entry tagged with a fresh game id.
func newGame() (*minefield.Minefield, *logrus.Entry, error) {
	d, err := cfg.Preset()
	if err != nil {
		return nil, nil, err
	}
	creator := difficulty.NewCreator(difficulty.NewRand(cfg.Seed))
	creator.SetDifficulty(d)

	m, err := creator.Create()
	if err != nil {
		return nil, nil, err
	}
	entry := log.WithFields(logrus.Fields{
		"game":       uuid.NewString(),
		"difficulty": d.String(),
		"mines":      m.TotalMines(),
	})
	entry.Info("new game")
	return m, entry, nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
