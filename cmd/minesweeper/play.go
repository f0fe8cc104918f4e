package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/console"
	"github.com/vancomm/minefield/internal/minefield"
)

const playHelp = `commands:
  r X Y   reveal a cell
  f X Y   toggle a flag
  c X Y   chord around an open number
  p       print the board
  q       quit`

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Play a game on the console",
		Long:  "Play a game on the console.\n\n" + playHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, entry, err := newGame()
			if err != nil {
				return err
			}
			return play(m, entry, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})
}

func play(m *minefield.Minefield, entry *logrus.Entry, in io.Reader, out io.Writer) error {
	board := console.NewBoard(m)
	if _, err := board.WriteTo(out); err != nil {
		return fmt.Errorf("unable to print board: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for !m.IsGameOver() {
		fmt.Fprintf(out, "mines %d, flags %d > ", m.TotalMines(), m.FlagCount())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var (
			cmd  string
			x, y int
		)
		n, _ := fmt.Sscanf(line, "%s %d %d", &cmd, &x, &y)
		var action func(minefield.Position) minefield.ActionResult
		switch cmd {
		case "q", "quit":
			return nil
		case "p", "print":
			if _, err := board.WriteTo(out); err != nil {
				return fmt.Errorf("unable to print board: %w", err)
			}
			continue
		case "r", "reveal":
			action = m.Reveal
		case "f", "flag":
			action = m.ToggleFlag
		case "c", "chord":
			action = m.Chord
		}
		if action == nil || n != 3 {
			fmt.Fprintln(out, playHelp)
			continue
		}

		p := minefield.Pos(x, y)
		res := action(p)
		entry.WithFields(logrus.Fields{
			"action": cmd,
			"x":      x,
			"y":      y,
			"result": res.String(),
		}).Debug("move")

		board.Apply(m.UpdatedCells())
		fmt.Fprintf(out, "%s: %s\n", p, res)
		if _, err := board.WriteTo(out); err != nil {
			return fmt.Errorf("unable to print board: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	if m.IsGameOver() {
		entry.WithField("outcome", m.Outcome().String()).Info("game over")
		fmt.Fprintf(out, "game over: %s\n", m.Outcome())
	}
	return nil
}
