package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/console"
	"github.com/vancomm/minefield/internal/minefield"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Flag a corner, open the opposite one and print the board after each step",
		RunE:  runDemo,
	})
}

func printBoard(out io.Writer, board *console.Board) error {
	if _, err := board.WriteTo(out); err != nil {
		return fmt.Errorf("unable to print board: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("unable to print board: %w", err)
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	m, entry, err := newGame()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	board := console.NewBoard(m)
	if err := printBoard(out, board); err != nil {
		return err
	}

	rows, columns := m.Dimensions()
	corner := minefield.Pos(rows-1, columns-1)
	res := m.ToggleFlag(corner)
	entry.WithField("result", res.String()).Debugf("flag %s", corner)
	board.Apply(m.UpdatedCells())
	if err := printBoard(out, board); err != nil {
		return err
	}

	res = m.Reveal(minefield.Pos(0, 0))
	entry.WithField("result", res.String()).Debugf("reveal %s", minefield.Pos(0, 0))
	board.Apply(m.UpdatedCells())
	if err := printBoard(out, board); err != nil {
		return err
	}

	fmt.Fprintf(out, "Result: %s\nGame over? %t\n", res, m.IsGameOver())
	return nil
}
