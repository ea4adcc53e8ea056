package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/they4kman/gocross/game"
)

var deduceCmd = &cobra.Command{
	Use:   "deduce [board file]",
	Short: "Run one deduction pass over a Minesweeper board",
	Long: `Read a board, one row per line, and print it after a single
deduction pass. Reads standard input when no file is given.

	_ hidden   F flagged   0-8 revealed   * mine   X to be revealed`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in []byte
		var err error
		if len(args) == 0 {
			in, err = io.ReadAll(os.Stdin)
		} else {
			in, err = os.ReadFile(args[0])
		}
		if err != nil {
			return errors.WithStack(err)
		}

		board, err := game.ParseBoard(string(in))
		if err != nil {
			return err
		}
		deduction, err := game.Deduce(board)
		if err != nil {
			return err
		}

		fmt.Print(game.FormatBoard(deduction.Board))
		for _, change := range deduction.Changes {
			fmt.Fprintln(os.Stderr, change)
		}
		if len(deduction.Conflicts) > 0 {
			return errors.Errorf("contradictory board at %v", deduction.Conflicts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deduceCmd)
}
