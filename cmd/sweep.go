package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/they4kman/gocross/director/constraint"
	"github.com/they4kman/gocross/director/random"
	"github.com/they4kman/gocross/game"
)

var gameConfig = game.NewGameConfig()
var useRandomDirector = false
var maxSteps = 0
var gameSnapshotPath = ""

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Let the computer play a game of Minesweeper",
	Long: `Play a seeded game of Minesweeper with a director, then print the
final board and how the game ended.

The constraint director plays deduction passes and guesses only when
stuck; the random director always guesses.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if gameSnapshotPath != "" {
			in, err := os.ReadFile(gameSnapshotPath)
			if err != nil {
				return errors.WithStack(err)
			}
			snapshot, err := game.LoadSnapshot(string(in))
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		g, err := game.NewGame(gameConfig)
		if err != nil {
			return err
		}

		var director game.Director = &constraint.Director{}
		if useRandomDirector {
			director = &random.Director{}
		}
		steps := game.Play(g, director, maxSteps)

		fmt.Print(game.FormatBoard(g.Visible()))
		fmt.Printf("%v after %d steps, %d/%d mines flagged\n", g.State(), steps, g.NumFlags(), g.NumMines())

		_, err = gameConfig.SaveSnapshot(g, time.Now())
		return err
	},
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.GameMode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	if mode, isValid := game.GameModes[value]; isValid {
		*modeVal = gameModeValue(mode)
		return nil
	} else {
		return errors.Errorf("invalid game mode %q", value)
	}
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

func init() {
	sweepCmd.Flags().IntVarP(&gameConfig.Cols, "width", "w", gameConfig.Cols, "Width of game board, in cells")
	sweepCmd.Flags().IntVarP(&gameConfig.Rows, "height", "H", gameConfig.Rows, "Height of game board, in cells")
	sweepCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	sweepCmd.Flags().Var(newGameModeValue(game.Win7, &gameConfig.Mode), "mode", `Game mode, controlling behaviour of first reveal.
win7: all cells surrounding the first-revealed cell are cleared of mines (first reveal never loses)
classic: mines are left as is (first reveal can lose the game)`)
	sweepCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for mine placement and guesses")
	sweepCmd.Flags().BoolVar(&useRandomDirector, "random", false, "Only guess, never deduce")
	sweepCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Stop after this many director steps (0 plays to the end)")
	sweepCmd.Flags().StringVar(&gameSnapshotPath, "snapshot", "", "Load the board from a yaml snapshot")
	sweepCmd.Flags().BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", true, "Hide every cell of a loaded snapshot, keeping only its mines")
	sweepCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "save-dir", "", "Directory to save the final board snapshot into")

	rootCmd.AddCommand(sweepCmd)
}
