package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose = false

var rootCmd = &cobra.Command{
	Use:   "gocross",
	Short: "Run cross automata, Conway's Life and Minesweeper deduction",
	Long: `gocross steps deterministic cellular automata on 2D grids.

Run the cross automaton (or Conway's Life) from a random seed
	gocross life --generations 20

Let the computer play Minesweeper by deduction
	gocross sweep --mode win7

Run one deduction pass over a board file
	gocross deduce board.txt
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every step")
}
