package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/they4kman/gocross/life"
)

var lifeConfig = life.NewConfig()
var lifeGenerations = 10
var lifeSnapshotPath = ""

var lifeCmd = &cobra.Command{
	Use:   "life",
	Short: "Step the cross automaton or Conway's Life",
	Long: `Step a grid through generations and print the final grid as a
yaml snapshot, which can be fed back in with --snapshot.

Stepping stops early once a generation changes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lifeSnapshotPath != "" {
			in, err := os.ReadFile(lifeSnapshotPath)
			if err != nil {
				return errors.WithStack(err)
			}
			snapshot, err := life.LoadSnapshot(string(in))
			if err != nil {
				return err
			}
			lifeConfig.Snapshot = snapshot
		}

		world, err := life.NewWorld(lifeConfig)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ran, err := world.Run(ctx, lifeGenerations, func(generation int, changes []life.ChangeRecord) {
			logrus.WithFields(logrus.Fields{
				"generation": generation,
				"changes":    len(changes),
			}).Info("Generation")
		})
		if err != nil {
			return err
		}

		logrus.WithField("generations", ran).Debug("Finished")
		fmt.Print(world.Snapshot().Serialize())
		return nil
	},
}

type lifeModeValue life.Mode

func newLifeModeValue(val life.Mode, p *life.Mode) *lifeModeValue {
	*p = val
	return (*lifeModeValue)(p)
}

func (modeVal *lifeModeValue) String() string {
	return life.Mode(*modeVal).String()
}

func (modeVal *lifeModeValue) Set(value string) error {
	mode, err := life.ParseMode(value)
	if err != nil {
		return err
	}
	*modeVal = lifeModeValue(mode)
	return nil
}

func (modeVal *lifeModeValue) Type() string {
	return "life.Mode"
}

var _ pflag.Value = (*lifeModeValue)(nil)

func init() {
	lifeCmd.Flags().IntVarP(&lifeConfig.Rows, "rows", "r", lifeConfig.Rows, "Height of the grid, in cells")
	lifeCmd.Flags().IntVarP(&lifeConfig.Cols, "cols", "c", lifeConfig.Cols, "Width of the grid, in cells")
	lifeCmd.Flags().Var(newLifeModeValue(life.Cross, &lifeConfig.Mode), "mode", `Transition rules.
cross: ordered cross-shape rule table with wave markers
conway: Conway's Game of Life (B3/S23)`)
	lifeCmd.Flags().Int64VarP(&lifeConfig.Seed, "seed", "s", 0, "Seed for the random starting grid")
	lifeCmd.Flags().IntVar(&lifeConfig.Crosses, "crosses", lifeConfig.Crosses, "Number of random crosses in the starting grid")
	lifeCmd.Flags().IntVarP(&lifeConfig.Workers, "workers", "j", lifeConfig.Workers, "Goroutines each generation is split across")
	lifeCmd.Flags().IntVarP(&lifeGenerations, "generations", "g", lifeGenerations, "Maximum number of generations to step")
	lifeCmd.Flags().StringVar(&lifeSnapshotPath, "snapshot", "", "Load the starting grid from a yaml snapshot")

	rootCmd.AddCommand(lifeCmd)
}
