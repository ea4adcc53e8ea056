package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GameMode int

const (
	Classic GameMode = iota
	Win7
)

var GameModes = map[string]GameMode{
	"classic": Classic,
	"win7":    Win7,
}

func (mode GameMode) String() string {
	for name, other := range GameModes {
		if other == mode {
			return name
		}
	}
	return fmt.Sprint(int(mode))
}

type GameConfig struct {
	Rows, Cols int
	NumMines   int
	Mode       GameMode

	Seed int64

	// Number of turns Undo can step back through
	HistoryLimit int

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:              16,
		Cols:              30,
		NumMines:          99,
		Mode:              Classic,
		HistoryLimit:      64,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

func (config GameConfig) validate() error {
	if config.Rows <= 0 || config.Cols <= 0 {
		return errors.Errorf("invalid board size %dx%d", config.Rows, config.Cols)
	}
	if config.NumMines < 0 || config.NumMines >= config.Rows*config.Cols {
		return errors.Errorf("cannot place %d mines on a %dx%d board", config.NumMines, config.Rows, config.Cols)
	}
	return nil
}

// SaveSnapshot writes the game's snapshot into SavedSnapshotsDir, returning
// the path written. Nothing is written when no directory is configured.
func (config GameConfig) SaveSnapshot(game *Game, t time.Time) (string, error) {
	if config.SavedSnapshotsDir == "" {
		return "", nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.WithStack(err)
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", errors.WithStack(err)
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	path := filepath.Join(config.SavedSnapshotsDir, config.generateReplayFilename(game, t))
	if err := os.WriteFile(path, []byte(game.Snapshot().Serialize()), 0666); err != nil {
		return "", errors.WithStack(err)
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"state": game.State(),
	}).Info("Saved snapshot")
	return path, nil
}

func (config GameConfig) generateReplayFilename(game *Game, t time.Time) string {
	var stateStr string
	switch game.State() {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	return t.Format("20060102_150405_") + stateStr + ".yaml"
}
