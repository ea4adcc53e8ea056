package life

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/gocross/grid"
	"gopkg.in/yaml.v2"
)

// GridSnapshot is the yaml form of a world: one string of state digits per row
type GridSnapshot struct {
	Mode       string   `yaml:"mode,omitempty"`
	Generation int      `yaml:"generation"`
	Seed       int64    `yaml:"seed"`
	Rows       []string `yaml:"rows"`
}

func SnapshotOf(g *Grid, mode Mode, generation int, seed int64) *GridSnapshot {
	snapshot := &GridSnapshot{
		Mode:       mode.String(),
		Generation: generation,
		Seed:       seed,
	}

	for _, row := range g.Rows() {
		rowBuilder := strings.Builder{}
		for _, state := range row {
			rowBuilder.WriteByte('0' + byte(state))
		}
		snapshot.Rows = append(snapshot.Rows, rowBuilder.String())
	}
	return snapshot
}

func (snapshot *GridSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (snapshot *GridSnapshot) ParseMode() (Mode, error) {
	if snapshot.Mode == "" {
		return Cross, nil
	}
	return ParseMode(snapshot.Mode)
}

// Grid decodes the rows of the snapshot into a new grid
func (snapshot *GridSnapshot) Grid() (*Grid, error) {
	rows := make([][]CellState, len(snapshot.Rows))
	for y, row := range snapshot.Rows {
		rows[y] = make([]CellState, 0, len(row))
		for x, c := range row {
			if c < '0' || c > '0'+rune(Green) {
				return nil, errors.Wrapf(grid.ErrInvalidCellValue, "%q at (%d, %d)", c, y, x)
			}
			rows[y] = append(rows[y], CellState(c-'0'))
		}
	}
	return grid.FromRows(rows)
}

func LoadSnapshot(in string) (*GridSnapshot, error) {
	var snapshot GridSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
