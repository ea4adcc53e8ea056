package life

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/they4kman/gocross/grid"
)

func TestSnapshotLoad(t *testing.T) {
	in := `
mode: conway
generation: 4
seed: 12
rows:
- "0120"
- "3001"
`
	snapshot, err := LoadSnapshot(in)
	if err != nil {
		t.Fatal(err)
	}
	mode, err := snapshot.ParseMode()
	if err != nil || mode != Conway {
		t.Fatalf("mode = %v, %v", mode, err)
	}

	g, err := snapshot.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if state, _ := g.Get(1, 0); state != BlueWave {
		t.Fatalf("(1,0) = %v", state)
	}

	out := SnapshotOf(g, mode, snapshot.Generation, snapshot.Seed).Serialize()
	if !strings.Contains(out, "mode: conway") {
		t.Fatalf("serialized snapshot:\n%s", out)
	}

	again, err := LoadSnapshot(out)
	if err != nil {
		t.Fatal(err)
	}
	regrid, err := again.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if !regrid.Equal(g) || again.Generation != 4 || again.Seed != 12 {
		t.Fatalf("snapshot did not survive serialization:\n%s", out)
	}
}

func TestSnapshotRejectsBadRows(t *testing.T) {
	if _, err := (&GridSnapshot{Rows: []string{"0120", "30"}}).Grid(); !errors.Is(err, grid.ErrDimensionMismatch) {
		t.Fatalf("ragged rows err = %v", err)
	}
	if _, err := (&GridSnapshot{Rows: []string{"0150"}}).Grid(); !errors.Is(err, grid.ErrInvalidCellValue) {
		t.Fatalf("out of range state err = %v", err)
	}
	if _, err := (&GridSnapshot{Mode: "hex"}).ParseMode(); err == nil {
		t.Fatal("unknown mode accepted")
	}
}
