package game

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/they4kman/gocross/grid"
)

func mustBoard(t *testing.T, in string) *Board {
	t.Helper()
	board, err := ParseBoard(in)
	if err != nil {
		t.Fatal(err)
	}
	return board
}

func TestDeduce(t *testing.T) {
	cases := []struct {
		name      string
		board     string
		expected  string
		flagged   []grid.Point
		revealed  []grid.Point
		conflicts []grid.Point
	}{
		{
			name:     "hidden plus flagged equals count",
			board:    "_1",
			expected: "F1\n",
			flagged:  []grid.Point{{Row: 0, Col: 0}},
		},
		{
			name:     "flags already satisfy count",
			board:    "F1_",
			expected: "F1X\n",
			revealed: []grid.Point{{Row: 0, Col: 2}},
		},
		{
			name:     "empty cell reveals its neighbors",
			board:    "__\n0_",
			expected: "XX\n0X\n",
			revealed: []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}},
		},
		{
			name:      "contradictory board",
			board:     "1_1F",
			expected:  "1_1F\n",
			conflicts: []grid.Point{{Row: 0, Col: 1}},
		},
		{
			// the flag placed for (0,0) must not let (0,2) reveal (0,3) in the same pass
			name:     "rules read the previous board",
			board:    "1_1_",
			expected: "1F1_\n",
			flagged:  []grid.Point{{Row: 0, Col: 1}},
		},
		{
			name:     "nothing to deduce",
			board:    "___\n_2_\n___",
			expected: "___\n_2_\n___\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			board := mustBoard(t, c.board)
			deduction, err := Deduce(board)
			if err != nil {
				t.Fatal(err)
			}

			if out := FormatBoard(deduction.Board); out != c.expected {
				t.Fatalf("board = %q, expected %q", out, c.expected)
			}
			if !slices.Equal(deduction.Flagged, c.flagged) {
				t.Fatalf("flagged = %v, expected %v", deduction.Flagged, c.flagged)
			}
			if !slices.Equal(deduction.Revealed, c.revealed) {
				t.Fatalf("revealed = %v, expected %v", deduction.Revealed, c.revealed)
			}
			if !slices.Equal(deduction.Conflicts, c.conflicts) {
				t.Fatalf("conflicts = %v, expected %v", deduction.Conflicts, c.conflicts)
			}
			if len(deduction.Changes) != len(c.flagged)+len(c.revealed) {
				t.Fatalf("changes = %v", deduction.Changes)
			}

			// the input board is left untouched
			if FormatBoard(board) != FormatBoard(mustBoard(t, c.board)) {
				t.Fatal("Deduce modified its input")
			}
		})
	}
}

func TestDeduceChangesReplay(t *testing.T) {
	board := mustBoard(t, "_1_\n_2_\nF1_")
	deduction, err := Deduce(board)
	if err != nil {
		t.Fatal(err)
	}

	replayed := board.Clone()
	if err := grid.Apply(replayed, deduction.Changes); err != nil {
		t.Fatal(err)
	}
	if !replayed.Equal(deduction.Board) {
		t.Fatalf("replayed\n%s\nexpected\n%s", FormatBoard(replayed), FormatBoard(deduction.Board))
	}
}

func TestDeduceRejectsInvalidSymbols(t *testing.T) {
	if _, err := ParseBoard("1?"); !errors.Is(err, grid.ErrInvalidCellValue) {
		t.Fatalf("ParseBoard err = %v", err)
	}
	if _, err := ParseBoard("1_\n_"); !errors.Is(err, grid.ErrDimensionMismatch) {
		t.Fatalf("ragged ParseBoard err = %v", err)
	}

	board := mustBoard(t, "1_")
	board.Set(0, 1, Symbol(42))
	if _, err := Deduce(board); !errors.Is(err, grid.ErrInvalidCellValue) {
		t.Fatalf("Deduce err = %v", err)
	}
}

func TestSymbols(t *testing.T) {
	for _, symbol := range Symbols {
		parsed, err := ParseSymbol(symbol.Rune())
		if err != nil || parsed != symbol {
			t.Fatalf("ParseSymbol(%q) = %v, %v", symbol.Rune(), parsed, err)
		}
	}

	if count, ok := Number3.Count(); !ok || count != 3 {
		t.Fatalf("Number3.Count() = %d, %v", count, ok)
	}
	for _, symbol := range []Symbol{Hidden, Flagged, Mine, ToBeRevealed} {
		if _, ok := symbol.Count(); ok {
			t.Fatalf("%v has a count", symbol)
		}
	}
}
