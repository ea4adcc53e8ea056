package life

import "testing"

func TestConwayLonelyCellDies(t *testing.T) {
	engine := ConwayEngine{}

	if next := engine.Next(Neighborhood{0, 0, 0, 0, 1, 0, 0, 0, 0}); next != Dead {
		t.Fatalf("cell with no neighbors = %v", next)
	}
	if next := engine.Next(Neighborhood{1, 0, 0, 0, 1, 0, 0, 0, 0}); next != Dead {
		t.Fatalf("cell with one neighbor = %v", next)
	}
	if next := engine.Next(Neighborhood{1, 1, 0, 0, 0, 0, 0, 0, 1}); next != Alive {
		t.Fatalf("dead cell with three neighbors = %v", next)
	}
	if next := engine.Next(Neighborhood{1, 1, 1, 1, 1, 0, 0, 0, 0}); next != Dead {
		t.Fatalf("overcrowded cell = %v", next)
	}
}

func TestConwayIgnoresWaveMarkers(t *testing.T) {
	if next := (ConwayEngine{}).Next(Neighborhood{2, 3, 2, 0, 0, 0, 0, 0, 0}); next != Dead {
		t.Fatalf("wave markers counted as live neighbors: %v", next)
	}
}

func TestConwayBlockIsStable(t *testing.T) {
	g := mustGrid(t, "0000", "0110", "0110", "0000")

	next := Transition(g, Conway)
	if !next.Equal(g) {
		t.Fatalf("block changed: %v", gridRows(next))
	}
}

func TestConwayBlinker(t *testing.T) {
	g := mustGrid(t, "00000", "00100", "00100", "00100", "00000")

	g = Transition(g, Conway)
	expectRows(t, g, "00000", "00000", "01110", "00000", "00000")

	g = Transition(g, Conway)
	expectRows(t, g, "00000", "00100", "00100", "00100", "00000")
}

func TestModeParsing(t *testing.T) {
	for name, mode := range Modes {
		parsed, err := ParseMode(name)
		if err != nil || parsed != mode {
			t.Fatalf("ParseMode(%q) = %v, %v", name, parsed, err)
		}
		if mode.String() != name {
			t.Fatalf("%v.String() = %q", mode, mode.String())
		}
	}

	if _, err := ParseMode("hexagonal"); err == nil {
		t.Fatal("ParseMode accepted an unknown mode")
	}
	if Cross.Toggle() != Conway || Conway.Toggle() != Cross {
		t.Fatal("Toggle does not alternate modes")
	}
}
