package tunnel

import (
	"testing"

	"antsiege/internal/ecs"
)

func TestNewGridLayout(t *testing.T) {
	g := NewGrid(3, 4, 0)

	// One queen cell plus 3×4 tunnel cells.
	if len(g.Locations) != 13 {
		t.Fatalf("expected 13 locations, got %d", len(g.Locations))
	}
	queen := g.At(g.Queen)
	if queen.Exit != None || queen.Entrance != None {
		t.Fatalf("queen cell must not link anywhere; got exit=%d entrance=%d", queen.Exit, queen.Entrance)
	}

	for row, chain := range g.Chains {
		if len(chain) != 4 {
			t.Fatalf("row %d: expected 4 cells, got %d", row, len(chain))
		}
		// Col 0 drains into the queen; each later cell into its neighbor.
		if g.At(chain[0]).Exit != g.Queen {
			t.Errorf("row %d col 0 should exit to the queen", row)
		}
		for col := 1; col < len(chain); col++ {
			if g.At(chain[col]).Exit != chain[col-1] {
				t.Errorf("row %d col %d: wrong exit link", row, col)
			}
			if g.At(chain[col-1]).Entrance != chain[col] {
				t.Errorf("row %d col %d: wrong entrance link", row, col)
			}
		}
		// Mouth cell has no entrance.
		if g.At(chain[3]).Entrance != None {
			t.Errorf("row %d: mouth cell should have no entrance", row)
		}
	}
}

func TestNewGridWaterPlacement(t *testing.T) {
	// floodPeriod 3: cells at col 2 (the 3rd from the queen) are wet.
	g := NewGrid(2, 6, 3)
	for _, chain := range g.Chains {
		for col, id := range chain {
			wantWet := col == 2 || col == 5
			if g.At(id).Water != wantWet {
				t.Errorf("col %d: water=%v, want %v", col, g.At(id).Water, wantWet)
			}
		}
	}

	// floodPeriod 0 disables water entirely.
	dry := NewGrid(2, 6, 0)
	for i := range dry.Locations {
		if dry.Locations[i].Water {
			t.Fatalf("location %d wet with flooding disabled", i)
		}
	}
}

func TestCellBounds(t *testing.T) {
	g := NewGrid(2, 3, 0)
	if _, ok := g.Cell(1, 2); !ok {
		t.Fatal("in-range coordinate rejected")
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if _, ok := g.Cell(c[0], c[1]); ok {
			t.Errorf("out-of-range coordinate (%d,%d) accepted", c[0], c[1])
		}
	}
}

func TestMouths(t *testing.T) {
	g := NewGrid(3, 4, 0)
	mouths := g.Mouths()
	if len(mouths) != 3 {
		t.Fatalf("expected 3 mouths, got %d", len(mouths))
	}
	for row, id := range mouths {
		if id != g.Chains[row][3] {
			t.Errorf("row %d: mouth should be the outermost cell", row)
		}
	}
}

func TestDefenderGuardPrecedence(t *testing.T) {
	l := Location{}
	if l.Defender() != ecs.NilEntity {
		t.Fatal("empty location should have no defender")
	}
	l.Occupant = 2
	if l.Defender() != 2 {
		t.Fatal("occupant should face attackers when unguarded")
	}
	l.Guard = 3
	if l.Defender() != 3 {
		t.Fatal("guard should shield the occupant")
	}
}

func TestRemoveUnitIdempotent(t *testing.T) {
	l := Location{Occupant: 1, Guard: 2}
	l.AddAttacker(3)
	l.AddAttacker(4)

	l.RemoveUnit(3)
	if len(l.Attackers) != 1 || l.Attackers[0] != 4 {
		t.Fatalf("expected [4] after removal, got %v", l.Attackers)
	}
	// Removing again is a no-op.
	l.RemoveUnit(3)
	if len(l.Attackers) != 1 {
		t.Fatal("second removal should change nothing")
	}

	l.RemoveUnit(1)
	l.RemoveUnit(2)
	if l.Occupant != ecs.NilEntity || l.Guard != ecs.NilEntity {
		t.Fatal("slots should be cleared")
	}
}

func TestClosestAttackerWalksTowardMouth(t *testing.T) {
	g := NewGrid(1, 5, 0)
	chain := g.Chains[0]

	// Attackers at distance 2 and 4 from the queen-adjacent cell.
	g.At(chain[2]).AddAttacker(10)
	g.At(chain[4]).AddAttacker(11)

	if got := g.ClosestAttacker(chain[0], 3, 0); got != 10 {
		t.Fatalf("expected nearest attacker 10 within reach 3, got %v", got)
	}
	if got := g.ClosestAttacker(chain[0], 1, 0); got != ecs.NilEntity {
		t.Fatalf("reach 1 should find nothing, got %v", got)
	}
	// minDist 3 skips the attacker at distance 2.
	if got := g.ClosestAttacker(chain[0], 4, 3); got != 11 {
		t.Fatalf("minDist 3 should find attacker 11, got %v", got)
	}
}

func TestClosestAttackerOwnCell(t *testing.T) {
	g := NewGrid(1, 3, 0)
	chain := g.Chains[0]
	g.At(chain[1]).AddAttacker(7)
	g.At(chain[1]).AddAttacker(8)

	// Distance 0 is the cell itself; earliest arrival wins.
	if got := g.ClosestAttacker(chain[1], 0, 0); got != 7 {
		t.Fatalf("expected first-arrived attacker 7, got %v", got)
	}
}

func TestClosestAttackerStopsAtMouth(t *testing.T) {
	g := NewGrid(1, 2, 0)
	chain := g.Chains[0]
	// Reach far beyond the mouth; the walk must stop cleanly.
	if got := g.ClosestAttacker(chain[0], 10, 0); got != ecs.NilEntity {
		t.Fatalf("expected no attacker, got %v", got)
	}
}

func TestAttackerCountIncludesQueen(t *testing.T) {
	g := NewGrid(2, 2, 0)
	g.At(g.Queen).AddAttacker(5)
	g.At(g.Chains[1][0]).AddAttacker(6)
	if n := g.AttackerCount(); n != 2 {
		t.Fatalf("expected 2 attackers, got %d", n)
	}
}
