package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func testMatch(food, tunnels, length int) *Match {
	c := NewColony(ColonyConfig{
		StartingFood: food,
		Tunnels:      tunnels,
		TunnelLength: length,
	}, rand.New(rand.NewSource(3)))
	return NewMatch(c, NewSpawner(3, 1))
}

func TestOutcomeFreshMatchIsWon(t *testing.T) {
	// No attackers anywhere and nothing scheduled.
	m := testMatch(5, 1, 3)
	if got := m.Outcome(); got != OutcomeWon {
		t.Fatalf("empty campaign resolves as won, got %v", got)
	}
}

func TestOutcomeOngoingWhileWavesPend(t *testing.T) {
	m := testMatch(5, 1, 3)
	m.spawner.ScheduleWave(10, 1)
	if got := m.Outcome(); got != OutcomeOngoing {
		t.Fatalf("pending waves keep the match ongoing, got %v", got)
	}
}

func TestOutcomeLostBeatsWon(t *testing.T) {
	m := testMatch(5, 1, 3)
	// One bee on the queen's cell and no other attackers: the loss check
	// runs first.
	bee := m.colony.newBee(3, 1)
	g := m.colony.grid
	g.At(g.Queen).AddAttacker(bee)
	if got := m.Outcome(); got != OutcomeLost {
		t.Fatalf("queen overrun is a loss, got %v", got)
	}
}

func TestCoordinateParsing(t *testing.T) {
	m := testMatch(5, 2, 3)
	for _, bad := range []string{"", "1", "a,b", "1;2", "1,", ",2", "1,2,3"} {
		if err := m.Deploy("grower", bad); !errors.Is(err, ErrIllegalLocation) {
			t.Errorf("coord %q: expected ErrIllegalLocation, got %v", bad, err)
		}
	}
	// Whitespace around the numbers is tolerated.
	if err := m.Deploy("grower", " 1 , 2 "); err != nil {
		t.Fatalf("spaced coord rejected: %v", err)
	}
	// Unit and boost names are case-insensitive.
	if err := m.Deploy("GROWER", "0,0"); err != nil {
		t.Fatalf("uppercase name rejected: %v", err)
	}
}

func TestTakeTurnAdvancesWavesTowardQueen(t *testing.T) {
	m := testMatch(0, 1, 3)
	m.spawner.ScheduleWave(0, 1)

	// Turn 1 ends with the wave injected at the mouth (col 2).
	m.TakeTurn()
	g := m.colony.grid
	if len(g.At(g.Chains[0][2]).Attackers) != 1 {
		t.Fatal("bee should arrive at the tunnel mouth")
	}

	// Each further turn moves it one cell queen-ward.
	m.TakeTurn()
	if len(g.At(g.Chains[0][1]).Attackers) != 1 {
		t.Fatal("bee should advance to col 1")
	}
	m.TakeTurn()
	m.TakeTurn()
	if len(g.At(g.Queen).Attackers) != 1 {
		t.Fatal("unopposed bee should reach the queen")
	}
	if m.Outcome() != OutcomeLost {
		t.Fatal("queen overrun loses the match")
	}
	if m.Turn() != 4 {
		t.Fatalf("expected 4 turns played, got %d", m.Turn())
	}
}

func TestLoneThrowerHoldsTheLine(t *testing.T) {
	// One tunnel, one bee, one thrower at the queen's doorstep. The bee
	// lands at the mouth on the first turn, takes a hit while closing in,
	// and dies before its sting can fell the thrower.
	m := testMatch(5, 1, 3)
	m.spawner.ScheduleWave(0, 1)
	if err := m.Deploy("thrower", "0,0"); err != nil {
		t.Fatalf("deploy: %v", err)
	}

	m.TakeTurn()
	if m.Outcome() != OutcomeOngoing {
		t.Fatal("the wave just landed; the match goes on")
	}
	g := m.colony.grid
	for turn := 0; turn < 10 && m.Outcome() == OutcomeOngoing; turn++ {
		m.TakeTurn()
	}
	if m.Outcome() != OutcomeWon {
		t.Fatalf("thrower should win the duel, outcome %v", m.Outcome())
	}
	if len(g.At(g.Queen).Attackers) != 0 {
		t.Fatal("nothing should have reached the queen")
	}
}

func TestOneCellDuel(t *testing.T) {
	// Smallest possible board: one tunnel of one cell, a thrower in it,
	// and a single fragile bee scheduled immediately.
	m := testMatch(10, 1, 1)
	m.spawner = NewSpawner(1, 1)
	m.spawner.ScheduleWave(0, 1)
	if err := m.Deploy("thrower", "0,0"); err != nil {
		t.Fatalf("deploy: %v", err)
	}

	// The first turn ends with the bee landing in the thrower's cell.
	m.TakeTurn()
	if m.colony.grid.AttackerCount() != 1 {
		t.Fatal("the bee should be on the board after the first turn")
	}
	if m.Outcome() != OutcomeOngoing {
		t.Fatalf("the duel is still on, got %v", m.Outcome())
	}

	// The second turn opens with the thrower's shot: 1 damage ≥ 1 armor.
	m.TakeTurn()
	if m.colony.grid.AttackerCount() != 0 {
		t.Fatal("the bee should be destroyed")
	}
	if m.Outcome() != OutcomeWon {
		t.Fatalf("nothing pending and nothing on the board, got %v", m.Outcome())
	}
}

func TestUndefendedColonyFalls(t *testing.T) {
	m := testMatch(0, 2, 4)
	m.spawner.ScheduleWave(0, 3)

	for turn := 0; turn < 20 && m.Outcome() == OutcomeOngoing; turn++ {
		m.TakeTurn()
	}
	if m.Outcome() != OutcomeLost {
		t.Fatalf("undefended colony should fall, outcome %v", m.Outcome())
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		OutcomeOngoing: "ongoing",
		OutcomeWon:     "won",
		OutcomeLost:    "lost",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}
