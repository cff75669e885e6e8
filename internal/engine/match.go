package engine

import (
	"fmt"
	"strconv"
	"strings"

	"antsiege/internal/ecs"
	"antsiege/internal/tunnel"
)

// Outcome is the tri-state result of a win/loss evaluation.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String implements fmt.Stringer for logs and the HUD.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Match is the outermost orchestrator: one Colony, one Spawner, and the
// monotonic turn counter. All public operations are synchronous and must
// be serialized by the caller.
type Match struct {
	colony  *Colony
	spawner *Spawner
	turn    int
}

// NewMatch wires a colony and a spawner into a playable match.
func NewMatch(colony *Colony, spawner *Spawner) *Match {
	return &Match{colony: colony, spawner: spawner}
}

// TakeTurn runs one full turn in the fixed phase order: defenders act,
// then attackers, then flooding, then this turn's wave injection. The
// order is load-bearing — a boost found this turn is only assignable next
// turn, and flooding after combat never double-processes a defender that
// just died in water.
func (m *Match) TakeTurn() {
	m.colony.AntsAct()
	m.colony.BeesAct()
	m.colony.PlacesAct()
	m.spawner.Invade(m.colony, m.turn)
	m.turn++
}

// Outcome evaluates the win/loss state. Loss (an attacker on the queen's
// cell) is checked before win, so a simultaneous "last wave destroyed but
// queen overrun" resolves as a loss.
func (m *Match) Outcome() Outcome {
	g := m.colony.grid
	if len(g.At(g.Queen).Attackers) > 0 {
		return OutcomeLost
	}
	if g.AttackerCount() == 0 && m.spawner.Pending() == 0 {
		return OutcomeWon
	}
	return OutcomeOngoing
}

// Deploy places a defender of the named kind (case-insensitive) at the
// "row,col" coordinate.
func (m *Match) Deploy(typeName, coord string) error {
	row, col, err := parseCoord(coord)
	if err != nil {
		return err
	}
	return m.colony.Deploy(strings.ToLower(typeName), row, col)
}

// Remove clears the outward-facing defender at the "row,col" coordinate.
func (m *Match) Remove(coord string) error {
	row, col, err := parseCoord(coord)
	if err != nil {
		return err
	}
	return m.colony.Remove(row, col)
}

// ApplyBoost assigns the named boost (case-insensitive) to the defender
// at the "row,col" coordinate, consuming one copy from the inventory.
func (m *Match) ApplyBoost(boostName, coord string) error {
	row, col, err := parseCoord(coord)
	if err != nil {
		return err
	}
	return m.colony.ApplyBoost(strings.ToLower(boostName), row, col)
}

// parseCoord parses a "row,col" string. Any malformation is normalized to
// ErrIllegalLocation; bounds are checked later against the grid.
func parseCoord(coord string) (row, col int, err error) {
	first, second, found := strings.Cut(coord, ",")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", ErrIllegalLocation, coord)
	}
	row, err = strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrIllegalLocation, coord)
	}
	col, err = strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrIllegalLocation, coord)
	}
	return row, col, nil
}

// ─── read-only views for the presentation layer ─────────────────────────────

// Turn returns the number of completed turns.
func (m *Match) Turn() int { return m.turn }

// Food returns the colony's food balance.
func (m *Match) Food() int { return m.colony.Food() }

// Grid exposes the tunnel network for rendering. Callers must not mutate.
func (m *Match) Grid() *tunnel.Grid { return m.colony.Grid() }

// World exposes the unit store for rendering. Callers must not mutate.
func (m *Match) World() *ecs.World { return m.colony.World() }

// AvailableBoosts returns boost names with at least one copy left.
func (m *Match) AvailableBoosts() []string { return m.colony.AvailableBoosts() }

// PendingAttackers returns the number of scheduled bees not yet
// dispatched.
func (m *Match) PendingAttackers() int { return m.spawner.Pending() }
