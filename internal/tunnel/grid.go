package tunnel

import (
	"fmt"

	"antsiege/internal/ecs"
)

// Grid is the colony's tunnel network: a fixed arena of Locations arranged
// as parallel chains that all drain into one shared queen cell. Locations
// are created once at construction and never destroyed.
type Grid struct {
	Locations []Location
	Chains    [][]int // [tunnel][col] → arena index; col 0 is queen-adjacent
	Queen     int     // arena index of the shared queen cell
}

// NewGrid builds tunnels×length chains plus the queen cell. When
// floodPeriod > 0, every floodPeriod-th cell counted from the queen side is
// water.
func NewGrid(tunnels, length, floodPeriod int) *Grid {
	g := &Grid{}

	g.Queen = g.addLocation(Location{
		Name: "queen",
		Row:  -1, Col: -1,
		Exit:     None,
		Entrance: None,
	})

	g.Chains = make([][]int, tunnels)
	for row := 0; row < tunnels; row++ {
		g.Chains[row] = make([]int, length)
		for col := 0; col < length; col++ {
			exit := g.Queen
			if col > 0 {
				exit = g.Chains[row][col-1]
			}
			id := g.addLocation(Location{
				Name:     fmt.Sprintf("tunnel_%d_%d", row, col),
				Row:      row,
				Col:      col,
				Water:    floodPeriod > 0 && (col+1)%floodPeriod == 0,
				Exit:     exit,
				Entrance: None,
			})
			g.Chains[row][col] = id
			if col > 0 {
				g.Locations[exit].Entrance = id
			}
		}
	}
	return g
}

func (g *Grid) addLocation(l Location) int {
	l.ID = len(g.Locations)
	g.Locations = append(g.Locations, l)
	return l.ID
}

// At returns the Location with the given arena index.
func (g *Grid) At(id int) *Location {
	return &g.Locations[id]
}

// Cell returns the arena index for tunnel coordinates (row, col), or false
// when out of range.
func (g *Grid) Cell(row, col int) (int, bool) {
	if row < 0 || row >= len(g.Chains) || col < 0 || col >= len(g.Chains[row]) {
		return None, false
	}
	return g.Chains[row][col], true
}

// Mouths returns the arena indices of the entrance-most cell of every
// tunnel — the cells where spawned attackers arrive.
func (g *Grid) Mouths() []int {
	mouths := make([]int, 0, len(g.Chains))
	for _, chain := range g.Chains {
		if len(chain) > 0 {
			mouths = append(mouths, chain[len(chain)-1])
		}
	}
	return mouths
}

// ClosestAttacker walks from loc through successive Entrance links (toward
// the tunnel mouth) up to maxDist hops and returns the earliest-arrived
// attacker at the nearest hop d with minDist ≤ d ≤ maxDist, or NilEntity.
func (g *Grid) ClosestAttacker(loc, maxDist, minDist int) ecs.EntityID {
	cur := loc
	for d := 0; d <= maxDist; d++ {
		if cur == None {
			return ecs.NilEntity
		}
		l := g.At(cur)
		if d >= minDist && len(l.Attackers) > 0 {
			return l.Attackers[0]
		}
		cur = l.Entrance
	}
	return ecs.NilEntity
}

// AttackerCount returns the number of attackers anywhere on the grid,
// queen cell included.
func (g *Grid) AttackerCount() int {
	n := 0
	for i := range g.Locations {
		n += len(g.Locations[i].Attackers)
	}
	return n
}
