package tunnel

import "antsiege/internal/ecs"

// None marks the absence of a linked Location. A bee advancing from a
// Location whose Exit is None leaves the board.
const None = -1

// Location is one cell of the tunnel network. It stores the location-side
// half of the unit↔location relation: at most one regular defender, one
// guard, and the attackers currently present in arrival order.
type Location struct {
	ID    int
	Name  string
	Row   int // tunnel index; -1 for the queen cell and the spawner
	Col   int // 0 = queen-adjacent; -1 for the queen cell and the spawner
	Water bool

	// Exit points one step toward the queen, Entrance one step toward the
	// tunnel mouth. Both are arena indices into Grid.Locations.
	Exit     int
	Entrance int

	Occupant  ecs.EntityID // regular defender slot
	Guard     ecs.EntityID // guard defender slot
	Attackers []ecs.EntityID
}

// Defender returns the outward-facing defender: the guard when present,
// else the regular occupant. While guarded, the regular occupant is
// shielded and invisible to attacker targeting.
func (l *Location) Defender() ecs.EntityID {
	if l.Guard != ecs.NilEntity {
		return l.Guard
	}
	return l.Occupant
}

// AddAttacker appends an attacker, preserving arrival order.
func (l *Location) AddAttacker(id ecs.EntityID) {
	l.Attackers = append(l.Attackers, id)
}

// RemoveUnit clears the unit from whichever slot holds it. Calling it for
// a unit not present is a no-op, which keeps removal idempotent.
func (l *Location) RemoveUnit(id ecs.EntityID) {
	if l.Occupant == id {
		l.Occupant = ecs.NilEntity
		return
	}
	if l.Guard == id {
		l.Guard = ecs.NilEntity
		return
	}
	for i, a := range l.Attackers {
		if a == id {
			l.Attackers = append(l.Attackers[:i], l.Attackers[i+1:]...)
			return
		}
	}
}
