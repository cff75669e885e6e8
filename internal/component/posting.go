package component

import "antsiege/internal/ecs"

const CPosting ecs.ComponentType = 3

// Unposted marks a unit that is not on any Location (held in a stomach,
// waiting in the spawner, or mid-removal).
const Unposted = -1

// Posting is the unit-side half of the unit↔location relation: the arena
// index of the Location the unit currently occupies. The Location stores
// the unit's EntityID for the other direction.
type Posting struct {
	Loc int
}

func (Posting) Type() ecs.ComponentType { return CPosting }
