package component

import "antsiege/internal/ecs"

const CArmor ecs.ComponentType = 2

// Armor is the unit's remaining durability. It may go negative transiently
// inside one ReduceArmor call; a unit at ≤ 0 is removed from the board.
type Armor struct {
	Current int
}

func (Armor) Type() ecs.ComponentType { return CArmor }
