package component

import "antsiege/internal/ecs"

const CWeapon ecs.ComponentType = 4

// Weapon holds the damage dealt per hit. Carried by throwers, scubas and
// bees; the other defender kinds never attack directly.
type Weapon struct {
	Damage int
}

func (Weapon) Type() ecs.ComponentType { return CWeapon }
