package component

import "antsiege/internal/ecs"

const CBoost ecs.ComponentType = 5

// Boost is the single active boost on a defender, by name ("" when none).
// Throw-type boosts are cleared after one throw.
type Boost struct {
	Name string
}

func (Boost) Type() ecs.ComponentType { return CBoost }
