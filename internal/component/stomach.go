package component

import "antsiege/internal/ecs"

const CStomach ecs.ComponentType = 6

// Stomach is the Eater's digestion state. Timer semantics:
//
//	0         empty, may swallow this turn
//	1..3      digesting Held; each act increments
//	> 3       digestion complete — Held is destroyed, Timer resets to 0
//
// Held stays alive (off-board, Unposted) until digestion completes so it
// can be regurgitated when the Eater takes damage.
type Stomach struct {
	Held  ecs.EntityID
	Timer int
}

func (Stomach) Type() ecs.ComponentType { return CStomach }
