package component

import "antsiege/internal/ecs"

const CStatus ecs.ComponentType = 7

// StatusKind is a one-turn debuff on an attacker. Stuck prevents movement,
// cold prevents attacking. Reset to none at the end of every act.
type StatusKind uint8

const (
	StatusNone StatusKind = iota
	StatusStuck
	StatusCold
)

type Status struct {
	Kind StatusKind
}

func (Status) Type() ecs.ComponentType { return CStatus }
