package component

import "antsiege/internal/ecs"

const CSpecies ecs.ComponentType = 1

// SpeciesKind is the closed set of unit variants. The turn behaviors in
// internal/system dispatch on it exhaustively.
type SpeciesKind uint8

const (
	KindGrower SpeciesKind = iota
	KindThrower
	KindEater
	KindScuba
	KindGuard
	KindBee
)

type Species struct {
	Kind SpeciesKind
}

func (Species) Type() ecs.ComponentType { return CSpecies }
