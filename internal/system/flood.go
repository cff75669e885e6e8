package system

import (
	"antsiege/internal/component"
	"antsiege/internal/ecs"
	"antsiege/internal/tunnel"
)

// FloodAct resolves the terrain hazard for one Location. Water removes any
// guard first, then the regular occupant unless its kind tolerates water.
// Removal flows through ReduceArmor so the Eater's regurgitation hooks
// still fire when an Eater drowns.
func FloodAct(w *ecs.World, g *tunnel.Grid, locID int) {
	l := g.At(locID)
	if !l.Water {
		return
	}
	if l.Guard != ecs.NilEntity {
		Expire(w, g, l.Guard)
	}
	if occ := l.Occupant; occ != ecs.NilEntity && kindOf(w, occ) != component.KindScuba {
		Expire(w, g, occ)
	}
}
