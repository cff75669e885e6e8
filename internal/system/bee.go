package system

import (
	"antsiege/internal/component"
	"antsiege/internal/ecs"
	"antsiege/internal/tunnel"
)

// BeeAct runs one attacker turn. A defender in the cell (guard first)
// blocks the bee and is stung unless the bee is cold; otherwise the bee
// advances one cell queen-ward unless stuck. A bee that advances past the
// terminal sink leaves the board. Whatever branch ran, the status debuff
// expires at the end of the act.
func BeeAct(w *ecs.World, g *tunnel.Grid, id ecs.EntityID) {
	loc := postingOf(w, id)
	if loc == component.Unposted {
		return
	}
	l := g.At(loc)
	status := statusOf(w, id)

	if defender := l.Defender(); defender != ecs.NilEntity && status != component.StatusCold {
		ReduceArmor(w, g, defender, damageOf(w, id))
	} else if armorOf(w, id) > 0 && status != component.StatusStuck {
		if l.Exit == tunnel.None {
			// Past the queen-side end of the board.
			RemoveFromBoard(w, g, id)
			return
		}
		l.RemoveUnit(id)
		g.At(l.Exit).AddAttacker(id)
		w.Add(id, component.Posting{Loc: l.Exit})
	}

	if w.Alive(id) {
		w.Add(id, component.Status{Kind: component.StatusNone})
	}
}
