package system

import (
	"math/rand"

	"antsiege/assets"
	"antsiege/internal/component"
	"antsiege/internal/ecs"
	"antsiege/internal/tunnel"
)

const (
	throwRange   = 3  // cells a thrower can reach
	flightRange  = 5  // throw range with the flight boost
	sprayDamage  = 10 // per hit while spraying, and the self-inflicted cost
	digestRounds = 3  // acts after swallowing before the meal is gone
)

// DefenderResult reports what one defender produced this turn. Food and
// boosts are credited to the colony by the orchestrator; the systems never
// touch colony inventories directly.
type DefenderResult struct {
	Food    int
	Boost   string
	Expired bool // the defender destroyed itself (spray)
}

// DefenderAct runs one defender turn, dispatching on the species kind.
func DefenderAct(w *ecs.World, g *tunnel.Grid, id ecs.EntityID, rng *rand.Rand) DefenderResult {
	switch kindOf(w, id) {
	case component.KindGrower:
		return growerAct(rng)
	case component.KindThrower, component.KindScuba:
		return throwerAct(w, g, id)
	case component.KindEater:
		eaterAct(w, g, id)
	case component.KindGuard:
		// Guards never act on their own; their value is the slot they fill.
	}
	return DefenderResult{}
}

// growerAct draws one uniform value and maps it onto the outcome bands:
// [0,.6) food, then a 10% band each for flight/stick/freeze, 5% for spray,
// and a 5% dud.
func growerAct(rng *rand.Rand) DefenderResult {
	roll := rng.Float64()
	switch {
	case roll < 0.6:
		return DefenderResult{Food: 1}
	case roll < 0.7:
		return DefenderResult{Boost: assets.BoostFlight}
	case roll < 0.8:
		return DefenderResult{Boost: assets.BoostStick}
	case roll < 0.9:
		return DefenderResult{Boost: assets.BoostFreeze}
	case roll < 0.95:
		return DefenderResult{Boost: assets.BoostSpray}
	default:
		return DefenderResult{}
	}
}

// throwerAct is shared by throwers and scubas — they differ only in water
// tolerance. A throw consumes whatever boost was active.
func throwerAct(w *ecs.World, g *tunnel.Grid, id ecs.EntityID) DefenderResult {
	loc := postingOf(w, id)
	if loc == component.Unposted {
		return DefenderResult{}
	}
	boost := boostOf(w, id)

	if boost == assets.BoostSpray {
		return sprayAct(w, g, id, loc)
	}

	reach := throwRange
	if boost == assets.BoostFlight {
		reach = flightRange
	}
	target := g.ClosestAttacker(loc, reach, 0)
	if target == ecs.NilEntity {
		return DefenderResult{}
	}

	expired := ReduceArmor(w, g, target, damageOf(w, id))
	if !expired {
		switch boost {
		case assets.BoostStick:
			w.Add(target, component.Status{Kind: component.StatusStuck})
		case assets.BoostFreeze:
			w.Add(target, component.Status{Kind: component.StatusCold})
		}
	}
	if boost != "" {
		w.Add(id, component.Boost{})
	}
	return DefenderResult{}
}

// sprayAct empties the canister: every attacker sharing the cell takes
// sprayDamage until none remain, then the sprayer takes the same.
func sprayAct(w *ecs.World, g *tunnel.Grid, id ecs.EntityID, loc int) DefenderResult {
	for {
		target := g.ClosestAttacker(loc, 0, 0)
		if target == ecs.NilEntity {
			break
		}
		ReduceArmor(w, g, target, sprayDamage)
	}
	ReduceArmor(w, g, id, sprayDamage)
	return DefenderResult{Expired: true}
}

// eaterAct advances the digestion state machine: swallow an adjacent
// attacker when the stomach is empty, otherwise keep digesting until the
// meal is destroyed.
func eaterAct(w *ecs.World, g *tunnel.Grid, id ecs.EntityID) {
	stComp := w.Get(id, component.CStomach)
	if stComp == nil {
		return
	}
	st := stComp.(component.Stomach)

	if st.Timer == 0 {
		loc := postingOf(w, id)
		if loc == component.Unposted {
			return
		}
		target := g.ClosestAttacker(loc, 0, 0)
		if target != ecs.NilEntity {
			g.At(loc).RemoveUnit(target)
			w.Add(target, component.Posting{Loc: component.Unposted})
			st.Held = target
			st.Timer = 1
		}
	} else {
		st.Timer++
		if st.Timer > digestRounds {
			if st.Held != ecs.NilEntity {
				w.DestroyEntity(st.Held)
			}
			st.Held = ecs.NilEntity
			st.Timer = 0
		}
	}
	w.Add(id, st)
}
