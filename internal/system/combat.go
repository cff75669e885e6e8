package system

import (
	"antsiege/internal/component"
	"antsiege/internal/ecs"
	"antsiege/internal/tunnel"
)

// ReduceArmor subtracts amount from the unit's armor; if the result is ≤ 0
// the unit is removed from the board and true is returned. Every point of
// damage in the engine flows through here — the Eater's regurgitation side
// effects hook in before the base removal runs.
func ReduceArmor(w *ecs.World, g *tunnel.Grid, id ecs.EntityID, amount int) bool {
	armorComp := w.Get(id, component.CArmor)
	if armorComp == nil {
		return false
	}
	armor := armorComp.(component.Armor)
	armor.Current -= amount
	w.Add(id, armor)

	if kindOf(w, id) == component.KindEater {
		eaterDamaged(w, g, id, armor.Current)
	}

	if armor.Current > 0 {
		return false
	}
	RemoveFromBoard(w, g, id)
	return true
}

// eaterDamaged applies the Eater's damage overrides before base removal:
// with armor left and the swallow one turn old, the held attacker is
// regurgitated unharmed and the timer jumps to 3; on a lethal hit early in
// digestion the held attacker escapes, later it perishes with the Eater.
func eaterDamaged(w *ecs.World, g *tunnel.Grid, id ecs.EntityID, remaining int) {
	stComp := w.Get(id, component.CStomach)
	if stComp == nil {
		return
	}
	st := stComp.(component.Stomach)
	if st.Held == ecs.NilEntity {
		return
	}

	if remaining > 0 {
		if st.Timer == 1 {
			regurgitate(w, g, id, &st)
			st.Timer = 3
		}
	} else {
		if st.Timer == 1 || st.Timer == 2 {
			regurgitate(w, g, id, &st)
		} else {
			// Too far digested to escape.
			w.DestroyEntity(st.Held)
			st.Held = ecs.NilEntity
		}
	}
	w.Add(id, st)
}

// regurgitate returns the held attacker to the Eater's current Location,
// at the end of the arrival order.
func regurgitate(w *ecs.World, g *tunnel.Grid, eater ecs.EntityID, st *component.Stomach) {
	loc := postingOf(w, eater)
	if loc != component.Unposted {
		g.At(loc).AddAttacker(st.Held)
		w.Add(st.Held, component.Posting{Loc: loc})
	}
	st.Held = ecs.NilEntity
}

// Expire removes a unit by spending exactly its remaining armor, so the
// removal still flows through the damage chokepoint and the Eater's
// regurgitation rules apply. Used by flooding and explicit removal.
func Expire(w *ecs.World, g *tunnel.Grid, id ecs.EntityID) {
	ReduceArmor(w, g, id, armorOf(w, id))
}

// RemoveFromBoard clears the unit from its Location slot and destroys the
// entity. Safe to call twice; the second call is a no-op.
func RemoveFromBoard(w *ecs.World, g *tunnel.Grid, id ecs.EntityID) {
	if !w.Alive(id) {
		return
	}
	if loc := postingOf(w, id); loc != component.Unposted {
		g.At(loc).RemoveUnit(id)
	}
	w.DestroyEntity(id)
}

// ─── component accessors ────────────────────────────────────────────────────

func kindOf(w *ecs.World, id ecs.EntityID) component.SpeciesKind {
	c := w.Get(id, component.CSpecies)
	if c == nil {
		return component.KindBee // only tagged units reach the systems
	}
	return c.(component.Species).Kind
}

func postingOf(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CPosting)
	if c == nil {
		return component.Unposted
	}
	return c.(component.Posting).Loc
}

func armorOf(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CArmor)
	if c == nil {
		return 0
	}
	return c.(component.Armor).Current
}

func damageOf(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CWeapon)
	if c == nil {
		return 0
	}
	return c.(component.Weapon).Damage
}

func statusOf(w *ecs.World, id ecs.EntityID) component.StatusKind {
	c := w.Get(id, component.CStatus)
	if c == nil {
		return component.StatusNone
	}
	return c.(component.Status).Kind
}

func boostOf(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CBoost)
	if c == nil {
		return ""
	}
	return c.(component.Boost).Name
}
