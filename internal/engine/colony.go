package engine

import (
	"math/rand"

	"antsiege/assets"
	"antsiege/internal/component"
	"antsiege/internal/ecs"
	"antsiege/internal/system"
	"antsiege/internal/tunnel"
)

// ColonyConfig describes one scenario's board and economy.
type ColonyConfig struct {
	StartingFood int
	Tunnels      int
	TunnelLength int
	FloodPeriod  int // 0 disables water; else every Nth cell from the queen is wet
}

// Colony owns the tunnel grid, the food counter, the boost inventory, and
// the per-phase turn orchestration. All randomness comes from the injected
// rng so scenarios replay deterministically under a fixed seed.
type Colony struct {
	world  *ecs.World
	grid   *tunnel.Grid
	food   int
	boosts map[string]int
	rng    *rand.Rand
}

// NewColony builds the tunnel network and stocks the default boost
// assortment.
func NewColony(cfg ColonyConfig, rng *rand.Rand) *Colony {
	boosts := make(map[string]int, len(assets.Boosts))
	for _, def := range assets.Boosts {
		boosts[def.Name] = def.StartCount
	}
	return &Colony{
		world:  ecs.NewWorld(),
		grid:   tunnel.NewGrid(cfg.Tunnels, cfg.TunnelLength, cfg.FloodPeriod),
		food:   cfg.StartingFood,
		boosts: boosts,
		rng:    rng,
	}
}

// ─── turn phases ────────────────────────────────────────────────────────────

// AntsAct runs every visible defender's turn in grid order. A guarded
// Location is a deliberate exception to visible-only iteration: the
// shielded regular occupant is invoked explicitly first, then the guard's
// own (no-op) act — without this the shielded defender would never act.
func (c *Colony) AntsAct() {
	for _, chain := range c.grid.Chains {
		for _, locID := range chain {
			l := c.grid.At(locID)
			def := l.Defender()
			if def == ecs.NilEntity {
				continue
			}
			if l.Guard != ecs.NilEntity && l.Occupant != ecs.NilEntity {
				c.credit(system.DefenderAct(c.world, c.grid, l.Occupant, c.rng))
			}
			if c.world.Alive(def) {
				c.credit(system.DefenderAct(c.world, c.grid, def, c.rng))
			}
		}
	}
}

// BeesAct runs every attacker currently on the grid, in grid order then
// per-Location arrival order. The acting set is snapshotted first so a bee
// that advances into a later cell does not act twice.
func (c *Colony) BeesAct() {
	var acting []ecs.EntityID
	for i := range c.grid.Locations {
		acting = append(acting, c.grid.Locations[i].Attackers...)
	}
	for _, id := range acting {
		if c.world.Alive(id) {
			system.BeeAct(c.world, c.grid, id)
		}
	}
}

// PlacesAct resolves flooding for every Location in grid order.
func (c *Colony) PlacesAct() {
	for i := range c.grid.Locations {
		system.FloodAct(c.world, c.grid, i)
	}
}

// credit applies one defender's produce to the colony inventories.
func (c *Colony) credit(r system.DefenderResult) {
	c.food += r.Food
	if r.Boost != "" {
		c.boosts[r.Boost]++
	}
}

// ─── deployment and boosts ──────────────────────────────────────────────────

var kindByName = map[string]component.SpeciesKind{
	"grower":  component.KindGrower,
	"thrower": component.KindThrower,
	"eater":   component.KindEater,
	"scuba":   component.KindScuba,
	"guard":   component.KindGuard,
}

// Deploy constructs a defender of the named kind and places it at
// (row, col). The name must already be lowercase; Match normalizes.
func (c *Colony) Deploy(name string, row, col int) error {
	def, ok := assets.SpeciesByName(name)
	if !ok {
		return ErrUnknownUnitType
	}
	locID, ok := c.grid.Cell(row, col)
	if !ok {
		return ErrIllegalLocation
	}
	if c.food < def.Cost {
		return ErrInsufficientFood
	}
	l := c.grid.At(locID)
	if def.GuardSlot {
		if l.Guard != ecs.NilEntity {
			return ErrSlotOccupied
		}
	} else if l.Occupant != ecs.NilEntity {
		return ErrSlotOccupied
	}

	c.food -= def.Cost
	id := c.newDefender(def, locID)
	if def.GuardSlot {
		l.Guard = id
	} else {
		l.Occupant = id
	}
	return nil
}

// Remove clears the outward-facing defender at (row, col): the guard when
// present, else the regular occupant. The shielded occupant cannot be
// targeted directly while its guard stands.
func (c *Colony) Remove(row, col int) error {
	locID, ok := c.grid.Cell(row, col)
	if !ok {
		return ErrIllegalLocation
	}
	def := c.grid.At(locID).Defender()
	if def == ecs.NilEntity {
		return ErrNoDefenderAtLocation
	}
	system.Expire(c.world, c.grid, def)
	return nil
}

// ApplyBoost takes one copy of the named boost from the inventory and
// assigns it to the outward-facing defender at (row, col).
func (c *Colony) ApplyBoost(name string, row, col int) error {
	if _, ok := assets.BoostByName(name); !ok {
		return ErrUnknownBoost
	}
	locID, ok := c.grid.Cell(row, col)
	if !ok {
		return ErrIllegalLocation
	}
	def := c.grid.At(locID).Defender()
	if def == ecs.NilEntity {
		return ErrNoDefenderAtLocation
	}
	if c.boosts[name] == 0 {
		return ErrBoostExhausted
	}
	c.boosts[name]--
	c.world.Add(def, component.Boost{Name: name})
	return nil
}

func (c *Colony) newDefender(def assets.SpeciesDef, locID int) ecs.EntityID {
	id := c.world.CreateEntity()
	c.world.Add(id, component.Species{Kind: kindByName[def.Name]})
	c.world.Add(id, component.Armor{Current: def.Armor})
	c.world.Add(id, component.Posting{Loc: locID})
	c.world.Add(id, component.TagDefender{})
	if def.Damage > 0 {
		c.world.Add(id, component.Weapon{Damage: def.Damage})
	}
	if kindByName[def.Name] == component.KindEater {
		c.world.Add(id, component.Stomach{})
	}
	return id
}

// newBee creates an attacker entity, initially off-board.
func (c *Colony) newBee(armor, damage int) ecs.EntityID {
	id := c.world.CreateEntity()
	c.world.Add(id, component.Species{Kind: component.KindBee})
	c.world.Add(id, component.Armor{Current: armor})
	c.world.Add(id, component.Weapon{Damage: damage})
	c.world.Add(id, component.Status{})
	c.world.Add(id, component.Posting{Loc: component.Unposted})
	c.world.Add(id, component.TagAttacker{})
	return id
}

// ─── read-only views ────────────────────────────────────────────────────────

// Food returns the colony's food balance.
func (c *Colony) Food() int { return c.food }

// Grid exposes the tunnel network for rendering. Callers must not mutate.
func (c *Colony) Grid() *tunnel.Grid { return c.grid }

// World exposes the unit store for rendering. Callers must not mutate.
func (c *Colony) World() *ecs.World { return c.world }

// AvailableBoosts returns the names with at least one copy left, in the
// fixed assortment order.
func (c *Colony) AvailableBoosts() []string {
	var names []string
	for _, def := range assets.Boosts {
		if c.boosts[def.Name] > 0 {
			names = append(names, def.Name)
		}
	}
	return names
}

// BoostCount returns the copies of one boost left in the inventory.
func (c *Colony) BoostCount(name string) int { return c.boosts[name] }
