package engine

import (
	"antsiege/internal/component"
	"antsiege/internal/ecs"
	"antsiege/internal/tunnel"
)

// Spawner is the source of attacker waves. It extends a Location: bees of
// a dispatching wave stage in Loc before being scattered across the
// colony's tunnel mouths.
type Spawner struct {
	Loc     tunnel.Location
	armor   int // armor of every bee this spawner produces
	damage  int // sting damage of every bee
	waves   map[int]int
	pending int
}

// NewSpawner creates a Spawner whose bees carry the given armor and
// damage.
func NewSpawner(armor, damage int) *Spawner {
	return &Spawner{
		Loc: tunnel.Location{
			Name: "spawner",
			Row:  -1, Col: -1,
			Exit:     tunnel.None,
			Entrance: tunnel.None,
		},
		armor:  armor,
		damage: damage,
		waves:  make(map[int]int),
	}
}

// ScheduleWave queues count bees for dispatch at the given turn number.
// Scheduling the same turn twice accumulates.
func (s *Spawner) ScheduleWave(turn, count int) {
	s.waves[turn] += count
	s.pending += count
}

// Pending returns the number of scheduled bees not yet dispatched.
func (s *Spawner) Pending() int { return s.pending }

// Invade dispatches the wave scheduled for turn, if any: each bee is
// created, staged in the spawner cell, then placed at a uniformly random
// tunnel mouth (one draw per bee). Returns the dispatched bees.
func (s *Spawner) Invade(c *Colony, turn int) []ecs.EntityID {
	count := s.waves[turn]
	if count == 0 {
		return nil
	}
	delete(s.waves, turn)
	s.pending -= count

	mouths := c.grid.Mouths()
	wave := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		id := c.newBee(s.armor, s.damage)
		s.Loc.AddAttacker(id)

		mouth := mouths[c.rng.Intn(len(mouths))]
		s.Loc.RemoveUnit(id)
		c.grid.At(mouth).AddAttacker(id)
		c.world.Add(id, component.Posting{Loc: mouth})
		wave = append(wave, id)
	}
	return wave
}
