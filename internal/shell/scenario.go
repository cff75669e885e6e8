package shell

import (
	"math/rand"

	"antsiege/internal/engine"
)

// DefaultConfig is the standard colony layout: five tunnels of five
// cells, a modest food reserve, and water on every third cell.
var DefaultConfig = engine.ColonyConfig{
	StartingFood: 10,
	Tunnels:      5,
	TunnelLength: 5,
	FloodPeriod:  3,
}

// DefaultMatch builds the standard campaign: five escalating waves
// spaced three turns apart, against bees with three armor.
func DefaultMatch(cfg engine.ColonyConfig, seed int64) *engine.Match {
	rng := rand.New(rand.NewSource(seed))
	colony := engine.NewColony(cfg, rng)
	spawner := engine.NewSpawner(3, 1)
	for i, count := range []int{2, 3, 4, 5, 6} {
		spawner.ScheduleWave(2+i*3, count)
	}
	return engine.NewMatch(colony, spawner)
}
