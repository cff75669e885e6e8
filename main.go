// antsiege is a turn-based tunnel defense: deploy ants, weather the bee
// waves, keep the queen alive.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"antsiege/internal/engine"
	"antsiege/internal/shell"

	"github.com/gdamore/tcell/v2"
)

func main() {
	tunnels := flag.Int("tunnels", shell.DefaultConfig.Tunnels, "Number of tunnels toward the queen")
	length := flag.Int("length", shell.DefaultConfig.TunnelLength, "Cells per tunnel")
	food := flag.Int("food", shell.DefaultConfig.StartingFood, "Starting food reserve")
	flood := flag.Int("flood", shell.DefaultConfig.FloodPeriod, "Every Nth cell is water (0 disables)")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := engine.ColonyConfig{
		StartingFood: *food,
		Tunnels:      *tunnels,
		TunnelLength: *length,
		FloodPeriod:  *flood,
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	rng := rand.New(rand.NewSource(*seed))
	factory := func() *engine.Match {
		return shell.DefaultMatch(cfg, rng.Int63())
	}
	shell.New(screen, factory, rng).Run()
}
