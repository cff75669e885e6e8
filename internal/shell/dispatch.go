package shell

import (
	"fmt"
	"strings"

	"antsiege/assets"
	"antsiege/internal/engine"
)

// Dispatch applies one typed command line to the match. advance reports
// whether the command should consume a turn; quit reports that the player
// asked to leave. Engine errors come back as log messages, never as
// failures — a mistyped command costs nothing.
func Dispatch(m *engine.Match, line string) (msgs []string, advance, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		// Bare Enter ends the turn.
		return nil, true, false
	}

	switch strings.ToLower(fields[0]) {
	case "turn", "t":
		return nil, true, false

	case "deploy", "d":
		if len(fields) != 3 {
			return []string{"usage: deploy <type> <row,col>"}, false, false
		}
		if err := m.Deploy(fields[1], fields[2]); err != nil {
			return []string{err.Error()}, false, false
		}
		return []string{fmt.Sprintf("A %s takes position at %s.", strings.ToLower(fields[1]), fields[2])}, false, false

	case "remove", "r":
		if len(fields) != 2 {
			return []string{"usage: remove <row,col>"}, false, false
		}
		if err := m.Remove(fields[1]); err != nil {
			return []string{err.Error()}, false, false
		}
		return []string{fmt.Sprintf("The defender at %s stands down.", fields[1])}, false, false

	case "boost", "b":
		if len(fields) != 3 {
			return []string{"usage: boost <name> <row,col>"}, false, false
		}
		if err := m.ApplyBoost(fields[1], fields[2]); err != nil {
			return []string{err.Error()}, false, false
		}
		return []string{fmt.Sprintf("The %s boost is handed to %s.", strings.ToLower(fields[1]), fields[2])}, false, false

	case "help", "h", "?":
		return helpLines(), false, false

	case "quit", "q":
		return nil, false, true

	default:
		return []string{fmt.Sprintf("unknown command %q — try help", fields[0])}, false, false
	}
}

// helpLines lists the command grammar and the unit/boost tables.
func helpLines() []string {
	lines := []string{
		"deploy <type> <row,col> · remove <row,col> · boost <name> <row,col> · turn (or Enter) · quit",
	}
	for _, def := range assets.Species {
		lines = append(lines, fmt.Sprintf("%s %-8s cost %d, armor %d — %s", def.Glyph, def.Name, def.Cost, def.Armor, def.Lore))
	}
	for _, def := range assets.Boosts {
		lines = append(lines, fmt.Sprintf("%s %-8s %s", def.Glyph, def.Name, def.Lore))
	}
	return lines
}
