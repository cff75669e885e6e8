package assets

// Boost names shared between the grower's roll table, the colony inventory,
// and the throw logic.
const (
	BoostFlight = "flight"
	BoostStick  = "stick"
	BoostFreeze = "freeze"
	BoostSpray  = "spray"
)

// BoostDef defines one grantable boost.
type BoostDef struct {
	Name       string
	Glyph      string
	Lore       string
	StartCount int // copies in a fresh colony's inventory
}

// Boosts is the ordered list of known boosts.
var Boosts = []BoostDef{
	{Name: BoostFlight, Glyph: "🪽", Lore: "Extends a thrower's range from three cells to five", StartCount: 1},
	{Name: BoostStick, Glyph: "🕸", Lore: "The next throw roots its target in place for a turn", StartCount: 1},
	{Name: BoostFreeze, Glyph: "❄", Lore: "The next throw chills its target, stopping its sting for a turn", StartCount: 1},
	{Name: BoostSpray, Glyph: "💨", Lore: "Empties the whole canister on everything in the cell — thrower included", StartCount: 1},
}

// BoostByName returns the definition for a boost name.
func BoostByName(name string) (BoostDef, bool) {
	for _, def := range Boosts {
		if def.Name == name {
			return def, true
		}
	}
	return BoostDef{}, false
}
