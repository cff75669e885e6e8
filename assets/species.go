package assets

// Emoji constants used as unit glyphs.
const (
	GlyphGrower  = "🌱"
	GlyphThrower = "🏹"
	GlyphEater   = "🐜"
	GlyphScuba   = "🤿"
	GlyphGuard   = "🛡"
	GlyphBee     = "🐝"
	GlyphQueen   = "👑"
	GlyphSpawner = "🍯"
)

// SpeciesDef defines one deployable defender kind.
type SpeciesDef struct {
	Name      string // canonical lowercase name accepted by deploy
	Glyph     string
	Lore      string // one-liner shown by the shell's help screen
	Cost      int    // food spent on deployment
	Armor     int
	Damage    int  // per throw; zero for kinds that never attack
	WaterSafe bool // survives flooding
	GuardSlot bool // occupies the guard slot instead of the regular one
}

// Species is the ordered list of deployable defender kinds.
var Species = []SpeciesDef{
	{
		Name:  "grower",
		Glyph: GlyphGrower,
		Lore:  "Cultivates food, and occasionally something stranger",
		Cost:  1,
		Armor: 1,
	},
	{
		Name:   "thrower",
		Glyph:  GlyphThrower,
		Lore:   "Pelts the nearest attacker within three cells",
		Cost:   4,
		Armor:  1,
		Damage: 1,
	},
	{
		Name:  "eater",
		Glyph: GlyphEater,
		Lore:  "Swallows an adjacent attacker whole, then needs time to digest",
		Cost:  4,
		Armor: 2,
	},
	{
		Name:      "scuba",
		Glyph:     GlyphScuba,
		Lore:      "A thrower at home in flooded cells",
		Cost:      5,
		Armor:     1,
		Damage:    1,
		WaterSafe: true,
	},
	{
		Name:      "guard",
		Glyph:     GlyphGuard,
		Lore:      "Shields whoever shares its cell; attackers must chew through it first",
		Cost:      4,
		Armor:     2,
		GuardSlot: true,
	},
}

// SpeciesByName returns the definition for a canonical lowercase name.
func SpeciesByName(name string) (SpeciesDef, bool) {
	for _, def := range Species {
		if def.Name == name {
			return def, true
		}
	}
	return SpeciesDef{}, false
}
