package assets

// Flavor lines picked at random for the shell's message log.

// WaveLore is shown when a wave of attackers arrives.
var WaveLore = []string{
	"A furious droning rolls down the tunnels.",
	"The honeyed horde presses forward.",
	"Wings rattle the soil from the ceiling.",
}

// VictoryLore is shown when the last attacker falls.
var VictoryLore = []string{
	"The droning fades. The galleries belong to the colony.",
	"Silence at last. The queen resumes her audience.",
}

// DefeatLore is shown when an attacker reaches the queen.
var DefeatLore = []string{
	"Stingers reach the royal chamber. The colony scatters.",
	"The queen's guard is overrun.",
}
