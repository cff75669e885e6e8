// Package shell runs the interactive command loop for one match: a tcell
// screen showing the board, a message log, and a typed command prompt.
// It drives the engine exclusively through Match's public operations.
package shell

import (
	"math/rand"
	"strconv"

	"antsiege/assets"
	"antsiege/internal/engine"
	"antsiege/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Shell owns one player's screen and match. A factory rather than a match
// is injected so "try again" can start a fresh scenario.
type Shell struct {
	screen   tcell.Screen
	factory  func() *engine.Match
	match    *engine.Match
	renderer *render.Renderer
	rng      *rand.Rand
	messages []string
	input    []rune
}

// New creates a Shell; the factory is called once per run.
func New(screen tcell.Screen, factory func() *engine.Match, rng *rand.Rand) *Shell {
	return &Shell{
		screen:   screen,
		factory:  factory,
		renderer: render.NewRenderer(screen),
		rng:      rng,
	}
}

// Run plays matches until the player quits. Blocks for the lifetime of
// the session; the caller owns screen.Fini.
func (s *Shell) Run() {
	for {
		s.match = s.factory()
		s.messages = []string{"The colony stirs. Type help for commands."}
		s.input = nil

		if quit := s.playMatch(); quit {
			return
		}
		if !s.showEndScreen() {
			return
		}
	}
}

// playMatch runs the command loop until the match resolves or the player
// quits. Returns true on quit.
func (s *Shell) playMatch() bool {
	for {
		s.renderer.DrawBoard(s.match.World(), s.match.Grid(), s.match.PendingAttackers())
		s.renderer.DrawHUD(s.match.Turn(), s.match.Food(), s.match.AvailableBoosts(),
			s.match.PendingAttackers(), s.messages, string(s.input))

		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return true
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(s.input) > 0 {
					s.input = s.input[:len(s.input)-1]
				}
			case tcell.KeyEnter:
				line := string(s.input)
				s.input = nil
				if done, quit := s.execute(line); done {
					return quit
				}
			case tcell.KeyRune:
				s.input = append(s.input, ev.Rune())
			}
		}
	}
}

// execute runs one command line; done reports that the match is over or
// the player quit.
func (s *Shell) execute(line string) (done, quit bool) {
	msgs, advance, quitCmd := Dispatch(s.match, line)
	s.addMessages(msgs...)
	if quitCmd {
		return true, true
	}
	if !advance {
		return false, false
	}

	pendingBefore := s.match.PendingAttackers()
	s.match.TakeTurn()
	if s.match.PendingAttackers() < pendingBefore {
		s.addMessages(assets.WaveLore[s.rng.Intn(len(assets.WaveLore))])
	}

	switch s.match.Outcome() {
	case engine.OutcomeWon:
		s.addMessages(assets.VictoryLore[s.rng.Intn(len(assets.VictoryLore))])
		return true, false
	case engine.OutcomeLost:
		s.addMessages(assets.DefeatLore[s.rng.Intn(len(assets.DefeatLore))])
		return true, false
	}
	return false, false
}

func (s *Shell) addMessages(msgs ...string) {
	s.messages = append(s.messages, msgs...)
	if len(s.messages) > 50 {
		s.messages = s.messages[len(s.messages)-50:]
	}
}

// showEndScreen renders the match result and returns true if the player
// wants another run.
func (s *Shell) showEndScreen() bool {
	won := s.match.Outcome() == engine.OutcomeWon

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		// Keep the final board visible behind the banner.
		s.renderer.DrawBoard(s.match.World(), s.match.Grid(), s.match.PendingAttackers())

		y := len(s.match.Grid().Chains)*2 + 3
		if won {
			s.drawText(2, y, "THE GALLERIES HOLD", gold)
			s.drawText(24, y, "[VICTORY]", green)
		} else {
			s.drawText(2, y, "THE QUEEN IS OVERRUN", gold)
			s.drawText(24, y, "[DEFEAT]", red)
		}
		s.drawText(2, y+1, "Turns played: "+strconv.Itoa(s.match.Turn()), white)
		s.drawText(2, y+3, "[R] Try Again    [Q] Quit", white)
		s.screen.Show()

		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return false
			}
			switch ev.Rune() {
			case 'r', 'R':
				return true
			case 'q', 'Q':
				return false
			}
		}
	}
}

func (s *Shell) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
