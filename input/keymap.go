package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Command is what a keypress asks the game to do
type Command uint8

const (
	CommandNone Command = iota
	CommandStop
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandInterrupt // raw mode swallows SIGINT, Ctrl-C arrives as a key
)

var commandNames = map[string]Command{
	"stop":  CommandStop,
	"up":    CommandUp,
	"down":  CommandDown,
	"left":  CommandLeft,
	"right": CommandRight,
}

func (c Command) String() string {
	switch c {
	case CommandInterrupt:
		return "interrupt"
	case CommandNone:
		return "none"
	}
	for name, cmd := range commandNames {
		if cmd == c {
			return name
		}
	}
	return fmt.Sprintf("command(%d)", c)
}

// Key is a single keypress reduced to what the keymap needs
type Key struct {
	Code tcell.Key
	Rune rune
}

// KeyFromEvent reduces a tcell key event
func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Key{Code: tcell.KeyRune, Rune: ev.Rune()}
	}
	return Key{Code: ev.Key()}
}

// Named keys usable in the keymap table, anything else must be a single character
var specialKeys = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Keymap translates keys to commands
type Keymap struct {
	runes map[rune]Command
	keys  map[tcell.Key]Command
}

// NewKeymap builds a keymap from key name -> command name bindings
func NewKeymap(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{
		runes: make(map[rune]Command),
		keys:  make(map[tcell.Key]Command),
	}

	for keyName, cmdName := range bindings {
		cmd, ok := commandNames[strings.ToLower(cmdName)]
		if !ok {
			return nil, fmt.Errorf("keymap %q: unknown command %q", keyName, cmdName)
		}

		if k, ok := specialKeys[strings.ToLower(keyName)]; ok {
			km.keys[k] = cmd
			continue
		}
		if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
			km.runes[r] = cmd
			continue
		}
		if utf8.RuneCountInString(keyName) != 1 {
			return nil, fmt.Errorf("keymap %q: not a single character or known key name", keyName)
		}
		r, _ := utf8.DecodeRuneInString(keyName)
		km.runes[r] = cmd
	}

	return km, nil
}

// Lookup returns the bound command, CommandNone for unbound keys.
// Ctrl-C always interrupts regardless of bindings.
func (km *Keymap) Lookup(k Key) Command {
	if k.Code == tcell.KeyCtrlC {
		return CommandInterrupt
	}
	if k.Code == tcell.KeyRune {
		return km.runes[k.Rune]
	}
	return km.keys[k.Code]
}
