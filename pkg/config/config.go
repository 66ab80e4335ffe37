package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultTick is how long the editor waits for input before redrawing.
const DefaultTick = 200 * time.Millisecond

// Command names that can be rebound in the keymap section.
const (
	CmdPrompt    = "prompt"
	CmdWordLeft  = "word-left"
	CmdWordRight = "word-right"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	Tick   time.Duration         `yaml:"tick"`
	Keymap map[string]Keybinding `yaml:"keymap"`
	Theme  Theme                 `yaml:"theme"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{Tick: DefaultTick, Keymap: DefaultKeymap(), Theme: DefaultTheme()}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		CmdPrompt:    mustParse("Esc"),
		CmdWordLeft:  mustParse("Ctrl+Left"),
		CmdWordRight: mustParse("Ctrl+Right"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	section := ""
	for n, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		indented := raw[0] == ' ' || raw[0] == '\t'
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config line %d: invalid line: %s", n+1, line)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if !indented {
			section = ""
		}
		if value == "" && !indented {
			section = key
			continue
		}
		if err := cfg.set(section, key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", n+1, err)
		}
	}
	return cfg, nil
}

func (c *Config) set(section, key, value string) error {
	switch section {
	case "":
		if key != "tick" {
			return errors.New("unknown setting: " + key)
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		if d <= 0 {
			return errors.New("tick must be positive: " + value)
		}
		c.Tick = d
	case "keymap":
		kb, err := ParseKeybinding(value)
		if err != nil {
			return err
		}
		c.Keymap[key] = kb
	case "theme":
		return c.Theme.set(key, value)
	default:
		return errors.New("unknown section: " + section)
	}
	return nil
}

// LoadDefault attempts to read ~/.tinyedit/config.yaml.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(home, ".tinyedit", "config.yaml")
	return Load(path)
}

var namedKeys = map[string]tcell.Key{
	"esc":       tcell.KeyEsc,
	"escape":    tcell.KeyEsc,
	"enter":     tcell.KeyEnter,
	"backspace": tcell.KeyBackspace2,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
}

// ParseKeybinding converts a textual key description into a Keybinding.
// Supported forms are Ctrl+<letter>, a named key such as "Esc" or "Left",
// and Ctrl+<named key>.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	switch len(parts) {
	case 1:
		k, ok := namedKeys[strings.ToLower(strings.TrimSpace(parts[0]))]
		if !ok {
			return Keybinding{}, errors.New("invalid key in keybinding: " + s)
		}
		return Keybinding{Key: k}, nil
	case 2:
	default:
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	name := strings.ToLower(parts[1])
	if k, ok := namedKeys[name]; ok {
		return Keybinding{Key: k, Mod: tcell.ModCtrl}, nil
	}
	r := []rune(name)
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	switch k.Key {
	case tcell.KeyRune:
		if ev.Key() == tcell.KeyRune && ev.Rune() == k.Rune && ev.Modifiers() == k.Mod {
			return true
		}
		// terminals report most Ctrl+letter chords as dedicated keys
		if k.Mod == tcell.ModCtrl {
			if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
				return true
			}
		}
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return (ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2) && ev.Modifiers()&tcell.ModCtrl == k.Mod
	}
	return ev.Key() == k.Key && ev.Modifiers()&tcell.ModCtrl == k.Mod
}
