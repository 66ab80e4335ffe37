package editor

// KeyKind identifies a key event delivered to the editor core.
type KeyKind int

const (
	// KeyNone means no event arrived within the redraw tick.
	KeyNone KeyKind = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyWordLeft
	KeyWordRight
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyWordLeft:  "word-left",
	KeyWordRight: "word-right",
}

func (k KeyKind) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Key is a single input event. Rune is only meaningful for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune returns a KeyRune event for r.
func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}
