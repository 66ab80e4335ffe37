package editor

import (
	"unicode/utf8"

	"example.com/tinyedit/pkg/buffer"
)

// Mode is the controller's input mode.
type Mode int

const (
	ModeEditing Mode = iota
	ModeSavePrompt
	ModeTerminated
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeSavePrompt:
		return "save-prompt"
	case ModeTerminated:
		return "terminated"
	}
	return "unknown"
}

// Cursor is a position in the document. Column may equal the line length,
// which places the cursor after the last character, before the terminator.
type Cursor struct {
	Line   int
	Column int
}

// State is everything the controller tracks between key events.
type State struct {
	Mode   Mode
	Cursor Cursor
	// PreferredColumn is the column vertical moves aim for. It is set by
	// horizontal moves and edits and clamped only when applied.
	PreferredColumn int
	// Input is the filename typed at the save prompt.
	Input string
}

// View is the read-only document access Step needs.
type View interface {
	buffer.RuneReader
	LineCount() int
	LineToChar(line int) int
	CharToLine(i int) int
	LineLen(line int) int
}

// Edit replaces the runes in [Start,End) with Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Effect is the side effect requested by a Step: at most one edit and, at
// the save prompt, a save.
type Effect struct {
	Edit      *Edit
	Save      bool
	SaveInput string
}

// Step computes the state following k. It never mutates v; the returned
// Effect must be applied to the document for the new state to be valid.
// named reports whether the document already has a filename.
func Step(st State, v View, named bool, k Key) (State, Effect) {
	if k.Kind == KeyRune && k.Rune == '\n' {
		// a line terminator is never a plain character: the cursor has to
		// follow it onto the new line
		k = Key{Kind: KeyEnter}
	}
	switch st.Mode {
	case ModeEditing:
		return stepEditing(st, v, k)
	case ModeSavePrompt:
		return stepPrompt(st, named, k)
	}
	return st, Effect{}
}

func stepEditing(st State, v View, k Key) (State, Effect) {
	c := st.Cursor
	index := v.LineToChar(c.Line) + c.Column

	switch k.Kind {
	case KeyRune:
		st.Cursor.Column++
		st.PreferredColumn = st.Cursor.Column
		return st, Effect{Edit: &Edit{Start: index, End: index, Text: string(k.Rune)}}

	case KeyEnter:
		st.Cursor = Cursor{Line: c.Line + 1}
		st.PreferredColumn = 0
		return st, Effect{Edit: &Edit{Start: index, End: index, Text: "\n"}}

	case KeyBackspace:
		switch {
		case c.Column > 0:
			st.Cursor.Column--
		case c.Line > 0:
			// joining lines: the previous line keeps its content length
			prev := c.Line - 1
			st.Cursor = Cursor{Line: prev, Column: v.LineLen(prev)}
		default:
			return st, Effect{}
		}
		st.PreferredColumn = st.Cursor.Column
		return st, Effect{Edit: &Edit{Start: index - 1, End: index}}

	case KeyLeft:
		switch {
		case c.Column > 0:
			st.Cursor.Column--
		case c.Line > 0:
			st.Cursor = Cursor{Line: c.Line - 1, Column: v.LineLen(c.Line - 1)}
		default:
			return st, Effect{}
		}
		st.PreferredColumn = st.Cursor.Column

	case KeyRight:
		switch {
		case c.Column < v.LineLen(c.Line):
			st.Cursor.Column++
		case c.Line+1 < v.LineCount():
			st.Cursor = Cursor{Line: c.Line + 1}
		default:
			return st, Effect{}
		}
		st.PreferredColumn = st.Cursor.Column

	case KeyUp:
		if c.Line > 0 {
			st.Cursor = verticalTarget(v, c.Line-1, st.PreferredColumn)
		}

	case KeyDown:
		if c.Line+1 < v.LineCount() {
			st.Cursor = verticalTarget(v, c.Line+1, st.PreferredColumn)
		}

	case KeyWordLeft, KeyWordRight:
		var target int
		if k.Kind == KeyWordLeft {
			target = buffer.WordStart(v, index)
		} else {
			target = buffer.NextWordStart(v, index)
		}
		if target == index {
			return st, Effect{}
		}
		line := v.CharToLine(target)
		st.Cursor = Cursor{Line: line, Column: target - v.LineToChar(line)}
		st.PreferredColumn = st.Cursor.Column

	case KeyEscape:
		st.Mode = ModeSavePrompt
		st.Input = ""
	}
	return st, Effect{}
}

func verticalTarget(v View, line, preferred int) Cursor {
	return Cursor{Line: line, Column: min(preferred, v.LineLen(line))}
}

func stepPrompt(st State, named bool, k Key) (State, Effect) {
	switch k.Kind {
	case KeyRune:
		// an existing filename cannot be overridden from the prompt
		if !named {
			st.Input += string(k.Rune)
		}
	case KeyBackspace:
		if st.Input != "" {
			_, size := utf8.DecodeLastRuneInString(st.Input)
			st.Input = st.Input[:len(st.Input)-size]
		}
	case KeyEnter:
		st.Mode = ModeTerminated
		if st.Input != "" || named {
			return st, Effect{Save: true, SaveInput: st.Input}
		}
	case KeyEscape:
		st.Mode = ModeTerminated
	}
	return st, Effect{}
}
