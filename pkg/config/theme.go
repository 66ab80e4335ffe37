package config

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors used when drawing the editor.
type Theme struct {
	TextForeground   tcell.Color
	StatusBackground tcell.Color
	StatusForeground tcell.Color
	PromptForeground tcell.Color
	HintForeground   tcell.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		TextForeground:   tcell.ColorWhite,
		StatusBackground: tcell.ColorWhite,
		StatusForeground: tcell.ColorBlack,
		PromptForeground: tcell.ColorWhite,
		HintForeground:   tcell.ColorGray,
	}
}

// set assigns a color by config key. Values are tcell color names or
// #rrggbb hex triplets.
func (t *Theme) set(key, value string) error {
	c := tcell.GetColor(strings.ToLower(strings.Trim(value, `'"`)))
	if c == tcell.ColorDefault {
		return errors.New("invalid color: " + value)
	}
	switch key {
	case "text":
		t.TextForeground = c
	case "status-bg":
		t.StatusBackground = c
	case "status-fg":
		t.StatusForeground = c
	case "prompt":
		t.PromptForeground = c
	case "hint":
		t.HintForeground = c
	default:
		return errors.New("unknown theme color: " + key)
	}
	return nil
}

// TextStyle is the style for document text.
func (t Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TextForeground)
}

// StatusStyle is the style for the status bar.
func (t Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// PromptStyle is the style for the save prompt line.
func (t Theme) PromptStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.PromptForeground)
}

// HintStyle is the style for help text below the prompt.
func (t Theme) HintStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.HintForeground)
}
