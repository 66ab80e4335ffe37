package editor

import (
	"fmt"
	"unicode/utf8"
)

// PromptLabel precedes the filename input at the save prompt.
const PromptLabel = "Filename: "

// Controller applies key events to a Document and tracks the cursor.
type Controller struct {
	Doc   *Document
	State State
}

// NewController returns a controller in editing mode with the cursor at the
// start of doc.
func NewController(doc *Document) *Controller {
	return &Controller{Doc: doc}
}

// Handle processes one key event. Each event performs at most one buffer
// edit followed by a consistent cursor update. A failed save is returned
// and leaves the controller state unchanged.
func (c *Controller) Handle(k Key) error {
	next, eff := Step(c.State, c.Doc.Buf, c.Doc.Named(), k)
	if eff.Edit != nil {
		if err := c.Doc.Apply(*eff.Edit); err != nil {
			return fmt.Errorf("apply %s: %w", k.Kind, err)
		}
	}
	if eff.Save {
		if _, err := c.Doc.Save(eff.SaveInput); err != nil {
			return err
		}
	}
	c.State = next
	return nil
}

// Mode returns the current input mode.
func (c *Controller) Mode() Mode { return c.State.Mode }

// Terminated reports whether the controller accepts no further input.
func (c *Controller) Terminated() bool { return c.State.Mode == ModeTerminated }

// Cursor returns the logical cursor.
func (c *Controller) Cursor() Cursor { return c.State.Cursor }

// PreferredColumn returns the column targeted by vertical moves.
func (c *Controller) PreferredColumn() int { return c.State.PreferredColumn }

// Input returns the filename typed at the save prompt so far.
func (c *Controller) Input() string { return c.State.Input }

// ScreenCursor returns the terminal cursor position as (x, y). While editing
// it is (column, line); at the save prompt it follows the typed input on the
// first row.
func (c *Controller) ScreenCursor() (x, y int) {
	if c.State.Mode == ModeSavePrompt {
		return utf8.RuneCountInString(PromptLabel) + utf8.RuneCountInString(c.State.Input), 0
	}
	return c.State.Cursor.Column, c.State.Cursor.Line
}

// Lines returns the document lines, terminators included.
func (c *Controller) Lines() []string {
	return c.Doc.Buf.Lines()
}
