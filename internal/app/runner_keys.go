package app

import (
	"example.com/tinyedit/pkg/config"
	"example.com/tinyedit/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent translates ev and feeds it to the controller. The returned
// error is fatal.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) error {
	k := r.translateKey(ev)
	before := r.Ctl.Mode()
	r.Logger.Event("key", map[string]any{
		"key":       k.Kind.String(),
		"rune":      string(ev.Rune()),
		"modifiers": int(ev.Modifiers()),
		"mode":      before.String(),
	})
	if k.Kind == editor.KeyNone {
		return nil
	}
	if err := r.Ctl.Handle(k); err != nil {
		event := "edit.error"
		if before == editor.ModeSavePrompt {
			event = "save.error"
		}
		r.Logger.Event(event, map[string]any{"file": r.Doc.FilePath, "input": r.Ctl.Input(), "error": err.Error()})
		return err
	}
	after := r.Ctl.Mode()
	if after != before {
		r.Logger.Event("mode", map[string]any{"from": before.String(), "to": after.String()})
	}
	if before == editor.ModeSavePrompt && k.Kind == editor.KeyEnter && r.Doc.Named() {
		r.Logger.Event("save.success", map[string]any{"file": r.Doc.FilePath, "runes": r.Doc.Buf.Len()})
	}
	return nil
}

// translateKey maps a terminal key event onto the editor's key model.
// Rebindable commands are only consulted while editing; at the save prompt
// Esc, Enter and Backspace keep their fixed meaning.
func (r *Runner) translateKey(ev *tcell.EventKey) editor.Key {
	editing := r.Ctl.Mode() == editor.ModeEditing
	if editing {
		switch {
		case r.matchCommand(ev, config.CmdPrompt):
			return editor.Key{Kind: editor.KeyEscape}
		case r.matchCommand(ev, config.CmdWordLeft):
			return editor.Key{Kind: editor.KeyWordLeft}
		case r.matchCommand(ev, config.CmdWordRight):
			return editor.Key{Kind: editor.KeyWordRight}
		}
	}
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyLF:
		return editor.Key{Kind: editor.KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Key{Kind: editor.KeyBackspace}
	case tcell.KeyEsc:
		if !editing {
			return editor.Key{Kind: editor.KeyEscape}
		}
	case tcell.KeyLeft:
		return editor.Key{Kind: editor.KeyLeft}
	case tcell.KeyRight:
		return editor.Key{Kind: editor.KeyRight}
	case tcell.KeyUp:
		return editor.Key{Kind: editor.KeyUp}
	case tcell.KeyDown:
		return editor.Key{Kind: editor.KeyDown}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
			return editor.Rune(ev.Rune())
		}
	}
	return editor.Key{}
}

func (r *Runner) matchCommand(ev *tcell.EventKey, name string) bool {
	kb, ok := r.Keymap[name]
	return ok && kb.Matches(ev)
}
