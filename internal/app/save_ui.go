package app

import "example.com/tinyedit/pkg/editor"

const promptHint = "Press Enter to save or Esc to discard changes."

// drawPrompt renders the save prompt: the filename being typed on the first
// row, usage on the second and, for a document that already has a file, the
// name that Enter will write to.
func (r *Runner) drawPrompt() {
	s := r.Screen
	width, height := s.Size()
	drawText(s, 0, 0, width, editor.PromptLabel+r.Ctl.Input(), r.Theme.PromptStyle())
	if height > 1 {
		drawText(s, 0, 1, width, promptHint, r.Theme.HintStyle())
	}
	if height > 2 && r.Doc.Named() {
		drawText(s, 0, 2, width, "Saving to "+r.Doc.FilePath, r.Theme.HintStyle())
	}
	s.ShowCursor(r.Ctl.ScreenCursor())
}
