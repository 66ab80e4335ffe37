package app

import (
	"fmt"
	"strings"

	"example.com/tinyedit/pkg/editor"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// draw redraws the whole screen for the current mode.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	r.Screen.Clear()
	if r.Ctl.Mode() == editor.ModeSavePrompt {
		r.drawPrompt()
	} else {
		r.drawBuffer()
	}
	r.Screen.Show()
}

// textRows is the number of screen rows available for document lines.
func textRows(height int) int {
	if height <= 1 {
		return height
	}
	return height - 1
}

// ensureCursorVisible scrolls so the cursor lies inside a width x rows view.
func (r *Runner) ensureCursorVisible(width, rows int) {
	cur := r.Ctl.Cursor()
	if cur.Line < r.TopLine {
		r.TopLine = cur.Line
	}
	if rows > 0 && cur.Line >= r.TopLine+rows {
		r.TopLine = cur.Line - rows + 1
	}
	if cur.Column < r.LeftCol {
		r.LeftCol = cur.Column
	}
	if width > 0 && cur.Column >= r.LeftCol+width {
		r.LeftCol = cur.Column - width + 1
	}
}

func (r *Runner) drawBuffer() {
	s := r.Screen
	width, height := s.Size()
	rows := textRows(height)
	r.ensureCursorVisible(width, rows)

	lines := r.Ctl.Lines()
	style := r.Theme.TextStyle()
	for y := 0; y < rows && r.TopLine+y < len(lines); y++ {
		runes := []rune(strings.TrimSuffix(lines[r.TopLine+y], "\n"))
		for x := 0; x < width && r.LeftCol+x < len(runes); x++ {
			ch := runes[r.LeftCol+x]
			if ch < ' ' || ch == 0x7f {
				// one cell per column keeps the cursor aligned
				ch = ' '
			}
			s.SetContent(x, y, ch, nil, style)
		}
	}
	if rows < height {
		r.drawStatus(width, height-1)
	}
	x, y := r.Ctl.ScreenCursor()
	s.ShowCursor(x-r.LeftCol, y-r.TopLine)
}

// statusText returns the left and right halves of the status bar.
func (r *Runner) statusText() (left, right string) {
	left = r.Doc.FilePath
	if left == "" {
		left = "[No File]"
	}
	if r.Doc.Dirty {
		left += " [+]"
	}
	cur := r.Ctl.Cursor()
	right = fmt.Sprintf("Ln %d, Col %d  Esc: save/quit", cur.Line+1, cur.Column+1)
	return left, right
}

func (r *Runner) drawStatus(width, y int) {
	s := r.Screen
	style := r.Theme.StatusStyle()
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
	left, right := r.statusText()
	rw := runewidth.StringWidth(right)
	if rw+1 > width {
		drawText(s, 0, y, width, runewidth.Truncate(left, width, "…"), style)
		return
	}
	drawText(s, 0, y, width-rw-1, runewidth.Truncate(left, width-rw-1, "…"), style)
	drawText(s, width-rw, y, width, right, style)
}

// drawText draws text from (x, y), stopping before maxX, and returns the
// column after the last cell written.
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}
