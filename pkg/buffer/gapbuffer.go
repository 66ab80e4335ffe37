package buffer

import (
	"errors"
	"sort"
	"strings"
)

// ErrOutOfRange is returned when a position or range lies outside [0, Len()].
var ErrOutOfRange = errors.New("buffer: position out of range")

// GapBuffer is a gap buffer of runes.
// The underlying slice stores runes with a gap between gapStart and gapEnd.
// Line start offsets are indexed lazily and dropped on every mutation.
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int

	// lineStarts[i] is the rune index where line i begins.
	lineStarts []int
	indexValid bool

	cacheString string
	cacheLines  []string
	cacheValid  bool
}

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer(cap int) *GapBuffer {
	if cap < 1 {
		cap = 128
	}
	b := make([]rune, cap)
	return &GapBuffer{buf: b, gapStart: 0, gapEnd: cap}
}

// NewGapBufferFromString initializes a GapBuffer with the provided text.
func NewGapBufferFromString(s string) *GapBuffer {
	runes := []rune(s)
	cap := len(runes) + 128
	b := NewGapBuffer(cap)
	// place the runes before the gap
	copy(b.buf, runes)
	b.gapStart = len(runes)
	b.gapEnd = cap
	return b
}

func (g *GapBuffer) ensureGap(n int) {
	gap := g.gapEnd - g.gapStart
	if gap >= n {
		return
	}
	// grow buffer: double size or add n
	needed := n - gap
	newCap := len(g.buf)*2 + needed
	newBuf := make([]rune, newCap)
	copy(newBuf, g.buf[:g.gapStart])
	suffixLen := len(g.buf) - g.gapEnd
	copy(newBuf[newCap-suffixLen:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - suffixLen
	g.buf = newBuf
}

// moveGap moves the gap so that gapStart == pos. pos must be in [0, Len()].
func (g *GapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= d
		g.gapEnd -= d
	case pos > g.gapStart:
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

func (g *GapBuffer) invalidate() {
	g.indexValid = false
	g.cacheValid = false
}

// Insert inserts runes at position pos (0..Len()).
func (g *GapBuffer) Insert(pos int, s []rune) error {
	if pos < 0 || pos > g.Len() {
		return ErrOutOfRange
	}
	if len(s) == 0 {
		return nil
	}
	g.moveGap(pos)
	g.ensureGap(len(s))
	copy(g.buf[g.gapStart:], s)
	g.gapStart += len(s)
	g.invalidate()
	return nil
}

// Delete removes runes in [start,end).
func (g *GapBuffer) Delete(start, end int) error {
	if start < 0 || end < start || end > g.Len() {
		return ErrOutOfRange
	}
	if start == end {
		return nil
	}
	g.moveGap(start)
	// widen the gap over the removed runes
	g.gapEnd += end - start
	g.invalidate()
	return nil
}

// Slice returns a copy of the runes in [start,end).
func (g *GapBuffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []rune{}
	}
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		stop := end
		if stop > g.gapStart {
			stop = g.gapStart
		}
		out = append(out, g.buf[start:stop]...)
	}
	if end > g.gapStart {
		from := start
		if from < g.gapStart {
			from = g.gapStart
		}
		gap := g.gapEnd - g.gapStart
		out = append(out, g.buf[from+gap:end+gap]...)
	}
	return out
}

// Len returns the logical length in runes (excluding the gap).
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// RuneAt returns the rune at index i. If i is out of bounds, it returns 0.
func (g *GapBuffer) RuneAt(i int) rune {
	if i < 0 || i >= g.Len() {
		return 0
	}
	return g.runeAt(i)
}

func (g *GapBuffer) runeAt(i int) rune {
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[g.gapEnd+(i-g.gapStart)]
}

func (g *GapBuffer) index() []int {
	if g.indexValid {
		return g.lineStarts
	}
	starts := g.lineStarts[:0]
	starts = append(starts, 0)
	n := g.Len()
	for i := 0; i < n; i++ {
		if g.runeAt(i) == '\n' {
			starts = append(starts, i+1)
		}
	}
	g.lineStarts = starts
	g.indexValid = true
	return starts
}

// LineCount returns the number of lines. Text without a terminator is one
// line; a trailing '\n' adds an empty final line.
func (g *GapBuffer) LineCount() int {
	return len(g.index())
}

// LineToChar returns the rune index where line begins. Lines past the end map
// to Len(), so LineToChar(LineCount()) == Len().
func (g *GapBuffer) LineToChar(line int) int {
	starts := g.index()
	if line <= 0 {
		return 0
	}
	if line >= len(starts) {
		return g.Len()
	}
	return starts[line]
}

// CharToLine returns the line containing rune index i.
func (g *GapBuffer) CharToLine(i int) int {
	starts := g.index()
	if i <= 0 {
		return 0
	}
	// first line starting after i, minus one
	return sort.SearchInts(starts, i+1) - 1
}

// LineLen returns the number of runes on line, excluding its terminator.
// Out of range lines have length 0.
func (g *GapBuffer) LineLen(line int) int {
	if line < 0 || line >= g.LineCount() {
		return 0
	}
	start, end := g.LineAt(line)
	if end > start && g.runeAt(end-1) == '\n' {
		end--
	}
	return end - start
}

// LineAt returns the rune start and end indices for the given line number
// (0-based). If the line index is past the end, it returns the last line's
// bounds. The end index is one past the last rune of the line (i.e., it will
// include the terminating '\n' when present).
func (g *GapBuffer) LineAt(idx int) (start, end int) {
	starts := g.index()
	if idx < 0 {
		idx = 0
	}
	if idx >= len(starts) {
		idx = len(starts) - 1
	}
	start = starts[idx]
	if idx+1 < len(starts) {
		return start, starts[idx+1]
	}
	return start, g.Len()
}

// String returns the buffer contents.
func (g *GapBuffer) String() string {
	if g.cacheValid {
		return g.cacheString
	}
	var sb strings.Builder
	sb.Grow(g.Len())
	for _, r := range g.buf[:g.gapStart] {
		sb.WriteRune(r)
	}
	for _, r := range g.buf[g.gapEnd:] {
		sb.WriteRune(r)
	}
	g.cacheString = sb.String()
	g.cacheLines = strings.SplitAfter(g.cacheString, "\n")
	g.cacheValid = true
	return g.cacheString
}

// Lines returns the buffer split into lines, each keeping its terminating
// '\n'. A trailing terminator yields a final empty line. The result is cached
// until the buffer is modified.
func (g *GapBuffer) Lines() []string {
	if !g.cacheValid {
		_ = g.String()
	}
	return g.cacheLines
}
