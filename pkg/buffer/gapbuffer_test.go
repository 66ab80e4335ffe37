package buffer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGapBuffer_InsertDelete(t *testing.T) {
	g := NewGapBufferFromString("Hello World")
	if g.String() != "Hello World" {
		t.Fatalf("expected initial content 'Hello World', got %q", g.String())
	}
	// insert comma after Hello
	err := g.Insert(5, []rune{','})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if g.String() != "Hello, World" {
		t.Fatalf("expected 'Hello, World', got %q", g.String())
	}
	// delete the comma
	err = g.Delete(5, 6)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if g.String() != "Hello World" {
		t.Fatalf("expected 'Hello World' after delete, got %q", g.String())
	}
}

func TestGapBuffer_OutOfRange(t *testing.T) {
	g := NewGapBufferFromString("abc")
	if err := g.Insert(4, []rune{'x'}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for insert past end, got %v", err)
	}
	if err := g.Delete(2, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for inverted range, got %v", err)
	}
	if err := g.Delete(0, 4); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for range past end, got %v", err)
	}
	if g.String() != "abc" {
		t.Fatalf("failed operations must not modify the buffer, got %q", g.String())
	}
}

func TestGapBuffer_GrowsPastInitialCapacity(t *testing.T) {
	g := NewGapBuffer(2)
	for i := 0; i < 300; i++ {
		if err := g.Insert(g.Len()/2, []rune{'x'}); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	if g.Len() != 300 {
		t.Fatalf("expected 300 runes, got %d", g.Len())
	}
}

func TestGapBuffer_SliceAcrossGap(t *testing.T) {
	g := NewGapBufferFromString("abcdef")
	// move the gap into the middle
	if err := g.Insert(3, []rune{'X'}); err != nil {
		t.Fatal(err)
	}
	if got := string(g.Slice(1, 6)); got != "bcXde" {
		t.Fatalf("expected 'bcXde', got %q", got)
	}
	if got := string(g.Slice(-5, 100)); got != "abcXdef" {
		t.Fatalf("expected clamped slice, got %q", got)
	}
	if got := g.Slice(4, 2); len(got) != 0 {
		t.Fatalf("expected empty slice, got %q", string(got))
	}
}

func TestGapBuffer_LineAt(t *testing.T) {
	g := NewGapBufferFromString("one\ntwo\nthree")
	start, end := g.LineAt(1) // line 1 should be 'two\n'
	line := string(g.Slice(start, end))
	if line != "two\n" {
		t.Fatalf("expected line 'two\\n', got %q", line)
	}
	start, end = g.LineAt(9)
	if got := string(g.Slice(start, end)); got != "three" {
		t.Fatalf("expected last line for out of range index, got %q", got)
	}
}

func TestGapBuffer_LineMetrics(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		count   int
		starts  []int
		lengths []int
	}{
		{name: "empty", text: "", count: 1, starts: []int{0}, lengths: []int{0}},
		{name: "no terminator", text: "abc", count: 1, starts: []int{0}, lengths: []int{3}},
		{name: "trailing terminator", text: "abc\n", count: 2, starts: []int{0, 4}, lengths: []int{3, 0}},
		{name: "blank lines", text: "\n\n", count: 3, starts: []int{0, 1, 2}, lengths: []int{0, 0, 0}},
		{name: "mixed", text: "hi\nthere\nx", count: 3, starts: []int{0, 3, 9}, lengths: []int{2, 5, 1}},
		{name: "unicode", text: "héllo\nwörld", count: 2, starts: []int{0, 6}, lengths: []int{5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGapBufferFromString(tt.text)
			if got := g.LineCount(); got != tt.count {
				t.Fatalf("LineCount = %d, want %d", got, tt.count)
			}
			var starts, lengths []int
			for i := 0; i < g.LineCount(); i++ {
				starts = append(starts, g.LineToChar(i))
				lengths = append(lengths, g.LineLen(i))
			}
			if diff := cmp.Diff(tt.starts, starts); diff != "" {
				t.Fatalf("line starts mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.lengths, lengths); diff != "" {
				t.Fatalf("line lengths mismatch (-want +got):\n%s", diff)
			}
			if got := g.LineToChar(g.LineCount()); got != g.Len() {
				t.Fatalf("LineToChar(LineCount()) = %d, want Len() = %d", got, g.Len())
			}
			if got := g.LineLen(g.LineCount()); got != 0 {
				t.Fatalf("LineLen past end = %d, want 0", got)
			}
			if got := g.LineLen(-1); got != 0 {
				t.Fatalf("LineLen(-1) = %d, want 0", got)
			}
		})
	}
}

func TestGapBuffer_CharToLine(t *testing.T) {
	g := NewGapBufferFromString("ab\ncd\n")
	want := []int{0, 0, 0, 1, 1, 1, 2}
	for i, w := range want {
		if got := g.CharToLine(i); got != w {
			t.Fatalf("CharToLine(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestGapBuffer_LinesKeepTerminators(t *testing.T) {
	g := NewGapBufferFromString("hi\nbye")
	if diff := cmp.Diff([]string{"hi\n", "bye"}, g.Lines()); diff != "" {
		t.Fatalf("Lines mismatch (-want +got):\n%s", diff)
	}
	if err := g.Insert(g.Len(), []rune{'\n'}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"hi\n", "bye\n", ""}, g.Lines()); diff != "" {
		t.Fatalf("Lines after edit mismatch (-want +got):\n%s", diff)
	}
	if g.LineCount() != len(g.Lines()) {
		t.Fatalf("LineCount %d disagrees with Lines %d", g.LineCount(), len(g.Lines()))
	}
}

func TestGapBuffer_IndexInvalidatedByEdits(t *testing.T) {
	g := NewGapBufferFromString("abc")
	if g.LineCount() != 1 {
		t.Fatalf("expected 1 line")
	}
	if err := g.Insert(1, []rune{'\n'}); err != nil {
		t.Fatal(err)
	}
	if g.LineCount() != 2 || g.LineToChar(1) != 2 || g.LineLen(1) != 2 {
		t.Fatalf("index not rebuilt after insert: count=%d start=%d len=%d", g.LineCount(), g.LineToChar(1), g.LineLen(1))
	}
	if err := g.Delete(1, 2); err != nil {
		t.Fatal(err)
	}
	if g.LineCount() != 1 || g.LineLen(0) != 3 {
		t.Fatalf("index not rebuilt after delete: count=%d len=%d", g.LineCount(), g.LineLen(0))
	}
}
