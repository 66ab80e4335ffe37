package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"example.com/tinyedit/pkg/editor"
	"example.com/tinyedit/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

// typeEvents returns key events for s; '\n' becomes Enter.
func typeEvents(s string) []tcell.Event {
	var evs []tcell.Event
	for _, ch := range s {
		if ch == '\n' {
			evs = append(evs, key(tcell.KeyEnter))
			continue
		}
		evs = append(evs, runeKey(ch))
	}
	return evs
}

func runWithEvents(t *testing.T, r *Runner, s tcell.SimulationScreen, evs []tcell.Event) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- r.Run() }()
	go func() {
		for _, ev := range evs {
			s.PostEventWait(ev)
		}
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for runner to terminate")
	}
	return nil
}

// TestRun_NewFileSaveScenario types into a new document, opens the prompt,
// names the file and saves.
func TestRun_NewFileSaveScenario(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	out := filepath.Join(t.TempDir(), "out.txt")
	var logBuf bytes.Buffer

	r := New(nil)
	r.Screen = s
	r.Tick = 5 * time.Millisecond
	r.Logger = logs.New(&logBuf)

	evs := typeEvents("hi\nbye")
	evs = append(evs, key(tcell.KeyEsc))
	evs = append(evs, typeEvents(out)...)
	evs = append(evs, key(tcell.KeyEnter))

	if err := runWithEvents(t, r, s, evs); err != nil {
		t.Fatalf("runner returned error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "hi\nbye" {
		t.Fatalf("expected saved content %q, got %q", "hi\nbye", data)
	}
	if !r.Ctl.Terminated() || r.Doc.FilePath != out || r.Doc.IsNew {
		t.Fatalf("unexpected final state: mode=%v doc=%+v", r.Ctl.Mode(), r.Doc)
	}
	log := logBuf.String()
	for _, want := range []string{`"event":"run.start"`, `"event":"save.success"`, `"event":"run.end"`} {
		if !strings.Contains(log, want) {
			t.Fatalf("log missing %s:\n%s", want, log)
		}
	}
}

func TestRun_ExistingFileRoundTrip(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	r := New(nil)
	r.Screen = s
	r.Logger = &logs.Logger{}
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	// moving around changes nothing; the prompt ignores typed names
	evs := []tcell.Event{key(tcell.KeyRight), key(tcell.KeyDown), key(tcell.KeyEsc), runeKey('x'), key(tcell.KeyEnter)}
	if err := runWithEvents(t, r, s, evs); err != nil {
		t.Fatalf("runner returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "abc" {
		t.Fatalf("round trip changed content to %q", data)
	}
}

func TestRun_DiscardDoesNotWrite(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	dir := t.TempDir()
	r := New(nil)
	r.Screen = s
	r.Logger = &logs.Logger{}

	evs := append(typeEvents("draft"), key(tcell.KeyEsc))
	evs = append(evs, typeEvents(filepath.Join(dir, "x.txt"))...)
	evs = append(evs, key(tcell.KeyEsc))
	if err := runWithEvents(t, r, s, evs); err != nil {
		t.Fatalf("runner returned error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d", len(entries))
	}
}

func TestRun_SaveFailureIsFatal(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	bad := filepath.Join(t.TempDir(), "missing", "out.txt")
	r := New(nil)
	r.Screen = s
	r.Logger = &logs.Logger{}

	evs := append(typeEvents("hi"), key(tcell.KeyEsc))
	evs = append(evs, typeEvents(bad)...)
	evs = append(evs, key(tcell.KeyEnter))
	err := runWithEvents(t, r, s, evs)
	if err == nil {
		t.Fatalf("expected save failure")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if r.Doc.Buf.String() != "hi" || r.Ctl.Mode() != editor.ModeSavePrompt {
		t.Fatalf("in-memory state changed by failed save: %q mode=%v", r.Doc.Buf.String(), r.Ctl.Mode())
	}
}

func TestRun_RedrawsOnResize(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	r := New(docWith("resize me"))
	r.Screen = s
	r.Logger = &logs.Logger{}

	s.SetSize(30, 6)
	evs := []tcell.Event{tcell.NewEventResize(30, 6), key(tcell.KeyEsc), key(tcell.KeyEsc)}
	if err := runWithEvents(t, r, s, evs); err != nil {
		t.Fatalf("runner returned error: %v", err)
	}
	if !r.Ctl.Terminated() {
		t.Fatalf("expected termination")
	}
}
