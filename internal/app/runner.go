package app

import (
	"errors"
	"time"

	"example.com/tinyedit/pkg/config"
	"example.com/tinyedit/pkg/editor"
	"example.com/tinyedit/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

// Runner owns the terminal lifecycle and the event loop driving a
// Controller.
type Runner struct {
	Screen  tcell.Screen
	Doc     *editor.Document
	Ctl     *editor.Controller
	Keymap  map[string]config.Keybinding
	Theme   config.Theme
	Tick    time.Duration
	Logger  *logs.Logger
	EventCh chan tcell.Event
	// TopLine and LeftCol scroll the view so the cursor stays on screen.
	TopLine int
	LeftCol int
}

// New creates a Runner editing doc, or an empty document when doc is nil.
func New(doc *editor.Document) *Runner {
	if doc == nil {
		doc = editor.NewDocument()
	}
	return &Runner{
		Doc:    doc,
		Ctl:    editor.NewController(doc),
		Keymap: config.DefaultKeymap(),
		Theme:  config.DefaultTheme(),
		Tick:   config.DefaultTick,
	}
}

// LoadFile replaces the document with the contents of path. When the file
// cannot be read the runner still switches to an empty document named path
// and the read error is returned. A file that is not valid UTF-8 is loaded
// anyway and editor.ErrInvalidUTF8 is returned.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	doc, err := editor.Open(path)
	r.Doc = doc
	r.Ctl = editor.NewController(doc)
	r.TopLine, r.LeftCol = 0, 0
	if errors.Is(err, editor.ErrInvalidUTF8) {
		r.Logger.Event("open.lossy", map[string]any{"file": path, "runes": doc.Buf.Len()})
		return err
	}
	if err != nil {
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	r.Logger.Event("open.success", map[string]any{"file": path, "runes": doc.Buf.Len(), "lines": doc.Buf.LineCount()})
	return nil
}

// InitScreen initializes a tcell screen if one is not already set. This puts
// the terminal into raw mode on the alternate screen until Fini.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini restores the terminal and closes the logger.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	r.Logger.Close()
}

// Run starts the event loop and returns once the controller terminates. A
// screen acquired by Run is released on every return path. The returned
// error is non-nil only when the editor must exit with a failure, such as a
// save that could not be written.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}

	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	r.Logger.Event("run.start", map[string]any{"file": r.Doc.FilePath, "new": r.Doc.IsNew})
	defer func() {
		r.Logger.Event("run.end", map[string]any{"file": r.Doc.FilePath})
	}()

	if r.EventCh == nil {
		quit := make(chan struct{})
		defer func() {
			close(quit)
			r.EventCh = nil
		}()
		r.EventCh = make(chan tcell.Event, 16)
		go r.Screen.ChannelEvents(r.EventCh, quit)
	}

	r.draw()
	for !r.Ctl.Terminated() {
		ev, ok := r.waitEvent()
		if !ok {
			// the screen was finalized underneath us
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := r.handleKeyEvent(ev); err != nil {
				return err
			}
		case *tcell.EventResize:
			r.Screen.Sync()
		}
		if !r.Ctl.Terminated() {
			r.draw()
		}
	}
	return nil
}

// waitEvent returns the next event. While editing it gives up after Tick and
// returns a nil event so the caller redraws; at the save prompt it blocks
// until input arrives. ok is false once the event channel is closed.
func (r *Runner) waitEvent() (ev tcell.Event, ok bool) {
	if r.Ctl.Mode() == editor.ModeSavePrompt {
		ev, ok = <-r.EventCh
		return ev, ok
	}
	tick := r.Tick
	if tick <= 0 {
		tick = config.DefaultTick
	}
	timer := time.NewTimer(tick)
	defer timer.Stop()
	select {
	case ev, ok = <-r.EventCh:
		return ev, ok
	case <-timer.C:
		return nil, true
	}
}
