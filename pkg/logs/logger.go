package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields.
// A nil *Logger is valid and discards everything.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
}

// NewFromEnv returns a logger if TINYEDIT_LOG is set to a truthy value
// or if TINYEDIT_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./tinyedit.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("TINYEDIT_LOG_FILE")
	enabled := false
	if v := os.Getenv("TINYEDIT_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if lf != "" {
		enabled = true
	}
	if !enabled {
		return &Logger{enabled: false}
	}
	if lf == "" {
		lf = filepath.Join(".", "tinyedit.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return &Logger{enabled: false}
	}
	return New(f)
}

// New returns an enabled logger writing to w. If w is an io.Closer it is
// closed by Close.
func New(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w), enabled: true}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// Enabled reports whether events are being recorded.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Close flushes and closes the underlying writer if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, mode, line, column, buffer_len, file, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
