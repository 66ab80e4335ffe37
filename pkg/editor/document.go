package editor

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"example.com/tinyedit/pkg/buffer"
)

// ErrNoFilename is returned by Save when neither the document nor the
// prompt supplies a filename.
var ErrNoFilename = errors.New("editor: no filename")

// ErrInvalidUTF8 is returned by Open when the file is not valid UTF-8. The
// document is still loaded, but saving it writes U+FFFD in place of every
// invalid byte.
var ErrInvalidUTF8 = errors.New("editor: file is not valid UTF-8")

// Document is the single buffer being edited together with its file
// association.
type Document struct {
	FilePath string
	Buf      buffer.TextStorage
	// IsNew is set when the editor was started without a path; it is
	// cleared by the first successful save.
	IsNew bool
	Dirty bool
}

// NewDocument returns an empty document that is not yet associated with a
// file.
func NewDocument() *Document {
	return &Document{Buf: buffer.NewGapBuffer(0), IsNew: true}
}

// Open returns a document seeded with the contents of path. The content is
// kept verbatim so that saving an unmodified document reproduces the file
// byte for byte. If the file cannot be read the returned document is empty
// but still associated with path, and the read error is returned alongside
// it for the caller to report or ignore. Content that is not valid UTF-8 is
// loaded lossily and reported with ErrInvalidUTF8.
func Open(path string) (*Document, error) {
	if path == "" {
		return NewDocument(), nil
	}
	doc := &Document{FilePath: path, Buf: buffer.NewGapBuffer(0)}
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	doc.Buf = buffer.NewGapBufferFromString(string(data))
	if !utf8.Valid(data) {
		return doc, fmt.Errorf("open %s: %w", path, ErrInvalidUTF8)
	}
	return doc, nil
}

// Named reports whether the document has an associated filename.
func (d *Document) Named() bool {
	return d.FilePath != ""
}

// Apply performs a single edit on the buffer.
func (d *Document) Apply(e Edit) error {
	if e.Start != e.End {
		if err := d.Buf.Delete(e.Start, e.End); err != nil {
			return err
		}
	}
	if e.Text != "" {
		if err := d.Buf.Insert(e.Start, []rune(e.Text)); err != nil {
			return err
		}
	}
	d.Dirty = true
	return nil
}

// Save writes the whole buffer to the document's file, or to input when the
// document has no filename yet, and returns the name written. The first
// successful save of a new document adopts input as its filename.
func (d *Document) Save(input string) (string, error) {
	name := d.FilePath
	if name == "" {
		name = input
	}
	if name == "" {
		return "", ErrNoFilename
	}
	if err := os.WriteFile(name, []byte(d.Buf.String()), 0644); err != nil {
		return name, fmt.Errorf("save %s: %w", name, err)
	}
	if d.FilePath == "" {
		d.FilePath = name
		d.IsNew = false
	}
	d.Dirty = false
	return name, nil
}
