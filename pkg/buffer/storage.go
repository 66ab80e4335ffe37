package buffer

// TextStorage defines the storage operations the editor core depends on.
// Positions and lengths are expressed in runes (not bytes).
type TextStorage interface {
	RuneReader
	Insert(pos int, s []rune) error
	Delete(start, end int) error
	Slice(start, end int) []rune
	LineAt(idx int) (start, end int)
	LineCount() int
	LineToChar(line int) int
	CharToLine(i int) int
	LineLen(line int) int
	Lines() []string
	String() string
}

// RuneReader is random read access to a rune sequence.
type RuneReader interface {
	Len() int
	RuneAt(i int) rune
}

var _ TextStorage = (*GapBuffer)(nil)
