package editor

// ChangeKind categorizes buffer changes
type ChangeKind int

const (
	// ChangeInsert is text inserted into the buffer
	ChangeInsert ChangeKind = iota

	// ChangeReplace is a range replaced with new text
	ChangeReplace

	// ChangeDelete is a range removed from the buffer
	ChangeDelete

	// ChangeCursor is a cursor move without a data change
	ChangeCursor

	// ChangeAttributes is an attribute change without a data change
	ChangeAttributes
)

// ChangeEvent describes one buffer mutation. Offsets are rune offsets.
type ChangeEvent struct {
	Kind  ChangeKind
	Start int
	End   int

	// Text is the inserted text for insert and replace changes
	Text string

	// Cursor is the cursor position after the change
	Cursor int

	// Attrs carries the formatting attributes applied to inserted text,
	// when the mutation specified any
	Attrs map[string]any
}

// IsDataChange reports whether the event changed buffer content
func (ev ChangeEvent) IsDataChange() bool {
	switch ev.Kind {
	case ChangeInsert, ChangeReplace, ChangeDelete:
		return true
	}
	return false
}

// Host is the surface the matcher consumes from an editing framework.
// All positions are rune offsets from the start of the document text.
type Host interface {
	// TextBeforeCursor returns the text immediately preceding the
	// cursor, at most maxLookback runes of it
	TextBeforeCursor(maxLookback int) string

	// CursorPosition returns the current cursor offset
	CursorPosition() int

	// AttributesAtCursor returns a snapshot of the formatting
	// attributes active at the cursor
	AttributesAtCursor() map[string]any

	// RunBatch executes fn as one atomic, undoable unit. Either every
	// mutation fn issues is committed, or none is: an error or panic
	// from fn rolls the buffer back to its state at entry.
	RunBatch(fn func(Batch) error) error
}

// Batch is the mutation surface available inside RunBatch
type Batch interface {
	// ReplaceRange replaces the runes in [start, end) with text,
	// carrying attrs onto the inserted text
	ReplaceRange(start, end int, text string, attrs map[string]any) error
}
