package editor

import (
	"github.com/arthur-debert/typofix/pkg/errors"
	"github.com/arthur-debert/typofix/pkg/logging"
	"github.com/rs/zerolog"
)

// Buffer is an in-memory Host implementation: rune-addressed content, a
// cursor, cursor attributes, and synchronous change notification.
// It is single-threaded by contract, like the event loop it stands in
// for; no locking is provided.
type Buffer struct {
	logger    zerolog.Logger
	content   []rune
	cursor    int
	attrs     map[string]any
	listeners []func(ChangeEvent)

	// pending holds events produced inside an open batch; they are
	// delivered only after the batch commits
	pending []ChangeEvent
	inBatch bool
}

// NewBuffer creates an empty buffer with the cursor at offset 0
func NewBuffer() *Buffer {
	return &Buffer{
		logger: logging.GetLogger("editor.buffer"),
		attrs:  make(map[string]any),
	}
}

// NewBufferFrom creates a buffer holding text with the cursor at its end
func NewBufferFrom(text string) *Buffer {
	b := NewBuffer()
	b.content = []rune(text)
	b.cursor = len(b.content)
	return b
}

// OnChange registers a listener invoked synchronously, in mutation
// order, for every committed change
func (b *Buffer) OnChange(fn func(ChangeEvent)) {
	b.listeners = append(b.listeners, fn)
}

// Text returns the buffer content
func (b *Buffer) Text() string {
	return string(b.content)
}

// Len returns the content length in runes
func (b *Buffer) Len() int {
	return len(b.content)
}

// CursorPosition returns the current cursor offset
func (b *Buffer) CursorPosition() int {
	return b.cursor
}

// TextBeforeCursor returns at most maxLookback runes preceding the cursor
func (b *Buffer) TextBeforeCursor(maxLookback int) string {
	start := 0
	if maxLookback >= 0 && b.cursor-maxLookback > 0 {
		start = b.cursor - maxLookback
	}
	return string(b.content[start:b.cursor])
}

// AttributesAtCursor returns a snapshot of the cursor attributes
func (b *Buffer) AttributesAtCursor() map[string]any {
	snapshot := make(map[string]any, len(b.attrs))
	for k, v := range b.attrs {
		snapshot[k] = v
	}
	return snapshot
}

// SetAttribute sets a formatting attribute at the cursor
func (b *Buffer) SetAttribute(key string, value any) {
	b.attrs[key] = value
	b.emit(ChangeEvent{Kind: ChangeAttributes, Start: b.cursor, End: b.cursor, Cursor: b.cursor})
}

// SetCursor moves the cursor
func (b *Buffer) SetCursor(pos int) error {
	if pos < 0 || pos > len(b.content) {
		return errors.Newf(errors.ErrRangeInvalid, "cursor position %d out of range [0, %d]", pos, len(b.content))
	}
	b.cursor = pos
	b.emit(ChangeEvent{Kind: ChangeCursor, Start: pos, End: pos, Cursor: pos})
	return nil
}

// InsertText inserts text at the cursor and advances the cursor past it
func (b *Buffer) InsertText(text string) {
	ins := []rune(text)
	start := b.cursor

	tail := make([]rune, len(b.content[start:]))
	copy(tail, b.content[start:])
	b.content = append(b.content[:start], append(ins, tail...)...)
	b.cursor = start + len(ins)

	b.emit(ChangeEvent{
		Kind:   ChangeInsert,
		Start:  start,
		End:    start,
		Text:   text,
		Cursor: b.cursor,
	})
}

// DeleteRange removes the runes in [start, end). The cursor shifts
// left past positions beyond the range and collapses to start when it
// sat inside it.
func (b *Buffer) DeleteRange(start, end int) error {
	if start < 0 || end < start || end > len(b.content) {
		return errors.Newf(errors.ErrRangeInvalid,
			"delete range [%d, %d) out of bounds for length %d", start, end, len(b.content))
	}

	tail := make([]rune, len(b.content[end:]))
	copy(tail, b.content[end:])
	b.content = append(b.content[:start], tail...)

	switch {
	case b.cursor >= end:
		b.cursor -= end - start
	case b.cursor > start:
		b.cursor = start
	}

	b.emit(ChangeEvent{
		Kind:   ChangeDelete,
		Start:  start,
		End:    end,
		Cursor: b.cursor,
	})
	return nil
}

// RunBatch implements Host. The batch is acquire-mutate-commit: content,
// cursor, and attributes are snapshotted at entry and restored on any
// error or panic, and change events for the batched mutations are
// delivered only after the commit.
func (b *Buffer) RunBatch(fn func(Batch) error) (err error) {
	snapshot := make([]rune, len(b.content))
	copy(snapshot, b.content)
	cursor := b.cursor
	attrs := b.AttributesAtCursor()

	b.inBatch = true
	b.pending = nil

	rollback := func() {
		b.content = snapshot
		b.cursor = cursor
		b.attrs = attrs
		b.pending = nil
	}

	defer func() {
		b.inBatch = false
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
		if err != nil {
			rollback()
			return
		}
		// Commit: deliver the batched events in order
		events := b.pending
		b.pending = nil
		for _, ev := range events {
			b.notify(ev)
		}
	}()

	if err = fn(&batch{buf: b}); err != nil {
		return errors.Wrap(err, errors.ErrBatchAborted, "batch aborted, buffer rolled back")
	}
	return nil
}

// emit routes an event to listeners, or defers it while a batch is open
func (b *Buffer) emit(ev ChangeEvent) {
	if b.inBatch {
		b.pending = append(b.pending, ev)
		return
	}
	b.notify(ev)
}

func (b *Buffer) notify(ev ChangeEvent) {
	for _, fn := range b.listeners {
		fn(ev)
	}
}

// batch is the Batch implementation handed to RunBatch callbacks
type batch struct {
	buf *Buffer
}

// ReplaceRange replaces [start, end) with text and places the cursor
// after the inserted text when it covered or preceded the cursor
func (t *batch) ReplaceRange(start, end int, text string, attrs map[string]any) error {
	b := t.buf
	if start < 0 || end < start || end > len(b.content) {
		return errors.Newf(errors.ErrRangeInvalid,
			"replace range [%d, %d) out of bounds for length %d", start, end, len(b.content))
	}

	ins := []rune(text)
	tail := make([]rune, len(b.content[end:]))
	copy(tail, b.content[end:])
	b.content = append(b.content[:start], append(ins, tail...)...)

	// Cursor mapping: positions past the range shift by the size delta,
	// positions inside the range collapse to the end of the insertion
	switch {
	case b.cursor >= end:
		b.cursor += len(ins) - (end - start)
	case b.cursor > start:
		b.cursor = start + len(ins)
	}

	b.logger.Trace().
		Int("start", start).
		Int("end", end).
		Str("text", text).
		Int("cursor", b.cursor).
		Msg("Replaced range")

	b.emit(ChangeEvent{
		Kind:   ChangeReplace,
		Start:  start,
		End:    end,
		Text:   text,
		Cursor: b.cursor,
		Attrs:  attrs,
	})
	return nil
}
