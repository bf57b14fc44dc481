// Test Type: Unit Test
// Description: Tests for the in-memory buffer - insertion, batching, rollback

package editor_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/typofix/pkg/editor"
	"github.com/arthur-debert/typofix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_InsertText(t *testing.T) {
	buf := editor.NewBuffer()

	buf.InsertText("hello")
	assert.Equal(t, "hello", buf.Text())
	assert.Equal(t, 5, buf.CursorPosition())

	require.NoError(t, buf.SetCursor(0))
	buf.InsertText("oh ")
	assert.Equal(t, "oh hello", buf.Text())
	assert.Equal(t, 3, buf.CursorPosition())
}

func TestBuffer_TextBeforeCursor(t *testing.T) {
	buf := editor.NewBufferFrom("some long piece of text")

	assert.Equal(t, "some long piece of text", buf.TextBeforeCursor(256))
	assert.Equal(t, "text", buf.TextBeforeCursor(4))

	require.NoError(t, buf.SetCursor(4))
	assert.Equal(t, "some", buf.TextBeforeCursor(256))
	assert.Equal(t, "", buf.TextBeforeCursor(0))
}

func TestBuffer_RuneAddressing(t *testing.T) {
	buf := editor.NewBufferFrom("½ cup")

	assert.Equal(t, 5, buf.Len())
	assert.Equal(t, "½ cup", buf.TextBeforeCursor(5))

	err := buf.RunBatch(func(batch editor.Batch) error {
		return batch.ReplaceRange(0, 1, "half", nil)
	})
	require.NoError(t, err)
	assert.Equal(t, "half cup", buf.Text())
	assert.Equal(t, 8, buf.CursorPosition())
}

func TestBuffer_DeleteRange(t *testing.T) {
	t.Run("removes_range_and_shifts_cursor", func(t *testing.T) {
		buf := editor.NewBufferFrom("one two three")

		require.NoError(t, buf.DeleteRange(4, 8))
		assert.Equal(t, "one three", buf.Text())
		assert.Equal(t, 9, buf.CursorPosition())
	})

	t.Run("cursor_inside_range_collapses_to_start", func(t *testing.T) {
		buf := editor.NewBufferFrom("one two three")
		require.NoError(t, buf.SetCursor(6))

		require.NoError(t, buf.DeleteRange(4, 8))
		assert.Equal(t, "one three", buf.Text())
		assert.Equal(t, 4, buf.CursorPosition())
	})

	t.Run("emits_delete_event", func(t *testing.T) {
		buf := editor.NewBufferFrom("abcd")

		var events []editor.ChangeEvent
		buf.OnChange(func(ev editor.ChangeEvent) {
			events = append(events, ev)
		})

		require.NoError(t, buf.DeleteRange(1, 3))
		require.Len(t, events, 1)
		assert.Equal(t, editor.ChangeDelete, events[0].Kind)
		assert.True(t, events[0].IsDataChange())
		assert.Equal(t, 1, events[0].Start)
		assert.Equal(t, 3, events[0].End)
		assert.Equal(t, 2, events[0].Cursor)
	})

	t.Run("out_of_bounds", func(t *testing.T) {
		buf := editor.NewBufferFrom("abcd")

		err := buf.DeleteRange(2, 9)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRangeInvalid))
	})
}

func TestBuffer_ChangeEvents(t *testing.T) {
	buf := editor.NewBuffer()

	var events []editor.ChangeEvent
	buf.OnChange(func(ev editor.ChangeEvent) {
		events = append(events, ev)
	})

	buf.InsertText("ab")
	require.Len(t, events, 1)
	assert.Equal(t, editor.ChangeInsert, events[0].Kind)
	assert.Equal(t, "ab", events[0].Text)
	assert.Equal(t, 2, events[0].Cursor)
	assert.True(t, events[0].IsDataChange())

	require.NoError(t, buf.SetCursor(1))
	require.Len(t, events, 2)
	assert.Equal(t, editor.ChangeCursor, events[1].Kind)
	assert.False(t, events[1].IsDataChange())
}

func TestBuffer_RunBatch_Commit(t *testing.T) {
	buf := editor.NewBufferFrom("it is 1/2")

	var events []editor.ChangeEvent
	buf.OnChange(func(ev editor.ChangeEvent) {
		events = append(events, ev)
	})

	attrs := map[string]any{"bold": true}
	err := buf.RunBatch(func(batch editor.Batch) error {
		return batch.ReplaceRange(6, 9, "½", attrs)
	})
	require.NoError(t, err)

	assert.Equal(t, "it is ½", buf.Text())
	assert.Equal(t, 7, buf.CursorPosition())

	require.Len(t, events, 1)
	assert.Equal(t, editor.ChangeReplace, events[0].Kind)
	assert.Equal(t, attrs, events[0].Attrs)
}

func TestBuffer_RunBatch_RollbackOnError(t *testing.T) {
	buf := editor.NewBufferFrom("original")
	require.NoError(t, buf.SetCursor(3))
	buf.SetAttribute("italic", true)

	var dataEvents int
	buf.OnChange(func(ev editor.ChangeEvent) {
		if ev.IsDataChange() {
			dataEvents++
		}
	})

	boom := stderrors.New("host refused")
	err := buf.RunBatch(func(batch editor.Batch) error {
		if err := batch.ReplaceRange(0, 8, "changed", nil); err != nil {
			return err
		}
		return boom
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBatchAborted))
	assert.True(t, stderrors.Is(err, boom))

	// No partial replace is observable
	assert.Equal(t, "original", buf.Text())
	assert.Equal(t, 3, buf.CursorPosition())
	assert.Equal(t, map[string]any{"italic": true}, buf.AttributesAtCursor())
	assert.Zero(t, dataEvents)
}

func TestBuffer_RunBatch_RollbackOnPanic(t *testing.T) {
	buf := editor.NewBufferFrom("original")

	assert.Panics(t, func() {
		_ = buf.RunBatch(func(batch editor.Batch) error {
			_ = batch.ReplaceRange(0, 8, "changed", nil)
			panic("mid-mutation failure")
		})
	})

	assert.Equal(t, "original", buf.Text())
}

func TestBuffer_ReplaceRange_Bounds(t *testing.T) {
	buf := editor.NewBufferFrom("abc")

	err := buf.RunBatch(func(batch editor.Batch) error {
		return batch.ReplaceRange(1, 9, "x", nil)
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBatchAborted))
	assert.Equal(t, "abc", buf.Text())
}

func TestBuffer_ReplaceRange_CursorMapping(t *testing.T) {
	t.Run("cursor_after_range_shifts", func(t *testing.T) {
		buf := editor.NewBufferFrom("aaa bbb")
		require.NoError(t, buf.SetCursor(7))

		err := buf.RunBatch(func(batch editor.Batch) error {
			return batch.ReplaceRange(0, 3, "a", nil)
		})
		require.NoError(t, err)
		assert.Equal(t, "a bbb", buf.Text())
		assert.Equal(t, 5, buf.CursorPosition())
	})

	t.Run("cursor_before_range_stays", func(t *testing.T) {
		buf := editor.NewBufferFrom("aaa bbb")
		require.NoError(t, buf.SetCursor(2))

		err := buf.RunBatch(func(batch editor.Batch) error {
			return batch.ReplaceRange(4, 7, "b", nil)
		})
		require.NoError(t, err)
		assert.Equal(t, "aaa b", buf.Text())
		assert.Equal(t, 2, buf.CursorPosition())
	})

	t.Run("cursor_inside_range_moves_to_insertion_end", func(t *testing.T) {
		buf := editor.NewBufferFrom("aaa bbb")
		require.NoError(t, buf.SetCursor(5))

		err := buf.RunBatch(func(batch editor.Batch) error {
			return batch.ReplaceRange(4, 7, "x", nil)
		})
		require.NoError(t, err)
		assert.Equal(t, "aaa x", buf.Text())
		assert.Equal(t, 5, buf.CursorPosition())
	})
}
