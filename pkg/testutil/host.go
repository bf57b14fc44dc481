// pkg/testutil/host.go
// DEPENDENCIES: pkg/editor
// PURPOSE: Host fixtures for matcher tests

package testutil

import (
	"testing"

	"github.com/arthur-debert/typofix/pkg/editor"
)

// Replace records one ReplaceRange call
type Replace struct {
	Start int
	End   int
	Text  string
	Attrs map[string]any
}

// RecordingHost wraps a Buffer and records every batch and replace
// issued through it
type RecordingHost struct {
	*editor.Buffer

	// Batches counts RunBatch invocations, committed or not
	Batches int

	// Replaces holds every ReplaceRange in order
	Replaces []Replace
}

// NewRecordingHost creates a recording host over text with the cursor
// at its end
func NewRecordingHost(t *testing.T, text string) *RecordingHost {
	t.Helper()
	return &RecordingHost{Buffer: editor.NewBufferFrom(text)}
}

// RunBatch implements editor.Host
func (h *RecordingHost) RunBatch(fn func(editor.Batch) error) error {
	h.Batches++
	return h.Buffer.RunBatch(func(b editor.Batch) error {
		return fn(&recordingBatch{host: h, inner: b})
	})
}

type recordingBatch struct {
	host  *RecordingHost
	inner editor.Batch
}

func (b *recordingBatch) ReplaceRange(start, end int, text string, attrs map[string]any) error {
	b.host.Replaces = append(b.host.Replaces, Replace{Start: start, End: end, Text: text, Attrs: attrs})
	return b.inner.ReplaceRange(start, end, text, attrs)
}

// FailingHost wraps a Buffer but refuses every batch with Err
type FailingHost struct {
	*editor.Buffer
	Err error
}

// RunBatch implements editor.Host
func (h *FailingHost) RunBatch(fn func(editor.Batch) error) error {
	return h.Err
}
