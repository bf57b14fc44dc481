// Package editor defines the host boundary the matcher talks to: a
// text buffer with a cursor, a snapshot of the attributes active at the
// cursor, and a transactional batch primitive for atomic replacement.
//
// The package also ships Buffer, an in-memory reference host. A real
// deployment adapts these interfaces onto an actual editing framework;
// Buffer exists so the engine can be exercised end to end without one.
package editor
