package cli

import (
	"strings"
	"sync"
)

// outputBuffer collects result lines from a search running on a worker
// goroutine so the UI can render a consistent snapshot at any time. All
// methods take the lock; a search in progress appends while the view
// reads.
type outputBuffer struct {
	mu    sync.Mutex
	lines []string
}

// Append adds a line to the buffer.
func (b *outputBuffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

// Reset clears the buffer for a new search.
func (b *outputBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

// Len returns the number of buffered lines.
func (b *outputBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Lines returns a copy of the buffered lines.
func (b *outputBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins the buffered lines with newlines.
func (b *outputBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.lines, "\n")
}
