// Package history implements shell-style up/down recall over submitted input.
package history

// History is an ordered list of raw input lines with a recall cursor.
//
// The cursor ranges over [0, Len()]; Len() is the fresh position just past the
// newest entry, where it rests after every Record. Previous and Next clamp at
// the ends and report false instead of moving past them.
//
// NOTE: History is **not** thread-safe.
type History struct {
	entries []string
	cursor  int
}

func New() *History {
	return &History{}
}

// Record appends raw and resets the cursor to the fresh position.
// Entries after a back-navigated cursor are discarded first.
func (h *History) Record(raw string) {
	if h.cursor < len(h.entries) {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, raw)
	h.cursor = len(h.entries)
}

// Previous moves the cursor back one entry and returns it
func (h *History) Previous() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves the cursor forward one entry and returns it
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded lines, oldest first
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
