package repl

// entry is a single history entry with the mode it was entered in.
type entry struct {
	line string
	mode inputMode
}

// history holds per-session input history. Navigation is mode-aware: eval
// inputs and control commands are recalled independently.
type history struct {
	entries []entry
	cursor  int // index into entries during navigation; len(entries) when idle
}

func newHistory() *history {
	return &history{}
}

func (h *history) add(line string, mode inputMode) {
	// Collapse immediate duplicates.
	if n := len(h.entries); n > 0 && h.entries[n-1].line == line && h.entries[n-1].mode == mode {
		h.resetCursor()

		return
	}

	h.entries = append(h.entries, entry{line: line, mode: mode})
	h.resetCursor()
}

func (h *history) resetCursor() {
	h.cursor = len(h.entries)
}

// prev returns the previous entry recorded in the given mode.
func (h *history) prev(mode inputMode) (string, bool) {
	for i := h.cursor - 1; i >= 0; i-- {
		if h.entries[i].mode == mode {
			h.cursor = i

			return h.entries[i].line, true
		}
	}

	return "", false
}

// next returns the following entry recorded in the given mode, or false when
// navigation walks past the newest entry.
func (h *history) next(mode inputMode) (string, bool) {
	for i := h.cursor + 1; i < len(h.entries); i++ {
		if h.entries[i].mode == mode {
			h.cursor = i

			return h.entries[i].line, true
		}
	}

	h.resetCursor()

	return "", false
}
