package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// ctrlCommands are the available control-mode commands.
//
//nolint:gochecknoglobals
var ctrlCommands = []string{"help", "pretty", "clear", "quit"}

// completer tracks fuzzy completion state for control-mode input.
type completer struct {
	matches fuzzy.Matches
	idx     int
	active  bool
}

// refresh recomputes matches for the given input. An empty input offers the
// full command list.
func (c *completer) refresh(input string) {
	input = strings.TrimSpace(input)

	if input == "" {
		c.matches = allCommands()
		c.active = false
		c.idx = -1

		return
	}

	c.matches = fuzzy.Find(input, ctrlCommands)

	if !c.active {
		c.idx = -1
	}
}

// cycle advances the selection by delta and returns the selected candidate.
func (c *completer) cycle(delta int) (string, bool) {
	if len(c.matches) == 0 {
		return "", false
	}

	if !c.active {
		c.active = true
		c.idx = 0

		if delta < 0 {
			c.idx = len(c.matches) - 1
		}

		return c.matches[c.idx].Str, true
	}

	c.idx += delta
	if c.idx >= len(c.matches) {
		c.idx = 0
	} else if c.idx < 0 {
		c.idx = len(c.matches) - 1
	}

	return c.matches[c.idx].Str, true
}

func (c *completer) reset() {
	c.matches = nil
	c.idx = -1
	c.active = false
}

// bar renders the candidate list on one line, highlighting the selection and
// truncating to the terminal width.
func (c *completer) bar(width int) string {
	var b strings.Builder

	for i, match := range c.matches {
		if i > 0 {
			b.WriteString("  ")
		}

		if i == c.idx {
			b.WriteString(selectedStyle.Render(match.Str))
		} else {
			b.WriteString(suggestionStyle.Render(match.Str))
		}
	}

	out := b.String()
	if width > 1 && len(out) > width {
		out = out[:width-1] + "…"
	}

	return out
}

// allCommands builds a match list covering every command, used before the
// user has typed anything to filter on.
func allCommands() fuzzy.Matches {
	matches := make(fuzzy.Matches, len(ctrlCommands))
	for i, cmd := range ctrlCommands {
		matches[i] = fuzzy.Match{Str: cmd, Index: i}
	}

	return matches
}
