package repl

import "testing"

func TestCompleter_RefreshEmptyOffersAll(t *testing.T) {
	var c completer

	c.refresh("")

	if len(c.matches) != len(ctrlCommands) {
		t.Fatalf(
			"expected %d candidates, got %d",
			len(ctrlCommands),
			len(c.matches),
		)
	}

	for i, cmd := range ctrlCommands {
		if c.matches[i].Str != cmd {
			t.Errorf("candidate %d: expected %q, got %q", i, cmd, c.matches[i].Str)
		}
	}
}

func TestCompleter_RefreshFilters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"exact prefix", "pre", []string{"pretty"}},
		{"fuzzy subsequence", "qt", []string{"quit"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c completer

			c.refresh(tt.input)

			if len(c.matches) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, c.matches)
			}

			for i, want := range tt.want {
				if c.matches[i].Str != want {
					t.Errorf("candidate %d: expected %q, got %q", i, want, c.matches[i].Str)
				}
			}
		})
	}
}

func TestCompleter_CycleWrapsAround(t *testing.T) {
	var c completer

	c.refresh("")

	n := len(ctrlCommands)

	// First cycle selects the first candidate.
	got, ok := c.cycle(1)
	if !ok || got != ctrlCommands[0] {
		t.Fatalf("expected first candidate %q, got %q", ctrlCommands[0], got)
	}

	// Forward through the rest, then wrap to the start.
	for i := 1; i < n; i++ {
		got, ok = c.cycle(1)
		if !ok || got != ctrlCommands[i] {
			t.Fatalf("step %d: expected %q, got %q", i, ctrlCommands[i], got)
		}
	}

	got, _ = c.cycle(1)
	if got != ctrlCommands[0] {
		t.Errorf("expected wrap to %q, got %q", ctrlCommands[0], got)
	}
}

func TestCompleter_CycleBackwardStartsAtEnd(t *testing.T) {
	var c completer

	c.refresh("")

	last := ctrlCommands[len(ctrlCommands)-1]

	got, ok := c.cycle(-1)
	if !ok || got != last {
		t.Errorf("expected last candidate %q, got %q", last, got)
	}
}

func TestCompleter_CycleEmpty(t *testing.T) {
	var c completer

	c.refresh("zzz")

	if _, ok := c.cycle(1); ok {
		t.Error("expected no candidate for unmatched input")
	}
}

func TestCompleter_ResetClears(t *testing.T) {
	var c completer

	c.refresh("")
	c.cycle(1)
	c.reset()

	if len(c.matches) != 0 || c.active {
		t.Error("expected reset to clear matches and selection")
	}
}
