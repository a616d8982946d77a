package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// Sq parses an algebraic square name, failing the test on error.
func Sq(t testing.TB, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return pos
}

// MoveStrings returns the UCI text of each move, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// Destinations returns the sorted, de-duplicated destination squares of moves.
func Destinations(moves []chess.Move) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range moves {
		if s := m.To.String(); !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// AssertMoveSet compares moves against the wanted UCI strings, ignoring order.
func AssertMoveSet(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotText := make([]string, len(got))
	for i, m := range got {
		gotText[i] = m.String()
	}
	opt := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, gotText, opt, cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: move set mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("move set mismatch (-want +got):\n%s", diff)
		}
	}
}
