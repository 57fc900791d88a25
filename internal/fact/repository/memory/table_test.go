package memory_test

import (
	"testing"

	"voice-fact-skill/internal/fact/repository/memory"
)

func TestTable(t *testing.T) {
	tbl := memory.New(map[string]string{
		"Mentors":   "There are 50 mentors.",
		" Robots ":  "One robot, in a tube.",
		"unchanged": "x",
	})

	t.Run("Keys are canonicalised", func(t *testing.T) {
		if v, ok := tbl.Lookup("mentors"); !ok || v != "There are 50 mentors." {
			t.Errorf("expected mentors fact, got %q (%v)", v, ok)
		}
		if _, ok := tbl.Lookup("Mentors"); ok {
			t.Errorf("lookup is by canonical key only")
		}
		if _, ok := tbl.Lookup("robots"); !ok {
			t.Errorf("expected trimmed key robots")
		}
	})

	t.Run("Keys are sorted and copied", func(t *testing.T) {
		keys := tbl.Keys()
		want := []string{"mentors", "robots", "unchanged"}
		if len(keys) != len(want) {
			t.Fatalf("expected %d keys, got %v", len(want), keys)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
			}
		}
		keys[0] = "mutated"
		if tbl.Keys()[0] != "mentors" {
			t.Errorf("Keys must return a copy")
		}
	})

	t.Run("Source map is not shared", func(t *testing.T) {
		src := map[string]string{"a": "1"}
		tt := memory.New(src)
		src["a"] = "2"
		if v, _ := tt.Lookup("a"); v != "1" {
			t.Errorf("table must not alias its input, got %q", v)
		}
	})

	t.Run("Default table", func(t *testing.T) {
		if _, ok := memory.NewDefault().Lookup("mentors"); !ok {
			t.Errorf("default table should know about mentors")
		}
	})
}
