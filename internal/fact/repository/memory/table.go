package memory

import (
	"sort"

	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository"
)

type table struct {
	facts map[string]string
	keys  []string
}

var _ repository.Table = (*table)(nil)

// New copies entries into an immutable table, cleaning every key with
// fact.TableKey. Callers must not pass keys that collide once cleaned:
// which value survives is unspecified. The file and sheet loaders reject
// such input with fact.ErrDuplicateKey.
func New(entries map[string]string) *table {
	facts := make(map[string]string, len(entries))
	for k, v := range entries {
		facts[fact.TableKey(k)] = v
	}

	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &table{facts: facts, keys: keys}
}

// NewDefault returns the table shipped with the skill.
func NewDefault() *table {
	return New(DefaultFacts)
}

func (t *table) Lookup(key string) (string, bool) {
	v, ok := t.facts[key]
	return v, ok
}

func (t *table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}
