package fact

// ResolveOutput is the result of a fact lookup.
type ResolveOutput struct {
	Key   string // canonical (lower-cased) key that was looked up
	Text  string
	Found bool
}

// Source names the backing store for the fact table.
type Source string

const (
	SourceMemory Source = "memory"
	SourceYAML   Source = "yaml"
	SourceSheets Source = "sheets"
)
