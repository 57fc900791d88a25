package yamlfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository"
	"voice-fact-skill/internal/fact/repository/memory"
)

// document is the on-disk layout:
//
//	facts:
//	  mentors: There are 50 mentors.
type document struct {
	Facts map[string]string `yaml:"facts"`
}

// Load reads the YAML file at path into an immutable table.
func Load(path string) (repository.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fact file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into an immutable table.
func Parse(data []byte) (repository.Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fact file: %w", err)
	}
	if len(doc.Facts) == 0 {
		return nil, fact.ErrEmptySource
	}
	seen := make(map[string]string, len(doc.Facts))
	for k, v := range doc.Facts {
		key := fact.TableKey(k)
		if key == "" || v == "" {
			return nil, fmt.Errorf("%w: %q", fact.ErrInvalidRow, k)
		}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", fact.ErrDuplicateKey, prev, k)
		}
		seen[key] = k
	}
	return memory.New(doc.Facts), nil
}
