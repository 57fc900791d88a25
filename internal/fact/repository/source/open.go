package source

import (
	"context"
	"fmt"

	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository"
	"voice-fact-skill/internal/fact/repository/memory"
	"voice-fact-skill/internal/fact/repository/sheets"
	"voice-fact-skill/internal/fact/repository/yamlfile"
)

// Options selects and configures the fact table backend.
type Options struct {
	Source          fact.Source
	Path            string // yaml
	SpreadsheetID   string // sheets
	Range           string // sheets
	SkipHeader      bool   // sheets
	CredentialsPath string // sheets
}

// Open builds the fact table once at startup. An empty source means memory.
func Open(ctx context.Context, opt Options) (repository.Table, error) {
	switch opt.Source {
	case "", fact.SourceMemory:
		return memory.NewDefault(), nil

	case fact.SourceYAML:
		if opt.Path == "" {
			return nil, fmt.Errorf("%w: facts.path", fact.ErrMissingSetting)
		}
		return yamlfile.Load(opt.Path)

	case fact.SourceSheets:
		if opt.CredentialsPath == "" {
			return nil, fmt.Errorf("%w: facts.credentials_path", fact.ErrMissingSetting)
		}
		loader, err := sheets.NewLoaderFromCredentialsFile(ctx, opt.CredentialsPath)
		if err != nil {
			return nil, err
		}
		return loader.Load(ctx, sheets.Options{
			SpreadsheetID: opt.SpreadsheetID,
			Range:         opt.Range,
			SkipHeader:    opt.SkipHeader,
		})

	default:
		return nil, fmt.Errorf("%w: %q", fact.ErrUnknownSource, opt.Source)
	}
}
