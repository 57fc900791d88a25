package sheets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository"
	"voice-fact-skill/internal/fact/repository/memory"
)

// Options selects the sheet range holding the facts.
// Column A is the item name, column B the fact text.
type Options struct {
	SpreadsheetID string
	Range         string
	SkipHeader    bool
}

// Loader reads a fact table from Google Sheets.
type Loader struct {
	service *gsheets.Service
}

// NewLoaderFromCredentialsFile builds a Loader from a service account JSON file.
func NewLoaderFromCredentialsFile(ctx context.Context, credentialsPath string) (*Loader, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewLoaderFromCredentialsJSON(ctx, data)
}

// NewLoaderFromCredentialsJSON builds a Loader from raw service account JSON.
func NewLoaderFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Loader, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, gsheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Loader{service: svc}, nil
}

// NewLoaderFromHTTP builds a Loader on a pre-configured HTTP client.
// endpoint overrides the API base URL when non-empty.
func NewLoaderFromHTTP(ctx context.Context, httpClient *http.Client, endpoint string) (*Loader, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Loader{service: svc}, nil
}

// Load fetches the range once and returns an immutable table.
func (l *Loader) Load(ctx context.Context, opt Options) (repository.Table, error) {
	if opt.SpreadsheetID == "" || opt.Range == "" {
		return nil, fmt.Errorf("%w: spreadsheet id and range are required", fact.ErrMissingSetting)
	}

	resp, err := l.service.Spreadsheets.Values.Get(opt.SpreadsheetID, opt.Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read fact sheet: %w", err)
	}

	rows := resp.Values
	if opt.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	entries := make(map[string]string, len(rows))
	firstRow := make(map[string]int, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		key := cellString(row, 0)
		value := cellString(row, 1)
		if key == "" && value == "" {
			continue
		}
		canonical := fact.TableKey(key)
		if canonical == "" || value == "" {
			return nil, fmt.Errorf("%w: row %d", fact.ErrInvalidRow, i+1)
		}
		if prev, ok := firstRow[canonical]; ok {
			return nil, fmt.Errorf("%w: rows %d and %d", fact.ErrDuplicateKey, prev, i+1)
		}
		firstRow[canonical] = i + 1
		entries[key] = value
	}

	if len(entries) == 0 {
		return nil, fact.ErrEmptySource
	}
	return memory.New(entries), nil
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}
