package usecase

import (
	"context"

	"voice-fact-skill/internal/fact"
)

// Resolve looks up the canonical form of name.
func (uc *implUseCase) Resolve(ctx context.Context, name string) (fact.ResolveOutput, error) {
	key := fact.Canonical(name)
	text, ok := uc.table.Lookup(key)
	if !ok {
		uc.l.Debugf(ctx, "fact.usecase.Resolve: no fact for %q", key)
		return fact.ResolveOutput{Key: key}, nil
	}
	return fact.ResolveOutput{Key: key, Text: text, Found: true}, nil
}

// List returns every fact key in sorted order.
func (uc *implUseCase) List(ctx context.Context) []string {
	return uc.table.Keys()
}
