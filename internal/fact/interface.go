package fact

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve canonicalises name and looks it up. A miss is not an error.
	Resolve(ctx context.Context, name string) (ResolveOutput, error)
	// List returns every known fact key, sorted.
	List(ctx context.Context) []string
}
