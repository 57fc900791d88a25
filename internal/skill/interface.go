package skill

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle dispatches one platform request and yields at most one response.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)
}
