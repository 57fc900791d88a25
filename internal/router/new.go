package router

import (
	"context"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
	"voice-fact-skill/pkg/log"
)

// Router maps intent names to handlers.
type Router interface {
	Route(ctx context.Context, name string, intent model.Intent, session *model.Session) (speech.Response, error)
	Names() []string
}

// IntentRouter is an immutable name -> handler table.
type IntentRouter struct {
	handlers map[string]skill.IntentHandler
	l        log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New copies handlers into a new IntentRouter. The table cannot change
// afterwards, so the router is safe for concurrent use.
func New(l log.Logger, handlers map[string]skill.IntentHandler) *IntentRouter {
	table := make(map[string]skill.IntentHandler, len(handlers))
	for name, h := range handlers {
		if h != nil {
			table[name] = h
		}
	}
	return &IntentRouter{
		handlers: table,
		l:        l,
	}
}
