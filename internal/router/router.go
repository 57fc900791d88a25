package router

import (
	"context"
	"fmt"
	"sort"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
)

// Route invokes the handler registered under name (exact, case-sensitive).
// A miss returns an error wrapping skill.ErrUnrecognizedIntent.
func (r *IntentRouter) Route(ctx context.Context, name string, intent model.Intent, session *model.Session) (speech.Response, error) {
	h, ok := r.handlers[name]
	if !ok {
		r.l.Warnf(ctx, "%s: %s %q", LogPrefixRoute, ErrMsgNoHandler, name)
		return speech.Response{}, fmt.Errorf("%w: %q", skill.ErrUnrecognizedIntent, name)
	}

	r.l.Debugf(ctx, "%s: dispatching %q", LogPrefixRoute, name)
	return h(ctx, intent, session)
}

// Names returns the registered intent names, sorted.
func (r *IntentRouter) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
