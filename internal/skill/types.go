package skill

import (
	"context"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/speech"
)

// IntentHandler answers one intent. session is the request's working copy;
// attribute changes are echoed back to the platform.
type IntentHandler func(ctx context.Context, intent model.Intent, session *model.Session) (speech.Response, error)

// LaunchHandler answers a LaunchRequest.
type LaunchHandler func(ctx context.Context, session *model.Session) (speech.Response, error)

// --- UseCase Inputs ---

type HandleInput struct {
	Envelope model.RequestEnvelope
}

// --- UseCase Outputs ---

// HandleOutput carries the dispatch result. Response is nil only for
// SessionEndedRequest, which the platform does not answer.
type HandleOutput struct {
	Response   *speech.Response
	Attributes map[string]any
	Intent     string
	Fallback   bool
}
