package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
)

// Handle validates the envelope and dispatches on request type.
func (uc *implUseCase) Handle(ctx context.Context, input skill.HandleInput) (skill.HandleOutput, error) {
	env := input.Envelope

	if env.Session.Application.ApplicationID != uc.applicationID {
		uc.l.Warnf(ctx, "%s: rejected application id %q", skill.LogPrefixHandle, env.Session.Application.ApplicationID)
		return skill.HandleOutput{}, skill.ErrAuthorization
	}

	// Work on a copy so handlers never touch the inbound envelope.
	session := env.Session
	session.Attributes = maps.Clone(env.Session.Attributes)
	if session.Attributes == nil {
		session.Attributes = make(map[string]any)
	}

	if session.New {
		uc.onSessionStarted(ctx, env.Request, &session)
	}

	switch env.Request.Type {
	case model.RequestTypeLaunch:
		resp, err := uc.launch(ctx, &session)
		if err != nil {
			return skill.HandleOutput{}, fmt.Errorf("launch: %w", err)
		}
		return skill.HandleOutput{Response: &resp, Attributes: session.Attributes}, nil

	case model.RequestTypeIntent:
		return uc.handleIntent(ctx, env.Request, &session)

	case model.RequestTypeSessionEnded:
		uc.onSessionEnded(ctx, env.Request, &session)
		return skill.HandleOutput{Attributes: session.Attributes}, nil

	default:
		uc.l.Warnf(ctx, "%s: unsupported request type %q", skill.LogPrefixHandle, env.Request.Type)
		return skill.HandleOutput{}, fmt.Errorf("%w: %q", skill.ErrUnsupportedRequest, env.Request.Type)
	}
}

// handleIntent routes the intent; an unknown name becomes the spoken fallback.
func (uc *implUseCase) handleIntent(ctx context.Context, req model.Request, session *model.Session) (skill.HandleOutput, error) {
	var intent model.Intent
	if req.Intent != nil {
		intent = *req.Intent
	}

	resp, err := uc.router.Route(ctx, intent.Name, intent, session)
	if errors.Is(err, skill.ErrUnrecognizedIntent) {
		fallback := speech.Ask(skill.FallbackSpeech, skill.HelpReprompt)
		return skill.HandleOutput{
			Response:   &fallback,
			Attributes: session.Attributes,
			Intent:     intent.Name,
			Fallback:   true,
		}, nil
	}
	if err != nil {
		return skill.HandleOutput{}, fmt.Errorf("intent %q: %w", intent.Name, err)
	}

	return skill.HandleOutput{
		Response:   &resp,
		Attributes: session.Attributes,
		Intent:     intent.Name,
	}, nil
}

// onSessionStarted runs before the first request of a session.
// The skill keeps no per-session state, so there is nothing to seed.
func (uc *implUseCase) onSessionStarted(ctx context.Context, req model.Request, session *model.Session) {
	uc.l.Debugf(ctx, "%s: session started requestId=%s sessionId=%s", skill.LogPrefixHandle, req.RequestID, session.SessionID)
}

func (uc *implUseCase) onSessionEnded(ctx context.Context, req model.Request, session *model.Session) {
	uc.l.Debugf(ctx, "%s: session ended requestId=%s sessionId=%s reason=%s", skill.LogPrefixHandle, req.RequestID, session.SessionID, req.Reason)
}
