package http

import (
	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
)

// --- Request DTOs ---

type webhookReq struct {
	model.RequestEnvelope
}

func (r webhookReq) validate() error {
	if r.Request.Type == "" {
		return errMissingRequestType
	}
	return nil
}

func (r webhookReq) toInput() skill.HandleInput {
	return skill.HandleInput{Envelope: r.RequestEnvelope}
}

// --- Response DTOs ---

func (h *handler) newWebhookResp(out skill.HandleOutput) speech.ResponseEnvelope {
	return speech.Envelope(*out.Response, out.Attributes)
}
