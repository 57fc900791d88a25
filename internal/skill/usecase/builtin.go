package usecase

import (
	"context"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
)

func handleLaunch(ctx context.Context, session *model.Session) (speech.Response, error) {
	return speech.Ask(skill.LaunchSpeech, skill.LaunchReprompt), nil
}

func handleStop(ctx context.Context, intent model.Intent, session *model.Session) (speech.Response, error) {
	return speech.Tell(skill.StopSpeech), nil
}

func handleCancel(ctx context.Context, intent model.Intent, session *model.Session) (speech.Response, error) {
	return speech.Tell(skill.CancelSpeech), nil
}

func handleHelp(ctx context.Context, intent model.Intent, session *model.Session) (speech.Response, error) {
	return speech.Ask(speech.PlainText(skill.HelpSpeech), speech.PlainText(skill.HelpReprompt)), nil
}
