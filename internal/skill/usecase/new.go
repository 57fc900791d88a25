package usecase

import (
	"context"

	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/router"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/pkg/log"
)

// implUseCase is the private implementation of skill.UseCase.
// Every field is set in New and never written again.
type implUseCase struct {
	applicationID string
	facts         fact.UseCase
	router        router.Router
	launch        skill.LaunchHandler
	l             log.Logger
}

var _ skill.UseCase = (*implUseCase)(nil)

// Option customises the skill at construction time.
type Option func(*options)

type options struct {
	intents map[string]skill.IntentHandler
	launch  skill.LaunchHandler
}

// WithIntent registers an extra handler, or replaces a built-in one.
func WithIntent(name string, h skill.IntentHandler) Option {
	return func(o *options) {
		o.intents[name] = h
	}
}

// WithLaunch replaces the launch greeting.
func WithLaunch(h skill.LaunchHandler) Option {
	return func(o *options) {
		o.launch = h
	}
}

// New creates the skill session controller.
func New(l log.Logger, applicationID string, facts fact.UseCase, opts ...Option) (*implUseCase, error) {
	if applicationID == "" {
		return nil, skill.ErrMissingApplicationID
	}

	uc := &implUseCase{
		applicationID: applicationID,
		facts:         facts,
		l:             l,
	}

	o := options{
		intents: map[string]skill.IntentHandler{
			skill.IntentFacts:  uc.handleFacts,
			skill.IntentStop:   handleStop,
			skill.IntentCancel: handleCancel,
			skill.IntentHelp:   handleHelp,
		},
		launch: handleLaunch,
	}
	for _, opt := range opts {
		opt(&o)
	}

	uc.router = router.New(l, o.intents)
	uc.launch = o.launch

	l.Infof(context.Background(), "%s: registered intents %v", skill.LogPrefixNew, uc.router.Names())
	return uc, nil
}
