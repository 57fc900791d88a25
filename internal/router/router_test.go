package router_test

import (
	"context"
	"errors"
	"testing"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/router"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
	"voice-fact-skill/pkg/log"
)

func tellHandler(text string) skill.IntentHandler {
	return func(ctx context.Context, intent model.Intent, session *model.Session) (speech.Response, error) {
		return speech.Tell(text), nil
	}
}

func TestRoute(t *testing.T) {
	handlers := map[string]skill.IntentHandler{
		"GreetIntent": tellHandler("hi"),
		"ByeIntent":   tellHandler("bye"),
		"NilIntent":   nil,
	}
	r := router.New(log.NewNop(), handlers)
	ctx := context.Background()

	t.Run("Known intent", func(t *testing.T) {
		resp, err := r.Route(ctx, "GreetIntent", model.Intent{Name: "GreetIntent"}, &model.Session{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Speech.Speech != "hi" {
			t.Errorf("expected hi, got %q", resp.Speech.Speech)
		}
	})

	for _, name := range []string{"greetintent", "GREETINTENT", "Unknown", "", "NilIntent"} {
		t.Run("Miss "+name, func(t *testing.T) {
			_, err := r.Route(ctx, name, model.Intent{Name: name}, &model.Session{})
			if !errors.Is(err, skill.ErrUnrecognizedIntent) {
				t.Errorf("expected ErrUnrecognizedIntent for %q, got %v", name, err)
			}
		})
	}

	t.Run("Handler error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		r := router.New(log.NewNop(), map[string]skill.IntentHandler{
			"Fail": func(ctx context.Context, intent model.Intent, session *model.Session) (speech.Response, error) {
				return speech.Response{}, boom
			},
		})
		if _, err := r.Route(ctx, "Fail", model.Intent{}, &model.Session{}); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})

	t.Run("Table is copied", func(t *testing.T) {
		handlers["LateIntent"] = tellHandler("late")
		if _, err := r.Route(ctx, "LateIntent", model.Intent{}, &model.Session{}); !errors.Is(err, skill.ErrUnrecognizedIntent) {
			t.Errorf("handlers added after New must not be visible")
		}
	})

	t.Run("Names", func(t *testing.T) {
		names := r.Names()
		if len(names) != 2 || names[0] != "ByeIntent" || names[1] != "GreetIntent" {
			t.Errorf("unexpected names: %v", names)
		}
	})
}
