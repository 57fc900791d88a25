package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository/memory"
	factUC "voice-fact-skill/internal/fact/usecase"
	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/skill/usecase"
)

const testAppID = "amzn1.echo-sdk-ams.app.test-skill"

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// recordingLogger keeps Infof lines.
type recordingLogger struct {
	mockLogger
	infos []string
}

func (m *recordingLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infos = append(m.infos, fmt.Sprintf(template, arg...))
}

// mockFacts implements fact.UseCase
type mockFacts struct {
	out fact.ResolveOutput
	err error
}

func (m *mockFacts) Resolve(ctx context.Context, name string) (fact.ResolveOutput, error) {
	return m.out, m.err
}
func (m *mockFacts) List(ctx context.Context) []string { return nil }

func newSkill(t *testing.T, opts ...usecase.Option) skill.UseCase {
	t.Helper()
	facts := factUC.New(memory.New(map[string]string{
		"mentors": "There are 50 mentors.",
	}), &mockLogger{})

	uc, err := usecase.New(&mockLogger{}, testAppID, facts, opts...)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	return uc
}

func envelope(reqType string, intent *model.Intent) skill.HandleInput {
	return skill.HandleInput{
		Envelope: model.RequestEnvelope{
			Version: "1.0",
			Session: model.Session{
				SessionID:   "session-1",
				Application: model.Application{ApplicationID: testAppID},
			},
			Request: model.Request{
				Type:      reqType,
				RequestID: "request-1",
				Intent:    intent,
			},
		},
	}
}

func factsIntent(item *string) *model.Intent {
	intent := &model.Intent{Name: skill.IntentFacts, Slots: map[string]model.Slot{}}
	if item != nil {
		intent.Slots[skill.SlotItem] = model.NewSlot(skill.SlotItem, *item)
	}
	return intent
}

func ptr(s string) *string { return &s }
