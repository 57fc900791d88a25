package usecase

import (
	"context"
	"fmt"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
)

// handleFacts answers factsIntent from the Item slot.
func (uc *implUseCase) handleFacts(ctx context.Context, intent model.Intent, session *model.Session) (speech.Response, error) {
	item, present := slotValue(intent, skill.SlotItem)
	if !present {
		return speech.Ask(skill.FactsUnknownDetail, skill.FactsReprompt), nil
	}

	out, err := uc.facts.Resolve(ctx, item)
	if err != nil {
		uc.l.Errorf(ctx, "%s: Resolve %q: %v", skill.LogPrefixFacts, item, err)
		return speech.Response{}, err
	}

	if !out.Found {
		return speech.Ask(fmt.Sprintf(skill.FactsUnknownItem, item), skill.FactsReprompt), nil
	}

	return speech.AskWithCard(
		speech.PlainText(out.Text),
		speech.PlainText(skill.FactsReprompt),
		skill.FactsCardPrefix+out.Key,
		out.Text,
	), nil
}
