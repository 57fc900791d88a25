package usecase

import "voice-fact-skill/internal/model"

// slotValue returns the named slot's value. ok is false when the slot map,
// the slot, or its value is missing; a recognized empty string is ok.
func slotValue(intent model.Intent, name string) (value string, ok bool) {
	slot, found := intent.Slots[name]
	if !found || slot.Value == nil {
		return "", false
	}
	return *slot.Value, true
}
