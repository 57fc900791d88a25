package usecase

import (
	"testing"

	"voice-fact-skill/internal/model"
)

func TestSlotValue(t *testing.T) {
	cases := []struct {
		name      string
		intent    model.Intent
		wantValue string
		wantOK    bool
	}{
		{"Nil slot map", model.Intent{}, "", false},
		{"Missing slot", model.Intent{Slots: map[string]model.Slot{"Other": model.NewSlot("Other", "x")}}, "", false},
		{"Slot without value", model.Intent{Slots: map[string]model.Slot{"Item": {Name: "Item"}}}, "", false},
		{"Empty value", model.Intent{Slots: map[string]model.Slot{"Item": model.NewSlot("Item", "")}}, "", true},
		{"Value", model.Intent{Slots: map[string]model.Slot{"Item": model.NewSlot("Item", "Mentors")}}, "Mentors", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := slotValue(tc.intent, "Item")
			if v != tc.wantValue || ok != tc.wantOK {
				t.Errorf("slotValue = (%q, %v), want (%q, %v)", v, ok, tc.wantValue, tc.wantOK)
			}
		})
	}
}
