package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <item>",
		Short: "Ask the skill about one item, as if spoken",
		Example: `  skillctl ask mentors
  skillctl ask devices claimed`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx, cmd)
	if err != nil {
		return err
	}

	item := strings.Join(args, " ")
	env := model.RequestEnvelope{
		Version: "1.0",
		Session: model.Session{
			New:         true,
			SessionID:   "skillctl." + uuid.NewString(),
			Application: model.Application{ApplicationID: rt.cfg.Skill.ApplicationID},
		},
		Request: model.Request{
			Type:      model.RequestTypeIntent,
			RequestID: "skillctl." + uuid.NewString(),
			Intent: &model.Intent{
				Name:  skill.IntentFacts,
				Slots: map[string]model.Slot{skill.SlotItem: model.NewSlot(skill.SlotItem, item)},
			},
		},
	}

	output, err := rt.skill.Handle(ctx, skill.HandleInput{Envelope: env})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	resp := output.Response
	fmt.Fprintln(out, resp.Speech.Speech)
	if resp.Card != nil {
		fmt.Fprintf(out, "[card] %s\n", resp.Card.Title)
	}
	return nil
}
