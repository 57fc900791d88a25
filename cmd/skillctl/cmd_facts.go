package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "List the fact keys the skill can answer",
		Args:  cobra.NoArgs,
		RunE:  runFacts,
	}
}

func runFacts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx, cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range rt.facts.List(ctx) {
		res, err := rt.facts.Resolve(ctx, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-20s %s\n", key, res.Text)
	}
	return nil
}
