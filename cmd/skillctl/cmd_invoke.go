package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"voice-fact-skill/internal/model"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/internal/speech"
)

var eventPath string

func newInvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Dispatch one request envelope and print the response JSON",
		Long: `Reads a platform request envelope from --event (or stdin with "-") and
prints the outbound envelope. A session end prints nothing.`,
		Args: cobra.NoArgs,
		RunE: runInvoke,
	}
	cmd.Flags().StringVarP(&eventPath, "event", "e", "-", "request envelope JSON file, - for stdin")
	return cmd
}

func runInvoke(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx, cmd)
	if err != nil {
		return err
	}

	data, err := readEvent(cmd, eventPath)
	if err != nil {
		return err
	}

	var env model.RequestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	output, err := rt.skill.Handle(ctx, skill.HandleInput{Envelope: env})
	if err != nil {
		return err
	}
	if output.Response == nil {
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(speech.Envelope(*output.Response, output.Attributes))
}

func readEvent(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event: %w", err)
	}
	return data, nil
}
