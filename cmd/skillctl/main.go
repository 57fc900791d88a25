// Package main implements skillctl, an operator CLI that runs the skill
// dispatcher locally without the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voice-fact-skill/config"
	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository/source"
	factUC "voice-fact-skill/internal/fact/usecase"
	"voice-fact-skill/internal/skill"
	skillUC "voice-fact-skill/internal/skill/usecase"
	"voice-fact-skill/pkg/log"
)

var (
	appID       string
	factsSource string
	factsPath   string
	verbose     bool
)

// deps is what every subcommand needs.
type deps struct {
	cfg   *config.Config
	facts fact.UseCase
	skill skill.UseCase
	l     log.Logger
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skillctl",
		Short: "Run the voice fact skill locally",
		Long: `skillctl loads the same configuration as the API server and dispatches
requests in-process. Flags override config.yaml and environment values.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&appID, "app-id", "", "skill application id (overrides skill.application_id)")
	root.PersistentFlags().StringVar(&factsSource, "facts-source", "", "fact table source: memory, yaml or sheets")
	root.PersistentFlags().StringVar(&factsPath, "facts-path", "", "YAML fact file for the yaml source")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(newInvokeCmd(), newFactsCmd(), newAskCmd())
	return root
}

// loadRuntime reads configuration with flag overrides and builds the use cases.
func loadRuntime(ctx context.Context, cmd *cobra.Command) (*deps, error) {
	v := viper.New()
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"skill.application_id": "app-id",
		"facts.source":         "facts-source",
		"facts.path":           "facts-path",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, err
	}

	l := log.NewNop()
	if verbose {
		l = log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     log.ModeDevelopment,
			Encoding: log.EncodingConsole,
			Output:   cmd.ErrOrStderr(),
		})
	}

	table, err := source.Open(ctx, source.Options{
		Source:          fact.Source(cfg.Facts.Source),
		Path:            cfg.Facts.Path,
		SpreadsheetID:   cfg.Facts.SpreadsheetID,
		Range:           cfg.Facts.Range,
		SkipHeader:      cfg.Facts.SkipHeader,
		CredentialsPath: cfg.Facts.CredentialsPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load fact table: %w", err)
	}

	facts := factUC.New(table, l)
	uc, err := skillUC.New(l, cfg.Skill.ApplicationID, facts)
	if err != nil {
		return nil, err
	}

	return &deps{cfg: cfg, facts: facts, skill: uc, l: l}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
