package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"voice-fact-skill/config"
	_ "voice-fact-skill/docs" // Swagger docs
	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository/source"
	factUC "voice-fact-skill/internal/fact/usecase"
	"voice-fact-skill/internal/httpserver"
	"voice-fact-skill/internal/middleware"
	skillUC "voice-fact-skill/internal/skill/usecase"
	"voice-fact-skill/pkg/log"
	"voice-fact-skill/pkg/tunnel"
)

// @title       Voice Fact Skill API
// @description Single-turn voice skill webhook answering fact questions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Fact Skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Fact table
	table, err := source.Open(ctx, source.Options{
		Source:          fact.Source(cfg.Facts.Source),
		Path:            cfg.Facts.Path,
		SpreadsheetID:   cfg.Facts.SpreadsheetID,
		Range:           cfg.Facts.Range,
		SkipHeader:      cfg.Facts.SkipHeader,
		CredentialsPath: cfg.Facts.CredentialsPath,
	})
	if err != nil {
		logger.Error(ctx, "Failed to load fact table: ", err)
		return
	}
	logger.Infof(ctx, "Fact table loaded from %s source (%d keys)", cfg.Facts.Source, len(table.Keys()))

	// 4. Skill domain
	facts := factUC.New(table, logger)
	skill, err := skillUC.New(logger, cfg.Skill.ApplicationID, facts)
	if err != nil {
		logger.Error(ctx, "Failed to initialize skill: ", err)
		return
	}

	// 5. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		SkillUseCase: skill,
		WebhookPath:  cfg.Skill.WebhookPath,
		Security: middleware.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Registry:       registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// Development: print the public endpoint to paste into the skill console.
	if cfg.Tunnel.NgrokAPI != "" {
		go func() {
			publicURL, err := tunnel.New(cfg.Tunnel.NgrokAPI, 10, 3*time.Second).PublicURL(ctx)
			if err != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
				return
			}
			logger.Infof(ctx, "Skill endpoint: %s%s", publicURL, cfg.Skill.WebhookPath)
		}()
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
