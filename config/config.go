package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"voice-fact-skill/internal/skill"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Skill specifics
	Skill SkillConfig
	Facts FactsConfig

	// Webhook guards
	Webhook WebhookConfig

	// Development tunnel
	Tunnel TunnelConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SkillConfig struct {
	ApplicationID string
	WebhookPath   string
}

// FactsConfig selects the fact table. Source is one of memory, yaml, sheets.
type FactsConfig struct {
	Source          string
	Path            string
	SpreadsheetID   string
	Range           string
	SkipHeader      bool
	CredentialsPath string
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// TunnelConfig points at a local ngrok agent. Empty disables detection.
type TunnelConfig struct {
	NgrokAPI string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom fills a Config from v. Used by Load and by tests that need an
// isolated viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = stringList(v, "http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Skill
	cfg.Skill.ApplicationID = v.GetString("skill.application_id")
	cfg.Skill.WebhookPath = v.GetString("skill.webhook_path")
	if cfg.Skill.ApplicationID == "" {
		return nil, fmt.Errorf("%w: skill.application_id", skill.ErrMissingApplicationID)
	}

	// Facts
	cfg.Facts.Source = v.GetString("facts.source")
	cfg.Facts.Path = v.GetString("facts.path")
	cfg.Facts.SpreadsheetID = v.GetString("facts.spreadsheet_id")
	cfg.Facts.Range = v.GetString("facts.range")
	cfg.Facts.SkipHeader = v.GetBool("facts.skip_header")
	cfg.Facts.CredentialsPath = v.GetString("facts.credentials_path")
	if googleCreds := v.GetString("google_application_credentials"); googleCreds != "" && cfg.Facts.CredentialsPath == "" {
		cfg.Facts.CredentialsPath = googleCreds
	}

	// Webhooks
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = stringList(v, "webhook.allowed_ips")

	cfg.Tunnel.NgrokAPI = v.GetString("tunnel.ngrok_api")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("skill.webhook_path", "/webhook/skill")
	v.SetDefault("facts.source", "memory")
	v.SetDefault("facts.range", "Facts!A:B")
	v.SetDefault("facts.skip_header", true)
	v.SetDefault("webhook.rate_limit_per_min", 600)
}

// stringList reads key either as a comma separated string or a YAML list.
func stringList(v *viper.Viper, key string) []string {
	if out := splitList(v.GetString(key)); len(out) > 0 {
		return out
	}
	return v.GetStringSlice(key)
}

// splitList splits a comma separated env value; viper does not parse lists
// from the environment.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
