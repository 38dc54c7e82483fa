package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port               int
	DatabaseURL        string
	DatabaseType       string
	SlackBotToken      string
	SlackSigningSecret string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("planning-poker", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SlackBotToken, "bot-token", "", "Slack bot token (prefer env)")
	fs.StringVar(&cfg.SlackSigningSecret, "signing-secret", "", "Slack signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	// Secrets - MUST be provided
	if cfg.SlackBotToken == "" {
		cfg.SlackBotToken = os.Getenv("SLACK_BOT_TOKEN")
	}
	if cfg.SlackBotToken == "" {
		return Config{}, errors.New("SLACK_BOT_TOKEN required")
	}

	if cfg.SlackSigningSecret == "" {
		cfg.SlackSigningSecret = os.Getenv("SLACK_SIGNING_SECRET")
	}
	if cfg.SlackSigningSecret == "" {
		return Config{}, errors.New("SLACK_SIGNING_SECRET required")
	}

	return cfg, nil
}
