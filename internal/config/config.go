package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`     // current application environment (local, dev, prod etc)
	TelegramAPIToken string  `mapstructure:"-"`       // Telegram API token loaded from environment
	Content          Content `mapstructure:"content"` // content document configuration section
	Cheat            Cheat   `mapstructure:"cheat"`   // cheat helper configuration section
	UI               UI      `mapstructure:"ui"`      // presentation timing configuration section
}

// Content describes where the question document lives and how to reach it.
type Content struct {
	Source  string        `mapstructure:"source"`  // local file path or HTTP(S) URL of contenido.json
	Timeout time.Duration `mapstructure:"timeout"` // request timeout for HTTP sources
}

// Cheat configures the password-gated answer helper.
type Cheat struct {
	Secret string `mapstructure:"-"` // shared secret loaded from environment, plain text by design of the game
}

// UI holds the fixed delays and lifetimes of the presentation layer.
type UI struct {
	FeedbackDelay    time.Duration `mapstructure:"feedback_delay"`    // pause before re-rendering after a correct answer
	PromptDelay      time.Duration `mapstructure:"prompt_delay"`      // pause before the answer prompt asks for input
	ToastDuration    time.Duration `mapstructure:"toast_duration"`    // how long a toast stays visible
	ConfettiDuration time.Duration `mapstructure:"confetti_duration"` // how long the celebration effect stays visible
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("content.source", "assets/contenido.json")
	v.SetDefault("content.timeout", "10s")
	v.SetDefault("ui.feedback_delay", "400ms")
	v.SetDefault("ui.prompt_delay", "50ms")
	v.SetDefault("ui.toast_duration", "1500ms")
	v.SetDefault("ui.confetti_duration", "2s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("cheat_secret", "CHEAT_SECRET")
	_ = v.BindEnv("content.source", "CONTENT_SOURCE")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	// The cheat secret is part of the game, not a credential, so a
	// fixed default is fine.
	cfg.Cheat.Secret = v.GetString("cheat_secret")
	if cfg.Cheat.Secret == "" {
		cfg.Cheat.Secret = "69696969"
	}

	return &cfg, nil
}
