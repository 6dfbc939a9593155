package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration. This covers only how the tool
// runs; the household model and scoring config are data documents
// loaded by their own packages.
type Config struct {
	App      AppConfig   `mapstructure:"app"`
	Data     DataConfig  `mapstructure:"data"`
	Match    MatchConfig `mapstructure:"match"`
	Chat     ChatConfig  `mapstructure:"chat"`
	LogLevel string      `mapstructure:"log_level"`
	LogPath  string      `mapstructure:"log_path"`
}

// AppConfig describes the application itself.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// DataConfig locates the data documents.
type DataConfig struct {
	Dir           string `mapstructure:"dir"`
	HouseholdFile string `mapstructure:"household_file"`
	ScoringFile   string `mapstructure:"scoring_file"`
	RecipesFile   string `mapstructure:"recipes_file"`
}

// MatchConfig tunes fuzzy recipe matching.
type MatchConfig struct {
	Threshold float64 `mapstructure:"threshold"`
}

// ChatConfig configures the assistant boundary.
type ChatConfig struct {
	Provider  string `mapstructure:"provider"` // "claude" or "openrouter"
	Model     string `mapstructure:"model"`
	MaxTurns  int    `mapstructure:"max_turns"`
	APIKey    string `mapstructure:"api_key"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// LoadConfig reads .env, applies defaults and environment overrides,
// and validates the result.
func LoadConfig() (*Config, error) {
	// .env is optional for a CLI; ignore a missing file.
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("GROCERY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("data.dir", "GROCERY_DATA_DIR")
	viper.BindEnv("chat.provider", "GROCERY_CHAT_PROVIDER")
	viper.BindEnv("chat.model", "GROCERY_CHAT_MODEL")
	viper.BindEnv("chat.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("log_level", "GROCERY_LOG_LEVEL")
	viper.BindEnv("log_path", "GROCERY_LOG_PATH")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// MaskAPIKey hides all but the first and last four characters of a key
// for logging.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func setDefaults() {
	viper.SetDefault("app.name", "grocery")
	viper.SetDefault("app.version", "1.0.0")

	viper.SetDefault("data.dir", ".")
	viper.SetDefault("data.household_file", "household-model.yaml")
	viper.SetDefault("data.scoring_file", "recipe-scoring-config.yaml")
	viper.SetDefault("data.recipes_file", "recipe-links.json")

	viper.SetDefault("match.threshold", 0.7)

	viper.SetDefault("chat.provider", "claude")
	viper.SetDefault("chat.max_turns", 25)
	viper.SetDefault("chat.max_tokens", 2048)

	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_path", "")
}

func validateConfig(cfg *Config) error {
	if cfg.Data.Dir == "" {
		return fmt.Errorf("data dir is required")
	}
	if cfg.Match.Threshold < 0 || cfg.Match.Threshold > 1 {
		return fmt.Errorf("invalid match threshold %v (must be in [0, 1])", cfg.Match.Threshold)
	}
	switch cfg.Chat.Provider {
	case "claude", "openrouter":
	default:
		return fmt.Errorf("unknown chat provider %q", cfg.Chat.Provider)
	}
	if cfg.Chat.Provider == "openrouter" && cfg.Chat.APIKey == "" {
		return fmt.Errorf("chat api key is required for the openrouter provider")
	}
	if cfg.Chat.MaxTurns <= 0 {
		return fmt.Errorf("invalid chat max turns")
	}
	return nil
}
