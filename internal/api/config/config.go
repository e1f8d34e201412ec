package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg is the globally accessible configuration instance.
var Cfg *Config

// envBindings maps config keys to the deployment secrets that override them.
// The first name is the canonical one; later names are accepted aliases.
var envBindings = map[string][]string{
	"mongo.url":             {"COSMOS_CONNECTION", "MONGO_URL"},
	"llm.api_key":           {"AZURE_OPENAI_API_KEY", "AZURE_OPENAI_KEY"},
	"llm.endpoint":          {"AZURE_OPENAI_ENDPOINT"},
	"llm.deployment":        {"AZURE_OPENAI_DEPLOYMENT_NAME", "AZURE_OPENAI_DEPLOYMENT"},
	"llm.api_version":       {"AZURE_OPENAI_API_VERSION"},
	"cache.register_url":    {"REDIS_CACHE_URL"},
	"jwt.secret":            {"JWT_SECRET"},
	"speech.key":            {"AZURE_SPEECH_KEY"},
	"speech.region":         {"AZURE_SPEECH_REGION"},
	"content_safety.key":    {"AZURE_CONTENT_SAFETY_KEY"},
	"content_safety.endpoint": {"AZURE_CONTENT_SAFETY_ENDPOINT"},
}

// LoadConfig reads ./configs/config.yaml, applies env overrides and fills Cfg.
// A missing config file is fine as long as the env secrets are set.
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("mongo.database", "HeidiCore")
	viper.SetDefault("llm.api_version", "2024-02-01")

	for key, names := range envBindings {
		viper.SetDefault(key, "")
		if err := viper.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
