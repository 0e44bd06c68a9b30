package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Classifier struct {
		Provider       string  `mapstructure:"provider"` // "openai" or "gemini"
		Model          string  `mapstructure:"model"`
		OpenaiApiKey   string  `mapstructure:"openai_api_key"`
		GeminiApiKey   string  `mapstructure:"gemini_api_key"`
		Temperature    float32 `mapstructure:"temperature"`
		PromptTemplate string  `mapstructure:"prompt_template"` // optional path to a template override
	} `mapstructure:"classifier"`

	Agents struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"agents"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.addr", "0.0.0.0")
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("classifier.provider", "openai")
	viper.SetDefault("classifier.model", "gpt-4o-mini")
	viper.SetDefault("classifier.temperature", 0.1)
	viper.SetDefault("agents.base_url", "http://localhost:8000")

	viper.AutomaticEnv()

	// Bind the conventional env var names so deployment does not require a
	// config file at all.
	viper.BindEnv("classifier.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("classifier.gemini_api_key", "GEMINI_API_KEY")
	viper.BindEnv("agents.base_url", "AGENT_API_BASE_URL")
	viper.BindEnv("server.port", "PORT")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
