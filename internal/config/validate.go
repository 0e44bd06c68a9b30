package config

import (
	"fmt"
	"strings"
)

// Validate checks that the loaded configuration is usable before any
// component is constructed. It returns the first problem found.
func (c *Config) Validate() error {
	switch c.Classifier.Provider {
	case "openai":
		if c.Classifier.OpenaiApiKey == "" {
			return fmt.Errorf("classifier provider is 'openai' but no API key is set (OPENAI_API_KEY or classifier.openai_api_key)")
		}
	case "gemini":
		if c.Classifier.GeminiApiKey == "" {
			return fmt.Errorf("classifier provider is 'gemini' but no API key is set (GEMINI_API_KEY or classifier.gemini_api_key)")
		}
	default:
		return fmt.Errorf("unknown classifier provider %q (expected 'openai' or 'gemini')", c.Classifier.Provider)
	}

	if !strings.HasPrefix(c.Agents.BaseURL, "http://") && !strings.HasPrefix(c.Agents.BaseURL, "https://") {
		return fmt.Errorf("agents.base_url %q must be an http(s) URL", c.Agents.BaseURL)
	}

	return nil
}
