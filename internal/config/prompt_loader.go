package config

import (
	"fmt"
	"os"
)

// LoadPromptTemplate returns the classification prompt template to use.
// When configuredPath is empty the built-in fallback is returned; otherwise
// the file at configuredPath is read and its content used verbatim.
func LoadPromptTemplate(configuredPath, fallback string) (string, error) {
	if configuredPath == "" {
		return fallback, nil
	}

	promptBytes, err := os.ReadFile(configuredPath)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt template %q: %w", configuredPath, err)
	}

	return string(promptBytes), nil
}
