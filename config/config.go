package config

import (
	"os"
	"strconv"

	"github.com/galvamailru/chandra/pkg/auth"
	"github.com/galvamailru/chandra/pkg/converter"
	"github.com/galvamailru/chandra/pkg/engine"
)

type Config struct {
	Address string

	// Model is the checkpoint identifier passed to the inference engine.
	Model string

	// MaxTokens caps the generated output per page.
	MaxTokens int

	// Concurrency bounds the per-request page fan-out.
	Concurrency int

	MaxUploadSize int64

	Authorizers []auth.Provider

	engine    engine.Provider
	converter converter.Provider
}

// FromEnvironment builds the configuration from environment variables. The
// engine mode is a deployment-time decision, never a per-request one.
func FromEnvironment() (*Config, error) {
	c := &Config{
		Address: addressFromEnvironment(),

		Model: valueFromEnvironment("MODEL", "datalab-to/chandra"),

		MaxTokens:   intFromEnvironment("MAX_OUTPUT_TOKENS", 8192),
		Concurrency: intFromEnvironment("ENGINE_CONCURRENCY", 4),

		MaxUploadSize: int64(intFromEnvironment("MAX_UPLOAD_SIZE", 64<<20)),
	}

	if err := c.registerAuthorizer(); err != nil {
		return nil, err
	}

	if err := c.registerEngine(); err != nil {
		return nil, err
	}

	if err := c.registerConverter(); err != nil {
		return nil, err
	}

	return c, nil
}

func addressFromEnvironment() string {
	if val := os.Getenv("ADDRESS"); val != "" {
		return val
	}

	if val := os.Getenv("PORT"); val != "" {
		return ":" + val
	}

	return ":8000"
}

func valueFromEnvironment(name, fallback string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}

	return fallback
}

func intFromEnvironment(name string, fallback int) int {
	if val, err := strconv.Atoi(os.Getenv(name)); err == nil && val > 0 {
		return val
	}

	return fallback
}
