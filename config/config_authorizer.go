package config

import (
	"os"

	"github.com/galvamailru/chandra/pkg/auth"
	"github.com/galvamailru/chandra/pkg/auth/static"
)

func (cfg *Config) RegisterAuthorizer(p auth.Provider) {
	cfg.Authorizers = append(cfg.Authorizers, p)
}

func (cfg *Config) registerAuthorizer() error {
	token := os.Getenv("API_TOKEN")

	if token == "" {
		return nil
	}

	p, err := static.New(token)

	if err != nil {
		return err
	}

	cfg.RegisterAuthorizer(p)

	return nil
}
