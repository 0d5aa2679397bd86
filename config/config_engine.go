package config

import (
	"errors"
	"os"
	"strings"

	"github.com/galvamailru/chandra/pkg/engine"
	"github.com/galvamailru/chandra/pkg/engine/tesseract"
	"github.com/galvamailru/chandra/pkg/engine/vllm"
	"github.com/galvamailru/chandra/pkg/limiter"
	"github.com/galvamailru/chandra/pkg/otel"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterEngine(p engine.Provider) {
	cfg.engine = p
}

func (cfg *Config) Engine() (engine.Provider, error) {
	if cfg.engine == nil {
		return nil, errors.New("engine not configured")
	}

	return cfg.engine, nil
}

func (cfg *Config) registerEngine() error {
	name := strings.ToLower(os.Getenv("ENGINE"))

	if name == "" {
		name = "tesseract"
	}

	p, err := createEngine(name, cfg)

	if err != nil {
		return err
	}

	var limit *int

	if val := intFromEnvironment("ENGINE_RPS", 0); val > 0 {
		limit = &val
	}

	if _, ok := p.(limiter.Engine); !ok {
		p = limiter.NewEngine(createLimiter(limit), p)
	}

	if _, ok := p.(otel.Engine); !ok {
		p = otel.NewEngine(name, cfg.Model, p)
	}

	cfg.RegisterEngine(p)

	return nil
}

func createEngine(name string, cfg *Config) (engine.Provider, error) {
	switch name {
	case "tesseract", "local":
		return tesseractEngine()

	case "vllm", "remote":
		return vllmEngine(cfg)

	default:
		return nil, errors.New("invalid engine type: " + name)
	}
}

func tesseractEngine() (engine.Provider, error) {
	var options []tesseract.Option

	if val := os.Getenv("TESSERACT_LANGUAGES"); val != "" {
		options = append(options, tesseract.WithLanguages(strings.Split(val, ",")...))
	}

	if val := intFromEnvironment("RENDER_DPI", 0); val > 0 {
		options = append(options, tesseract.WithDPI(val))
	}

	return tesseract.New(options...)
}

func vllmEngine(cfg *Config) (engine.Provider, error) {
	var options []vllm.Option

	if token := os.Getenv("VLLM_TOKEN"); token != "" {
		options = append(options, vllm.WithToken(token))
	}

	return vllm.New(os.Getenv("VLLM_URL"), cfg.Model, options...)
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
