package config

import (
	"errors"

	"github.com/galvamailru/chandra/pkg/converter"
	"github.com/galvamailru/chandra/pkg/converter/image"
	"github.com/galvamailru/chandra/pkg/converter/multi"
	"github.com/galvamailru/chandra/pkg/converter/mupdf"
	"github.com/galvamailru/chandra/pkg/otel"
)

func (cfg *Config) RegisterConverter(p converter.Provider) {
	cfg.converter = p
}

func (cfg *Config) Converter() (converter.Provider, error) {
	if cfg.converter == nil {
		return nil, errors.New("converter not configured")
	}

	return cfg.converter, nil
}

func (cfg *Config) registerConverter() error {
	var options []mupdf.Option

	if val := intFromEnvironment("RENDER_DPI", 0); val > 0 {
		options = append(options, mupdf.WithDPI(float64(val)))
	}

	pdf, err := mupdf.New(options...)

	if err != nil {
		return err
	}

	img, err := image.New()

	if err != nil {
		return err
	}

	var p converter.Provider = multi.New(pdf, img)

	if _, ok := p.(otel.Converter); !ok {
		p = otel.NewConverter("multi", p)
	}

	cfg.RegisterConverter(p)

	return nil
}
