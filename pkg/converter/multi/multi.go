package multi

import (
	"context"
	"errors"

	"github.com/galvamailru/chandra/pkg/converter"
)

var _ converter.Provider = &Converter{}

type Converter struct {
	providers []converter.Provider
}

func New(provider ...converter.Provider) *Converter {
	return &Converter{
		providers: provider,
	}
}

func (c *Converter) Convert(ctx context.Context, file converter.File, options *converter.ConvertOptions) ([]converter.Page, error) {
	if options == nil {
		options = new(converter.ConvertOptions)
	}

	for _, p := range c.providers {
		result, err := p.Convert(ctx, file, options)

		if err != nil {
			if errors.Is(err, converter.ErrUnsupported) {
				continue
			}

			return nil, err
		}

		return result, nil
	}

	return nil, converter.ErrUnsupported
}
