package otel

import (
	"context"

	"github.com/galvamailru/chandra/pkg/converter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type Converter interface {
	Observable
	converter.Provider
}

type observableConverter struct {
	name string

	converter converter.Provider
}

func NewConverter(name string, p converter.Provider) Converter {
	return &observableConverter{
		converter: p,

		name: name,
	}
}

func (p *observableConverter) otelSetup() {
}

func (p *observableConverter) Convert(ctx context.Context, file converter.File, options *converter.ConvertOptions) ([]converter.Page, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "convert "+p.name)
	defer span.End()

	result, err := p.converter.Convert(ctx, file, options)

	span.SetAttributes(attribute.Int("pages", len(result)))

	return result, err
}
