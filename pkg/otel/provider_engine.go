package otel

import (
	"context"

	"github.com/galvamailru/chandra/pkg/engine"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Engine interface {
	Observable
	engine.Provider
}

type observableEngine struct {
	name  string
	model string

	engine engine.Provider
}

func NewEngine(name, model string, p engine.Provider) Engine {
	return &observableEngine{
		engine: p,

		name:  name,
		model: model,
	}
}

func (p *observableEngine) otelSetup() {
}

func (p *observableEngine) Recognize(ctx context.Context, input engine.Input, options *engine.RecognizeOptions) (*engine.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "recognize "+p.name)
	defer span.End()

	attrs := KeyValues(
		[]KeyValue{
			String("engine", p.name),
			String("model", p.model),
			attribute.Int("page", input.Page),
		},
		EndUserAttrs(ctx),
	)

	span.SetAttributes(attrs...)

	result, err := p.engine.Recognize(ctx, input, options)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if result != nil {
		span.SetAttributes(attribute.Int("token_count", result.TokenCount))
	}

	return result, err
}
