package otel_test

import (
	"context"
	"testing"

	"github.com/galvamailru/chandra/pkg/auth"
	"github.com/galvamailru/chandra/pkg/engine"
	otelpkg "github.com/galvamailru/chandra/pkg/otel"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type stubEngine struct {
}

func (s *stubEngine) Recognize(ctx context.Context, input engine.Input, options *engine.RecognizeOptions) (*engine.Result, error) {
	return &engine.Result{
		Markdown: "text",

		TokenCount: 7,
	}, nil
}

func TestEngineSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	p := otelpkg.NewEngine("vllm", "datalab-to/chandra", &stubEngine{})

	ctx := context.WithValue(context.Background(), auth.UserContextKey, "alice")

	result, err := p.Recognize(ctx, engine.Input{Page: 3, Image: []byte("x")}, nil)
	require.NoError(t, err)
	require.Equal(t, "text", result.Markdown)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := spans[0].Attributes()

	require.Contains(t, attrs, attribute.String("engine", "vllm"))
	require.Contains(t, attrs, attribute.String("model", "datalab-to/chandra"))
	require.Contains(t, attrs, attribute.Int("page", 3))
	require.Contains(t, attrs, attribute.Int("token_count", 7))

	// the authenticated user travels from the request context onto the span
	require.Contains(t, attrs, attribute.String("enduser.id", "alice"))
}

func TestEndUserAttrsEmpty(t *testing.T) {
	require.Empty(t, otelpkg.EndUserAttrs(context.Background()))
}
