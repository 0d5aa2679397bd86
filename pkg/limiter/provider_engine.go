package limiter

import (
	"context"

	"github.com/galvamailru/chandra/pkg/engine"

	"golang.org/x/time/rate"
)

type Limiter interface {
	limiterSetup()
}

type Engine interface {
	Limiter
	engine.Provider
}

type limitedEngine struct {
	limiter  *rate.Limiter
	provider engine.Provider
}

func NewEngine(l *rate.Limiter, p engine.Provider) Engine {
	return &limitedEngine{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedEngine) limiterSetup() {
}

func (p *limitedEngine) Recognize(ctx context.Context, input engine.Input, options *engine.RecognizeOptions) (*engine.Result, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Recognize(ctx, input, options)
}
