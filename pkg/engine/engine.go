package engine

import (
	"context"
	"errors"
)

// Provider turns a single page image into recognized content.
type Provider interface {
	Recognize(ctx context.Context, input Input, options *RecognizeOptions) (*Result, error)
}

var (
	// ErrUnavailable means the engine itself cannot be reached or is
	// misconfigured. It aborts the whole request, unlike an ordinary
	// recognition error which only fails the affected page.
	ErrUnavailable = errors.New("engine unavailable")
)

type Input struct {
	// Page is the 1-based page number within the source document.
	Page int

	Image       []byte
	ContentType string
}

type RecognizeOptions struct {
	MaxTokens *int
}

type Result struct {
	Markdown string
	HTML     string

	TokenCount int
}
