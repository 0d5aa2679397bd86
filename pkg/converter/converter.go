package converter

import (
	"context"
	"errors"
)

// Provider turns an uploaded document into an ordered list of page images.
type Provider interface {
	Convert(ctx context.Context, file File, options *ConvertOptions) ([]Page, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type ConvertOptions struct {
	// Pages restricts conversion to the given ascending 1-based page
	// numbers. Nil or empty means all pages.
	Pages []int
}

type Page struct {
	// Page is 1-based and refers to the source document, not the position
	// within a restricted range.
	Page int

	Content     []byte
	ContentType string
}
