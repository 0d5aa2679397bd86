package multi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/galvamailru/chandra/pkg/converter"
	"github.com/galvamailru/chandra/pkg/converter/multi"

	"github.com/stretchr/testify/require"
)

type stub struct {
	pages []converter.Page
	err   error
}

func (s *stub) Convert(ctx context.Context, file converter.File, options *converter.ConvertOptions) ([]converter.Page, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.pages, nil
}

func TestConvertFallback(t *testing.T) {
	first := &stub{err: converter.ErrUnsupported}
	second := &stub{pages: []converter.Page{{Page: 1}}}

	c := multi.New(first, second)

	pages, err := c.Convert(context.Background(), converter.File{Name: "scan.png"}, nil)
	require.NoError(t, err)
	require.Len(t, pages, 1)
}

func TestConvertError(t *testing.T) {
	boom := errors.New("corrupt document")

	c := multi.New(&stub{err: boom})

	_, err := c.Convert(context.Background(), converter.File{Name: "doc.pdf"}, nil)
	require.ErrorIs(t, err, boom)
}

func TestConvertNoProvider(t *testing.T) {
	c := multi.New(&stub{err: converter.ErrUnsupported})

	_, err := c.Convert(context.Background(), converter.File{Name: "doc.xyz"}, nil)
	require.ErrorIs(t, err, converter.ErrUnsupported)
}
