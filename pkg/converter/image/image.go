package image

import (
	"context"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/galvamailru/chandra/pkg/converter"
)

var _ converter.Provider = &Converter{}

// Converter passes a raster image through as a single-page document.
type Converter struct {
}

func New() (*Converter, error) {
	return &Converter{}, nil
}

func (c *Converter) Convert(ctx context.Context, file converter.File, options *converter.ConvertOptions) ([]converter.Page, error) {
	if options == nil {
		options = new(converter.ConvertOptions)
	}

	if !isSupported(file) {
		return nil, converter.ErrUnsupported
	}

	if len(options.Pages) > 0 && !slices.Contains(options.Pages, 1) {
		return nil, nil
	}

	contentType := file.ContentType

	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(file.Name))
	}

	return []converter.Page{
		{
			Page: 1,

			Content:     file.Content,
			ContentType: contentType,
		},
	}, nil
}

func isSupported(file converter.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}
