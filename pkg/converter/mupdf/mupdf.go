package mupdf

import (
	"bytes"
	"context"
	"image/png"
	"path"
	"slices"
	"strings"

	"github.com/galvamailru/chandra/pkg/converter"

	"github.com/gen2brain/go-fitz"
)

var _ converter.Provider = &Converter{}

// Converter rasterizes PDF pages through MuPDF.
type Converter struct {
	dpi float64
}

type Option func(*Converter)

func WithDPI(dpi float64) Option {
	return func(c *Converter) {
		c.dpi = dpi
	}
}

func New(options ...Option) (*Converter, error) {
	c := &Converter{
		dpi: 192,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Converter) Convert(ctx context.Context, file converter.File, options *converter.ConvertOptions) ([]converter.Page, error) {
	if options == nil {
		options = new(converter.ConvertOptions)
	}

	if !isSupported(file) {
		return nil, converter.ErrUnsupported
	}

	doc, err := fitz.NewFromMemory(file.Content)

	if err != nil {
		return nil, err
	}

	defer doc.Close()

	pages := options.Pages

	if len(pages) == 0 {
		pages = make([]int, doc.NumPage())

		for i := range pages {
			pages[i] = i + 1
		}
	}

	var result []converter.Page

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// requested pages past the end of the document are ignored
		if page > doc.NumPage() {
			continue
		}

		img, err := doc.ImageDPI(page-1, c.dpi)

		if err != nil {
			return nil, err
		}

		var data bytes.Buffer

		if err := png.Encode(&data, img); err != nil {
			return nil, err
		}

		result = append(result, converter.Page{
			Page: page,

			Content:     data.Bytes(),
			ContentType: "image/png",
		})
	}

	return result, nil
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
