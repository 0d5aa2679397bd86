package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/galvamailru/chandra/pkg/converter"
	"github.com/galvamailru/chandra/pkg/engine"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	started := time.Now()

	if h.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadSize)
	}

	p, err := h.Engine()

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	c, err := h.Converter()

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	pages, err := converter.ParsePageRange(valuePageRange(r))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	file, err := h.readFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if !isSupported(*file) {
		writeError(w, http.StatusBadRequest, errors.New("unsupported file type. allowed: "+strings.Join(AllowedExtensions, ", ")))
		return
	}

	images, err := c.Convert(r.Context(), *file, &converter.ConvertOptions{Pages: pages})

	if err != nil {
		if errors.Is(err, converter.ErrUnsupported) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		slog.ErrorContext(r.Context(), "convert failed", "id", id, "filename", file.Name, "error", err)

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if len(images) == 0 {
		writeJson(w, Result{
			Filename: file.Name,

			Pages: []Page{},

			Error: "no pages could be loaded from the file",
		})

		return
	}

	results := make([]Page, len(images))

	g, ctx := errgroup.WithContext(r.Context())

	if h.Concurrency > 0 {
		g.SetLimit(h.Concurrency)
	}

	for i, image := range images {
		g.Go(func() error {
			options := &engine.RecognizeOptions{}

			if h.MaxTokens > 0 {
				options.MaxTokens = &h.MaxTokens
			}

			input := engine.Input{
				Page: image.Page,

				Image:       image.Content,
				ContentType: image.ContentType,
			}

			result, err := p.Recognize(ctx, input, options)

			if err != nil {
				if errors.Is(err, engine.ErrUnavailable) || ctx.Err() != nil {
					return err
				}

				results[i] = Page{
					Page:  image.Page,
					Error: err.Error(),
				}

				return nil
			}

			results[i] = Page{
				Page: image.Page,

				Markdown: result.Markdown,
				HTML:     result.HTML,

				TokenCount: result.TokenCount,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(r.Context(), "parse failed", "id", id, "filename", file.Name, "error", err)

		if errors.Is(err, engine.ErrUnavailable) {
			writeError(w, http.StatusBadGateway, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result := Result{
		Filename: file.Name,

		Pages:    results,
		NumPages: len(results),
	}

	var markdown, html []string

	for _, page := range results {
		markdown = append(markdown, page.Markdown)
		html = append(html, page.HTML)

		result.TotalTokenCount += page.TokenCount
	}

	result.Markdown = strings.Join(markdown, "\n\n")
	result.HTML = strings.Join(html, "\n\n")

	slog.InfoContext(r.Context(), "parse",
		"id", id,
		"filename", file.Name,
		"pages", len(results),
		"tokens", result.TotalTokenCount,
		"duration", time.Since(started))

	writeJson(w, result)
}
