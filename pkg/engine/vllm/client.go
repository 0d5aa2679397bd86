package vllm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/galvamailru/chandra/pkg/engine"
	"github.com/galvamailru/chandra/pkg/markdown"

	"github.com/openai/openai-go/v3"
)

var _ engine.Provider = (*Client)(nil)

// Client speaks the OpenAI-compatible chat completions API of a vLLM server
// hosting the OCR checkpoint.
type Client struct {
	*Config
	completions openai.ChatCompletionService
}

func New(url, model string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Client{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

const prompt = `Convert this document page to markdown.

- Preserve the reading order of the page layout.
- Render tables as GitHub-flavored markdown or HTML tables, whichever is lossless.
- Render math as LaTeX within $...$ or $$...$$ delimiters.
- Transcribe handwriting as accurately as possible.
- Represent checkboxes as ☐ and ☑.
- Do not add commentary before or after the content.`

func (c *Client) Recognize(ctx context.Context, input engine.Input, options *engine.RecognizeOptions) (*engine.Result, error) {
	if options == nil {
		options = new(engine.RecognizeOptions)
	}

	mime := input.ContentType

	if mime == "" {
		mime = "image/png"
	}

	content := base64.StdEncoding.EncodeToString(input.Image)

	imageURL := openai.ChatCompletionContentPartImageImageURLParam{
		URL: "data:" + mime + ";base64," + content,
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.ImageContentPart(imageURL),
		openai.TextContentPart(prompt),
	}

	req := openai.ChatCompletionNewParams{
		Model: c.model,

		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},

		Temperature: openai.Float(0),
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	completion, err := c.completions.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion choices")
	}

	text := completion.Choices[0].Message.Content

	html, err := markdown.Render(text)

	if err != nil {
		return nil, err
	}

	return &engine.Result{
		Markdown: text,
		HTML:     html,

		TokenCount: int(completion.Usage.CompletionTokens),
	}, nil
}

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusUnauthorized,
			apierr.StatusCode == http.StatusForbidden,
			apierr.StatusCode == http.StatusNotFound,
			apierr.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", engine.ErrUnavailable, err)
		}

		return err
	}

	// transport-level failure, the server cannot be reached
	return fmt.Errorf("%w: %v", engine.ErrUnavailable, err)
}
