package tesseract

import (
	"context"
	"fmt"

	"github.com/galvamailru/chandra/pkg/engine"
	"github.com/galvamailru/chandra/pkg/markdown"

	"github.com/otiai10/gosseract/v2"
)

var _ engine.Provider = (*Client)(nil)

// Client recognizes pages in-process through the Tesseract runtime. The
// language data is loaded inside this process, no network round trip is
// involved.
type Client struct {
	languages []string
	dpi       int

	clientFactory func() *gosseract.Client
}

type Option func(*Client)

func WithLanguages(languages ...string) Option {
	return func(c *Client) {
		c.languages = languages
	}
}

func WithDPI(dpi int) Option {
	return func(c *Client) {
		c.dpi = dpi
	}
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		clientFactory: gosseract.NewClient,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Recognize(ctx context.Context, input engine.Input, options *engine.RecognizeOptions) (*engine.Result, error) {
	if options == nil {
		options = new(engine.RecognizeOptions)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// gosseract clients are not safe for concurrent use, recognition gets
	// a fresh one per page
	client := c.clientFactory()
	defer client.Close()

	if err := client.SetImageFromBytes(input.Image); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	if len(c.languages) > 0 {
		if err := client.SetLanguage(c.languages...); err != nil {
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}

	if c.dpi > 0 {
		if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(c.dpi)); err != nil {
			return nil, fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := client.Text()

	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}

	html, err := markdown.Render(text)

	if err != nil {
		return nil, err
	}

	return &engine.Result{
		Markdown: text,
		HTML:     html,
	}, nil
}
