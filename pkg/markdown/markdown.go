package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// recognized content regularly contains raw HTML tables and form markup, so
// the renderer must not strip it
var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

func Render(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var buf bytes.Buffer

	if err := converter.Convert([]byte(text), &buf); err != nil {
		return "", err
	}

	return strings.TrimSpace(buf.String()), nil
}
