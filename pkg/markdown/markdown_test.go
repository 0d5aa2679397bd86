package markdown_test

import (
	"testing"

	"github.com/galvamailru/chandra/pkg/markdown"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	html, err := markdown.Render("# Title\n\nsome *text*")
	require.NoError(t, err)

	require.Contains(t, html, "<h1>Title</h1>")
	require.Contains(t, html, "<em>text</em>")
}

func TestRenderTable(t *testing.T) {
	html, err := markdown.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	require.Contains(t, html, "<table>")
	require.Contains(t, html, "<td>1</td>")
}

func TestRenderRawHTML(t *testing.T) {
	html, err := markdown.Render("before\n\n<table><tr><td>x</td></tr></table>")
	require.NoError(t, err)

	require.Contains(t, html, "<td>x</td>")
}

func TestRenderEmpty(t *testing.T) {
	html, err := markdown.Render("   \n ")
	require.NoError(t, err)

	require.Empty(t, html)
}
