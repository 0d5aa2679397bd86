package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/galvamailru/chandra/pkg/client"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/parse", r.URL.Path)
		require.Equal(t, "1-3", r.URL.Query().Get("page_range"))
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		require.Equal(t, "report.pdf", header.Filename)

		json.NewEncoder(w).Encode(client.ParseResult{
			Filename: header.Filename,

			Markdown: "# hi",
			NumPages: 3,
		})
	}))

	defer server.Close()

	c := client.New(server.URL, client.WithToken("secret"))

	result, err := c.Parses.New(context.Background(), client.ParseRequest{
		Name:    "report.pdf",
		Content: []byte("%PDF-1.7"),

		PageRange: "1-3",
	})

	require.NoError(t, err)
	require.Equal(t, "# hi", result.Markdown)
	require.Equal(t, 3, result.NumPages)
}

func TestParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "unsupported file type"})
	}))

	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Parses.New(context.Background(), client.ParseRequest{
		Name:    "report.docx",
		Content: []byte("data"),
	})

	require.ErrorContains(t, err, "unsupported file type")
}
