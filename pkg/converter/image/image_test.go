package image_test

import (
	"context"
	"testing"

	"github.com/galvamailru/chandra/pkg/converter"
	"github.com/galvamailru/chandra/pkg/converter/image"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	c, err := image.New()
	require.NoError(t, err)

	file := converter.File{
		Name: "scan.png",

		Content:     []byte("not-really-a-png"),
		ContentType: "image/png",
	}

	pages, err := c.Convert(context.Background(), file, nil)
	require.NoError(t, err)

	require.Len(t, pages, 1)
	require.Equal(t, 1, pages[0].Page)
	require.Equal(t, file.Content, pages[0].Content)
	require.Equal(t, "image/png", pages[0].ContentType)
}

func TestConvertByExtension(t *testing.T) {
	c, err := image.New()
	require.NoError(t, err)

	file := converter.File{
		Name:    "scan.jpeg",
		Content: []byte("data"),
	}

	pages, err := c.Convert(context.Background(), file, nil)
	require.NoError(t, err)

	require.Len(t, pages, 1)
}

func TestConvertUnsupported(t *testing.T) {
	c, err := image.New()
	require.NoError(t, err)

	file := converter.File{
		Name: "report.docx",

		Content:     []byte("data"),
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}

	_, err = c.Convert(context.Background(), file, nil)
	require.ErrorIs(t, err, converter.ErrUnsupported)
}

func TestConvertPageRange(t *testing.T) {
	c, err := image.New()
	require.NoError(t, err)

	file := converter.File{
		Name:        "scan.png",
		Content:     []byte("data"),
		ContentType: "image/png",
	}

	pages, err := c.Convert(context.Background(), file, &converter.ConvertOptions{Pages: []int{2, 3}})
	require.NoError(t, err)
	require.Empty(t, pages)

	pages, err = c.Convert(context.Background(), file, &converter.ConvertOptions{Pages: []int{1, 2}})
	require.NoError(t, err)
	require.Len(t, pages, 1)
}
