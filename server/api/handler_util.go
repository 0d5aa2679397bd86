package api

import (
	"io"
	"mime"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/galvamailru/chandra/pkg/converter"
)

var AllowedExtensions = []string{
	".pdf",

	".png",
	".jpg",
	".jpeg",
	".gif",
	".webp",
	".tiff",
	".bmp",
}

var AllowedMimeTypes = []string{
	"application/pdf",
	"application/x-pdf",

	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/tiff",
	"image/bmp",
}

func valuePageRange(r *http.Request) string {
	if val := r.URL.Query().Get("page_range"); val != "" {
		return val
	}

	if val := r.FormValue("page_range"); val != "" {
		return val
	}

	return ""
}

func (h *Handler) readFile(r *http.Request) (*converter.File, error) {
	if file, header, err := r.FormFile("file"); err == nil {
		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		return &converter.File{
			Name: header.Filename,

			Content:     data,
			ContentType: header.Header.Get("Content-Type"),
		}, nil
	}

	contentType := r.Header.Get("Content-Type")
	contentDisposition := r.Header.Get("Content-Disposition")

	_, params, _ := mime.ParseMediaType(contentDisposition)

	filename := params["filename*"]
	filename = strings.TrimPrefix(filename, "UTF-8''")
	filename = strings.TrimPrefix(filename, "utf-8''")

	if filename == "" {
		filename = params["filename"]
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	return &converter.File{
		Name: filename,

		Content:     data,
		ContentType: contentType,
	}, nil
}

func isSupported(file converter.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(AllowedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		mediatype, _, _ := mime.ParseMediaType(file.ContentType)

		if slices.Contains(AllowedMimeTypes, mediatype) {
			return true
		}
	}

	return false
}
