package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	api "github.com/galvamailru/chandra/server/api"
)

type ParseResult = api.Result
type ParsePage = api.Page

type ParseRequest struct {
	Name    string
	Content []byte

	PageRange string
}

type ParseService struct {
	Options []RequestOption
}

func NewParseService(opts ...RequestOption) ParseService {
	return ParseService{
		Options: opts,
	}
}

func (r *ParseService) New(ctx context.Context, input ParseRequest, opts ...RequestOption) (*ParseResult, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	file, err := w.CreateFormFile("file", input.Name)

	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(file, bytes.NewReader(input.Content)); err != nil {
		return nil, err
	}

	w.Close()

	endpoint := strings.TrimRight(c.URL, "/") + "/parse"

	if input.PageRange != "" {
		endpoint += "?page_range=" + url.QueryEscape(input.PageRange)
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", endpoint, &data)
	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apierr errorResponse

		if json.NewDecoder(resp.Body).Decode(&apierr) == nil && apierr.Error != "" {
			return nil, errors.New(apierr.Error)
		}

		return nil, errors.New(resp.Status)
	}

	var result ParseResult

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

type errorResponse struct {
	Error string `json:"error"`
}
