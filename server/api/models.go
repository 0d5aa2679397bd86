package api

// Result aggregates per-page recognition output for one uploaded document.
// Pages appear in ascending page order, markdown and html concatenate the
// per-page fragments in that order.
type Result struct {
	Filename string `json:"filename,omitempty"`

	Markdown string `json:"markdown"`
	HTML     string `json:"html"`

	Pages    []Page `json:"pages"`
	NumPages int    `json:"num_pages"`

	TotalTokenCount int `json:"total_token_count"`

	Error string `json:"error,omitempty"`
}

type Page struct {
	Page int `json:"page_num"`

	Markdown string `json:"markdown"`
	HTML     string `json:"html"`

	TokenCount int `json:"token_count"`

	// Error marks a failed page without failing the request.
	Error string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
