package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/pkg/errors"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ContentHandler processes URLs based on response inspection
type ContentHandler interface {
	CanHandle(url string, resp *http.Response) bool
	Handle(url string, resp *http.Response) (*ContentResult, error)
}

// MarkdownHandler passes markdown and plain text through unchanged
type MarkdownHandler struct{}

func (h *MarkdownHandler) CanHandle(url string, resp *http.Response) bool {
	if strings.HasSuffix(strings.ToLower(url), ".md") {
		return true
	}

	contentType := resp.Header.Get("Content-Type")
	return strings.Contains(contentType, "text/markdown") ||
		strings.Contains(contentType, "text/plain")
}

func (h *MarkdownHandler) Handle(url string, resp *http.Response) (*ContentResult, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}
	return &ContentResult{Text: string(body)}, nil
}

// HTMLHandler handles regular HTML content (fallback)
type HTMLHandler struct {
	converter *md.Converter
}

func (h *HTMLHandler) CanHandle(url string, resp *http.Response) bool {
	return true // Always handles as fallback
}

func (h *HTMLHandler) Handle(url string, resp *http.Response) (*ContentResult, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	markdown, err := h.converter.ConvertString(string(body))
	if err != nil {
		return nil, errors.Wrap(err, "converting HTML to markdown")
	}

	return &ContentResult{Text: markdown}, nil
}
