package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponse(contentType, body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	return resp
}

func TestMarkdownHandler_CanHandle(t *testing.T) {
	handler := &MarkdownHandler{}

	tests := []struct {
		name        string
		url         string
		contentType string
		expected    bool
	}{
		{"markdown extension", "https://example.com/README.md", "application/octet-stream", true},
		{"uppercase extension", "https://example.com/NOTES.MD", "", true},
		{"markdown content type", "https://example.com/raw", "text/markdown; charset=utf-8", true},
		{"plain text", "https://example.com/notes", "text/plain", true},
		{"html page", "https://example.com/post", "text/html; charset=utf-8", false},
		{"no content type", "https://example.com/post", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handler.CanHandle(tt.url, newResponse(tt.contentType, "")))
		})
	}
}

func TestMarkdownHandler_Handle(t *testing.T) {
	handler := &MarkdownHandler{}
	body := "# Title\n\nSome *text*.\n"

	result, err := handler.Handle("https://example.com/a.md", newResponse("text/markdown", body))
	require.NoError(t, err)
	assert.Equal(t, body, result.Text)
}

func TestHTMLHandler_CanHandle(t *testing.T) {
	handler := &HTMLHandler{}

	for _, url := range []string{"https://example.com", "https://example.com/a.md", "not-a-url"} {
		assert.True(t, handler.CanHandle(url, newResponse("", "")), "HTML handler should handle %s", url)
	}
}

func TestHTMLHandler_Handle(t *testing.T) {
	handler := &HTMLHandler{converter: md.NewConverter("", true, nil)}
	html := `<html><body><h1>Heading</h1><p>Some <strong>bold</strong> text.</p></body></html>`

	result, err := handler.Handle("https://example.com", newResponse("text/html", html))
	require.NoError(t, err)
	assert.Contains(t, result.Text, "# Heading")
	assert.Contains(t, result.Text, "**bold**")
	assert.NotContains(t, result.Text, "<h1>")
}

func TestFetchContentEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h1>Heading</h1><p>Paragraph</p>"))
	})
	mux.HandleFunc("/notes.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("<b>kept as is</b>"))
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("plain body"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := NewContentFetcher()

	tests := []struct {
		path     string
		contains string
	}{
		{"/post", "# Heading"},
		{"/notes.md", "<b>kept as is</b>"},
		{"/plain", "plain body"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			result, err := fetcher.FetchContent(server.URL + tt.path)
			require.NoError(t, err)
			assert.Contains(t, result.Text, tt.contains)
		})
	}
}
