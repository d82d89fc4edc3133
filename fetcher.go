package main

import (
	"net/http"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/pkg/errors"
)

const fetchTimeout = 30 * time.Second

// ContentResult represents the markdown fetched to seed a post body
type ContentResult struct {
	Text string
}

// ContentFetcher fetches a URL and turns it into markdown
type ContentFetcher struct {
	handlers []ContentHandler
	client   *http.Client
}

// NewContentFetcher creates a new content fetcher with default handlers
func NewContentFetcher() *ContentFetcher {
	f := &ContentFetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}

	// Register handlers (most specific first)
	f.AddHandler(&MarkdownHandler{})
	f.AddHandler(&HTMLHandler{converter: md.NewConverter("", true, nil)}) // fallback

	return f
}

// AddHandler adds a content handler to the chain
func (f *ContentFetcher) AddHandler(handler ContentHandler) {
	f.handlers = append(f.handlers, handler)
}

// FetchContent fetches and processes content using the handler chain
func (f *ContentFetcher) FetchContent(url string) (*ContentResult, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	for _, handler := range f.handlers {
		if handler.CanHandle(url, resp) {
			return handler.Handle(url, resp)
		}
	}

	return nil, errors.Errorf("no handler found for %s", url)
}
