// Package repository provides access to the jincana content document.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alvarogh/jincana-bot/internal/domain/entities"
)

var (
	// ErrContentUnavailable means the content source could not be read
	// (missing file, transport failure, non-success HTTP status).
	ErrContentUnavailable = errors.New("content unavailable")

	// ErrContentMalformed means the payload did not parse as a list of questions.
	ErrContentMalformed = errors.New("content malformed")
)

// ContentRepository loads the question list from a static JSON document.
// The source is either a local file path or an HTTP(S) URL; every Load
// re-reads the source so edits to the document are picked up by the
// next game without restarting the bot.
type ContentRepository struct {
	source string
	client *http.Client
}

// NewContentRepository creates a repository for the given source.
func NewContentRepository(source string, timeout time.Duration) *ContentRepository {
	return &ContentRepository{
		source: source,
		client: &http.Client{Timeout: timeout},
	}
}

// Load fetches and parses the question list. HTTP sources are requested
// with a fresh cache-busting query parameter and caching disabled, so
// every call sees the current document. There are no retries; callers
// treat any failure as fatal for the session being started.
func (r *ContentRepository) Load(ctx context.Context) ([]entities.Question, error) {
	var (
		data []byte
		err  error
	)
	if isHTTPSource(r.source) {
		data, err = r.fetch(ctx)
	} else {
		data, err = os.ReadFile(r.source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}

	// json.Unmarshal happily decodes "null" into a nil slice, so check
	// the payload shape itself before decoding.
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, fmt.Errorf("%w: expected a JSON array of questions", ErrContentMalformed)
	}

	var questions []entities.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of questions: %v", ErrContentMalformed, err)
	}

	return questions, nil
}

// Probe checks at startup that the source is plausibly loadable, so a
// misconfigured bot can fail fast with instructions instead of failing
// on the first /start.
func (r *ContentRepository) Probe() error {
	if r.source == "" {
		return fmt.Errorf("%w: empty content source", ErrContentUnavailable)
	}
	if isHTTPSource(r.source) {
		if _, err := url.Parse(r.source); err != nil {
			return fmt.Errorf("%w: %v", ErrContentUnavailable, err)
		}
		return nil
	}
	if _, err := os.Stat(r.source); err != nil {
		return fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	return nil
}

func (r *ContentRepository) fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(r.source)
	if err != nil {
		return nil, err
	}

	// Unique query parameter per request defeats any intermediate cache.
	q := u.Query()
	q.Set("ts", strconv.FormatInt(time.Now().UnixNano(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func isHTTPSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
