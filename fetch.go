package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultBaseURL is the Advent of Code site.
const DefaultBaseURL = "https://adventofcode.com"

// Inputs loads puzzle inputs from a local cache, fetching and caching them
// from the Advent of Code site when missing.
type Inputs struct {
	CacheDir string
	BaseURL  string                 // defaults to DefaultBaseURL
	Session  func() (string, error) // session cookie value
	Client   *http.Client           // defaults to http.DefaultClient
}

// SessionFile returns a Session func that reads the token from path once.
func SessionFile(path string) func() (string, error) {
	return sync.OnceValues(func() (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading session: %w", err)
		}
		s := strings.TrimSpace(string(b))
		if s == "" {
			return "", fmt.Errorf("session file %s is empty", path)
		}
		return s, nil
	})
}

func (in *Inputs) cachePath(year, day int) string {
	return filepath.Join(in.CacheDir, fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}

// Get returns the input for the given puzzle.
func (in *Inputs) Get(ctx context.Context, year, day int) ([]byte, error) {
	filename := in.cachePath(year, day)
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", Or(in.BaseURL, DefaultBaseURL), year, day)
	body, err := in.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, fmt.Errorf("creating input cache: %w", err)
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, fmt.Errorf("caching input: %w", err)
	}
	zap.L().Debug("cached input", zap.String("file", filename))
	return body, nil
}

func (in *Inputs) fetch(ctx context.Context, url string) ([]byte, error) {
	if in.Session == nil {
		return nil, fmt.Errorf("fetching %s: no session configured: %w", url, ErrNoInput)
	}
	session, err := in.Session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	c := in.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
