// Package client is a thin bearer-authenticated JSON client for the
// generation backend. It sits outside the core editing path: the editor
// only ever feeds its results into the regular content mutation entry
// points.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// New creates a client for baseURL. token is the session's bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 60 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type apiResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Content   string          `json:"content"`
	Creations json.RawMessage `json:"creations"`
}

// Creation is one entry of the community gallery.
type Creation struct {
	ID        int      `json:"id"`
	Prompt    string   `json:"prompt"`
	Content   string   `json:"content"`
	Type      string   `json:"type"`
	Likes     []string `json:"likes"`
	CreatedAt string   `json:"created_at"`
}

// GenerateArticle asks the backend for article content. length is the
// target word count.
func (c *Client) GenerateArticle(ctx context.Context, prompt string, length int) (string, error) {
	resp, err := c.post(ctx, "/api/ai/generate-article", map[string]any{
		"prompt": prompt,
		"length": length,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// GenerateBlogTitles asks the backend for title suggestions.
func (c *Client) GenerateBlogTitles(ctx context.Context, keyword string) (string, error) {
	resp, err := c.post(ctx, "/api/ai/generate-blog-title", map[string]any{
		"prompt": keyword,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// GenerateImage returns the URL of a generated image. publish shares it to
// the community gallery.
func (c *Client) GenerateImage(ctx context.Context, prompt string, publish bool) (string, error) {
	resp, err := c.post(ctx, "/api/ai/generate-image", map[string]any{
		"prompt":  prompt,
		"publish": publish,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// ListPublished fetches the community gallery.
func (c *Client) ListPublished(ctx context.Context) ([]Creation, error) {
	resp, err := c.get(ctx, "/api/user/get-published-creations")
	if err != nil {
		return nil, err
	}
	var creations []Creation
	if len(resp.Creations) > 0 {
		if err := json.Unmarshal(resp.Creations, &creations); err != nil {
			return nil, errors.Wrap(err, "failed to decode creations")
		}
	}
	return creations, nil
}

// ToggleLike flips the caller's like on a creation and returns the
// backend's status message.
func (c *Client) ToggleLike(ctx context.Context, id int) (string, error) {
	resp, err := c.post(ctx, "/api/user/toggle-like-creation", map[string]any{
		"id": id,
	})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*apiResponse, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(raw))
}

func (c *Client) get(ctx context.Context, path string) (*apiResponse, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("calling backend", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.New("backend rejected the session token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("request to %s failed with status %d", path, resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	if !parsed.Success {
		return nil, errors.Errorf("backend error: %s", parsed.Message)
	}
	return &parsed, nil
}
