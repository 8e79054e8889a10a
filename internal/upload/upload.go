// Package upload talks to the object-storage collaborator: it requests a
// presigned target for a file and pushes the bytes there, resolving to the
// public URL the editor embeds. Failures are returned to the caller for a
// user-visible retry; nothing here retries automatically.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const presignPath = "/api/uploads/presign"

// presignResponse covers both shapes the collaborator may answer with:
// {url, fields} for a form POST, or {uploadUrl, publicUrl?} for a PUT.
type presignResponse struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`

	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

type Client struct {
	baseURL string
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

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Upload presigns and uploads the file, returning its public URL.
func (c *Client) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	presigned, err := c.presign(ctx, filename, contentType)
	if err != nil {
		return "", err
	}

	switch {
	case presigned.URL != "":
		return c.uploadForm(ctx, presigned, filename, r)
	case presigned.UploadURL != "":
		return c.uploadPut(ctx, presigned, contentType, r)
	default:
		return "", errors.New("presign response carries no upload target")
	}
}

func (c *Client) presign(ctx context.Context, filename, contentType string) (*presignResponse, error) {
	q := url.Values{}
	q.Set("filename", filename)
	q.Set("contentType", contentType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+presignPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build presign request")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "presign request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("presign request failed with status %d", resp.StatusCode)
	}

	var presigned presignResponse
	if err := json.NewDecoder(resp.Body).Decode(&presigned); err != nil {
		return nil, errors.Wrap(err, "failed to decode presign response")
	}
	return &presigned, nil
}

// uploadForm posts a multipart form with the presigned fields followed by
// the file part, the S3 form POST convention.
func (c *Client) uploadForm(ctx context.Context, p *presignResponse, filename string, r io.Reader) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range p.Fields {
		if err := w.WriteField(k, v); err != nil {
			return "", errors.Wrap(err, "failed to write form field")
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to create file part")
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", errors.Wrap(err, "failed to copy file into form")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, &body)
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("upload failed with status %d", resp.StatusCode)
	}

	c.logger.Debug("form upload complete", zap.String("filename", filename))
	if key, ok := p.Fields["key"]; ok {
		return strings.TrimRight(p.URL, "/") + "/" + key, nil
	}
	return p.URL + "/" + filename, nil
}

func (c *Client) uploadPut(ctx context.Context, p *presignResponse, contentType string, r io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, p.UploadURL, r)
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("upload failed with status %d", resp.StatusCode)
	}

	if p.PublicURL != "" {
		return p.PublicURL, nil
	}
	// Strip the signature query to get a stable public URL.
	u, err := url.Parse(p.UploadURL)
	if err != nil {
		return "", errors.Wrap(err, "presigned upload url is invalid")
	}
	u.RawQuery = ""
	return u.String(), nil
}
