// Package httpapi is the request/response core every remote adapter goes
// through: base URL joining, JSON codec, bearer injection, request IDs, and
// mapping of HTTP status codes onto the application error taxonomy. It never
// retries; re-triggering a failed action is the caller's decision.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	apperrors "studyhall/internal/platform/errors"
	"studyhall/internal/platform/id"
)

// TokenSource supplies the bearer token for outgoing requests. Invalidate is
// called when the server answers 401, mirroring the stored-credential purge a
// browser client does before bouncing to the login page.
type TokenSource interface {
	Token() (string, bool)
	Invalidate() error
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	ids     id.Generator
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, ids id.Generator, log *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		ids:     ids,
		log:     log,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	payload, err := encode(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, payload, "application/json", out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	payload, err := encode(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, payload, "application/json", out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// Upload sends a multipart form: text fields plus, when fileField is set, a
// single file part streamed from the reader.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return fmt.Errorf("write form field: %w", err)
		}
	}
	if fileField != "" {
		part, err := form.CreateFormFile(fileField, filename)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy upload body: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, &buf, form.FormDataContentType(), out)
}

func encode(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(raw), nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.ids != nil {
		req.Header.Set("X-Request-ID", c.ids.New())
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	c.log.Debug("request done",
		"method", method, "path", path,
		"status", resp.StatusCode, "elapsed_ms", time.Since(started).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) asError(method, path string, resp *http.Response) error {
	msg := serverMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.tokens != nil {
			_ = c.tokens.Invalidate()
		}
		return fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, method, path)
	default:
		return fmt.Errorf("%s %s: %s (status %d)", method, path, msg, resp.StatusCode)
	}
}

// serverMessage pulls the {"message": ...} field the API uses for errors,
// falling back to a generic label when the body is not shaped that way.
func serverMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 8192)).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "request rejected"
}
