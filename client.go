package askademy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-errors"
)

// Client is the typed REST client for the Askademy backend. All requests go
// through the injected transport, normally a *Pipeline, so credential
// injection and 401 teardown apply uniformly.
type Client struct {
	baseURL string
	http    *http.Client
	logger  Logger
}

// NewClient builds a client from configuration and the authorization
// pipeline (or any other transport in tests).
func NewClient(cfg Config, transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.GetBaseURL(), "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.GetTimeout(),
		},
		logger: defLogger{},
	}
}

func (c *Client) WithLogger(logger Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Auth returns the auth endpoint service, wired into Session via
// WithAuthService.
func (c *Client) Auth() AuthService { return &authService{c} }

// Courses returns the course endpoints.
func (c *Client) Courses() *CourseService { return &CourseService{c} }

// Questions returns the question endpoints.
func (c *Client) Questions() *QuestionService { return &QuestionService{c} }

// Answers returns the answer endpoints.
func (c *Client) Answers() *AnswerService { return &AnswerService{c} }

// Announcements returns the announcement endpoints.
func (c *Client) Announcements() *AnnouncementService { return &AnnouncementService{c} }

// Admin returns the admin-only endpoints.
func (c *Client) Admin() *AdminService { return &AdminService{c} }

// doJSON executes a request with an optional JSON body, decoding the
// response into out when provided.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	contentType := ""

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "unable to encode request body")
		}
		payload = bytes.NewReader(data)
		contentType = "application/json"
	}

	return c.execute(ctx, method, path, payload, contentType, out)
}

// doText executes a request with a plain-text body; the backend takes raw
// text for course codes and grading info.
func (c *Client) doText(ctx context.Context, method, path, text string, out any) error {
	return c.execute(ctx, method, path, strings.NewReader(text), "text/plain", out)
}

func (c *Client) execute(ctx context.Context, method, path string, payload io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "unable to build request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request transport failure", "method", method, "path", path, "error", err)
		return ClassifyTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassifyTransportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return ClassifyResponse(req.URL.Path, resp.StatusCode, data)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "unable to decode response body")
		}
	}

	return nil
}
