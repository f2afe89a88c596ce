// Package gateway is the client of the platform's backend REST API.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"fomo/models/course"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api gateway: status %d: %s", e.StatusCode, e.Message)
}

// Client calls the backend on behalf of one operator. The zero token sends
// unauthenticated requests.
type Client struct {
	http  *resty.Client
	token string
}

func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)
	return &Client{http: rc}
}

// WithToken returns a client sharing the connection pool that authenticates
// as the given bearer token.
func (c *Client) WithToken(token string) *Client {
	return &Client{http: c.http, token: token}
}

func (c *Client) CreateCourse(ctx context.Context, payload course.Course) (*course.Record, error) {
	return c.send(ctx, http.MethodPost, "/courses", nil, payload)
}

// CreateCourseWithContent creates the course together with its sections and videos.
func (c *Client) CreateCourseWithContent(ctx context.Context, payload course.Course) (*course.Record, error) {
	return c.send(ctx, http.MethodPost, "/courses/with-content", nil, payload)
}

func (c *Client) UpdateCourse(ctx context.Context, id string, payload course.Course) (*course.Record, error) {
	return c.send(ctx, http.MethodPut, "/courses/{id}", map[string]string{"id": id}, payload)
}

// GetCourse fetches a course, sections and videos included, to hydrate a draft.
func (c *Client) GetCourse(ctx context.Context, id string) (*course.Record, error) {
	return c.send(ctx, http.MethodGet, "/courses/{id}", map[string]string{"id": id}, nil)
}

// envelope is the backend's usual response wrapper. Some endpoints answer
// with the bare resource instead.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) send(ctx context.Context, method, path string, params map[string]string, body interface{}) (*course.Record, error) {
	req := c.http.R().SetContext(ctx)
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	if params != nil {
		req.SetPathParams(params)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("api gateway: %s %s: %w", method, path, err)
	}

	raw := resp.Body()
	var env envelope
	_ = sonic.Unmarshal(raw, &env)

	if resp.IsError() || resp.StatusCode() >= http.StatusMultipleChoices {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return nil, &Error{StatusCode: resp.StatusCode(), Message: msg}
	}
	if env.Success != nil && !*env.Success {
		return nil, &Error{StatusCode: resp.StatusCode(), Message: env.Message}
	}

	if len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
	}
	if len(raw) == 0 {
		return &course.Record{}, nil
	}
	var rec course.Record
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("api gateway: decode %s %s: %w", method, path, err)
	}
	return &rec, nil
}
