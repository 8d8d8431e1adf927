// Where: internal/cloud/client.go
// What: Weft Cloud API client.
// Why: Sequence the handful of HTTP calls behind project provisioning.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultErrorMessage is shown when the API rejects a call without a
// usable message of its own.
const DefaultErrorMessage = "We encountered an issue while creating your cloud project. Please try again later."

// ForbiddenMessage is the fallback for 403 responses that carry no message.
const ForbiddenMessage = "You do not have permission to create a project."

// APIError describes a non-2xx response from the cloud API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cloud api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("cloud api: %d", e.StatusCode)
}

// ServiceConfig is the remote service configuration returned by the API.
// ProjectDefaults seed the creation payload for new projects.
type ServiceConfig struct {
	ProjectDefaults ProjectDefaults `json:"projectDefaults"`
}

// ProjectDefaults holds server-supplied defaults for new projects.
type ProjectDefaults struct {
	Plan   string `json:"plan"`
	Region string `json:"region"`
}

// ProjectPayload is the request body for project creation.
type ProjectPayload struct {
	Name   string `json:"name"`
	Plan   string `json:"plan,omitempty"`
	Region string `json:"region,omitempty"`
}

// Project is the descriptor returned after remote project creation.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Plan      string `json:"plan,omitempty"`
	Region    string `json:"region,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Client talks to the Weft Cloud API. A zero token means unauthenticated.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates an unauthenticated API client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// NewWithToken creates a token-scoped API client.
func NewWithToken(baseURL, token string) *Client {
	client := New(baseURL)
	client.token = token
	return client
}

// Config fetches the remote service configuration. The raw payload is
// validated against the embedded schema before decoding.
func (c *Client) Config(ctx context.Context) (ServiceConfig, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/config", nil)
	if err != nil {
		return ServiceConfig{}, err
	}
	if err := ValidateServiceConfig(raw); err != nil {
		return ServiceConfig{}, fmt.Errorf("invalid service config: %w", err)
	}

	var cfg ServiceConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return ServiceConfig{}, err
	}
	return cfg, nil
}

// CreateProject creates a remote project and returns its descriptor.
func (c *Client) CreateProject(ctx context.Context, payload ProjectPayload) (Project, error) {
	var project Project
	if err := c.doJSON(ctx, http.MethodPost, "/projects", payload, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// doJSON performs a request and decodes the response body into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// doRaw performs a request and returns the raw response body.
// Non-2xx statuses are converted into *APIError with the server message.
func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}
	return raw, nil
}

// errorMessage extracts the server-supplied message from an error body.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
