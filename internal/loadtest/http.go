package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/studypath/internal/domain/types"
)

// analysisResponse is the success body of POST /api/analyze.
type analysisResponse struct {
	Success bool `json:"success"`
	types.Report
}

// errorResponse is the error body returned by the API.
type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// HTTPClient wraps http.Client with a private transport.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{},
		},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// Close releases idle connections.
func (c *HTTPClient) Close() {
	c.client.CloseIdleConnections()
}

// result is the outcome of one submission.
type result int

const (
	resultSuccess result = iota
	resultRejected
	resultFailed
)

// submitStudent posts one student and decodes the report on success.
func submitStudent(ctx context.Context, client *HTTPClient, url string, student Student) (types.Report, result, error) {
	resp, err := client.Post(ctx, url, student)
	if err != nil {
		return types.Report{}, resultFailed, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Report{}, resultFailed, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var out analysisResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return types.Report{}, resultFailed, fmt.Errorf("failed to decode report: %w", err)
		}
		if !out.Success {
			return types.Report{}, resultFailed, fmt.Errorf("report for %s not marked successful", student.Name)
		}
		return out.Report, resultSuccess, nil
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		var out errorResponse
		_ = json.Unmarshal(body, &out)
		return types.Report{}, resultRejected, fmt.Errorf("rejected with %d %s: %s", resp.StatusCode, out.Code, out.Error)
	default:
		return types.Report{}, resultFailed, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
