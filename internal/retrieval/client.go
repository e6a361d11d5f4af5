// Package retrieval talks to the vector question-retrieval service over
// HTTP. The interview keeps running when the service is down; callers treat
// errors as a signal to fall back to static questions.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prepforge/interview-engine/internal/interview"
)

// Client queries the retrieval service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a retrieval client. The default timeout is short so a
// stuck retrieval service never stalls an interview turn.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type retrieveRequest struct {
	Query       string `json:"query"`
	TopK        int    `json:"top_k"`
	SkillFilter string `json:"skill_filter,omitempty"`
}

type retrieveResponse struct {
	Results []struct {
		Question string  `json:"question"`
		Answer   string  `json:"answer"`
		Score    float64 `json:"score"`
	} `json:"results"`
}

// RetrieveQA returns the top-K question/answer pairs for a query, optionally
// restricted to a skill category.
func (c *Client) RetrieveQA(ctx context.Context, query string, topK int, skillFilter string) ([]interview.QAPair, error) {
	body, err := json.Marshal(retrieveRequest{
		Query:       query,
		TopK:        topK,
		SkillFilter: skillFilter,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/retrieve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var result retrieveResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	pairs := make([]interview.QAPair, 0, len(result.Results))
	for _, r := range result.Results {
		pairs = append(pairs, interview.QAPair{
			Question: r.Question,
			Answer:   r.Answer,
			Score:    r.Score,
		})
	}
	return pairs, nil
}
