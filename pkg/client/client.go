// Package client is a Go SDK for the interview-engine API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/prepforge/interview-engine/internal/models"
)

// Client is a Go SDK for the interview-engine API
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

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new interview-engine client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.postJSON(ctx, "/api/v1/auth/register", models.Credentials{
		Username: username,
		Password: password,
	}, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.postJSON(ctx, "/api/v1/auth/login", models.Credentials{
		Username: username,
		Password: password,
	}, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// UploadResume uploads a resume file with the target job description.
func (c *Client) UploadResume(ctx context.Context, userID, filename string, content []byte, jobDescription string) (*models.UploadResumeResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.WriteField("user_id", userID); err != nil {
		return nil, fmt.Errorf("failed to write user_id field: %w", err)
	}
	if err := writer.WriteField("job_description", jobDescription); err != nil {
		return nil, fmt.Errorf("failed to write job_description field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/resumes", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result models.UploadResumeResponse
	if err := decodeEnvelope(respBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StartInterview begins a fresh interview session for the user.
func (c *Client) StartInterview(ctx context.Context, userID, interviewType string) (*models.StartInterviewResponse, error) {
	var result models.StartInterviewResponse
	if err := c.postJSON(ctx, "/api/v1/interviews/start", models.StartInterviewRequest{
		UserID:        userID,
		InterviewType: interviewType,
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Chat sends one candidate message and returns the interviewer's response.
func (c *Client) Chat(ctx context.Context, userID, message string) (*models.ChatResponse, error) {
	var result models.ChatResponse
	if err := c.postJSON(ctx, "/api/v1/interviews/chat", models.ChatRequest{
		UserID:  userID,
		Message: message,
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateReport builds the performance report for the user's transcript.
func (c *Client) GenerateReport(ctx context.Context, userID string) (*models.ReportResponse, error) {
	var result models.ReportResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/interviews/%s/report", userID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Transcript returns the user's current interview transcript.
func (c *Client) Transcript(ctx context.Context, userID string) (models.Transcript, error) {
	var result struct {
		Transcript models.Transcript `json:"transcript"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/interviews/%s/transcript", userID), &result); err != nil {
		return nil, err
	}
	return result.Transcript, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return err
	}

	return decodeEnvelope(respBody, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	respBody, err := c.do(req)
	if err != nil {
		return err
	}

	return decodeEnvelope(respBody, out)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Error statuses still carry the API envelope; surface its message.
	if resp.StatusCode >= 400 {
		var envelope struct {
			Error *struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Error != nil {
			return nil, fmt.Errorf("API error: %s - %s", envelope.Error.Code, envelope.Error.Message)
		}
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func decodeEnvelope(respBody []byte, out interface{}) error {
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !envelope.Success {
		if envelope.Error != nil {
			return fmt.Errorf("API error: %s - %s", envelope.Error.Code, envelope.Error.Message)
		}
		return fmt.Errorf("API error: request failed")
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}

	return nil
}
