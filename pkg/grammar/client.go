// Package grammar integrates the remote spelling/grammar checker and
// re-inserts its findings into already-serialized letter HTML without
// corrupting custom variable spans or HTML entities.
package grammar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Content is one region submitted for checking (snake_case on the
// wire).
type Content struct {
	ContentID string `json:"content_id"`
	HTML      string `json:"html"`
}

// CheckError is one finding. Start/end positions are byte offsets into
// the submitted (stripped) content.
type CheckError struct {
	ID            string   `json:"id"`
	Suggestions   []string `json:"suggestions"`
	StartPosition int      `json:"startPosition"`
	EndPosition   int      `json:"endPosition"`
	Message       string   `json:"message"`
	Type          string   `json:"type"`
}

// Result groups the findings for one content region.
type Result struct {
	ContentID string       `json:"contentId"`
	Errors    []CheckError `json:"errors"`
}

// Client calls the grammar-check collaborator.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Check submits the stripped contents. Any failure surfaces as an
// error; callers treat that as the sentinel and leave existing content
// completely unmodified.
func (c *Client) Check(ctx context.Context, contents []Content) ([]Result, error) {
	payload, err := json.Marshal(contents)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/check", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("grammar check returned status %d", resp.StatusCode)
	}

	var results []Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}
