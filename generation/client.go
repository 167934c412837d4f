package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client wraps the content generation backend. Each call is a single POST
// with a JSON body; there are no retries, timeouts or caching here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// APIError carries the HTTP status and response text of a failed call. When
// the backend sends an empty body the status's standard reason phrase is
// used instead.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generation API error (status %d): %s", e.StatusCode, e.Body)
}

// GenerateImage requests image generation for the prompt. Extra fields are
// merged into the request body.
func (c *Client) GenerateImage(ctx context.Context, prompt string, extra map[string]interface{}) (map[string]interface{}, error) {
	return c.post(ctx, "/api/v1/generate-image", promptBody(prompt, extra))
}

// GenerateText requests text generation for the prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string, extra map[string]interface{}) (map[string]interface{}, error) {
	return c.post(ctx, "/api/v1/generate-text", promptBody(prompt, extra))
}

// CreateCharacter submits a character object as-is.
func (c *Client) CreateCharacter(ctx context.Context, character map[string]interface{}) (map[string]interface{}, error) {
	return c.post(ctx, "/api/v1/create-character", character)
}

// CreateVideo submits a video prompt object as-is.
func (c *Client) CreateVideo(ctx context.Context, spec map[string]interface{}) (map[string]interface{}, error) {
	return c.post(ctx, "/api/v1/create-video", spec)
}

func promptBody(prompt string, extra map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{"prompt": prompt}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (map[string]interface{}, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call generation API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text := strings.TrimSpace(string(respBody))
		if text == "" {
			text = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: text}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return parsed, nil
}

// ExtractImages normalizes an image-generation response. The backend's shape
// is not contractually fixed, so the fields "images", "image_urls" and
// "image" are probed in that order. This is a compatibility shim, not a
// contract.
func ExtractImages(resp map[string]interface{}) []string {
	if urls := stringList(resp["images"]); len(urls) > 0 {
		return urls
	}
	if urls := stringList(resp["image_urls"]); len(urls) > 0 {
		return urls
	}
	if url, ok := resp["image"].(string); ok && url != "" {
		return []string{url}
	}
	return nil
}

// ExtractText normalizes a text-generation response, probing "text" then
// "caption".
func ExtractText(resp map[string]interface{}) string {
	if text, ok := resp["text"].(string); ok && text != "" {
		return text
	}
	if caption, ok := resp["caption"].(string); ok && caption != "" {
		return caption
	}
	return ""
}

func stringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var urls []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			urls = append(urls, s)
		}
	}
	return urls
}
