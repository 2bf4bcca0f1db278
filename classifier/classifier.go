package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Candidate is one product description the recognition service returns
// for an image.
type Candidate struct {
	Brand      string  `json:"brand"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Color      string  `json:"color"`
	Price      float64 `json:"price"`
	Link       string  `json:"link"`
	Image      string  `json:"image"`
	Confidence float64 `json:"confidence"`
}

// Client talks to the external image-recognition service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether a service endpoint was configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Recognize sends the image bytes to the classifier and returns its
// product candidates.
func (c *Client) Recognize(ctx context.Context, filename string, image io.Reader) ([]Candidate, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("classifier not configured")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copy image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/classify", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var out struct {
		Candidates []Candidate `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classifier response: %w", err)
	}
	return out.Candidates, nil
}
