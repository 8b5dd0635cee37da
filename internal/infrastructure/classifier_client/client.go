package classifier_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/domain"
)

const maxResponseSize = 10 << 20

type request struct {
	FilePath string `json:"file_path"`
}

// Client asks the classification endpoint to classify a stored object.
type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RequestClassification returns the classifier response body. A non-200
// answer is reported as *domain.ClassifierStatusError carrying the body.
func (c *Client) RequestClassification(ctx context.Context, filePath string) (json.RawMessage, error) {
	if c.url == "" {
		return nil, errors.New("classifier url is not configured")
	}

	body, err := json.Marshal(request{FilePath: filePath})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ClassifierStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	if !json.Valid(data) {
		return nil, errors.New("classifier returned invalid JSON")
	}

	return json.RawMessage(data), nil
}
