package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"topiclens/internal/models"
)

// Client performs zero-shot classification of text against candidate labels.
type Client interface {
	Classify(ctx context.Context, text string, labels []string) ([]models.Topic, error)
	Ping(ctx context.Context) error
}

// HTTPClient talks to a remote zero-shot classification endpoint.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates a classification client for the given endpoint.
func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

type classifyRequest struct {
	Text   string   `json:"text"`
	Labels []string `json:"labels,omitempty"`
}

type classifyResponse struct {
	Topics []models.Topic `json:"topics"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Classify sends the text to the endpoint and returns the scored topics.
// An absent topics field is treated as an empty result. All failures are
// returned as *RequestError carrying a user-visible message.
func (c *HTTPClient) Classify(ctx context.Context, text string, labels []string) ([]models.Topic, error) {
	body, err := json.Marshal(classifyRequest{Text: text, Labels: labels})
	if err != nil {
		return nil, requestError(0, "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, requestError(0, "", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "TopicLens/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, requestError(0, "", err)
	}
	defer resp.Body.Close()

	// Cap response reads; classifier responses are small.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, requestError(resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody errorResponse
		if json.Unmarshal(data, &errBody) == nil && errBody.Message != "" {
			return nil, requestError(resp.StatusCode, errBody.Message, nil)
		}
		return nil, requestError(resp.StatusCode, "", nil)
	}

	var result classifyResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, requestError(resp.StatusCode, "", err)
	}

	if result.Topics == nil {
		return []models.Topic{}, nil
	}
	return result.Topics, nil
}

// Ping checks whether the classification endpoint is reachable.
// Any HTTP response counts as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "TopicLens/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
