package data

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
)

// ResultsClient fetches completed run documents from the results service.
type ResultsClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewResultsClient creates a client. The API key is optional; when set it is sent
// as x-api-key.
func NewResultsClient(baseURL, apiKey string) *ResultsClient {
	return &ResultsClient{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ResultsError is a non-200 answer from the results service.
type ResultsError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ResultsError) Error() string {
	return e.Message
}

// FetchRun downloads the run with the given id from /runs/{id}.
func (c *ResultsClient) FetchRun(ctx context.Context, id string) (*RunDocument, error) {
	if c.BaseURL == "" {
		return nil, &ResultsError{Code: "MISSING_BASE_URL", Message: "results service URL is required"}
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("run id is required")
	}
	u, err := url.Parse(c.BaseURL + "/runs/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	ctxLog := log.WithFields(log.Fields{"run": id, "path": u.Path})
	start := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		ctxLog.WithError(err).WithField("duration", duration).Error("results request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	ctxLog.WithFields(log.Fields{"status": resp.StatusCode, "duration": duration}).Info("results response")

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &ResultsError{StatusCode: resp.StatusCode, Code: "RUN_NOT_FOUND", Message: fmt.Sprintf("run %q not found", id)}
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &ResultsError{StatusCode: resp.StatusCode, Code: "UNAUTHORIZED", Message: "Unauthorized: invalid API key"}
	default:
		return nil, &ResultsError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("results service returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	doc, err := ParseRun(raw)
	if err != nil {
		ctxLog.WithError(err).Error("results decode failed")
		return nil, err
	}
	ctxLog.WithField("years", len(doc.Run.YearlyResults)).Debug("run fetched")
	return doc, nil
}
