package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"statement-wizard/domain"
)

const (
	DefaultSubmitPath = "/api/apply"
	requestIDHeader   = "X-Request-ID"
)

// SubmissionClient posts applications with net/http.
type SubmissionClient struct {
	url        string
	httpClient *http.Client
}

// NewSubmissionClient creates a client for baseURL+path. A zero timeout
// leaves the request unbounded; the transport decides when it has failed.
func NewSubmissionClient(baseURL, path string, timeout time.Duration) *SubmissionClient {
	return &SubmissionClient{
		url: joinURL(baseURL, path),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send issues a single POST and never retries.
func (c *SubmissionClient) Send(
	ctx context.Context,
	payload domain.SubmissionPayload,
) (domain.SubmissionReceipt, error) {
	body, contentType, err := EncodeMultipart(payload)
	if err != nil {
		return domain.SubmissionReceipt{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return domain.SubmissionReceipt{}, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if payload.RequestID != "" {
		req.Header.Set(requestIDHeader, payload.RequestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SubmissionReceipt{}, fmt.Errorf("%w: %w", domain.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	return decodeReceipt(resp.StatusCode, resp.Body)
}

func joinURL(base, path string) string {
	if path == "" {
		path = DefaultSubmitPath
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
