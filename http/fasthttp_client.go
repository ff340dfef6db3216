package http

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"statement-wizard/domain"
)

// FastSubmissionClient posts applications with fasthttp.
type FastSubmissionClient struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
}

func NewFastSubmissionClient(baseURL, path string, timeout time.Duration) *FastSubmissionClient {
	return &FastSubmissionClient{
		url:     joinURL(baseURL, path),
		timeout: timeout,
		client: &fasthttp.Client{
			MaxConnsPerHost: 1,
		},
	}
}

// Send issues a single POST and never retries. fasthttp has no context
// support; a context that is already done is honoured before dialing.
func (c *FastSubmissionClient) Send(
	ctx context.Context,
	payload domain.SubmissionPayload,
) (domain.SubmissionReceipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.SubmissionReceipt{}, fmt.Errorf("%w: %w", domain.ErrTransportFailure, err)
	}

	body, contentType, err := EncodeMultipart(payload)
	if err != nil {
		return domain.SubmissionReceipt{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(contentType)
	req.Header.Set("Accept", "application/json")
	if payload.RequestID != "" {
		req.Header.Set(requestIDHeader, payload.RequestID)
	}
	req.SetBody(body.Bytes())

	if c.timeout > 0 {
		err = c.client.DoTimeout(req, resp, c.timeout)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return domain.SubmissionReceipt{}, fmt.Errorf("%w: %w", domain.ErrTransportFailure, err)
	}

	return decodeReceipt(resp.StatusCode(), bytes.NewReader(resp.Body()))
}
