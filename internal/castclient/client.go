// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package castclient asks the cast service whether a cast currently exists.

The answer is three-way. A 2xx response confirms the cast, a 404 denies it,
and anything else (transport error, timeout, other status) is indeterminate.
Callers decide what an indeterminate answer means for their write.

Every call is bounded twice: by the caller's context, and by the client's
own timeout so a stalled cast service cannot hold a movie write forever.
*/
package castclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/cinecast/internal/platform/metrics"
)

// # Outcome

// Verdict classifies the answer to an existence check.
type Verdict int

const (
	// Indeterminate means the cast service could not give an answer.
	Indeterminate Verdict = iota
	// Confirmed means the cast exists.
	Confirmed
	// Denied means the cast service reported the cast as absent.
	Denied
)

// String returns the metric/log label of the verdict.
func (v Verdict) String() string {
	switch v {
	case Confirmed:
		return "confirmed"
	case Denied:
		return "denied"
	default:
		return "indeterminate"
	}
}

// Outcome is the result of a single existence check.
type Outcome struct {
	Verdict Verdict
	// StatusCode is the HTTP status returned by the cast service, 0 if no response arrived.
	StatusCode int
	// Err explains an Indeterminate outcome.
	Err error
}

// # Client

// Client checks cast existence over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// New builds a client for the cast collection at baseURL (e.g. http://host:8002/api/v1/casts/).
// m may be nil.
func New(baseURL string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/") + "/",
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// BaseURL returns the normalised cast collection URL.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// Check issues GET {baseURL}{id}/ and classifies the response.
func (client *Client) Check(ctx context.Context, id int64) Outcome {
	outcome := client.check(ctx, id)

	if client.metrics != nil {
		client.metrics.CastChecks.WithLabelValues(outcome.Verdict.String()).Inc()
	}

	return outcome
}

func (client *Client) check(ctx context.Context, id int64) Outcome {
	url := client.baseURL + strconv.FormatInt(id, 10) + "/"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{Verdict: Indeterminate, Err: fmt.Errorf("castclient: build request: %w", err)}
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return Outcome{Verdict: Indeterminate, Err: fmt.Errorf("castclient: get cast %d: %w", id, err)}
	}
	defer response.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, 64<<10))

	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
		return Outcome{Verdict: Confirmed, StatusCode: response.StatusCode}
	case response.StatusCode == http.StatusNotFound:
		return Outcome{Verdict: Denied, StatusCode: response.StatusCode}
	default:
		return Outcome{
			Verdict:    Indeterminate,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("castclient: get cast %d: %w", id, &StatusError{StatusCode: response.StatusCode}),
		}
	}
}

// StatusError reports an unexpected HTTP status from the cast service.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// IsTimeout reports whether the outcome failed because a deadline expired.
func (o Outcome) IsTimeout() bool {
	if o.Err == nil {
		return false
	}
	if errors.Is(o.Err, context.DeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(o.Err, &timeoutErr) && timeoutErr.Timeout()
}
