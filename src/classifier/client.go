// Package classifier resolves a category label for a message through a
// chain of strategies: a remote ranked-label (zero-shot) service first,
// local keyword rules when the service is unavailable. The chain always
// terminates in a non-empty label; a degraded classifier never fails an
// ingest.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api-inference.huggingface.co/models/"

// CandidateLabels is the fixed label set sent with every transaction
// classification request.
var CandidateLabels = []string{
	"UPI", "Bank Transfer", "ATM Withdrawal", "Card Payment",
	"Recharge", "Loan", "Salary",
}

var (
	// ErrNoCredential means no API key is configured; running without
	// one is valid and forces permanent fallback operation.
	ErrNoCredential = errors.New("classifier: no API credential configured")

	// ErrUnusableResponse means the service answered 200 but without a
	// ranked label list.
	ErrUnusableResponse = errors.New("classifier: unusable response")

	errModelLoading = errors.New("classifier: model is loading")
)

type transportError struct{ err error }

func (e *transportError) Error() string { return "classifier: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("classifier: HTTP %d: %s", e.status, e.msg)
}

// Client talks to a hosted zero-shot classification endpoint speaking the
// Hugging Face inference protocol.
type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
	retry  RetryPolicy
}

func NewClient(apiKey, model, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultBaseURL + model
	}
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 20 * time.Second},
		retry:  DefaultRetryPolicy(),
	}
}

type classifyRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		CandidateLabels []string `json:"candidate_labels"`
	} `json:"parameters"`
}

type classifyResponse struct {
	Labels        []string  `json:"labels"`
	Scores        []float64 `json:"scores"`
	Error         string    `json:"error"`
	EstimatedTime float64   `json:"estimated_time"`
}

// Classify sends one ranked-label request and returns the top label.
// Transient failures are retried per the policy; a cold model waits out a
// short loading delay without consuming a retry attempt.
func (c *Client) Classify(ctx context.Context, text string, labels []string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoCredential
	}

	payload := classifyRequest{Inputs: text}
	payload.Parameters.CandidateLabels = labels
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var lastErr error
	loadingWaits := 0
	for attempt := 1; attempt <= c.retry.MaxAttempts; {
		label, err := c.doRequest(ctx, body)
		if err == nil {
			return label, nil
		}
		lastErr = err

		if errors.Is(err, errModelLoading) && loadingWaits < c.retry.MaxLoadingWaits {
			loadingWaits++
			if werr := sleepCtx(ctx, c.retry.LoadingWait); werr != nil {
				return "", werr
			}
			continue
		}
		if !c.retry.Retryable(err) {
			return "", err
		}
		attempt++
		if attempt > c.retry.MaxAttempts {
			break
		}
		if werr := sleepCtx(ctx, c.retry.Backoff(attempt)); werr != nil {
			return "", werr
		}
	}
	return "", lastErr
}

func (c *Client) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &transportError{err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &transportError{err}
	}

	var parsed classifyResponse
	if jsonErr := json.Unmarshal(raw, &parsed); jsonErr == nil {
		// Loading is reported with a 503 and an explanatory error body;
		// it is not a hard failure.
		if parsed.Error != "" && strings.Contains(strings.ToLower(parsed.Error), "loading") {
			return "", errModelLoading
		}
		if resp.StatusCode == http.StatusOK {
			if len(parsed.Labels) == 0 {
				return "", ErrUnusableResponse
			}
			return parsed.Labels[0], nil
		}
	} else if resp.StatusCode == http.StatusOK {
		return "", ErrUnusableResponse
	}
	return "", &httpError{status: resp.StatusCode, msg: strings.TrimSpace(string(raw))}
}
