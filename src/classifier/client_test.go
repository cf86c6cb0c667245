package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return &Client{
		apiURL: url,
		apiKey: "test-key",
		http:   &http.Client{Timeout: time.Second},
		retry: RetryPolicy{
			MaxAttempts:     3,
			MaxLoadingWaits: 2,
			LoadingWait:     time.Millisecond,
			BackoffBase:     time.Millisecond,
		},
	}
}

func TestClassifySuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"labels":["UPI","Bank Transfer"],"scores":[0.91,0.04]}`))
	}))
	defer srv.Close()

	label, err := testClient(srv.URL).Classify(context.Background(), "Paid Rs.500 via UPI", CandidateLabels)
	require.NoError(t, err)
	assert.Equal(t, "UPI", label)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestClassifyRetriesTransientErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"labels":["Salary"],"scores":[0.8]}`))
	}))
	defer srv.Close()

	label, err := testClient(srv.URL).Classify(context.Background(), "salary credited", CandidateLabels)
	require.NoError(t, err)
	assert.Equal(t, "Salary", label)
	assert.Equal(t, 3, calls)
}

func TestClassifyExhaustsRetries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Classify(context.Background(), "some text", CandidateLabels)
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestClassifyModelLoadingDoesNotConsumeAttempts(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"Model facebook/bart-large-mnli is currently loading","estimated_time":20.0}`))
			return
		}
		w.Write([]byte(`{"labels":["Loan"],"scores":[0.7]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.retry.MaxAttempts = 1 // loading waits alone must carry it through
	label, err := c.Classify(context.Background(), "EMI due", CandidateLabels)
	require.NoError(t, err)
	assert.Equal(t, "Loan", label)
	assert.Equal(t, 3, calls)
}

func TestClassifyDoesNotRetryAuthFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"Authorization header is correct, but the token seems invalid"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Classify(context.Background(), "some text", CandidateLabels)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClassifyEmptyLabelsIsUnusable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"labels":[],"scores":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Classify(context.Background(), "some text", CandidateLabels)
	assert.ErrorIs(t, err, ErrUnusableResponse)
}

func TestClassifyWithoutCredential(t *testing.T) {
	c := NewClient("", "facebook/bart-large-mnli", "")
	_, err := c.Classify(context.Background(), "some text", CandidateLabels)
	assert.ErrorIs(t, err, ErrNoCredential)
}
