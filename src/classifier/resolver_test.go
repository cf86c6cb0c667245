package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"spendsense-server/src/extract"
	"spendsense-server/src/models"
)

type fakeRemote struct {
	label string
	err   error
	calls int
}

func (f *fakeRemote) Classify(ctx context.Context, text string, labels []string) (string, error) {
	f.calls++
	return f.label, f.err
}

func TestResolverUsesRemoteLabel(t *testing.T) {
	remote := &fakeRemote{label: "Card Payment"}
	r := NewResolver(remote)

	result := r.Classify(context.Background(), "Rs.900 spent on your card", models.ExtractedFields{})
	assert.Equal(t, "Card Payment", result.Label)
	assert.Equal(t, models.SourceRemote, result.Source)
	assert.Equal(t, 1, remote.calls)
}

func TestResolverPromotionalShortCircuits(t *testing.T) {
	remote := &fakeRemote{label: "UPI"}
	r := NewResolver(remote)

	result := r.Classify(context.Background(), "Exclusive loan offer, apply now!", models.ExtractedFields{})
	assert.Equal(t, "Promotional", result.Label)
	assert.Equal(t, models.SourcePromotional, result.Source)
	assert.Equal(t, 0, remote.calls, "promotional messages must never trigger a remote call")
}

func TestResolverFallsBackWhenRemoteFails(t *testing.T) {
	text := "Paid Rs.500 to merchant via UPI"
	remote := &fakeRemote{err: errors.New("connection refused")}
	r := NewResolver(remote)

	result := r.Classify(context.Background(), text, extract.Extract(text))
	assert.Equal(t, "UPI", result.Label)
	assert.Equal(t, models.SourceRegexFallback, result.Source)
}

func TestResolverKeywordFallbackWhenNothingExtracted(t *testing.T) {
	remote := &fakeRemote{err: ErrNoCredential}
	r := NewResolver(remote)

	result := r.Classify(context.Background(), "payment towards loan account completed", models.ExtractedFields{
		Direction: models.DirectionUnknown,
		Mode:      models.ModeUnknown,
	})
	assert.Equal(t, "Loan", result.Label)
	assert.Equal(t, models.SourceKeywordFallback, result.Source)
}

func TestResolverAlwaysReturnsALabel(t *testing.T) {
	remote := &fakeRemote{err: errors.New("service down")}
	r := NewResolver(remote)

	for _, text := range []string{
		"Rs.10 debited",
		"transfer completed",
		"txn successful, have a nice day",
	} {
		result := r.Classify(context.Background(), text, extract.Extract(text))
		assert.NotEmpty(t, result.Label, "text %q", text)
	}
}
