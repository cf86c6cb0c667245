package classifier

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"spendsense-server/src/extract"
	"spendsense-server/src/models"
)

// RemoteClassifier is the port to the ranked-label service. *Client
// implements it; tests substitute fakes.
type RemoteClassifier interface {
	Classify(ctx context.Context, text string, labels []string) (string, error)
}

// Resolver chains the classification strategies. Promotional messages
// short-circuit before any network call; remote failures of any kind
// degrade to the keyword rules.
type Resolver struct {
	remote RemoteClassifier
}

func NewResolver(remote RemoteClassifier) *Resolver {
	return &Resolver{remote: remote}
}

// Classify never fails: every path ends in a non-empty label, with the
// producing stage recorded as provenance.
func (r *Resolver) Classify(ctx context.Context, text string, fields models.ExtractedFields) models.CategoryResult {
	if extract.IsPromotional(text) {
		return models.CategoryResult{Label: "Promotional", Source: models.SourcePromotional}
	}

	if r.remote != nil {
		label, err := r.remote.Classify(ctx, text, CandidateLabels)
		if err == nil && label != "" {
			return models.CategoryResult{Label: label, Source: models.SourceRemote}
		}
		if err != nil && !errors.Is(err, ErrNoCredential) {
			log.Warnf("remote classification failed, using keyword fallback: %v", err)
		}
	}

	source := models.SourceRegexFallback
	if fields.Empty() {
		source = models.SourceKeywordFallback
	}
	return models.CategoryResult{Label: FallbackCategory(text), Source: source}
}
