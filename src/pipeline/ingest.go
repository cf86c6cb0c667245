// Package pipeline drives the ingestion of raw message batches: filter,
// extract, classify, then one bulk write for the whole batch.
package pipeline

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"spendsense-server/src/extract"
	"spendsense-server/src/models"
)

// RecordStore persists resolved batches. Implemented by db/sql; tests
// substitute fakes.
type RecordStore interface {
	InsertRecords(ctx context.Context, records []models.TransactionRecord) error
}

// Classifier resolves a category for one message.
type Classifier interface {
	Classify(ctx context.Context, text string, fields models.ExtractedFields) models.CategoryResult
}

// Result is the per-call accounting returned to the caller: what was
// persisted and how many messages were skipped as empty or promotional.
type Result struct {
	Accepted []models.TransactionRecord `json:"accepted"`
	Skipped  int                        `json:"skipped"`
}

type Service struct {
	store      RecordStore
	classifier Classifier
}

func NewService(store RecordStore, classifier Classifier) *Service {
	return &Service{store: store, classifier: classifier}
}

// Ingest runs the pipeline over a batch. Messages are failure-isolated:
// one unparsable message never aborts the batch; it just yields a record
// with null fields and a fallback category. Promotional and empty
// messages are skipped outright and never persisted. All accepted records
// share one createdAt and land in a single bulk write; a store failure
// fails the whole call with nothing committed.
func (s *Service) Ingest(ctx context.Context, uid string, messages []models.RawMessage) (Result, error) {
	res := Result{Accepted: []models.TransactionRecord{}}
	createdAt := time.Now().UTC()

	for _, msg := range messages {
		if strings.TrimSpace(msg.SMS) == "" {
			res.Skipped++
			continue
		}
		if extract.IsPromotional(msg.SMS) {
			res.Skipped++
			continue
		}

		fields := extract.Extract(msg.SMS)
		category := s.classifier.Classify(ctx, msg.SMS, fields)

		res.Accepted = append(res.Accepted, models.TransactionRecord{
			UID:             uid,
			SMS:             msg.SMS,
			Sender:          msg.Sender,
			ExtractedFields: fields,
			CategoryResult:  category,
			CreatedAt:       createdAt,
		})
	}

	// A cancelled call writes nothing rather than a partial batch.
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(res.Accepted) == 0 {
		return res, nil
	}
	if err := s.store.InsertRecords(ctx, res.Accepted); err != nil {
		log.Errorf("failed to persist batch of %d records for uid %s: %v", len(res.Accepted), uid, err)
		return Result{}, err
	}

	log.Infof("ingested %d records for uid %s (%d skipped)", len(res.Accepted), uid, res.Skipped)
	return res, nil
}
