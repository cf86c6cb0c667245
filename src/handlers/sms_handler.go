package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	db "spendsense-server/src/db/sql"
	"spendsense-server/src/models"
	"spendsense-server/src/pipeline"
	"spendsense-server/src/util"
)

// PredictBulk ingests a batch of raw messages for one uid and returns the
// persisted records plus a skip count.
func PredictBulk(svc *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UID      string              `json:"uid"`
			Messages []models.RawMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("failed to decode predict-bulk request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		uid := util.RequestUID(r, req.UID)
		if err := util.ValidateIngestRequest(uid, req.Messages); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := svc.Ingest(r.Context(), uid, req.Messages)
		if err != nil {
			log.Errorf("failed to ingest messages for uid %s: %v", uid, err)
			http.Error(w, "failed to process messages", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func GetRecords(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := util.RequestUID(r, r.URL.Query().Get("uid"))
		if uid == "" {
			http.Error(w, "UID is required", http.StatusBadRequest)
			return
		}

		records, err := db.GetRecords(r.Context(), pool, uid)
		if err != nil {
			log.Errorf("failed to get records for uid %s: %v", uid, err)
			http.Error(w, "failed to get records", http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []models.TransactionRecord{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}
