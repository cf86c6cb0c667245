package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"spendsense-server/src/classifier"
	db "spendsense-server/src/db/sql"
	"spendsense-server/src/extract"
	"spendsense-server/src/models"
	"spendsense-server/src/util"
)

var billLabels = []string{"Electricity", "Water", "Internet", "Phone", "Other"}

// ParseBills extracts due amounts and dates from bill reminder messages,
// labels each one with a bill category and stores the result. Messages
// without a recognizable amount and due date are ignored.
func ParseBills(pool *pgxpool.Pool, remote classifier.RemoteClassifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UID      string              `json:"uid"`
			Messages []models.RawMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("failed to decode parse_sms request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		uid := util.RequestUID(r, req.UID)
		if err := util.ValidateIngestRequest(uid, req.Messages); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		parsed := []models.Bill{}
		for _, msg := range req.Messages {
			details, ok := extract.ExtractBill(msg.SMS)
			if !ok {
				continue
			}

			text := msg.SMS
			if msg.Sender != nil {
				text += " From: " + *msg.Sender
			}
			category, err := remote.Classify(r.Context(), text, billLabels)
			if err != nil {
				log.Warnf("bill classification failed for uid %s: %v", uid, err)
				category = "Other"
			}

			name := category + " Bill"
			if msg.Sender != nil && *msg.Sender != "" {
				name = *msg.Sender
			}

			bill := models.Bill{
				ID:        uuid.NewString(),
				UID:       uid,
				Name:      name,
				Category:  category,
				DueDate:   details.DueDate,
				Amount:    details.Amount,
				Status:    "Unpaid",
				SMSSender: msg.Sender,
				SMSBody:   msg.SMS,
			}
			if err := db.InsertBill(r.Context(), pool, &bill); err != nil {
				log.Errorf("failed to insert bill for uid %s: %v", uid, err)
				http.Error(w, "failed to save bills", http.StatusInternalServerError)
				return
			}
			parsed = append(parsed, bill)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"parsed_bills": parsed})
	}
}

func GetBills(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := util.RequestUID(r, r.URL.Query().Get("uid"))
		if uid == "" {
			http.Error(w, "UID is required", http.StatusBadRequest)
			return
		}

		bills, err := db.GetBills(r.Context(), pool, uid, r.URL.Query().Get("status"))
		if err != nil {
			log.Errorf("failed to get bills for uid %s: %v", uid, err)
			http.Error(w, "failed to get bills", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bills)
	}
}
