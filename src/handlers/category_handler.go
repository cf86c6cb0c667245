package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	db "spendsense-server/src/db/sql"
	"spendsense-server/src/util"
)

// CategorySpending returns per-category totals for one uid, optionally
// filtered by direction and recency and sorted by total.
func CategorySpending(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := util.RequestUID(r, r.URL.Query().Get("uid"))
		if uid == "" {
			http.Error(w, "UID is required", http.StatusBadRequest)
			return
		}

		filters := db.SpendingFilters{
			Direction: r.URL.Query().Get("type"),
			Period:    r.URL.Query().Get("period"),
			Sort:      r.URL.Query().Get("sort"),
		}

		totals, err := db.CategorySpending(r.Context(), pool, uid, filters)
		if err != nil {
			log.Errorf("failed to get category spending for uid %s: %v", uid, err)
			http.Error(w, "failed to get category spending", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   totals,
		})
	}
}
