package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	db "spendsense-server/src/db/sql"
	"spendsense-server/src/models"
	"spendsense-server/src/util"
)

type budgetRequest struct {
	UID      string          `json:"uid"`
	Name     string          `json:"name"`
	Cap      decimal.Decimal `json:"cap"`
	Currency string          `json:"currency"`
	Period   string          `json:"period"`
}

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("failed to decode create budget request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		uid := util.RequestUID(r, req.UID)
		if uid == "" {
			http.Error(w, "UID is required", http.StatusBadRequest)
			return
		}
		if req.Currency == "" {
			req.Currency = "INR"
		}
		if req.Period == "" {
			req.Period = "monthly"
		}

		budget := &models.Budget{
			UID:      uid,
			Name:     req.Name,
			Cap:      req.Cap,
			Currency: req.Currency,
			Period:   req.Period,
		}
		created, err := db.CreateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Errorf("failed to create budget for uid %s: %v", uid, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBudgets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := util.RequestUID(r, r.URL.Query().Get("uid"))
		if uid == "" {
			http.Error(w, "UID is required", http.StatusBadRequest)
			return
		}

		budgets, err := db.GetBudgetsForUser(r.Context(), pool, uid)
		if err != nil {
			log.Errorf("failed to get budgets for uid %s: %v", uid, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}
		if budgets == nil {
			budgets = []models.Budget{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.ParseInt(budgetIDStr, 10, 64)
		if err != nil {
			http.Error(w, "invalid budget id", http.StatusBadRequest)
			return
		}

		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("failed to decode update budget request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		uid := util.RequestUID(r, req.UID)
		if uid == "" {
			http.Error(w, "UID is required", http.StatusBadRequest)
			return
		}

		budget := &models.Budget{
			ID:       budgetID,
			UID:      uid,
			Name:     req.Name,
			Cap:      req.Cap,
			Currency: req.Currency,
			Period:   req.Period,
		}
		updated, err := db.UpdateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Errorf("failed to update budget id %d for uid %s: %v", budgetID, uid, err)
			http.Error(w, "failed to update budget", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.ParseInt(budgetIDStr, 10, 64)
		if err != nil {
			http.Error(w, "invalid budget id", http.StatusBadRequest)
			return
		}

		uid := util.RequestUID(r, r.URL.Query().Get("uid"))
		if uid == "" {
			http.Error(w, "UID is required", http.StatusBadRequest)
			return
		}

		if err := db.DeleteBudget(r.Context(), pool, uid, budgetID); err != nil {
			log.Errorf("failed to delete budget id %d for uid %s: %v", budgetID, uid, err)
			http.Error(w, "failed to delete budget", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "budget deleted"})
	}
}
