package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spendsense-server/src/classifier"
	"spendsense-server/src/config"
	"spendsense-server/src/handlers"
	"spendsense-server/src/middleware"
	"spendsense-server/src/pipeline"
)

func NewRouter(pool *pgxpool.Pool, remote *classifier.Client, svc *pipeline.Service, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.UIDAuthMiddleware(cfg.JWTSecret))

		// Ingestion and records
		r.Post("/predict-bulk", handlers.PredictBulk(svc))
		r.Get("/records", handlers.GetRecords(pool))
		r.Get("/category-spending", handlers.CategorySpending(pool))

		// Bills
		r.Post("/bills/parse_sms", handlers.ParseBills(pool, remote))
		r.Get("/bills", handlers.GetBills(pool))

		// Budgets
		r.Post("/budgets", handlers.CreateBudget(pool))
		r.Get("/budgets", handlers.GetBudgets(pool))
		r.Put("/budgets/{budget_id}", handlers.UpdateBudget(pool))
		r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))
	})

	return r
}
