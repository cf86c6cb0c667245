package main

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"spendsense-server/src/api"
	"spendsense-server/src/classifier"
	"spendsense-server/src/config"
	"spendsense-server/src/db"
	dbsql "spendsense-server/src/db/sql"
	"spendsense-server/src/pipeline"
)

func main() {
	cfg := config.Load()
	configureLogging(cfg)

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}
	db.InitCache()

	remote := classifier.NewClient(cfg.HFAPIKey, cfg.HFModel, cfg.HFAPIURL)
	resolver := classifier.NewResolver(remote)
	svc := pipeline.NewService(dbsql.RecordStore{Pool: pool}, resolver)

	// Router
	router := api.NewRouter(pool, remote, svc, cfg)

	log.Infof("API server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}

func configureLogging(cfg config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
