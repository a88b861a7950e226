package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, db *sql.DB, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("RentCheck API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/api/sessions", handleCreateSession(store))

	r.Route("/api/sessions/{token}", func(r chi.Router) {
		r.Use(sessionMiddleware(store))

		r.Get("/", handleSessionState())
		r.Put("/answers/{questionID}", handleSetAnswer(store))
		r.Post("/answers/{questionID}/toggle", handleToggleAnswer(store))
		r.Post("/advance", handleAdvance(store))
		r.Post("/retreat", handleRetreat(store))
		r.Post("/reset", handleReset(store))
		r.Put("/safety-terms", handleSafetyTerms(store))
		r.Get("/summary", handleSummary())
		r.Get("/costs", handleCostEstimate())
		r.Put("/costs", handleUpdateCosts(store))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
