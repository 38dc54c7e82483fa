// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/planning-poker/cliparse"
	"github.com/danielhkuo/planning-poker/handlers"
	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/slackapi"
)

func NewRouter(db *sql.DB, gateway slackapi.Gateway, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	commandHandler := handlers.NewCommandHandler(db, gateway, cfg)
	interactiveHandler := handlers.NewInteractiveHandler(db, gateway, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Slack endpoints; every payload is signature-checked before parsing
	verify := middleware.VerifySlackSignature(cfg.SlackSigningSecret)
	mux.HandleFunc("POST /slack/command", middleware.WithLogging(verify(commandHandler.HandleCommand)))
	mux.HandleFunc("POST /slack/interactive", middleware.WithLogging(verify(interactiveHandler.HandleInteraction)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("planning-poker v1"))
	})

	return mux
}
