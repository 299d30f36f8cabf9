package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/fanmateapp/fanmate/internal/fancontext"
	"github.com/fanmateapp/fanmate/internal/mcptools"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	agg := fancontext.New(deps.Store)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("FanMate API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, deps.DB, deps.RDB))

	// MCP transport for external model clients; same tools as the chat loop.
	r.Mount("/mcp", mcptools.Handler(deps.Store))

	r.Route("/api", func(r chi.Router) {
		r.Get("/games", handleListGames(deps.Store))
		r.Get("/games/{gameID}", handleGetGame(deps.Store))
		r.Get("/dates/{date}/games", handleGamesByDate(deps.Store))
		r.Get("/teams/{team}/games", handleTeamGames(deps.Store))

		r.Get("/stadiums", handleListStadiums(deps.Store))
		r.Get("/fans", handleListFans(deps.Store))
		r.Get("/fans/{fanID}", handleGetFan(deps.Store))
		r.Get("/hotels", handleListHotels(deps.Store))
		r.Get("/restaurants", handleListRestaurants(deps.Store))
		r.Get("/attractions", handleListAttractions(deps.Store))

		r.Get("/context/{fanID}", handleFanContext(deps.Store, agg))

		r.Get("/date", handleGetDate(deps.Store))
		r.With(adminAuthMiddleware(deps.DB)).Put("/date", handleUpdateDate(deps.Store, logger))

		r.Post("/chat", handleChat(deps.Store, deps.Assistant))
		r.Get("/chat/history", handleChatHistory(deps.Assistant))
		r.Post("/chat/history/clear", handleClearChatHistory(deps.Assistant))

		r.Post("/admin/login", handleAdminLogin(deps.DB))
		r.Post("/admin/logout", handleAdminLogout(deps.DB))
		r.Get("/admin/me", handleAdminMe(deps.DB))
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
