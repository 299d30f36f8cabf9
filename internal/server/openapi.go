package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "FanMate API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the World Cup 2034 fan assistant. " +
		"Game data is served through a date-simulation filter: fields are hidden " +
		"until the simulated date reaches their disclosure threshold.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/games
	getGames, _ := r.NewOperationContext(http.MethodGet, "/api/games")
	getGames.SetSummary("List games")
	getGames.SetDescription("All games as visible on the current simulated date.")
	getGames.AddRespStructure([]worldcup.Game{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getGames)

	// GET /api/games/{gameID}
	getGame, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}")
	getGame.SetSummary("Get game")
	getGame.AddRespStructure(worldcup.Game{}, openapi.WithHTTPStatus(http.StatusOK))
	getGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getGame)

	// GET /api/dates/{date}/games
	getDateGames, _ := r.NewOperationContext(http.MethodGet, "/api/dates/{date}/games")
	getDateGames.SetSummary("List games on a date")
	getDateGames.AddRespStructure([]worldcup.Game{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getDateGames)

	// GET /api/teams/{team}/games
	getTeamGames, _ := r.NewOperationContext(http.MethodGet, "/api/teams/{team}/games")
	getTeamGames.SetSummary("List games for a team")
	getTeamGames.SetDescription("Games involving the team. Defaults to dropping games before the simulated date.")
	getTeamGames.AddRespStructure([]worldcup.Game{}, openapi.WithHTTPStatus(http.StatusOK))
	getTeamGames.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getTeamGames)

	// GET /api/stadiums
	getStadiums, _ := r.NewOperationContext(http.MethodGet, "/api/stadiums")
	getStadiums.SetSummary("List stadiums")
	getStadiums.AddRespStructure([]worldcup.Stadium{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStadiums)

	// GET /api/fans
	getFans, _ := r.NewOperationContext(http.MethodGet, "/api/fans")
	getFans.SetSummary("List fans")
	getFans.AddRespStructure([]worldcup.Fan{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getFans)

	// GET /api/fans/{fanID}
	getFan, _ := r.NewOperationContext(http.MethodGet, "/api/fans/{fanID}")
	getFan.SetSummary("Get fan")
	getFan.AddRespStructure(worldcup.Fan{}, openapi.WithHTTPStatus(http.StatusOK))
	getFan.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getFan)

	// GET /api/hotels
	getHotels, _ := r.NewOperationContext(http.MethodGet, "/api/hotels")
	getHotels.SetSummary("List hotels")
	getHotels.AddRespStructure([]worldcup.Hotel{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHotels)

	// GET /api/restaurants
	getRestaurants, _ := r.NewOperationContext(http.MethodGet, "/api/restaurants")
	getRestaurants.SetSummary("List restaurants")
	getRestaurants.SetDescription("All restaurants, or those in ?city= (case-insensitive exact match).")
	getRestaurants.AddRespStructure([]worldcup.Restaurant{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getRestaurants)

	// GET /api/attractions
	getAttractions, _ := r.NewOperationContext(http.MethodGet, "/api/attractions")
	getAttractions.SetSummary("List attractions")
	getAttractions.SetDescription("All attractions, or those in ?city= (case-insensitive exact match).")
	getAttractions.AddRespStructure([]worldcup.Attraction{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getAttractions)

	// GET /api/context/{fanID}
	getContext, _ := r.NewOperationContext(http.MethodGet, "/api/context/{fanID}")
	getContext.SetSummary("Get fan prompt context")
	getContext.SetDescription("The assembled briefing injected into the assistant's system prompt.")
	getContext.AddRespStructure(map[string]string{}, openapi.WithHTTPStatus(http.StatusOK))
	getContext.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getContext)

	// GET /api/date
	getDate, _ := r.NewOperationContext(http.MethodGet, "/api/date")
	getDate.SetSummary("Get simulated date")
	getDate.AddRespStructure(DateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getDate)

	// PUT /api/date
	putDate, _ := r.NewOperationContext(http.MethodPut, "/api/date")
	putDate.SetSummary("Update simulated date")
	putDate.SetDescription("Moves the simulated clock and recomputes the visible game list. Requires admin session.")
	putDate.AddReqStructure(UpdateDateRequest{})
	putDate.AddRespStructure(DateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putDate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putDate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(putDate)

	// POST /api/chat
	postChat, _ := r.NewOperationContext(http.MethodPost, "/api/chat")
	postChat.SetSummary("Chat with the assistant")
	postChat.AddReqStructure(ChatRequest{})
	postChat.AddRespStructure(ChatResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postChat.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postChat.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postChat)

	// GET /api/chat/history
	getChatHistory, _ := r.NewOperationContext(http.MethodGet, "/api/chat/history")
	getChatHistory.SetSummary("Get chat history")
	getChatHistory.AddRespStructure(ChatHistoryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getChatHistory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getChatHistory)

	// POST /api/chat/history/clear
	postClear, _ := r.NewOperationContext(http.MethodPost, "/api/chat/history/clear")
	postClear.SetSummary("Clear chat history")
	postClear.AddReqStructure(ClearChatRequest{})
	postClear.AddRespStructure(map[string]bool{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postClear)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(spec)
	}
}
