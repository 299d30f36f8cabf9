package server

import (
	"log/slog"
	"net/http"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// DateResponse is the simulated date envelope.
type DateResponse struct {
	Date string `json:"date"`
}

// UpdateDateRequest is the request body for PUT /api/date.
type UpdateDateRequest struct {
	Date string `json:"date"`
}

func handleGetDate(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, DateResponse{Date: store.Date()})
	}
}

// handleUpdateDate moves the simulated clock. The store treats the clock
// write and the derived-games recomputation as one atomic unit; a value
// that fails validation leaves both untouched.
func handleUpdateDate(store *worldcup.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateDateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Date == "" {
			writeError(w, http.StatusBadRequest, "date not provided")
			return
		}

		if err := store.SetDate(req.Date); err != nil {
			writeError(w, http.StatusBadRequest, "invalid date format. Use YYYY-MM-DD")
			return
		}

		logger.Info("simulated date updated", "date", req.Date)
		writeJSON(w, http.StatusOK, DateResponse{Date: req.Date})
	}
}
