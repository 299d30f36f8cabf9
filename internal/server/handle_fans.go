package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fanmateapp/fanmate/internal/fancontext"
	"github.com/fanmateapp/fanmate/internal/worldcup"
)

func handleListFans(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nonNil(store.Fans()))
	}
}

func handleGetFan(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "fanID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid fan id")
			return
		}

		fan, ok := store.FanByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "fan not found")
			return
		}
		writeJSON(w, http.StatusOK, fan)
	}
}

// handleFanContext exposes the assembled prompt context for a fan, keyed
// by the placeholder names the prompt template substitutes. Useful for
// debugging what the assistant sees.
func handleFanContext(store *worldcup.Store, agg *fancontext.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "fanID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid fan id")
			return
		}

		fan, ok := store.FanByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "fan not found")
			return
		}

		fc, err := agg.BuildContext(fan, store.Date())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, fc.Vars())
	}
}
