package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// All game endpoints serve the derived (redaction-applied) view: knockout
// matchups that are not yet decided show TBD, unplayed games carry no
// result. The raw records are never exposed.

func handleListGames(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nonNil(store.Games()))
	}
}

func handleGetGame(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "gameID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid game id")
			return
		}

		game, ok := store.GameByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		writeJSON(w, http.StatusOK, game)
	}
}

func handleGamesByDate(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")
		writeJSON(w, http.StatusOK, nonNil(store.GamesOn(date)))
	}
}

func handleTeamGames(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")

		// Defaults to the simulated date, so past games are dropped;
		// pass date= (empty) to list the team's full schedule.
		date := store.Date()
		if q, ok := r.URL.Query()["date"]; ok {
			date = q[0]
		}

		games, err := store.GamesForTeam(team, date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date format. Use YYYY-MM-DD")
			return
		}
		writeJSON(w, http.StatusOK, nonNil(games))
	}
}

// nonNil keeps empty list responses as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
