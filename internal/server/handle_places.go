package server

import (
	"net/http"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// Place collections are static; the only filtering offered is the
// case-insensitive ?city= match.

func handleListStadiums(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nonNil(store.Stadiums()))
	}
}

func handleListHotels(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nonNil(store.Hotels()))
	}
}

func handleListRestaurants(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if city := r.URL.Query().Get("city"); city != "" {
			writeJSON(w, http.StatusOK, nonNil(store.RestaurantsByCity(city)))
			return
		}
		writeJSON(w, http.StatusOK, nonNil(store.Restaurants()))
	}
}

func handleListAttractions(store *worldcup.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if city := r.URL.Query().Get("city"); city != "" {
			writeJSON(w, http.StatusOK, nonNil(store.AttractionsByCity(city)))
			return
		}
		writeJSON(w, http.StatusOK, nonNil(store.Attractions()))
	}
}
