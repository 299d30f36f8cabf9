package server

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/fanmateapp/fanmate/internal/database"
	"github.com/fanmateapp/fanmate/internal/migrations"
	"github.com/fanmateapp/fanmate/internal/worldcup"
)

const (
	testAdminEmail    = "admin@fanmate.test"
	testAdminPassword = "changeme"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if err := SeedAdmin(ctx, testLogger(), db, testAdminEmail, testAdminPassword); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return db
}

// testStore builds a store whose derived view exercises every visibility
// state as of 2034-06-13: a played group game, a group game today, a
// knockout today and an undisclosed future knockout.
func testStore(t *testing.T) *worldcup.Store {
	t.Helper()
	store, err := worldcup.NewStore(worldcup.Collections{
		Games: []worldcup.Game{
			{ID: 1, Date: "2034-06-10", Time: "18:00", Stage: worldcup.StageGroup,
				TeamA: "Mexico", TeamB: "Poland", StadiumID: 1,
				Result: &worldcup.Result{ScoreA: 2, ScoreB: 1}, Winner: "Mexico"},
			{ID: 2, Date: "2034-06-13", Time: "21:00", Stage: worldcup.StageGroup,
				TeamA: "England", TeamB: "Iran", StadiumID: 2},
			{ID: 3, Date: "2034-06-13", Time: "18:00", Stage: "round_of_16",
				TeamA: "Brazil", TeamB: "Ghana", StadiumID: 1,
				Result: &worldcup.Result{ScoreA: 3, ScoreB: 0}, Winner: "Brazil"},
			{ID: 4, Date: "2034-06-20", Time: "18:00", Stage: "quarter_final",
				TeamA: "France", TeamB: "Spain", StadiumID: 2,
				Result: &worldcup.Result{ScoreA: 1, ScoreB: 2}, Winner: "Spain"},
		},
		Stadiums: []worldcup.Stadium{
			{ID: 1, Name: "King Salman International Stadium", City: "Riyadh"},
			{ID: 2, Name: "NEOM Stadium", City: "NEOM"},
		},
		Hotels: []worldcup.Hotel{
			{ID: 1, Name: "Ritz-Carlton Riyadh", City: "Riyadh"},
		},
		Fans: []worldcup.Fan{
			{ID: 1, Name: "Carlos Hernandez", Nationality: "Mexico", TeamSupported: "Mexico",
				HotelStays: []worldcup.HotelStay{
					{HotelID: 1, CheckIn: "2034-06-12", CheckOut: "2034-06-15"},
				},
				AttendingGames: []int{1, 2}},
		},
		Restaurants: []worldcup.Restaurant{
			{ID: 1, Name: "Najd Village", City: "Riyadh", Cuisine: "Saudi"},
		},
		Attractions: []worldcup.Attraction{
			{ID: 1, Name: "Al Masmak Fortress", City: "Riyadh"},
		},
	}, "2034-06-13")
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}
