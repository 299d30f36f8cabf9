package fancontext

import (
	"testing"
	"time"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

func newTestData(t *testing.T) *worldcup.Store {
	t.Helper()
	store, err := worldcup.NewStore(worldcup.Collections{
		Games: []worldcup.Game{
			{ID: 1, Date: "2034-06-10", Time: "18:00", Stage: worldcup.StageGroup, TeamA: "Mexico", TeamB: "Poland", StadiumID: 1,
				Result: &worldcup.Result{ScoreA: 1, ScoreB: 0}, Winner: "Mexico"},
			{ID: 2, Date: "2034-06-13", Time: "21:00", Stage: worldcup.StageGroup, TeamA: "England", TeamB: "Iran", StadiumID: 2},
			{ID: 3, Date: "2034-06-15", Time: "18:00", Stage: worldcup.StageGroup, TeamA: "Mexico", TeamB: "Ghana", StadiumID: 9},
		},
		Stadiums: []worldcup.Stadium{
			{ID: 1, Name: "King Salman International Stadium", City: "Riyadh"},
			{ID: 2, Name: "NEOM Stadium", City: "NEOM"},
		},
		Hotels: []worldcup.Hotel{
			{ID: 1, Name: "Ritz-Carlton Riyadh", City: "Riyadh"},
			{ID: 2, Name: "Jeddah Hilton", City: "Jeddah"},
		},
	}, "2034-06-13")
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}

func onDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := worldcup.ParseDate(s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return d
}

func TestCurrentStayHalfOpenInterval(t *testing.T) {
	agg := New(newTestData(t))
	fan := worldcup.Fan{
		HotelStays: []worldcup.HotelStay{
			{HotelID: 1, CheckIn: "2034-06-10", CheckOut: "2034-06-13"},
		},
	}

	// Current on check-in day through the day before checkout.
	for _, d := range []string{"2034-06-10", "2034-06-11", "2034-06-12"} {
		if _, ok := agg.CurrentStay(fan, onDay(t, d)); !ok {
			t.Errorf("expected a current stay on %s", d)
		}
	}
	// Not current on checkout day.
	if _, ok := agg.CurrentStay(fan, onDay(t, "2034-06-13")); ok {
		t.Error("stay should not be current on checkout day")
	}
}

func TestCurrentStayDaysLeft(t *testing.T) {
	agg := New(newTestData(t))
	fan := worldcup.Fan{
		HotelStays: []worldcup.HotelStay{
			{HotelID: 1, CheckIn: "2034-06-10", CheckOut: "2034-06-14"},
		},
	}

	stay, ok := agg.CurrentStay(fan, onDay(t, "2034-06-11"))
	if !ok {
		t.Fatal("expected a current stay")
	}
	if stay.DaysLeft != 3 {
		t.Errorf("expected 3 days left, got %d", stay.DaysLeft)
	}
	if stay.Hotel.Name != "Ritz-Carlton Riyadh" {
		t.Errorf("wrong hotel: %q", stay.Hotel.Name)
	}
}

// Overlapping stays are a documented data ambiguity: the first stay in
// list order wins. This test pins that behavior.
func TestCurrentStayOverlapFirstWins(t *testing.T) {
	agg := New(newTestData(t))
	fan := worldcup.Fan{
		HotelStays: []worldcup.HotelStay{
			{HotelID: 2, CheckIn: "2034-06-11", CheckOut: "2034-06-15"},
			{HotelID: 1, CheckIn: "2034-06-10", CheckOut: "2034-06-16"},
		},
	}

	stay, ok := agg.CurrentStay(fan, onDay(t, "2034-06-12"))
	if !ok {
		t.Fatal("expected a current stay")
	}
	if stay.Hotel.ID != 2 {
		t.Errorf("expected first stay in list order (hotel 2), got hotel %d", stay.Hotel.ID)
	}
}

func TestNextStay(t *testing.T) {
	agg := New(newTestData(t))
	fan := worldcup.Fan{
		HotelStays: []worldcup.HotelStay{
			{HotelID: 2, CheckIn: "2034-06-20", CheckOut: "2034-06-22"},
			{HotelID: 1, CheckIn: "2034-06-16", CheckOut: "2034-06-18"},
		},
	}

	stay, ok := agg.NextStay(fan, onDay(t, "2034-06-13"))
	if !ok {
		t.Fatal("expected a next stay")
	}
	if stay.Hotel.ID != 1 {
		t.Errorf("expected the earliest future stay (hotel 1), got hotel %d", stay.Hotel.ID)
	}
	if stay.DaysUntil != 3 {
		t.Errorf("expected 3 days until, got %d", stay.DaysUntil)
	}
}

func TestHotelLineStates(t *testing.T) {
	agg := New(newTestData(t))
	current := onDay(t, "2034-06-13")

	// No hotel_stays field at all.
	if got := agg.HotelLine(worldcup.Fan{}, current); got != "Unknown hotel" {
		t.Errorf("expected %q, got %q", "Unknown hotel", got)
	}

	// Stays exist, but all in the past: distinct message.
	pastOnly := worldcup.Fan{
		HotelStays: []worldcup.HotelStay{
			{HotelID: 1, CheckIn: "2034-06-01", CheckOut: "2034-06-03"},
		},
	}
	if got := agg.HotelLine(pastOnly, current); got != "No current hotel stay found" {
		t.Errorf("expected %q, got %q", "No current hotel stay found", got)
	}

	// Current stay.
	staying := worldcup.Fan{
		HotelStays: []worldcup.HotelStay{
			{HotelID: 1, CheckIn: "2034-06-12", CheckOut: "2034-06-15"},
		},
	}
	want := "Ritz-Carlton Riyadh in Riyadh (checking out in 2 days)"
	if got := agg.HotelLine(staying, current); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Future stay only.
	upcoming := worldcup.Fan{
		HotelStays: []worldcup.HotelStay{
			{HotelID: 2, CheckIn: "2034-06-16", CheckOut: "2034-06-18"},
		},
	}
	want = "Upcoming stay at Jeddah Hilton in Jeddah in 3 days"
	if got := agg.HotelLine(upcoming, current); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAttendingGamesSortedAndTagged(t *testing.T) {
	agg := New(newTestData(t))
	fan := worldcup.Fan{AttendingGames: []int{3, 1}}

	games := agg.AttendingGames(fan, onDay(t, "2034-06-13"))
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].Game.ID != 1 || games[1].Game.ID != 3 {
		t.Errorf("games not sorted by date: %d, %d", games[0].Game.ID, games[1].Game.ID)
	}
	if !games[0].IsPast || games[1].IsPast {
		t.Errorf("past tagging wrong: %v, %v", games[0].IsPast, games[1].IsPast)
	}
	if games[0].StadiumName != "King Salman International Stadium" {
		t.Errorf("stadium not attached: %q", games[0].StadiumName)
	}
	// Game 3 references stadium 9, which does not exist; the game is
	// kept with an empty stadium.
	if games[1].StadiumName != "" {
		t.Errorf("expected empty stadium for unresolvable id, got %q", games[1].StadiumName)
	}
}

func TestAttendingGamesSkipsUnresolvableIDs(t *testing.T) {
	agg := New(newTestData(t))
	fan := worldcup.Fan{AttendingGames: []int{999}}

	games := agg.AttendingGames(fan, onDay(t, "2034-06-13"))
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
	if got := FormatAttending(games); got != "No games found" {
		t.Errorf("expected %q, got %q", "No games found", got)
	}
}

func TestBuildContextVars(t *testing.T) {
	agg := New(newTestData(t))
	fan := worldcup.Fan{
		ID:            7,
		Name:          "Carlos Hernandez",
		Nationality:   "Mexico",
		TeamSupported: "Mexico",
		HotelStays: []worldcup.HotelStay{
			{HotelID: 1, CheckIn: "2034-06-12", CheckOut: "2034-06-15"},
		},
		AttendingGames: []int{1},
	}

	fc, err := agg.BuildContext(fan, "2034-06-13")
	if err != nil {
		t.Fatalf("building context: %v", err)
	}

	vars := fc.Vars()
	wantKeys := []string{
		"fan_id", "simulated_date", "fan_name", "fan_nationality", "fan_team",
		"fan_hotel", "fan_hotel_timeline", "fan_games", "todays_games", "fan_preferences",
	}
	for _, k := range wantKeys {
		if _, ok := vars[k]; !ok {
			t.Errorf("missing context key %q", k)
		}
	}
	if len(vars) != len(wantKeys) {
		t.Errorf("expected %d keys, got %d", len(wantKeys), len(vars))
	}

	if vars["fan_id"] != "7" {
		t.Errorf("fan_id: expected \"7\", got %q", vars["fan_id"])
	}
	if vars["todays_games"] != "England vs Iran at NEOM Stadium, 21:00" {
		t.Errorf("todays_games: got %q", vars["todays_games"])
	}
	if vars["fan_games"] != "Past match on 2034-06-10: Mexico vs Poland at King Salman International Stadium" {
		t.Errorf("fan_games: got %q", vars["fan_games"])
	}
}

func TestBuildContextRejectsBadDate(t *testing.T) {
	agg := New(newTestData(t))
	if _, err := agg.BuildContext(worldcup.Fan{}, "garbage"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
