package fancontext

import (
	"fmt"
	"strings"
	"time"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// Rendering of the briefing segments. The wording is load-bearing: the
// "Unknown hotel" and "No current hotel stay found" messages are distinct
// states (no hotel_stays field vs stays that are all in the past), and
// downstream prompts rely on both.

// HotelLine renders the fan's hotel situation: current stay if any, else
// next stay, else a not-found message. A fan without a hotel_stays field
// at all gets "Unknown hotel" instead.
func (a *Aggregator) HotelLine(fan worldcup.Fan, current time.Time) string {
	if fan.HotelStays == nil {
		return "Unknown hotel"
	}
	if stay, ok := a.CurrentStay(fan, current); ok {
		return fmt.Sprintf("%s in %s (checking out in %d days)",
			stay.Hotel.Name, stay.Hotel.City, stay.DaysLeft)
	}
	if stay, ok := a.NextStay(fan, current); ok {
		return fmt.Sprintf("Upcoming stay at %s in %s in %d days",
			stay.Hotel.Name, stay.Hotel.City, stay.DaysUntil)
	}
	return "No current hotel stay found"
}

// FormatAttending renders the fan's attending games as a comma-joined
// list of "{Past|Upcoming} match on {date}: {teams} at {stadium}".
func FormatAttending(games []GameSummary) string {
	if len(games) == 0 {
		return "No games found"
	}

	parts := make([]string, 0, len(games))
	for _, g := range games {
		status := "Upcoming"
		if g.IsPast {
			status = "Past"
		}
		parts = append(parts, fmt.Sprintf("%s match on %s: %s vs %s at %s",
			status, g.Game.Date, g.Game.TeamA, g.Game.TeamB, stadiumOrUnknown(g)))
	}
	return strings.Join(parts, ", ")
}

// FormatToday renders the day's games as "{teams} at {stadium}, {time}".
func FormatToday(games []GameSummary) string {
	if len(games) == 0 {
		return "No games scheduled for today"
	}

	parts := make([]string, 0, len(games))
	for _, g := range games {
		parts = append(parts, fmt.Sprintf("%s vs %s at %s, %s",
			g.Game.TeamA, g.Game.TeamB, stadiumOrUnknown(g), g.Game.Time))
	}
	return strings.Join(parts, ", ")
}

// FormatItinerary renders every stay in stored order, no sorting.
func FormatItinerary(stays []StaySummary) string {
	parts := make([]string, 0, len(stays))
	for _, s := range stays {
		parts = append(parts, fmt.Sprintf("%s in %s from %s to %s",
			s.Hotel.Name, s.Hotel.City, s.CheckIn, s.CheckOut))
	}
	return strings.Join(parts, ", ")
}

// FormatPreferences flattens the preference mapping in insertion order.
// Each segment carries its own trailing period and space; there is no
// other separator.
func FormatPreferences(prefs worldcup.Preferences) string {
	var b strings.Builder
	for _, p := range prefs {
		fmt.Fprintf(&b, "%s: %s. ", p.Category, strings.Join(p.Values, ", "))
	}
	return b.String()
}

func stadiumOrUnknown(g GameSummary) string {
	if g.StadiumName == "" {
		return "Unknown stadium"
	}
	return g.StadiumName
}
