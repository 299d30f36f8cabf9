// Package fancontext assembles the per-fan briefing injected into the
// assistant's system prompt: hotel situation, attending games, today's
// games and flattened preferences, all as of the simulated date.
//
// The aggregation layer returns typed records; rendering to the exact
// prompt wording lives in format.go. Lookups that fail to resolve are
// skipped silently — the context degrades rather than erroring. The one
// loud failure is a malformed date, which is a caller bug.
package fancontext

import (
	"sort"
	"strconv"
	"time"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

const day = 24 * time.Hour

// Lookup is the read surface the aggregator needs. *worldcup.Store
// satisfies it.
type Lookup interface {
	GameByID(id int) (worldcup.Game, bool)
	StadiumByID(id int) (worldcup.Stadium, bool)
	HotelByID(id int) (worldcup.Hotel, bool)
	GamesOn(date string) []worldcup.Game
}

// StaySummary is one hotel stay resolved to its hotel. DaysLeft is set for
// a current stay, DaysUntil for a future one; both in whole days.
type StaySummary struct {
	Hotel     worldcup.Hotel
	CheckIn   string
	CheckOut  string
	DaysLeft  int
	DaysUntil int
}

// GameSummary is a derived game tagged for presentation. StadiumName and
// StadiumCity stay empty when the stadium id does not resolve.
type GameSummary struct {
	Game        worldcup.Game
	StadiumName string
	StadiumCity string
	IsPast      bool
}

// Aggregator computes fan briefings against a read-only data view.
type Aggregator struct {
	data Lookup
}

func New(data Lookup) *Aggregator {
	return &Aggregator{data: data}
}

// CurrentStay finds the stay whose half-open interval [check_in, check_out)
// contains current. If stays overlap, the first match in stay-list order
// wins; that tie-break is a documented data-quality ambiguity, flagged at
// load time, not resolved here. Stays whose hotel id does not resolve are
// skipped.
func (a *Aggregator) CurrentStay(fan worldcup.Fan, current time.Time) (StaySummary, bool) {
	for _, stay := range fan.HotelStays {
		in, err := worldcup.ParseDate(stay.CheckIn)
		if err != nil {
			continue
		}
		out, err := worldcup.ParseDate(stay.CheckOut)
		if err != nil {
			continue
		}
		if !in.After(current) && current.Before(out) {
			hotel, ok := a.data.HotelByID(stay.HotelID)
			if !ok {
				continue
			}
			return StaySummary{
				Hotel:    hotel,
				CheckIn:  stay.CheckIn,
				CheckOut: stay.CheckOut,
				DaysLeft: int(out.Sub(current) / day),
			}, true
		}
	}
	return StaySummary{}, false
}

// NextStay finds the future stay with the earliest check-in (ties broken
// by stay-list order). If that stay's hotel id does not resolve, there is
// no next stay; the search does not fall back to a later one.
func (a *Aggregator) NextStay(fan worldcup.Fan, current time.Time) (StaySummary, bool) {
	var best worldcup.HotelStay
	var bestIn time.Time
	found := false

	for _, stay := range fan.HotelStays {
		in, err := worldcup.ParseDate(stay.CheckIn)
		if err != nil {
			continue
		}
		if in.After(current) && (!found || in.Before(bestIn)) {
			best = stay
			bestIn = in
			found = true
		}
	}
	if !found {
		return StaySummary{}, false
	}

	hotel, ok := a.data.HotelByID(best.HotelID)
	if !ok {
		return StaySummary{}, false
	}
	return StaySummary{
		Hotel:     hotel,
		CheckIn:   best.CheckIn,
		CheckOut:  best.CheckOut,
		DaysUntil: int(bestIn.Sub(current) / day),
	}, true
}

// Itinerary resolves every stay regardless of date, in stored order.
// Stays with an unresolvable hotel id are dropped.
func (a *Aggregator) Itinerary(fan worldcup.Fan) []StaySummary {
	var out []StaySummary
	for _, stay := range fan.HotelStays {
		hotel, ok := a.data.HotelByID(stay.HotelID)
		if !ok {
			continue
		}
		out = append(out, StaySummary{
			Hotel:    hotel,
			CheckIn:  stay.CheckIn,
			CheckOut: stay.CheckOut,
		})
	}
	return out
}

// AttendingGames resolves the fan's game ids against the derived game
// view, tags past/upcoming relative to current, attaches stadium info and
// sorts ascending by game date. Unresolvable ids contribute nothing.
func (a *Aggregator) AttendingGames(fan worldcup.Fan, current time.Time) []GameSummary {
	var out []GameSummary
	for _, id := range fan.AttendingGames {
		game, ok := a.data.GameByID(id)
		if !ok {
			continue
		}

		gs := GameSummary{Game: game}
		if gameDate, err := worldcup.ParseDate(game.Date); err == nil {
			gs.IsPast = gameDate.Before(current)
		}
		if stadium, ok := a.data.StadiumByID(game.StadiumID); ok {
			gs.StadiumName = stadium.Name
			gs.StadiumCity = stadium.City
		}
		out = append(out, gs)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Game.Date < out[j].Game.Date
	})
	return out
}

// TodaysGames returns the derived games scheduled on the given date, with
// stadium info attached.
func (a *Aggregator) TodaysGames(date string) []GameSummary {
	var out []GameSummary
	for _, game := range a.data.GamesOn(date) {
		gs := GameSummary{Game: game}
		if stadium, ok := a.data.StadiumByID(game.StadiumID); ok {
			gs.StadiumName = stadium.Name
			gs.StadiumCity = stadium.City
		}
		out = append(out, gs)
	}
	return out
}

// Context is the flattened briefing consumed by the prompt template.
type Context struct {
	FanID          int
	SimulatedDate  string
	FanName        string
	FanNationality string
	FanTeam        string
	FanHotel       string
	FanTimeline    string
	FanGames       string
	TodaysGames    string
	FanPreferences string
}

// Vars maps the context onto the exact placeholder keys the prompt
// template substitutes.
func (c Context) Vars() map[string]string {
	return map[string]string{
		"fan_id":             strconv.Itoa(c.FanID),
		"simulated_date":     c.SimulatedDate,
		"fan_name":           c.FanName,
		"fan_nationality":    c.FanNationality,
		"fan_team":           c.FanTeam,
		"fan_hotel":          c.FanHotel,
		"fan_hotel_timeline": c.FanTimeline,
		"fan_games":          c.FanGames,
		"todays_games":       c.TodaysGames,
		"fan_preferences":    c.FanPreferences,
	}
}

// BuildContext assembles the full briefing for one fan. It is recomputed
// on every chat turn, since the simulated date may have moved between
// turns. A date that does not parse is the only error path.
func (a *Aggregator) BuildContext(fan worldcup.Fan, date string) (Context, error) {
	current, err := worldcup.ParseDate(date)
	if err != nil {
		return Context{}, err
	}

	return Context{
		FanID:          fan.ID,
		SimulatedDate:  date,
		FanName:        fan.Name,
		FanNationality: fan.Nationality,
		FanTeam:        fan.TeamSupported,
		FanHotel:       a.HotelLine(fan, current),
		FanTimeline:    FormatItinerary(a.Itinerary(fan)),
		FanGames:       FormatAttending(a.AttendingGames(fan, current)),
		TodaysGames:    FormatToday(a.TodaysGames(date)),
		FanPreferences: FormatPreferences(fan.Preferences),
	}, nil
}
