package worldcup

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultDate is the simulated date the store starts on.
const DefaultDate = "2034-06-13"

// Store holds the immutable record collections plus the one piece of
// process-wide mutable state: the simulated date and the derived game list
// computed from it. The two are always replaced together under the same
// lock, so readers observe either the old pair or the new pair, never a
// torn mix.
type Store struct {
	stadiums    []Stadium
	fans        []Fan
	hotels      []Hotel
	restaurants []Restaurant
	attractions []Attraction
	raw         []Game

	mu      sync.RWMutex
	date    string
	dateVal time.Time
	derived []Game
}

// NewStore validates the simulated date, derives the initial visible game
// list and returns a ready store. The collections are not copied; callers
// hand over ownership and must not mutate them afterwards.
func NewStore(c Collections, date string) (*Store, error) {
	t, err := ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("simulated date: %w", err)
	}
	return &Store{
		stadiums:    c.Stadiums,
		fans:        c.Fans,
		hotels:      c.Hotels,
		restaurants: c.Restaurants,
		attractions: c.Attractions,
		raw:         c.Games,
		date:        date,
		dateVal:     t,
		derived:     DeriveVisibleGames(c.Games, t),
	}, nil
}

// Date returns the current simulated date as YYYY-MM-DD.
func (s *Store) Date() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.date
}

// DateValue returns the current simulated date as a time.Time.
func (s *Store) DateValue() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dateVal
}

// SetDate updates the simulated date and recomputes the derived game list
// as one atomic unit. A date that does not parse is rejected before any
// state changes; the previous clock value and derived list stay in place.
func (s *Store) SetDate(date string) error {
	t, err := ParseDate(date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = date
	s.dateVal = t
	s.derived = DeriveVisibleGames(s.raw, t)
	return nil
}

// Games returns a snapshot of the derived (redaction-applied) game list.
func (s *Store) Games() []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Game(nil), s.derived...)
}

// GameByID looks up a derived game.
func (s *Store) GameByID(id int) (Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.derived {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// GamesOn returns all derived games scheduled on the given date.
func (s *Store) GamesOn(date string) []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Game
	for _, g := range s.derived {
		if g.Date == date {
			out = append(out, g)
		}
	}
	return out
}

// GamesForTeam returns derived games involving the team (case-insensitive
// substring match on either side). If a date is given, games strictly
// before it are dropped.
func (s *Store) GamesForTeam(team, date string) ([]Game, error) {
	var cutoff time.Time
	if date != "" {
		t, err := ParseDate(date)
		if err != nil {
			return nil, err
		}
		cutoff = t
	}

	team = strings.ToLower(team)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Game
	for _, g := range s.derived {
		if !strings.Contains(strings.ToLower(g.TeamA), team) &&
			!strings.Contains(strings.ToLower(g.TeamB), team) {
			continue
		}
		if date != "" {
			gameDate, _ := ParseDate(g.Date)
			if gameDate.Before(cutoff) {
				continue
			}
		}
		out = append(out, g)
	}
	return out, nil
}

// GamesWithinWeek returns derived games with a date in [date-7d, date+7d):
// inclusive a week into the past, exclusive a week into the future.
func (s *Store) GamesWithinWeek(date string) ([]Game, error) {
	t, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	weekAgo := t.AddDate(0, 0, -7)
	weekLater := t.AddDate(0, 0, 7)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Game
	for _, g := range s.derived {
		gameDate, _ := ParseDate(g.Date)
		if !gameDate.Before(weekAgo) && gameDate.Before(weekLater) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *Store) Stadiums() []Stadium { return s.stadiums }

func (s *Store) StadiumByID(id int) (Stadium, bool) {
	for _, st := range s.stadiums {
		if st.ID == id {
			return st, true
		}
	}
	return Stadium{}, false
}

func (s *Store) Fans() []Fan { return s.fans }

func (s *Store) FanByID(id int) (Fan, bool) {
	for _, f := range s.fans {
		if f.ID == id {
			return f, true
		}
	}
	return Fan{}, false
}

func (s *Store) Hotels() []Hotel { return s.hotels }

func (s *Store) HotelByID(id int) (Hotel, bool) {
	for _, h := range s.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}

func (s *Store) Restaurants() []Restaurant { return s.restaurants }

// RestaurantsByCity filters restaurants by case-insensitive exact city
// match. Records without a city never match.
func (s *Store) RestaurantsByCity(city string) []Restaurant {
	var out []Restaurant
	for _, r := range s.restaurants {
		if r.City != "" && strings.EqualFold(r.City, city) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) Attractions() []Attraction { return s.attractions }

// AttractionsByCity filters attractions by case-insensitive exact city
// match. Records without a city never match.
func (s *Store) AttractionsByCity(city string) []Attraction {
	var out []Attraction
	for _, a := range s.attractions {
		if a.City != "" && strings.EqualFold(a.City, city) {
			out = append(out, a)
		}
	}
	return out
}
