// Package worldcup defines the core domain types and the in-memory store.
// Types here mirror the seed JSON collections; everything is pure Go.
package worldcup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TBD is the sentinel team name for knockout slots that are not yet decided.
const TBD = "TBD"

// StageGroup is the only stage whose matchups are known in advance.
// Knockout stages are round_of_32, round_of_16, quarter_final,
// semi_final and final.
const StageGroup = "group"

// DateLayout is the calendar-date format used everywhere in the system.
// All comparisons are date-only; there is no time-of-day ordering.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Result is a final score. Present only on games whose date has passed
// relative to the simulated date.
type Result struct {
	ScoreA int `json:"score_a"`
	ScoreB int `json:"score_b"`
}

type Game struct {
	ID        int     `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Stage     string  `json:"stage"`
	Group     string  `json:"group,omitempty"`
	TeamA     string  `json:"team_a"`
	TeamB     string  `json:"team_b"`
	StadiumID int     `json:"stadium_id"`
	Result    *Result `json:"result,omitempty"`
	Winner    string  `json:"winner,omitempty"`
}

type Stadium struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity,omitempty"`
}

type Hotel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// HotelStay is a half-open booking interval [CheckIn, CheckOut): a fan
// holds the stay from check-in day up to but excluding checkout day.
type HotelStay struct {
	HotelID  int    `json:"hotel_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type Fan struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Nationality    string      `json:"nationality"`
	TeamSupported  string      `json:"team_supported"`
	HotelStays     []HotelStay `json:"hotel_stays,omitempty"`
	AttendingGames []int       `json:"attending_games,omitempty"`
	Preferences    Preferences `json:"preferences,omitempty"`
}

type Restaurant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	Cuisine     string `json:"cuisine,omitempty"`
	Description string `json:"description,omitempty"`
}

type Attraction struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Preference is one category of fan preferences. List records whether the
// source JSON held an array, so marshalling round-trips the original shape.
type Preference struct {
	Category string
	Values   []string
	List     bool
}

// Preferences preserves the key order of the source JSON object, which is
// also the iteration order used when flattening preferences into text.
type Preferences []Preference

func (p *Preferences) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("preferences: expected JSON object")
	}

	var out Preferences
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		pref := Preference{Category: category}
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			pref.Values = list
			pref.List = true
		} else {
			var single string
			if err := json.Unmarshal(raw, &single); err != nil {
				return fmt.Errorf("preferences: category %q must be a string or list of strings", category)
			}
			pref.Values = []string{single}
		}
		out = append(out, pref)
	}

	*p = out
	return nil
}

func (p Preferences) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pref := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pref.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var val []byte
		if pref.List {
			val, err = json.Marshal(pref.Values)
		} else if len(pref.Values) > 0 {
			val, err = json.Marshal(pref.Values[0])
		} else {
			val = []byte(`""`)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Collections bundles the six record collections loaded at startup.
type Collections struct {
	Games       []Game
	Stadiums    []Stadium
	Fans        []Fan
	Hotels      []Hotel
	Restaurants []Restaurant
	Attractions []Attraction
}
