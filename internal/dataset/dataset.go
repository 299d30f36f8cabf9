// Package dataset loads the seed JSON collections from a data directory
// and validates them before they are handed to the store. Loading happens
// once at startup; records are immutable afterwards.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// Load reads the six collections from dir. A missing file yields an empty
// collection plus a warning (the service still boots with partial data);
// malformed JSON or a malformed date fails loudly, since that is a data
// bug rather than missing data. The returned warnings also flag hotel
// stays that overlap, a known ambiguity the aggregator resolves by
// stay-list order.
func Load(dir string) (worldcup.Collections, []string, error) {
	var c worldcup.Collections
	var warnings []string

	files := []struct {
		name string
		dst  any
	}{
		{"games.json", &c.Games},
		{"stadiums.json", &c.Stadiums},
		{"fans.json", &c.Fans},
		{"hotels.json", &c.Hotels},
		{"restaurants.json", &c.Restaurants},
		{"attractions.json", &c.Attractions},
	}

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("%s not found, collection is empty", f.name))
			continue
		}
		if err != nil {
			return worldcup.Collections{}, nil, fmt.Errorf("reading %s: %w", f.name, err)
		}
		if err := json.Unmarshal(data, f.dst); err != nil {
			return worldcup.Collections{}, nil, fmt.Errorf("parsing %s: %w", f.name, err)
		}
	}

	if err := validate(c); err != nil {
		return worldcup.Collections{}, nil, err
	}
	warnings = append(warnings, stayWarnings(c.Fans)...)

	return c, warnings, nil
}

func validate(c worldcup.Collections) error {
	for _, g := range c.Games {
		if _, err := worldcup.ParseDate(g.Date); err != nil {
			return fmt.Errorf("game %d: %w", g.ID, err)
		}
		if g.Stage == "" {
			return fmt.Errorf("game %d: missing stage", g.ID)
		}
	}
	for _, f := range c.Fans {
		for i, stay := range f.HotelStays {
			in, err := worldcup.ParseDate(stay.CheckIn)
			if err != nil {
				return fmt.Errorf("fan %d stay %d: check_in: %w", f.ID, i, err)
			}
			out, err := worldcup.ParseDate(stay.CheckOut)
			if err != nil {
				return fmt.Errorf("fan %d stay %d: check_out: %w", f.ID, i, err)
			}
			if !in.Before(out) {
				return fmt.Errorf("fan %d stay %d: check_out %s is not after check_in %s",
					f.ID, i, stay.CheckOut, stay.CheckIn)
			}
		}
	}
	return nil
}

// stayWarnings reports pairs of stays for the same fan whose half-open
// intervals overlap. Overlaps are tolerated at query time (first stay in
// list order wins) but worth surfacing at load.
func stayWarnings(fans []worldcup.Fan) []string {
	var out []string
	for _, f := range fans {
		for i := 0; i < len(f.HotelStays); i++ {
			for j := i + 1; j < len(f.HotelStays); j++ {
				a, b := f.HotelStays[i], f.HotelStays[j]
				aIn, _ := worldcup.ParseDate(a.CheckIn)
				aOut, _ := worldcup.ParseDate(a.CheckOut)
				bIn, _ := worldcup.ParseDate(b.CheckIn)
				bOut, _ := worldcup.ParseDate(b.CheckOut)
				if aIn.Before(bOut) && bIn.Before(aOut) {
					out = append(out, fmt.Sprintf(
						"fan %d: hotel stays %d and %d overlap (%s-%s vs %s-%s)",
						f.ID, i, j, a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut))
				}
			}
		}
	}
	return out
}
