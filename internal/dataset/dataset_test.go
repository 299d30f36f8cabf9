package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadFullDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "games.json", `[
		{"id": 1, "date": "2034-06-13", "time": "18:00", "stage": "group",
		 "team_a": "Mexico", "team_b": "Poland", "stadium_id": 1}
	]`)
	writeFile(t, dir, "stadiums.json", `[{"id": 1, "name": "NEOM Stadium", "city": "NEOM"}]`)
	writeFile(t, dir, "fans.json", `[
		{"id": 1, "name": "Carlos", "nationality": "Mexico", "team_supported": "Mexico",
		 "hotel_stays": [{"hotel_id": 1, "check_in": "2034-06-10", "check_out": "2034-06-14"}],
		 "attending_games": [1],
		 "preferences": {"food": ["tacos"], "budget": "medium"}}
	]`)
	writeFile(t, dir, "hotels.json", `[{"id": 1, "name": "Jeddah Hilton", "city": "Jeddah"}]`)
	writeFile(t, dir, "restaurants.json", `[]`)
	writeFile(t, dir, "attractions.json", `[]`)

	c, warnings, err := Load(dir)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(c.Games) != 1 || len(c.Fans) != 1 {
		t.Fatalf("unexpected collection sizes: %d games, %d fans", len(c.Games), len(c.Fans))
	}
	if c.Fans[0].HotelStays[0].CheckIn != "2034-06-10" {
		t.Errorf("stay not parsed: %+v", c.Fans[0].HotelStays[0])
	}
}

func TestLoadMissingFileWarnsAndContinues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "games.json", `[]`)
	// The other five files are absent.

	c, warnings, err := Load(dir)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if len(warnings) != 5 {
		t.Fatalf("expected 5 missing-file warnings, got %d: %v", len(warnings), warnings)
	}
	if c.Fans != nil && len(c.Fans) != 0 {
		t.Errorf("expected empty fans, got %d", len(c.Fans))
	}
}

func TestLoadMalformedJSONFailsLoudly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "games.json", `{not json`)

	if _, _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadBadGameDateFailsLoudly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "games.json", `[
		{"id": 7, "date": "June 13th", "time": "18:00", "stage": "group",
		 "team_a": "A", "team_b": "B", "stadium_id": 1}
	]`)

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for malformed game date")
	}
	if !strings.Contains(err.Error(), "game 7") {
		t.Errorf("error should name the game: %v", err)
	}
}

func TestLoadStayOrderValidation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fans.json", `[
		{"id": 3, "name": "X", "nationality": "Y", "team_supported": "Z",
		 "hotel_stays": [{"hotel_id": 1, "check_in": "2034-06-14", "check_out": "2034-06-10"}]}
	]`)

	if _, _, err := Load(dir); err == nil {
		t.Fatal("expected error for check_out before check_in")
	}
}

func TestLoadOverlappingStaysWarn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fans.json", `[
		{"id": 2, "name": "X", "nationality": "Y", "team_supported": "Z",
		 "hotel_stays": [
			{"hotel_id": 1, "check_in": "2034-06-10", "check_out": "2034-06-14"},
			{"hotel_id": 2, "check_in": "2034-06-12", "check_out": "2034-06-16"}
		 ]}
	]`)

	_, warnings, err := Load(dir)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	var found bool
	for _, w := range warnings {
		if strings.Contains(w, "overlap") && strings.Contains(w, "fan 2") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an overlap warning, got %v", warnings)
	}
}

// Adjacent stays share a boundary day that belongs to the later stay
// only; they must not be reported as overlapping.
func TestLoadAdjacentStaysDoNotWarn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fans.json", `[
		{"id": 4, "name": "X", "nationality": "Y", "team_supported": "Z",
		 "hotel_stays": [
			{"hotel_id": 1, "check_in": "2034-06-10", "check_out": "2034-06-13"},
			{"hotel_id": 2, "check_in": "2034-06-13", "check_out": "2034-06-16"}
		 ]}
	]`)

	_, warnings, err := Load(dir)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	for _, w := range warnings {
		if strings.Contains(w, "overlap") {
			t.Errorf("adjacent stays reported as overlap: %s", w)
		}
	}
}
