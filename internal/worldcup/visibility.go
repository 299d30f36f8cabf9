package worldcup

import "time"

// DeriveVisibleGames rebuilds the redaction-applied view of the raw game
// list for the given simulated date. The raw list is never mutated: every
// element of the returned slice is an independent copy.
//
// One rule applies per game, keyed on stage and the date-only relation
// between the simulated date and the game date:
//
//   - knockout stage, before the game date: the matchup itself is unknown,
//     so team names collapse to TBD and result/winner are cleared;
//   - knockout stage, on the game date: teams are visible but the match is
//     not final, so result/winner are cleared;
//   - group stage, before the game date: matchups are published in advance,
//     so only result/winner are cleared;
//   - game date passed: nothing is redacted.
//
// The function is total and stateless; calling it twice with the same date
// yields structurally equal output. Game dates are validated at load time,
// so parsing here cannot fail on store-held records.
func DeriveVisibleGames(raw []Game, current time.Time) []Game {
	derived := make([]Game, len(raw))
	for i, g := range raw {
		gameDate, _ := ParseDate(g.Date)

		switch {
		case g.Stage != StageGroup && current.Before(gameDate):
			g.TeamA = TBD
			g.TeamB = TBD
			g.Result = nil
			g.Winner = ""
		case g.Stage != StageGroup && current.Equal(gameDate):
			g.Result = nil
			g.Winner = ""
		case g.Stage == StageGroup && current.Before(gameDate):
			g.Result = nil
			g.Winner = ""
		default:
			if g.Result != nil {
				r := *g.Result
				g.Result = &r
			}
		}

		derived[i] = g
	}
	return derived
}
