package settleService

import "strings"

// FindMatch locates the completed game a wager's free-text label refers to.
// The label is parsed into two team tokens (" vs ", then " @ ", then a loose
// first-token/last-token fallback) and each completed candidate is tested with
// a fuzzy name comparison in both home/away pairings. First fit wins.
func FindMatch(gameLabel string, candidates []ScoreRecord) (*ScoreRecord, error) {
	sideA, sideB, ok := ParseGameLabel(gameLabel)
	if !ok {
		return nil, ErrNoMatch
	}

	for i := range candidates {
		rec := &candidates[i]
		if !rec.Completed {
			continue
		}

		home := strings.TrimSpace(rec.HomeTeam)
		away := strings.TrimSpace(rec.AwayTeam)

		if teamsMatch(sideA, home) && teamsMatch(sideB, away) {
			return rec, nil
		}
		if teamsMatch(sideA, away) && teamsMatch(sideB, home) {
			return rec, nil
		}
	}

	return nil, ErrNoMatch
}

// ParseGameLabel splits a matchup label into its two team tokens. Reports
// false when no separator is present and the label has fewer than two
// whitespace tokens; the matcher must not guess beyond that.
func ParseGameLabel(gameLabel string) (string, string, bool) {
	if parts := strings.SplitN(gameLabel, " vs ", 2); len(parts) == 2 {
		return clean2(parts[0], parts[1])
	}
	if parts := strings.SplitN(gameLabel, " @ ", 2); len(parts) == 2 {
		return clean2(parts[0], parts[1])
	}

	fields := strings.Fields(gameLabel)
	if len(fields) >= 2 {
		return clean2(fields[0], fields[len(fields)-1])
	}

	return "", "", false
}

func clean2(a, b string) (string, string, bool) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}

// teamsMatch is deliberately permissive so that "Ole Miss" still matches
// "Ole Miss Rebels" and "Tulane" matches "Tulane Green Wave": exact
// case-insensitive equality, substring containment either way, or a shared
// word longer than 3 characters.
func teamsMatch(team1, team2 string) bool {
	t1 := strings.ToLower(strings.TrimSpace(team1))
	t2 := strings.ToLower(strings.TrimSpace(team2))
	if t1 == "" || t2 == "" {
		return false
	}

	if t1 == t2 {
		return true
	}
	if strings.Contains(t1, t2) || strings.Contains(t2, t1) {
		return true
	}

	for _, w1 := range strings.Fields(t1) {
		if len(w1) <= 3 {
			continue
		}
		for _, w2 := range strings.Fields(t2) {
			if len(w2) > 3 && w1 == w2 {
				return true
			}
		}
	}

	return false
}
