package extService

import (
	"fmt"

	"brosBetTracker/models/external"
)

var preferredBooks = []string{"draftkings", "fanduel", "bovada", "betmgm"}

// PickBookmaker chooses the event's line source, preferring the books the
// group actually bets at and falling back to whichever book is listed first.
func PickBookmaker(ev external.OddsAPI_OddsEvent) (*external.OddsAPI_Bookmaker, error) {
	for _, book := range preferredBooks {
		for i := range ev.Bookmakers {
			if ev.Bookmakers[i].Key == book {
				return &ev.Bookmakers[i], nil
			}
		}
	}
	if len(ev.Bookmakers) > 0 {
		return &ev.Bookmakers[0], nil
	}
	return nil, fmt.Errorf("no bookmakers listed for %s @ %s", ev.AwayTeam, ev.HomeTeam)
}

// FormatEventLine renders one matchup's current spread and total for the
// daily lines announcement, e.g.
// "Tulane @ Ole Miss: Ole Miss -6.5, O/U 48.5".
func FormatEventLine(ev external.OddsAPI_OddsEvent) (string, error) {
	book, err := PickBookmaker(ev)
	if err != nil {
		return "", err
	}

	line := fmt.Sprintf("%s @ %s:", ev.AwayTeam, ev.HomeTeam)
	found := false

	for _, market := range book.Markets {
		switch market.Key {
		case "spreads":
			for _, outcome := range market.Outcomes {
				if outcome.Name == ev.HomeTeam && outcome.Point != nil {
					line += fmt.Sprintf(" %s %s,", ev.HomeTeam, formatPoint(*outcome.Point))
					found = true
				}
			}
		case "totals":
			for _, outcome := range market.Outcomes {
				if outcome.Name == "Over" && outcome.Point != nil {
					line += fmt.Sprintf(" O/U %.1f,", *outcome.Point)
					found = true
				}
			}
		}
	}

	if !found {
		return "", fmt.Errorf("no spread or total listed for %s @ %s", ev.AwayTeam, ev.HomeTeam)
	}
	return line[:len(line)-1], nil
}

func formatPoint(point float64) string {
	if point > 0 {
		return fmt.Sprintf("+%.1f", point)
	}
	return fmt.Sprintf("%.1f", point)
}
