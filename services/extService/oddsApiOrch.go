package extService

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"brosBetTracker/models/external"
	"brosBetTracker/services/common"
	"brosBetTracker/services/settleService"
)

// SportMap translates the tracker's sport labels to The Odds API sport keys.
var SportMap = map[string]string{
	"NFL":   "americanfootball_nfl",
	"NCAAF": "americanfootball_ncaaf",
}

func sportKey(sport string) (string, error) {
	key, ok := SportMap[sport]
	if !ok {
		return "", fmt.Errorf("unknown sport %q", sport)
	}
	return key, nil
}

// GetScores fetches final (and in-progress) scores for the given sport going
// back daysFrom days.
func GetScores(sport string, daysFrom int) ([]external.OddsAPI_ScoreEvent, error) {
	key, err := sportKey(sport)
	if err != nil {
		return nil, err
	}

	scoresUrl := fmt.Sprintf("https://api.the-odds-api.com/v4/sports/%s/scores?daysFrom=%d", key, daysFrom)
	resp, err := common.OddsAPIWrapper(scoresUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var events []external.OddsAPI_ScoreEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetOdds fetches current spread/total/h2h lines for the given sport.
func GetOdds(sport string) ([]external.OddsAPI_OddsEvent, error) {
	key, err := sportKey(sport)
	if err != nil {
		return nil, err
	}

	oddsUrl := fmt.Sprintf("https://api.the-odds-api.com/v4/sports/%s/odds?regions=us&markets=h2h,spreads,totals&oddsFormat=american", key)
	resp, err := common.OddsAPIWrapper(oddsUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var events []external.OddsAPI_OddsEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

// ScoreRecords normalizes a scores response into the engine's shape. This is
// the single place feed quirks are handled; past that point a record either
// has both scores or it doesn't.
func ScoreRecords(events []external.OddsAPI_ScoreEvent) []settleService.ScoreRecord {
	records := make([]settleService.ScoreRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, ScoreRecordFromEvent(ev))
	}
	return records
}

// ScoreRecordFromEvent maps one feed event to a ScoreRecord. Scores usually
// arrive as a two-element {name, score} list in no guaranteed order, so each
// entry is matched to the home/away label by name; legacy payloads with flat
// home_score/away_score fields are accepted too.
func ScoreRecordFromEvent(ev external.OddsAPI_ScoreEvent) settleService.ScoreRecord {
	rec := settleService.ScoreRecord{
		HomeTeam:  ev.HomeTeam,
		AwayTeam:  ev.AwayTeam,
		Completed: ev.Completed || len(ev.Scores) > 0,
	}

	if len(ev.Scores) >= 2 {
		for i := range ev.Scores {
			score, err := parseScore(ev.Scores[i].Score)
			if err != nil {
				continue
			}
			switch ev.Scores[i].Name {
			case ev.HomeTeam:
				rec.HomeScore = score
			case ev.AwayTeam:
				rec.AwayScore = score
			}
		}
		// Unnamed entries: fall back to the list order the feed sent.
		if rec.HomeScore == nil && rec.AwayScore == nil {
			rec.HomeScore, _ = parseScore(ev.Scores[0].Score)
			rec.AwayScore, _ = parseScore(ev.Scores[1].Score)
		}
		return rec
	}

	if ev.HomeScore != nil {
		rec.HomeScore, _ = parseScore(*ev.HomeScore)
	}
	if ev.AwayScore != nil {
		rec.AwayScore, _ = parseScore(*ev.AwayScore)
	}
	return rec
}

func parseScore(raw json.Number) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty score")
	}
	d, err := decimal.NewFromString(raw.String())
	if err != nil {
		return nil, err
	}
	return &d, nil
}
