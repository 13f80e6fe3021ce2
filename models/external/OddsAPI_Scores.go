package external

import (
	"encoding/json"
	"time"
)

// OddsAPI_ScoreEvent is one event from The Odds API v4 /scores endpoint.
// Current responses carry per-team scores in the Scores list; older cached
// payloads carried flat home_score/away_score fields instead, so both are
// declared and reconciled downstream.
type OddsAPI_ScoreEvent struct {
	ID           string              `json:"id"`
	SportKey     string              `json:"sport_key"`
	SportTitle   string              `json:"sport_title"`
	CommenceTime time.Time           `json:"commence_time"`
	Completed    bool                `json:"completed"`
	HomeTeam     string              `json:"home_team"`
	AwayTeam     string              `json:"away_team"`
	Scores       []OddsAPI_TeamScore `json:"scores"`
	HomeScore    *json.Number        `json:"home_score"`
	AwayScore    *json.Number        `json:"away_score"`
	LastUpdate   *time.Time          `json:"last_update"`
}

type OddsAPI_TeamScore struct {
	Name  string      `json:"name"`
	Score json.Number `json:"score"`
}
