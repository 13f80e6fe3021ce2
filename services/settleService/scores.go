package settleService

import "github.com/shopspring/decimal"

// ScoreRecord is one completed (or in-progress) game as seen by the engine.
// Feed-shape quirks are normalized away before a record gets here; nil scores
// mean the feed did not report a final for that side yet.
type ScoreRecord struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore *decimal.Decimal
	AwayScore *decimal.Decimal
	Completed bool
}
