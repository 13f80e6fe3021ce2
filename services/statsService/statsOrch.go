package statsService

import (
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"brosBetTracker/models"
)

var juicePortion = decimal.NewFromFloat(0.1)

// BettorStats is one bettor's lifetime card. Pushes count as no-action:
// they appear in the push tally but are excluded from the win rate.
type BettorStats struct {
	Bettor      string
	TotalWagers int
	Wins        int
	Losses      int
	Pushes      int
	Pending     int
	TotalProfit decimal.Decimal
	JuicePaid   decimal.Decimal
	WinRate     decimal.Decimal
}

// Calculate aggregates the stats card for one bettor from their wagers.
func Calculate(bettor string, wagers []models.Wager) BettorStats {
	stats := BettorStats{
		Bettor:      bettor,
		TotalProfit: decimal.Zero,
		JuicePaid:   decimal.Zero,
		WinRate:     decimal.Zero,
	}

	for _, w := range wagers {
		if w.Bettor != bettor {
			continue
		}
		stats.TotalWagers++

		if !w.Settled {
			stats.Pending++
			continue
		}

		stats.TotalProfit = stats.TotalProfit.Add(w.Settlement.ProfitLoss)
		switch w.Settlement.Outcome {
		case models.OutcomeWin:
			stats.Wins++
		case models.OutcomeLoss:
			stats.Losses++
			if !w.WaiveJuice {
				stats.JuicePaid = stats.JuicePaid.Add(w.Stake.Mul(juicePortion))
			}
		case models.OutcomePush:
			stats.Pushes++
		}
	}

	decided := stats.Wins + stats.Losses
	if decided > 0 {
		stats.WinRate = decimal.NewFromInt(int64(stats.Wins)).
			Div(decimal.NewFromInt(int64(decided))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}
	stats.JuicePaid = stats.JuicePaid.Round(2)

	return stats
}

// Leaderboard loads every wager and returns a stats card per bettor, best
// total profit first.
func Leaderboard(db *gorm.DB) ([]BettorStats, error) {
	var wagers []models.Wager
	if err := db.Find(&wagers).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var board []BettorStats
	for _, w := range wagers {
		if seen[w.Bettor] {
			continue
		}
		seen[w.Bettor] = true
		board = append(board, Calculate(w.Bettor, wagers))
	}

	sort.Slice(board, func(i, j int) bool {
		return board[i].TotalProfit.GreaterThan(board[j].TotalProfit)
	})
	return board, nil
}

// RecentActivity returns the last limit settled wagers, most recent first.
func RecentActivity(db *gorm.DB, limit int) ([]models.Wager, error) {
	var wagers []models.Wager
	err := db.Where("settled = ?", true).
		Order("settlement_resolved_at DESC").
		Limit(limit).
		Find(&wagers).Error
	if err != nil {
		return nil, err
	}
	return wagers, nil
}
