package wagerService

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"brosBetTracker/models"
	"brosBetTracker/services/common"
	"brosBetTracker/services/settleService"
)

// PlaceWager validates and stores a new unsettled wager, creating the bettor
// row on first use.
func PlaceWager(db *gorm.DB, w models.Wager) (models.Wager, error) {
	if !w.Stake.IsPositive() {
		return models.Wager{}, settleService.ErrInvalidStake
	}
	switch w.Kind {
	case models.KindSpread:
		if strings.TrimSpace(w.Selection) == "" {
			return models.Wager{}, fmt.Errorf("spread wager needs a team selection")
		}
	case models.KindTotal:
		if w.Selection != models.PickOver && w.Selection != models.PickUnder {
			return models.Wager{}, settleService.ErrInvalidSelection
		}
	default:
		return models.Wager{}, settleService.ErrInvalidBetType
	}
	if _, _, ok := settleService.ParseGameLabel(w.GameLabel); !ok {
		return models.Wager{}, fmt.Errorf("unrecognized game label %q", w.GameLabel)
	}

	var bettor models.Bettor
	db.FirstOrCreate(&bettor, models.Bettor{Name: w.Bettor})

	w.Settled = false
	w.Settlement = models.Settlement{}
	if err := db.Create(&w).Error; err != nil {
		return models.Wager{}, err
	}
	return w, nil
}

// AutoSettleAll runs one settlement pass over every pending wager against the
// given score feed. Each wager is tried at most once; wagers whose game has
// no final yet stay pending, and a malformed wager is logged and skipped so
// it never sinks the rest of the batch. Returns the wagers settled this pass.
func AutoSettleAll(db *gorm.DB, records []settleService.ScoreRecord) ([]models.Wager, error) {
	var pending []models.Wager
	if err := db.Where("settled = ?", false).Find(&pending).Error; err != nil {
		return nil, err
	}

	var settledBatch []models.Wager
	for i := range pending {
		w := &pending[i]

		rec, err := settleService.FindMatch(w.GameLabel, records)
		if err != nil {
			// No completed game for this wager yet; retry next pass.
			continue
		}

		settlement, err := settleService.Resolve(*w, *rec, time.Now())
		if err != nil {
			common.SendError(db, "autoSettle", fmt.Errorf("wager %d: %w", w.ID, err))
			continue
		}

		w.Settlement = settlement
		w.Settled = true
		if err := db.Save(w).Error; err != nil {
			common.SendError(db, "autoSettle", fmt.Errorf("wager %d: %w", w.ID, err))
			continue
		}

		creditBettor(db, w.Bettor, settlement.ProfitLoss)
		settledBatch = append(settledBatch, *w)
	}
	return settledBatch, nil
}

// ReSettle re-runs settlement for one wager after a mis-scored game was
// corrected. The prior settlement is replaced wholesale and the bettor's
// bankroll adjusted by the difference between new and old profit/loss.
func ReSettle(db *gorm.DB, wagerID uint, records []settleService.ScoreRecord) (models.Wager, error) {
	var w models.Wager
	if err := db.First(&w, "id = ?", wagerID).Error; err != nil {
		return models.Wager{}, err
	}

	rec, err := settleService.FindMatch(w.GameLabel, records)
	if err != nil {
		return models.Wager{}, err
	}

	settlement, err := settleService.Resolve(w, *rec, time.Now())
	if err != nil {
		return models.Wager{}, err
	}

	delta := settlement.ProfitLoss
	if w.Settled {
		delta = delta.Sub(w.Settlement.ProfitLoss)
	}

	w.Settlement = settlement
	w.Settled = true
	if err := db.Save(&w).Error; err != nil {
		return models.Wager{}, err
	}

	creditBettor(db, w.Bettor, delta)
	return w, nil
}

func creditBettor(db *gorm.DB, name string, delta decimal.Decimal) {
	if delta.IsZero() {
		return
	}

	var bettor models.Bettor
	db.First(&bettor, "name = ?", name)
	if bettor.ID == 0 {
		return
	}

	bettor.Bankroll = bettor.Bankroll.Add(delta)
	db.Save(&bettor)
}
