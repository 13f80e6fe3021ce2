package settleService

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"brosBetTracker/models"
)

// juiceRate is the flat 10% vig surcharged onto a losing stake unless the
// wager was booked juice-free.
var juiceRate = decimal.NewFromFloat(1.1)

// Resolve settles one wager against the final score of its matched game and
// returns a fresh Settlement. It never mutates the wager and performs no I/O:
// attaching the result and deciding whether re-settlement is allowed is the
// caller's job. All money math is decimal; the profit/loss is rounded to
// 2 places, ties away from zero.
func Resolve(w models.Wager, rec ScoreRecord, resolvedAt time.Time) (models.Settlement, error) {
	if rec.HomeScore == nil || rec.AwayScore == nil {
		return models.Settlement{}, ErrMissingScore
	}
	if !w.Stake.IsPositive() {
		return models.Settlement{}, ErrInvalidStake
	}

	homeScore := *rec.HomeScore
	awayScore := *rec.AwayScore

	var outcome string
	switch w.Kind {
	case models.KindSpread:
		outcome = resolveSpread(w, rec, homeScore, awayScore)
	case models.KindTotal:
		var err error
		outcome, err = resolveTotal(w, homeScore, awayScore)
		if err != nil {
			return models.Settlement{}, err
		}
	default:
		return models.Settlement{}, ErrInvalidBetType
	}

	profitLoss := decimal.Zero
	payout := decimal.Zero
	switch outcome {
	case models.OutcomeWin:
		profitLoss = w.Stake
		payout = w.Stake
	case models.OutcomeLoss:
		if w.WaiveJuice {
			profitLoss = w.Stake.Neg()
		} else {
			profitLoss = w.Stake.Mul(juiceRate).Neg()
		}
	case models.OutcomePush:
		payout = w.Stake
	}

	return models.Settlement{
		Outcome:        outcome,
		ProfitLoss:     profitLoss.Round(2),
		Payout:         payout.Round(2),
		ResolvedAt:     &resolvedAt,
		FinalScoreText: fmt.Sprintf("%s %s - %s %s", rec.HomeTeam, homeScore, awayScore, rec.AwayTeam),
	}, nil
}

func resolveSpread(w models.Wager, rec ScoreRecord, homeScore, awayScore decimal.Decimal) string {
	backed, opponent := homeScore, awayScore
	if !backsHomeTeam(w.Selection, rec.HomeTeam, rec.AwayTeam, w.Line) {
		backed, opponent = awayScore, homeScore
	}

	adjusted := backed.Add(w.Line)
	switch adjusted.Cmp(opponent) {
	case 1:
		return models.OutcomeWin
	case -1:
		return models.OutcomeLoss
	}
	return models.OutcomePush
}

// backsHomeTeam pins the wager's selection to one side of the score record.
// Exact normalized equality wins, then substring containment either way.
// When neither side matches at all, fall back to the line sign: a negative
// line usually marks the favorite laying points at home. That guess is a
// known weak point of the legacy tracker, kept for parity with its archive.
func backsHomeTeam(selection, homeTeam, awayTeam string, line decimal.Decimal) bool {
	pick := squashName(selection)
	home := squashName(homeTeam)
	away := squashName(awayTeam)

	if pick != "" {
		switch {
		case pick == home:
			return true
		case pick == away:
			return false
		case strings.Contains(home, pick) || strings.Contains(pick, home):
			return true
		case strings.Contains(away, pick) || strings.Contains(pick, away):
			return false
		}
	}

	return line.IsNegative()
}

func squashName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

func resolveTotal(w models.Wager, homeScore, awayScore decimal.Decimal) (string, error) {
	total := homeScore.Add(awayScore)

	switch w.Selection {
	case models.PickOver:
		switch total.Cmp(w.Line) {
		case 1:
			return models.OutcomeWin, nil
		case -1:
			return models.OutcomeLoss, nil
		}
		return models.OutcomePush, nil
	case models.PickUnder:
		switch total.Cmp(w.Line) {
		case -1:
			return models.OutcomeWin, nil
		case 1:
			return models.OutcomeLoss, nil
		}
		return models.OutcomePush, nil
	}

	return "", ErrInvalidSelection
}
