package settleService

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"brosBetTracker/models"
)

var settleTime = time.Date(2025, time.November, 2, 17, 30, 0, 0, time.UTC)

func spreadWager(selection, line, stake string, waiveJuice bool) models.Wager {
	return models.Wager{
		Kind:       models.KindSpread,
		Selection:  selection,
		Line:       decimal.RequireFromString(line),
		Stake:      decimal.RequireFromString(stake),
		WaiveJuice: waiveJuice,
	}
}

func totalWager(selection, line, stake string, waiveJuice bool) models.Wager {
	return models.Wager{
		Kind:       models.KindTotal,
		Selection:  selection,
		Line:       decimal.RequireFromString(line),
		Stake:      decimal.RequireFromString(stake),
		WaiveJuice: waiveJuice,
	}
}

func TestResolveSpread(t *testing.T) {
	game := completedGame("Ole Miss Rebels", "Tulane Green Wave", "24", "20")

	tests := []struct {
		name           string
		wager          models.Wager
		record         ScoreRecord
		wantOutcome    string
		wantProfitLoss string
	}{
		{
			name:           "home favorite covers",
			wager:          spreadWager("Ole Miss", "-3.5", "100", false),
			record:         game,
			wantOutcome:    models.OutcomeWin,
			wantProfitLoss: "100",
		},
		{
			name:           "home favorite fails to cover",
			wager:          spreadWager("Ole Miss", "-3.5", "100", false),
			record:         completedGame("Ole Miss Rebels", "Tulane Green Wave", "24", "21"),
			wantOutcome:    models.OutcomeLoss,
			wantProfitLoss: "-110",
		},
		{
			name:           "no-juice loss costs only the stake",
			wager:          spreadWager("Ole Miss", "-3.5", "100", true),
			record:         completedGame("Ole Miss Rebels", "Tulane Green Wave", "24", "21"),
			wantOutcome:    models.OutcomeLoss,
			wantProfitLoss: "-100",
		},
		{
			name:           "underdog keeps it close",
			wager:          spreadWager("Tulane", "7.5", "100", false),
			record:         game,
			wantOutcome:    models.OutcomeWin,
			wantProfitLoss: "100",
		},
		{
			name:           "spread push",
			wager:          spreadWager("Ole Miss", "-4", "100", false),
			record:         game,
			wantOutcome:    models.OutcomePush,
			wantProfitLoss: "0",
		},
		{
			name:           "mascot-suffixed pick still matches away side",
			wager:          spreadWager("Green Wave", "4.5", "100", false),
			record:         game,
			wantOutcome:    models.OutcomeWin,
			wantProfitLoss: "100",
		},
		{
			name:           "unmatched pick falls back to line sign (negative = home)",
			wager:          spreadWager("OM", "-3.5", "100", false),
			record:         game,
			wantOutcome:    models.OutcomeWin,
			wantProfitLoss: "100",
		},
		{
			name:           "unmatched pick falls back to line sign (positive = away)",
			wager:          spreadWager("TGW", "3.5", "100", false),
			record:         game,
			wantOutcome:    models.OutcomeLoss,
			wantProfitLoss: "-110",
		},
		{
			name:           "fractional juice rounds ties away from zero",
			wager:          spreadWager("Ole Miss", "-3.5", "50.25", false),
			record:         completedGame("Ole Miss Rebels", "Tulane Green Wave", "24", "21"),
			wantOutcome:    models.OutcomeLoss,
			wantProfitLoss: "-55.28",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settlement, err := Resolve(tc.wager, tc.record, settleTime)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if settlement.Outcome != tc.wantOutcome {
				t.Errorf("outcome = %s, want %s", settlement.Outcome, tc.wantOutcome)
			}
			want := decimal.RequireFromString(tc.wantProfitLoss)
			if !settlement.ProfitLoss.Equal(want) {
				t.Errorf("profit/loss = %s, want %s", settlement.ProfitLoss, want)
			}
		})
	}
}

func TestResolveTotal(t *testing.T) {
	tests := []struct {
		name           string
		wager          models.Wager
		record         ScoreRecord
		wantOutcome    string
		wantProfitLoss string
	}{
		{
			name:           "over cashes",
			wager:          totalWager(models.PickOver, "48.5", "100", false),
			record:         completedGame("Ravens", "Bengals", "28", "22"),
			wantOutcome:    models.OutcomeWin,
			wantProfitLoss: "100",
		},
		{
			name:           "over misses",
			wager:          totalWager(models.PickOver, "48.5", "100", false),
			record:         completedGame("Ravens", "Bengals", "24", "21"),
			wantOutcome:    models.OutcomeLoss,
			wantProfitLoss: "-110",
		},
		{
			name:           "over lands exactly on the number",
			wager:          totalWager(models.PickOver, "48", "100", false),
			record:         completedGame("Ravens", "Bengals", "24", "24"),
			wantOutcome:    models.OutcomePush,
			wantProfitLoss: "0",
		},
		{
			name:           "under cashes",
			wager:          totalWager(models.PickUnder, "48.5", "100", false),
			record:         completedGame("Ravens", "Bengals", "24", "21"),
			wantOutcome:    models.OutcomeWin,
			wantProfitLoss: "100",
		},
		{
			name:           "under misses",
			wager:          totalWager(models.PickUnder, "48.5", "100", false),
			record:         completedGame("Ravens", "Bengals", "28", "22"),
			wantOutcome:    models.OutcomeLoss,
			wantProfitLoss: "-110",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settlement, err := Resolve(tc.wager, tc.record, settleTime)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if settlement.Outcome != tc.wantOutcome {
				t.Errorf("outcome = %s, want %s", settlement.Outcome, tc.wantOutcome)
			}
			want := decimal.RequireFromString(tc.wantProfitLoss)
			if !settlement.ProfitLoss.Equal(want) {
				t.Errorf("profit/loss = %s, want %s", settlement.ProfitLoss, want)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	game := completedGame("Ravens", "Bengals", "28", "22")

	tests := []struct {
		name    string
		wager   models.Wager
		record  ScoreRecord
		wantErr error
	}{
		{
			name:    "missing home score",
			wager:   totalWager(models.PickOver, "48.5", "100", false),
			record:  ScoreRecord{HomeTeam: "Ravens", AwayTeam: "Bengals", AwayScore: decPtr("22"), Completed: true},
			wantErr: ErrMissingScore,
		},
		{
			name:    "missing away score",
			wager:   totalWager(models.PickOver, "48.5", "100", false),
			record:  ScoreRecord{HomeTeam: "Ravens", AwayTeam: "Bengals", HomeScore: decPtr("28"), Completed: true},
			wantErr: ErrMissingScore,
		},
		{
			name:    "zero stake",
			wager:   totalWager(models.PickOver, "48.5", "0", false),
			record:  game,
			wantErr: ErrInvalidStake,
		},
		{
			name:    "negative stake",
			wager:   totalWager(models.PickOver, "48.5", "-5", false),
			record:  game,
			wantErr: ErrInvalidStake,
		},
		{
			name:    "unknown bet kind",
			wager:   models.Wager{Kind: "moneyline", Stake: decimal.RequireFromString("100")},
			record:  game,
			wantErr: ErrInvalidBetType,
		},
		{
			name:    "bad total selection",
			wager:   totalWager("Middle", "48.5", "100", false),
			record:  game,
			wantErr: ErrInvalidSelection,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.wager, tc.record, settleTime)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Resolve err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	wager := spreadWager("Ole Miss", "-3.5", "100", false)
	game := completedGame("Ole Miss Rebels", "Tulane Green Wave", "24", "20")

	first, err := Resolve(wager, game, settleTime)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	second, err := Resolve(wager, game, settleTime)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("settlements differ across identical resolves:\n%+v\n%+v", first, second)
	}
}

func TestResolveDoesNotMutateWager(t *testing.T) {
	wager := spreadWager("Ole Miss", "-3.5", "100", false)
	before := wager
	game := completedGame("Ole Miss Rebels", "Tulane Green Wave", "24", "20")

	if _, err := Resolve(wager, game, settleTime); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if !reflect.DeepEqual(before, wager) {
		t.Errorf("wager mutated by Resolve: %+v", wager)
	}
}

func TestResolveFinalScoreText(t *testing.T) {
	wager := totalWager(models.PickOver, "48.5", "100", false)
	game := completedGame("Ole Miss Rebels", "Tulane Green Wave", "38", "21")

	settlement, err := Resolve(wager, game, settleTime)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	want := "Ole Miss Rebels 38 - 21 Tulane Green Wave"
	if settlement.FinalScoreText != want {
		t.Errorf("final score text = %q, want %q", settlement.FinalScoreText, want)
	}
	if !settlement.Payout.Equal(decimal.RequireFromString("100")) {
		t.Errorf("payout = %s, want 100", settlement.Payout)
	}
}
