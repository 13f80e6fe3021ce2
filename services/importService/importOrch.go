package importService

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"brosBetTracker/models"
)

const migrationName = "historical_csv_import"

var (
	betPattern   = regexp.MustCompile(`^(.+?)\s*([+-])(\d+\.?\d*)$`)
	defaultStake = decimal.NewFromInt(50)
	juiceRate    = decimal.NewFromFloat(1.1)
)

// ParseBetString splits a spread description like "Miami +7.5" or
// "Ole Miss Rebels -6" into the team and the signed line.
func ParseBetString(betStr string) (string, decimal.Decimal, error) {
	match := betPattern.FindStringSubmatch(strings.TrimSpace(betStr))
	if match == nil {
		return "", decimal.Decimal{}, fmt.Errorf("unparseable bet %q", betStr)
	}

	team := strings.TrimSpace(match[1])
	line, err := decimal.NewFromString(match[3])
	if err != nil {
		return "", decimal.Decimal{}, err
	}
	if match[2] == "-" {
		line = line.Neg()
	}
	return team, line, nil
}

// ParseCurrency reads amounts exported by the old tracker, like "+$50.00",
// "$-55.00" or "$50.00".
func ParseCurrency(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(cleaned)
}

// RunHistoricalImport loads the old tracker's "All Bets" CSV export once.
// A second run is a no-op guarded by the migrations table. Rows that fail to
// parse are logged and skipped; settled rows are stored with their recomputed
// settlement so the juice rule stays consistent with the engine's.
func RunHistoricalImport(db *gorm.DB, csvFile io.Reader) error {
	var existing models.Migration
	result := db.Where("name = ?", migrationName).First(&existing)
	if result.Error == nil && existing.ID != 0 {
		log.Println("Historical CSV import has already been executed. Skipping.")
		return nil
	}

	reader := csv.NewReader(csvFile)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("error reading CSV header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	imported := 0
	seen := make(map[string]bool)
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping row %d: %v", rowNum, err)
			continue
		}

		wager, id, err := wagerFromRow(col, row)
		if err != nil {
			log.Printf("Skipping row %d: %v", rowNum, err)
			continue
		}
		if id != "" && seen[id] {
			log.Printf("Skipping row %d: duplicate ID %s", rowNum, id)
			continue
		}
		if id != "" {
			seen[id] = true
		}

		if err := db.Create(&wager).Error; err != nil {
			return fmt.Errorf("error inserting row %d: %v", rowNum, err)
		}
		imported++
	}

	log.Printf("Imported %d historical wagers", imported)

	migration := models.Migration{Name: migrationName, ExecutedAt: time.Now()}
	return db.Create(&migration).Error
}

func wagerFromRow(col map[string]int, row []string) (models.Wager, string, error) {
	field := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	bettor := field("User")
	game := field("Game")
	betStr := field("Bet")
	if bettor == "" || game == "" || betStr == "" {
		return models.Wager{}, "", fmt.Errorf("missing required fields")
	}

	// The export only ever contained spread bets.
	team, line, err := ParseBetString(betStr)
	if err != nil {
		return models.Wager{}, "", err
	}

	stake := defaultStake
	if s := field("Stake"); s != "" {
		if parsed, err := ParseCurrency(s); err == nil && parsed.IsPositive() {
			stake = parsed
		}
	}

	wager := models.Wager{
		Bettor:    bettor,
		GameLabel: game,
		Kind:      models.KindSpread,
		Selection: team,
		Line:      line,
		Stake:     stake,
		Imported:  true,
	}

	if !strings.Contains(field("Status"), "Settled") {
		return wager, field("ID"), nil
	}

	profit, err := ParseCurrency(field("Profit"))
	if err != nil {
		return models.Wager{}, "", fmt.Errorf("bad profit %q: %v", field("Profit"), err)
	}

	outcome := field("Result")
	if outcome == "" {
		switch profit.Sign() {
		case 1:
			outcome = models.OutcomeWin
		case -1:
			outcome = models.OutcomeLoss
		default:
			outcome = models.OutcomePush
		}
	}

	// A loss that cost exactly the stake was booked juice-free.
	if outcome == models.OutcomeLoss && profit.Equal(stake.Neg()) {
		wager.WaiveJuice = true
	}

	payout := decimal.Zero
	if outcome == models.OutcomeWin || outcome == models.OutcomePush {
		payout = stake
	}

	// Rebuild the stored profit from the juice table rather than trusting the
	// export, so historical rows agree with what the engine would produce.
	storedProfit := decimal.Zero
	switch outcome {
	case models.OutcomeWin:
		storedProfit = stake
	case models.OutcomeLoss:
		if wager.WaiveJuice {
			storedProfit = stake.Neg()
		} else {
			storedProfit = stake.Mul(juiceRate).Neg()
		}
	}

	now := time.Now()
	wager.Settled = true
	wager.Settlement = models.Settlement{
		Outcome:        outcome,
		ProfitLoss:     storedProfit.Round(2),
		Payout:         payout.Round(2),
		ResolvedAt:     &now,
		FinalScoreText: field("Final Score"),
	}
	return wager, field("ID"), nil
}
