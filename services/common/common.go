package common

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"brosBetTracker/models"
)

// SendError logs the error and persists it so failed settlements can be
// reviewed after the fact.
func SendError(db *gorm.DB, source string, err error) {
	log.Printf("[%s] %v", source, err)

	errLog := models.ErrorLog{
		Source:  source,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

// OddsAPIWrapper issues a GET against The Odds API with the account key
// appended. The caller owns the response body.
func OddsAPIWrapper(requestUrl string) (*http.Response, error) {
	apiKey := os.Getenv("ODDS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ODDS_API_KEY not set in environment variables")
	}

	parsed, err := url.Parse(requestUrl)
	if err != nil {
		return nil, err
	}
	query := parsed.Query()
	query.Set("apiKey", apiKey)
	parsed.RawQuery = query.Encode()

	client := &http.Client{}
	req, err := http.NewRequest("GET", parsed.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("odds api returned status %d", resp.StatusCode)
	}
	return resp, nil
}

// FormatCurrency renders a signed money amount like "+$50.00" or "-$55.28".
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return fmt.Sprintf("-$%s", amount.Abs().StringFixed(2))
	}
	return fmt.Sprintf("+$%s", amount.StringFixed(2))
}

// FormatLine renders a spread or total line with its sign, e.g. "-3.5", "+7".
func FormatLine(line decimal.Decimal) string {
	if line.IsNegative() {
		return line.String()
	}
	return fmt.Sprintf("+%s", line.String())
}

func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}
