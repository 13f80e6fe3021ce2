package settleService

import "errors"

// ErrNoMatch is not exceptional: it means no completed game corresponds to the
// wager yet, so the caller should leave it pending and try again later.
var ErrNoMatch = errors.New("no completed game matches wager")

var (
	ErrMissingScore     = errors.New("game scores are missing or null")
	ErrInvalidStake     = errors.New("stake must be greater than 0")
	ErrInvalidBetType   = errors.New("bet kind must be spread or total")
	ErrInvalidSelection = errors.New("total selection must be Over or Under")
)
