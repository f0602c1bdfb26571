package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// emailRegex is deliberately loose; the mailbox provider has the final say
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// tickerRegex matches exchange ticker symbols (AAPL, BRK-B)
	tickerRegex = regexp.MustCompile(`^[A-Z][A-Z0-9.-]{0,9}$`)

	// watchlistNameRegex allows letters, numbers, spaces, and common punctuation
	watchlistNameRegex = regexp.MustCompile(`^[a-zA-Z0-9 _.-]+$`)
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	maxWatchlistName  = 64
	maxWatchlistSize  = 50
	maxSummarizeInput = 32 * 1024
	maxChatInput      = 4 * 1024
)

// ValidateEmail validates an email address for account creation
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email cannot be empty")
	}
	if len(email) > 254 {
		return errors.New("email must be 254 characters or less")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("email is not a valid address")
	}
	return nil
}

// ValidatePassword enforces the minimal strength policy: a length floor
// and the bcrypt input ceiling. No composition rules.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > maxPasswordLength {
		return errors.New("password must be 72 characters or less")
	}
	return nil
}

// ValidateTicker validates a single ticker symbol
func ValidateTicker(ticker string) error {
	if ticker == "" {
		return errors.New("ticker cannot be empty")
	}
	if !tickerRegex.MatchString(ticker) {
		return errors.New("ticker must be an uppercase symbol like AAPL")
	}
	return nil
}

// ValidateWatchlistName validates a watchlist display name
func ValidateWatchlistName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("watchlist name cannot be empty")
	}
	if len(name) > maxWatchlistName {
		return errors.New("watchlist name must be 64 characters or less")
	}
	if !watchlistNameRegex.MatchString(name) {
		return errors.New("watchlist name contains invalid characters")
	}
	return nil
}

// ValidateWatchlistTickers validates the ticker set of a watchlist
func ValidateWatchlistTickers(tickers []string) error {
	if len(tickers) == 0 {
		return errors.New("watchlist needs at least one ticker")
	}
	if len(tickers) > maxWatchlistSize {
		return errors.New("watchlist cannot hold more than 50 tickers")
	}
	for _, t := range tickers {
		if err := ValidateTicker(t); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSummarizeInput bounds the text forwarded to the summarizer
func ValidateSummarizeInput(text string) error {
	if len(text) > maxSummarizeInput {
		return errors.New("text to summarize must be 32KB or less")
	}
	return nil
}

// ValidateChatInput bounds a single copilot message
func ValidateChatInput(text string) error {
	if len(text) > maxChatInput {
		return errors.New("message must be 4KB or less")
	}
	return nil
}
