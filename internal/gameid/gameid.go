package gameid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID addresses one specific game. Every call site in the bridge keys off the
// composite form YYYY-MM-DD-AWAY-HOME-N, where N disambiguates doubleheaders.
type ID struct {
	Date       time.Time
	AwayCode   string
	HomeCode   string
	GameNumber int
}

// MalformedIdentifierError is the only hard failure in the pipeline: the
// caller gave us something we can't even address a game with.
type MalformedIdentifierError struct {
	Input  string
	Reason string
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed game identifier %q: %s", e.Input, e.Reason)
}

// Parse splits a composite identifier into its parts. The first three
// hyphen-separated segments form the date, then away code, home code, and
// game number.
func Parse(s string) (ID, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 6 {
		return ID{}, &MalformedIdentifierError{Input: s, Reason: "expected YYYY-MM-DD-AWAY-HOME-N"}
	}

	dateStr := strings.Join(parts[0:3], "-")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return ID{}, &MalformedIdentifierError{Input: s, Reason: fmt.Sprintf("invalid date %q", dateStr)}
	}

	num, err := strconv.Atoi(parts[5])
	if err != nil {
		return ID{}, &MalformedIdentifierError{Input: s, Reason: fmt.Sprintf("game number %q is not an integer", parts[5])}
	}
	if num < 1 {
		return ID{}, &MalformedIdentifierError{Input: s, Reason: fmt.Sprintf("game number %d is not positive", num)}
	}

	return ID{
		Date:       date,
		AwayCode:   parts[3],
		HomeCode:   parts[4],
		GameNumber: num,
	}, nil
}

// DateString returns the zero-padded date component.
func (id ID) DateString() string {
	return id.Date.Format("2006-01-02")
}

// String renders the canonical composite form. Parse(id.String()) round-trips
// losslessly.
func (id ID) String() string {
	return fmt.Sprintf("%s-%s-%s-%d", id.DateString(), id.AwayCode, id.HomeCode, id.GameNumber)
}
