package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical date layout used across the service.
const DateFormat = "2006-01-02"

// Parser converts relative date tokens to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Normalize converts the relative tokens the assistant understands into a
// DateFormat string. The baseTime is the reference point (usually time.Now()).
// Tokens it does not understand are returned unchanged with ok=false.
//
// "next month" is a fixed 30-day offset, not a calendar month: stored
// deadlines depend on this approximation, so it must not be corrected to
// AddDate(0, 1, 0).
func (p *Parser) Normalize(token string, baseTime time.Time) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))

	switch {
	case normalized == "today":
		return p.Today(baseTime), true
	case normalized == "tomorrow":
		return p.format(baseTime.AddDate(0, 0, 1)), true
	case strings.Contains(normalized, "next week"):
		return p.format(baseTime.AddDate(0, 0, 7)), true
	case strings.Contains(normalized, "next month"):
		return p.format(baseTime.AddDate(0, 0, 30)), true
	}

	return token, false
}

// Today returns baseTime's calendar date in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) string {
	return p.format(baseTime)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

func (p *Parser) format(t time.Time) string {
	return t.In(p.location).Format(DateFormat)
}
