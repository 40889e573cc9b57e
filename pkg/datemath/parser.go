package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for task due dates.
const DateLayout = "2006-01-02"

// ErrUnrecognized is returned when an expression is neither a calendar date
// nor a supported relative phrase.
var ErrUnrecognized = errors.New("unrecognized date expression")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|week|month)s?$`)

	fixedOffsets = map[string]int{
		"yesterday": -1,
		"today":     0,
		"tomorrow":  1,
	}

	weekdays = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// Parser resolves calendar dates and relative phrases in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for an IANA timezone name, e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves a relative phrase against baseTime and returns midnight of
// the resulting day. Supported: today, tomorrow, yesterday, "in N days",
// "in N weeks", "in N months", "next <weekday>".
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	phrase := strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	if offset, ok := fixedOffsets[phrase]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)), nil
	}

	if m := inDurationRe.FindStringSubmatch(phrase); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
		}
		switch m[2] {
		case "day":
			return p.startOfDay(baseTime.AddDate(0, 0, n)), nil
		case "week":
			return p.startOfDay(baseTime.AddDate(0, 0, 7*n)), nil
		default:
			return p.startOfDay(baseTime.AddDate(0, n, 0)), nil
		}
	}

	if name, ok := strings.CutPrefix(phrase, "next "); ok {
		if wd, ok := weekdays[name]; ok {
			return p.startOfDay(baseTime.AddDate(0, 0, daysUntil(baseTime.In(p.location).Weekday(), wd))), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// daysUntil counts days to the next occurrence of to, always 1..7.
func daysUntil(from, to time.Weekday) int {
	d := int(to-from+7) % 7
	if d == 0 {
		d = 7
	}
	return d
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in the parser's timezone.
func (p *Parser) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", value, err)
	}
	return t, nil
}

// Normalize converts a calendar date or a relative phrase into a ParseResult
// whose Date() is the canonical YYYY-MM-DD form.
func (p *Parser) Normalize(value string, baseTime time.Time) (ParseResult, error) {
	t, err := p.ParseDate(value)
	if err != nil {
		if t, err = p.Parse(value, baseTime); err != nil {
			return ParseResult{}, err
		}
	}
	return ParseResult{AbsoluteTime: t, IsAllDay: true}, nil
}

// IsOnOrBefore reports whether the calendar date value falls on or before
// the day containing now. Comparison is date-only.
func (p *Parser) IsOnOrBefore(value string, now time.Time) (bool, error) {
	due, err := p.ParseDate(value)
	if err != nil {
		return false, err
	}
	return !due.After(p.startOfDay(now)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
