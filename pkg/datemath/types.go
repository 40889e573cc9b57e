package datemath

import "time"

// ParseResult is a resolved due date.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}

// Date formats the result as a YYYY-MM-DD calendar date.
func (r ParseResult) Date() string {
	return r.AbsoluteTime.Format(DateLayout)
}
