package domain

import "time"

// Period is a closed date range [Start, End] used to scope reports and analyses.
// Both bounds are inclusive.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds a period, rejecting ranges whose end precedes the start.
func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}

	return Period{Start: start, End: end}, nil
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())

	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

func (p Period) String() string {
	return p.Start.Format("2006-01-02") + " to " + p.End.Format("2006-01-02")
}
