package domain

import "time"

// TourDate holds the per-date capacity override and the occupancy counter.
// Rows are created lazily: a date without a row uses the global settings and
// has zero occupancy.
type TourDate struct {
	Date                 DateString
	UseGlobalMax         bool
	CustomMax            *int
	CurrentRegistrations int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateFlag is an exceptional state an admin can put a date into. A date holds
// at most one flag, so blocked and sold-out are mutually exclusive.
type DateFlag string

const (
	FlagBlocked DateFlag = "blocked"
	FlagSoldOut DateFlag = "sold_out"
)

// GlobalSettings is the singleton capacity configuration plus the flagged
// date sets derived from it.
type GlobalSettings struct {
	GlobalMaxParticipants int
	Blocked               []DateString
	SoldOut               []DateString

	UpdatedAt time.Time
}

// IsBlocked returns true if the date is in the blocked set.
func (s *GlobalSettings) IsBlocked(date DateString) bool {
	return containsDate(s.Blocked, date)
}

// IsSoldOut returns true if the date is in the sold-out set.
func (s *GlobalSettings) IsSoldOut(date DateString) bool {
	return containsDate(s.SoldOut, date)
}

func containsDate(dates []DateString, date DateString) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
