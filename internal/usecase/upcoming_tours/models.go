package upcoming_tours

import "github.com/mirirosen/chilik-rosenberg/internal/domain"

// Request asks for the next Count tour dates.
type Request struct {
	Count int
}

// Tour is one calendar entry with its availability.
type Tour struct {
	Date                 domain.DateString
	Day                  int
	MonthLabel           string
	Status               domain.DateStatus
	AvailableSpots       int
	EffectiveMax         int
	CurrentRegistrations int
}

// Response is the public calendar.
type Response struct {
	Tours []Tour
}

// DateAvailability classifies a single user-picked date.
type DateAvailability struct {
	Date           domain.DateString
	Status         domain.DateStatus
	AvailableSpots int
}
