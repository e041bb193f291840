package domain

// Capacity is the resolved capacity picture for a single tour date.
type Capacity struct {
	EffectiveMax     int
	CurrentOccupancy int
	AvailableSpots   int // EffectiveMax - CurrentOccupancy, clamped at 0
}

// IsFull returns true if the date has no available spots
func (c Capacity) IsFull() bool {
	return c.AvailableSpots <= 0
}

// ResolveCapacity computes the effective capacity for a date. A nil TourDate
// means the date has never been configured or booked: global max applies and
// occupancy is zero. An override with a nil CustomMax falls back to the
// global max rather than failing.
func ResolveCapacity(settings *GlobalSettings, td *TourDate) Capacity {
	max := settings.GlobalMaxParticipants
	occupancy := 0

	if td != nil {
		occupancy = td.CurrentRegistrations
		if !td.UseGlobalMax && td.CustomMax != nil {
			max = *td.CustomMax
		}
	}

	available := max - occupancy
	if available < 0 {
		available = 0
	}

	return Capacity{
		EffectiveMax:     max,
		CurrentOccupancy: occupancy,
		AvailableSpots:   available,
	}
}

// DateStatus classifies a date for display and booking decisions.
type DateStatus string

const (
	StatusAvailable   DateStatus = "available"
	StatusSoldOutDate DateStatus = "sold_out"
	StatusBlockedDate DateStatus = "blocked"
	StatusNotEligible DateStatus = "not_eligible"
)

// Availability is the classification of one date together with its
// remaining spots. It is always recomputed from settings and capacity,
// never stored.
type Availability struct {
	Status         DateStatus
	AvailableSpots int
}

// ClassifyDate applies the availability decision table. Eligibility is
// checked first, then the blocked flag, then sold-out (explicit flag or
// exhausted capacity), and only then is the date available.
func ClassifyDate(date DateString, settings *GlobalSettings, cap Capacity) Availability {
	if !date.IsTourDay() {
		return Availability{Status: StatusNotEligible}
	}
	if settings.IsBlocked(date) {
		return Availability{Status: StatusBlockedDate}
	}
	if settings.IsSoldOut(date) || cap.IsFull() {
		return Availability{Status: StatusSoldOutDate}
	}
	return Availability{Status: StatusAvailable, AvailableSpots: cap.AvailableSpots}
}
