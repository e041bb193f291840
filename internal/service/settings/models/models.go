package models

import "github.com/mirirosen/chilik-rosenberg/internal/domain"

// TourOverrideRequest sets or clears the per-date capacity override.
type TourOverrideRequest struct {
	Date         domain.DateString
	UseGlobalMax bool
	CustomMax    *int
}

// TourOverrideResponse reports the applied override. Overbooked is true when
// the new effective capacity is below current occupancy; existing bookings
// are kept as-is.
type TourOverrideResponse struct {
	Date                 domain.DateString
	UseGlobalMax         bool
	CustomMax            *int
	CurrentRegistrations int
	Overbooked           bool
}

// DateFlagResponse reports the flag state of a date after a toggle.
type DateFlagResponse struct {
	Date    domain.DateString
	Blocked bool
	SoldOut bool
}

// TourDateInfo is one configured date in the settings view.
type TourDateInfo struct {
	Date                 domain.DateString
	UseGlobalMax         bool
	CustomMax            *int
	CurrentRegistrations int
}

// SettingsResponse is the admin settings view.
type SettingsResponse struct {
	GlobalMaxParticipants int
	Blocked               []domain.DateString
	SoldOut               []domain.DateString
	Overrides             []TourDateInfo
}
