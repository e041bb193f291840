package domain

import "time"

// Default configuration values
const (
	DefaultGlobalMaxParticipants = 30
	DefaultUpcomingTourCount     = 12
	PricePerPerson               = 250.0
)

// Business validation constants
const (
	MinParticipants          = 1
	MaxParticipants          = 20
	MinGlobalMaxParticipants = 1
	MaxGlobalMaxParticipants = 500
	MinimumAge               = 18
	MaxNotesLength           = 500
	MaxUpcomingTourCount     = 52
)

// Tour scheduling constants
const (
	TourWeekday       = time.Thursday
	SameDayCutoffHour = 20 // same-day bookings close at 20:00
	DateFormat        = "2006-01-02"
)

// PaymentMethod is how the customer intends to pay on the day of the tour.
type PaymentMethod string

const (
	PaymentBit          PaymentMethod = "bit"
	PaymentCredit       PaymentMethod = "credit"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid returns true if the payment method is one of the supported options.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentBit, PaymentCredit, PaymentBankTransfer:
		return true
	}
	return false
}

// ReferralSource is the "how did you hear about us" answer.
type ReferralSource string

const (
	ReferralFriend    ReferralSource = "friend"
	ReferralGoogle    ReferralSource = "google"
	ReferralFacebook  ReferralSource = "facebook"
	ReferralInstagram ReferralSource = "instagram"
	ReferralOther     ReferralSource = "other"
)

// IsValid returns true if the referral source is one of the supported options.
func (s ReferralSource) IsValid() bool {
	switch s {
	case ReferralFriend, ReferralGoogle, ReferralFacebook, ReferralInstagram, ReferralOther:
		return true
	}
	return false
}
