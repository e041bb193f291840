package reserve_spots

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

var (
	// Israeli mobile numbers: 05X followed by 7 digits, optional dash
	phoneRegexp = regexp.MustCompile(`^05\d-?\d{7}$`)
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateRequest validates the submitted fields. Date eligibility is
// checked separately so it can use the transaction-time clock.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !phoneRegexp.MatchString(req.Phone) {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	if !emailRegexp.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if err := req.DateOfBirth.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date of birth", ErrInvalidInput)
	}

	if req.Participants < domain.MinParticipants || req.Participants > domain.MaxParticipants {
		return fmt.Errorf("%w: participants must be between %d and %d",
			ErrInvalidInput, domain.MinParticipants, domain.MaxParticipants)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: invalid payment method", ErrInvalidInput)
	}

	if !req.HowDidYouHear.IsValid() {
		return fmt.Errorf("%w: invalid referral source", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := req.TourDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid tour date", ErrInvalidInput)
	}

	return nil
}

// validateAge checks the 18+ rule against the booking moment.
func validateAge(dateOfBirth domain.DateString, now time.Time) error {
	dob, err := dateOfBirth.Parse()
	if err != nil {
		return fmt.Errorf("%w: invalid date of birth", ErrInvalidInput)
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}

	if age < domain.MinimumAge {
		return fmt.Errorf("%w: must be at least %d years old", ErrInvalidInput, domain.MinimumAge)
	}

	return nil
}

// validateTourDate checks that the date is a bookable tour day at the given
// moment: a Thursday, not in the past, and before the same-day cutoff.
func validateTourDate(date domain.DateString, now time.Time) error {
	if !date.IsTourDay() {
		return ErrDateNotEligible
	}

	today := domain.NewDateString(now)
	if date.Before(today) {
		return ErrDateNotEligible
	}

	if date == today && now.Hour() >= domain.SameDayCutoffHour {
		return ErrTooLateToBook
	}

	return nil
}
