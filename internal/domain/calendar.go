package domain

import (
	"fmt"
	"time"
)

// CalendarEntry is one selectable tour date on the public calendar.
type CalendarEntry struct {
	Date       DateString
	Day        int    // day of month, for the calendar tile
	MonthLabel string // short Hebrew month name
}

// hebrewMonthsShort are the he-IL abbreviated month names, indexed by
// time.Month - 1.
var hebrewMonthsShort = [12]string{
	"ינו׳", "פבר׳", "מרץ", "אפר׳", "מאי", "יוני",
	"יולי", "אוג׳", "ספט׳", "אוק׳", "נוב׳", "דצמ׳",
}

// hebrewMonthsLong are the full he-IL month names, indexed by time.Month - 1.
var hebrewMonthsLong = [12]string{
	"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
	"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
}

// NextTourDate returns the first bookable tour date at the given moment.
// If now falls on the tour weekday the same day counts until the cutoff
// hour, after which the next week's date is first.
func NextTourDate(now time.Time) DateString {
	diff := (int(TourWeekday) - int(now.Weekday()) + 7) % 7
	if diff == 0 && now.Hour() >= SameDayCutoffHour {
		diff = 7
	}
	return NewDateString(now.AddDate(0, 0, diff))
}

// UpcomingTourDates generates the next count tour dates starting from
// NextTourDate(now), one week apart.
func UpcomingTourDates(now time.Time, count int) []CalendarEntry {
	if count <= 0 {
		return nil
	}

	first, err := NextTourDate(now).Parse()
	if err != nil {
		// NewDateString output always parses back
		return nil
	}

	entries := make([]CalendarEntry, 0, count)
	for i := 0; i < count; i++ {
		d := first.AddDate(0, 0, 7*i)
		entries = append(entries, CalendarEntry{
			Date:       NewDateString(d),
			Day:        d.Day(),
			MonthLabel: hebrewMonthsShort[d.Month()-1],
		})
	}
	return entries
}

// FormatDateHebrew renders a date as "<day> <full Hebrew month>" the way the
// site displays tour dates.
func FormatDateHebrew(date DateString) string {
	t, err := date.Parse()
	if err != nil {
		return string(date)
	}
	return fmt.Sprintf("%d %s", t.Day(), hebrewMonthsLong[t.Month()-1])
}
