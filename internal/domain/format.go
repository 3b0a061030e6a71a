package domain

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// enZA renders grouped digits the way the original WhatsApp messages did
// (toLocaleString("en-ZA")).
var enZA = message.NewPrinter(language.MustParse("en-ZA"))

// FormatRand renders a rand amount for message text. Whole amounts drop the
// cents ("R500"); fractional amounts keep two decimals.
func FormatRand(amount float64) string {
	if amount == math.Trunc(amount) {
		return enZA.Sprintf("R%d", int64(amount))
	}
	return enZA.Sprintf("R%.2f", amount)
}

// FormatMeetingDate renders a meeting date/time, e.g. "Sat, 1 March, 10:00".
func FormatMeetingDate(t time.Time) string {
	return t.Format("Mon, 2 January, 15:04")
}

// FormatPayoutDate renders a payout date, e.g. "2 January 2026".
func FormatPayoutDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// FormatDueDate renders a contribution due date, e.g. "Monday, 5 January".
func FormatDueDate(t time.Time) string {
	return t.Format("Monday, 2 January")
}

// FormatPaidMonth renders the month a contribution was paid, e.g. "Jan 2026".
func FormatPaidMonth(t time.Time) string {
	return t.Format("Jan 2006")
}

// MonthName returns the full month name for tallies ("February").
func MonthName(t time.Time) string {
	return t.Format("January")
}

// StartOfMonth returns midnight on the first of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfDay returns midnight on t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
