package domain

import (
	"testing"
	"time"
)

func TestFormatRand_WholeAmountsDropCents(t *testing.T) {
	t.Parallel()

	if got := FormatRand(500); got != "R500" {
		t.Fatalf("FormatRand(500)=%q, want %q", got, "R500")
	}
	if got := FormatRand(0); got != "R0" {
		t.Fatalf("FormatRand(0)=%q, want %q", got, "R0")
	}
}

func TestFormatRand_FractionalAmountsKeepCents(t *testing.T) {
	t.Parallel()

	if got := FormatRand(99.5); got != "R99.50" {
		t.Fatalf("FormatRand(99.5)=%q, want %q", got, "R99.50")
	}
}

func TestFormatDates(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC) // a Sunday

	if got := FormatMeetingDate(d); got != "Sun, 1 March, 10:00" {
		t.Fatalf("FormatMeetingDate=%q", got)
	}
	if got := FormatPayoutDate(d); got != "1 March 2026" {
		t.Fatalf("FormatPayoutDate=%q", got)
	}
	if got := FormatDueDate(d); got != "Sunday, 1 March" {
		t.Fatalf("FormatDueDate=%q", got)
	}
	if got := FormatPaidMonth(d); got != "Mar 2026" {
		t.Fatalf("FormatPaidMonth=%q", got)
	}
	if got := MonthName(d); got != "March" {
		t.Fatalf("MonthName=%q", got)
	}
}

func TestStartOfMonthAndDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("SAST", 2*60*60)
	ts := time.Date(2026, time.February, 17, 23, 59, 59, 0, loc)

	if got := StartOfMonth(ts); !got.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("StartOfMonth=%v", got)
	}
	if got := StartOfDay(ts); !got.Equal(time.Date(2026, time.February, 17, 0, 0, 0, 0, loc)) {
		t.Fatalf("StartOfDay=%v", got)
	}
}

func TestNormalizeMessageText(t *testing.T) {
	t.Parallel()

	if got := NormalizeMessageText("  My   Balance "); got != "my balance" {
		t.Fatalf("NormalizeMessageText=%q, want %q", got, "my balance")
	}
	if got := NormalizeMessageText("   "); got != "" {
		t.Fatalf("NormalizeMessageText(blank)=%q, want empty", got)
	}
}
