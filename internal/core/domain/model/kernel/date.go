package kernel

import (
	"time"

	"milkround/internal/pkg/errs"
	"milkround/internal/pkg/guard"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when attempting to use an improperly
// initialized Date. Dates must be created via DateOf or DateFromString.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via DateOf or DateFromString constructors")

// Date is an immutable value object representing a calendar day with no time
// component. Delivery dates and streak arithmetic operate on whole days only,
// so the time of day carried by time.Time is deliberately discarded here.
// The zero value is invalid and will fail validation - use the constructors.
//
// Example:
//
//	today := kernel.DateOf(time.Now())
//	due, err := kernel.DateFromString("2025-09-14")
//	if err != nil {
//	    // Handle validation error
//	}
//	if due.Before(today) {
//	    // Reject backdated delivery
//	}
type Date struct { //nolint:recvcheck //using for validation
	day   time.Time
	guard guard.ConstructorGuard
}

// DateOf creates a Date from a time.Time, truncating the time-of-day part.
// The location of t is respected when deciding which calendar day it falls
// on; the resulting Date itself is location-free.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{
		day:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// DateFromString parses a Date in DateLayout ("2006-01-02") form.
// Returns a validation error for any other input.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// Validate checks that the Date was created through a constructor.
// The zero value fails validation.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// String returns the date in DateLayout form. Implements fmt.Stringer.
func (d Date) String() string {
	return d.day.Format(DateLayout)
}

// Time returns the date as a UTC midnight time.Time for persistence adapters.
func (d Date) Time() time.Time {
	return d.day
}

// IsEqual reports whether two dates denote the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.day.Equal(other.day)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.day.Before(other.day)
}

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.day.After(other.day)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.day.AddDate(0, 0, n))
}
