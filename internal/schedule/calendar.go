// Package schedule holds the calendar arithmetic and expansion rules of the
// recurring engine. Everything here is pure and deterministic.
package schedule

import "family-ledger/internal/models"

// Advance returns the occurrence that follows date for the given frequency and
// interval multiplier.
//
// Month-based frequencies keep the day of month and clamp to the last day of a
// shorter target month: Jan 31 + 1 month is Feb 29 in a leap year and Feb 28
// otherwise, and Feb 29 + 1 year is Feb 28. Each step clamps from the previous
// date, so a chain started on Jan 31 continues on the 29th after February.
func Advance(date models.Date, frequency models.Frequency, interval int) (models.Date, error) {
	if !frequency.IsValid() {
		return models.Date{}, models.ErrInvalidFrequency
	}
	if interval < 1 {
		return models.Date{}, models.ErrNonPositiveInterval
	}

	switch frequency {
	case models.FrequencyDaily:
		return date.AddDays(interval), nil
	case models.FrequencyWeekly:
		return date.AddDays(7 * interval), nil
	default:
		return date.AddMonthsClamped(frequency.MonthsPerStep() * interval), nil
	}
}
