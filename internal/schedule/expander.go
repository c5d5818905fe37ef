package schedule

import (
	"family-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Rule describes a schedule: the anchor is the first occurrence, and at most
// one of EndDate and Occurrences bounds it.
type Rule struct {
	Anchor      models.Date
	Frequency   models.Frequency
	Interval    int
	EndDate     *models.Date
	Occurrences *int
}

// Occurrence is a dated amount produced by expansion, not yet persisted.
type Occurrence struct {
	Date   models.Date
	Amount decimal.Decimal
}

// RuleFor builds the schedule rule of a recurring definition.
func RuleFor(def *models.RecurringDefinition) Rule {
	return Rule{
		Anchor:      def.StartDate,
		Frequency:   def.Frequency,
		Interval:    def.Interval,
		EndDate:     def.EndDate,
		Occurrences: def.Occurrences,
	}
}

func (r Rule) Validate() error {
	if !r.Frequency.IsValid() {
		return models.ErrInvalidFrequency
	}
	if r.Interval < 1 {
		return models.ErrNonPositiveInterval
	}
	if r.EndDate != nil && r.Occurrences != nil {
		return models.ErrConflictingEndCondition
	}
	if r.Occurrences != nil && *r.Occurrences < 1 {
		return models.ErrNonPositiveOccurrences
	}
	if r.Anchor.IsZero() {
		return models.ErrInvalidDate
	}
	return nil
}

// Expand lists the occurrence dates of r in increasing order, starting with the
// anchor. It stops at the first of: the next date falling after EndDate,
// Occurrences dates produced, or hardCap dates produced. Reaching the hard cap
// is not an error; NextDue reports the date where a later pass would resume.
func Expand(r Rule, hardCap int) ([]models.Date, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if hardCap < 1 {
		return nil, models.ErrNonPositiveHardCap
	}

	limit := hardCap
	if r.Occurrences != nil && *r.Occurrences < limit {
		limit = *r.Occurrences
	}

	dates := make([]models.Date, 0, min(limit, 64))
	current := r.Anchor
	for len(dates) < limit {
		if r.EndDate != nil && current.After(*r.EndDate) {
			break
		}
		dates = append(dates, current)

		next, err := Advance(current, r.Frequency, r.Interval)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return dates, nil
}

// NextDue returns the date after the last generated one, or nil when the
// schedule has nothing left: the occurrence count is used up, the following
// date passes EndDate, or nothing was generated.
func NextDue(r Rule, generated []models.Date) (*models.Date, error) {
	if len(generated) == 0 {
		return nil, nil
	}
	if r.Occurrences != nil && len(generated) >= *r.Occurrences {
		return nil, nil
	}

	next, err := Advance(generated[len(generated)-1], r.Frequency, r.Interval)
	if err != nil {
		return nil, err
	}
	if r.EndDate != nil && next.After(*r.EndDate) {
		return nil, nil
	}
	return &next, nil
}

// Recurring pairs every date with the same amount.
func Recurring(dates []models.Date, amount decimal.Decimal) []Occurrence {
	occurrences := make([]Occurrence, len(dates))
	for i, d := range dates {
		occurrences[i] = Occurrence{Date: d, Amount: amount}
	}
	return occurrences
}
