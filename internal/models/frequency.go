package models

// Frequency is the cadence of a recurring definition.
type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyWeekly       Frequency = "weekly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencyBiMonthly    Frequency = "bi-monthly"
	FrequencyQuarterly    Frequency = "quarterly"
	FrequencySemiAnnually Frequency = "semi-annually"
	FrequencyAnnually     Frequency = "annually"
)

// Frequencies lists every supported frequency.
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyMonthly,
	FrequencyBiMonthly,
	FrequencyQuarterly,
	FrequencySemiAnnually,
	FrequencyAnnually,
}

func (f Frequency) IsValid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

// MonthsPerStep returns how many months one interval unit spans, or 0 for
// day-based frequencies.
func (f Frequency) MonthsPerStep() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyBiMonthly:
		return 2
	case FrequencyQuarterly:
		return 3
	case FrequencySemiAnnually:
		return 6
	case FrequencyAnnually:
		return 12
	default:
		return 0
	}
}

// Flow tells whether money leaves (expense) or enters (income).
type Flow string

const (
	FlowExpense Flow = "expense"
	FlowIncome  Flow = "income"
)

func (f Flow) IsValid() bool {
	return f == FlowExpense || f == FlowIncome
}
