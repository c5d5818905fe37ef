package schedule

import (
	"family-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Installments expands a plan of n monthly payments starting at firstPayment.
// Every installment is total/n rounded to cents except the last, which is the
// total minus everything before it, so the amounts always add up to total.
func Installments(firstPayment models.Date, total decimal.Decimal, n int, hardCap int) ([]Occurrence, error) {
	if n < models.MinInstallments || n > hardCap {
		return nil, models.ErrInvalidInstallmentCount
	}
	if !models.IsValidMoney(total) {
		return nil, models.ErrInvalidAmount
	}

	count := n
	dates, err := Expand(Rule{
		Anchor:      firstPayment,
		Frequency:   models.FrequencyMonthly,
		Interval:    1,
		Occurrences: &count,
	}, hardCap)
	if err != nil {
		return nil, err
	}

	regular := models.RegularInstallment(total, n)
	occurrences := make([]Occurrence, len(dates))
	allocated := decimal.Zero
	for i, d := range dates {
		amount := regular
		if i == len(dates)-1 {
			amount = total.Sub(allocated)
			// 0.10 over 6 rounds each installment up to 0.02 and leaves nothing to close with.
			if !amount.IsPositive() {
				return nil, models.ErrInvalidAmount
			}
		}
		allocated = allocated.Add(amount)
		occurrences[i] = Occurrence{Date: d, Amount: amount}
	}

	return occurrences, nil
}
