package receipt

import "github.com/shopspring/decimal"

// TaxCalculator derives the taxed price of a single unit
type TaxCalculator interface {
	TaxedPrice(unitPrice decimal.Decimal, isExempt, isImported bool) decimal.Decimal
}

// RateCalculator applies a basic sales tax to non-exempt goods and an import duty to
// imported goods, then rounds the combined tax up to the next multiple of Increment.
type RateCalculator struct {
	BasicRate  decimal.Decimal
	ImportRate decimal.Decimal
	Increment  decimal.Decimal
}

// NewRateCalculator returns the standard 10% basic / 5% import calculator rounding to 0.05
func NewRateCalculator() RateCalculator {
	return RateCalculator{
		BasicRate:  decimal.RequireFromString("0.10"),
		ImportRate: decimal.RequireFromString("0.05"),
		Increment:  decimal.RequireFromString("0.05"),
	}
}

// TaxedPrice returns unitPrice plus its rounded tax
func (c RateCalculator) TaxedPrice(unitPrice decimal.Decimal, isExempt, isImported bool) decimal.Decimal {
	tax := decimal.Zero
	if !isExempt {
		tax = tax.Add(c.BasicRate.Mul(unitPrice))
	}
	if isImported {
		tax = tax.Add(c.ImportRate.Mul(unitPrice))
	}
	return unitPrice.Add(roundUp(tax, c.Increment))
}

// roundUp rounds v toward positive infinity to a multiple of step
func roundUp(v, step decimal.Decimal) decimal.Decimal {
	if step.Sign() <= 0 {
		return v
	}
	q, r := v.QuoRem(step, 0)
	if r.Sign() > 0 {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q.Mul(step)
}

var defaultCalculator = NewRateCalculator()

// ComputeTaxedPrice prices one unit with the standard rates
func ComputeTaxedPrice(unitPrice decimal.Decimal, isExempt, isImported bool) decimal.Decimal {
	return defaultCalculator.TaxedPrice(unitPrice, isExempt, isImported)
}
