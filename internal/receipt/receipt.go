package receipt

import "github.com/shopspring/decimal"

// LineItem represents one parsed purchase line
type LineItem struct {
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	IsImported     bool            `json:"is_imported"`
	IsExempt       bool            `json:"is_exempt"`
	TaxedUnitPrice decimal.Decimal `json:"taxed_unit_price"` // UnitPrice plus rounded per-unit tax
}

// NewLineItem builds a LineItem and derives its taxed unit price with calc
func NewLineItem(name string, quantity int, unitPrice decimal.Decimal, isImported, isExempt bool, calc TaxCalculator) LineItem {
	return LineItem{
		Name:           name,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		IsImported:     isImported,
		IsExempt:       isExempt,
		TaxedUnitPrice: calc.TaxedPrice(unitPrice, isExempt, isImported),
	}
}

// UnitTax returns the tax charged on a single unit
func (i LineItem) UnitTax() decimal.Decimal {
	return i.TaxedUnitPrice.Sub(i.UnitPrice)
}

// TotalPrice returns the taxed price for the whole quantity
func (i LineItem) TotalPrice() decimal.Decimal {
	return i.TaxedUnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalTax returns the tax for the whole quantity
func (i LineItem) TotalTax() decimal.Decimal {
	return i.UnitTax().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Bill is the nth batch of items checked out in a session
type Bill struct {
	Number int        `json:"number"`
	Items  []LineItem `json:"items"`
}

// ReportLine is the display line for one item on a receipt
type ReportLine struct {
	Quantity int             `json:"quantity"`
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
}

// Report holds the itemized lines and totals of one bill
type Report struct {
	Lines     []ReportLine    `json:"lines"`
	TotalTax  decimal.Decimal `json:"total_tax"`
	TotalCost decimal.Decimal `json:"total_cost"`
}
