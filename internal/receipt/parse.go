package receipt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	priceSeparator = " at "
	importedMarker = "imported"
)

// Parser turns free-text purchase lines into line items
type Parser struct {
	classifier Classifier
	calculator TaxCalculator
}

// NewParser creates a Parser using classifier and calc for the derived fields
func NewParser(classifier Classifier, calc TaxCalculator) *Parser {
	return &Parser{
		classifier: classifier,
		calculator: calc,
	}
}

// ParseItems parses lines of the form "<quantity> <name...> at <price>".
// Lines that do not match are left out; input order is preserved.
func (p *Parser) ParseItems(lines []string) []LineItem {
	items := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		item, ok := p.parseLine(line)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (p *Parser) parseLine(line string) (LineItem, bool) {
	parts := strings.Split(line, priceSeparator)
	if len(parts) != 2 {
		return LineItem{}, false
	}

	fields := strings.Fields(parts[0])
	if len(fields) < 2 {
		return LineItem{}, false
	}
	quantity, err := strconv.Atoi(fields[0])
	if err != nil || quantity < 1 {
		return LineItem{}, false
	}
	name := strings.Join(fields[1:], " ")

	price, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil || price.IsNegative() {
		return LineItem{}, false
	}

	imported := strings.Contains(name, importedMarker)
	return NewLineItem(name, quantity, price, imported, p.classifier.IsExempt(name), p.calculator), true
}

var defaultParser = NewParser(defaultClassifier, defaultCalculator)

// ParseItems parses lines with the default classifier and calculator
func ParseItems(lines []string) []LineItem {
	return defaultParser.ParseItems(lines)
}
