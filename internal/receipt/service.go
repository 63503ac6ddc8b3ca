package receipt

// Service runs the parse, tax and aggregate pipeline for one bill at a time
type Service struct {
	parser *Parser
}

// NewService creates a new Service with the default exemption keywords and tax rates
func NewService() *Service {
	return NewServiceWithDeps(defaultClassifier, defaultCalculator)
}

// NewServiceWithDeps creates a new Service with a custom classifier and calculator
func NewServiceWithDeps(classifier Classifier, calc TaxCalculator) *Service {
	return &Service{
		parser: NewParser(classifier, calc),
	}
}

// Checkout parses the raw lines of the nth bill and builds its report
func (s *Service) Checkout(number int, lines []string) (*Bill, Report) {
	bill := &Bill{
		Number: number,
		Items:  s.parser.ParseItems(lines),
	}
	return bill, BuildReport(bill.Items)
}
