package scanning

import "context"

// Scanner transcribes a photo or PDF of a shopping list into purchase lines
type Scanner interface {
	// ScanLines returns lines of the form "<quantity> <name> at <price>"
	ScanLines(ctx context.Context, data []byte, contentType string) ([]string, error)
	// Close closes the scanner and releases resources
	Close() error
}

// transcribePrompt is shared by all LLM providers
const transcribePrompt = `You are reading a shopping list, basket or receipt. Transcribe every purchased product as one line in the form:

<quantity> <product name> at <unit price>

Rules:
- quantity is a whole number; use 1 when none is shown
- keep the product name as written, in lower case, including the word "imported" when the product is marked as imported
- unit price is the shelf price of ONE unit before tax, digits and a decimal point only, no currency symbol
- skip subtotals, taxes, totals, discounts and payment lines

Return ONLY valid JSON in this exact format:
{
  "lines": ["1 book at 12.49", "1 imported bottle of perfume at 27.99"]
}

Do not include any text before or after the JSON and do not use markdown code blocks.`
