package receipt

import "strings"

// DefaultExemptKeywords returns the keywords for books, food and medical products
func DefaultExemptKeywords() []string {
	return []string{"book", "chocolate", "pill"}
}

// Classifier decides whether an item is in a tax-exempt category
type Classifier interface {
	IsExempt(name string) bool
}

// KeywordClassifier matches item names against a fixed keyword list.
// Matching is a case-sensitive substring check, so "notebook" matches "book".
type KeywordClassifier struct {
	keywords []string
}

// NewKeywordClassifier creates a classifier over a copy of keywords.
// Empty keywords are ignored since they would match every name.
func NewKeywordClassifier(keywords []string) *KeywordClassifier {
	kept := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			kept = append(kept, k)
		}
	}
	return &KeywordClassifier{keywords: kept}
}

// IsExempt reports whether name contains any exempt keyword
func (c *KeywordClassifier) IsExempt(name string) bool {
	for _, k := range c.keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

// Keywords returns a copy of the configured keywords
func (c *KeywordClassifier) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

var defaultClassifier = NewKeywordClassifier(DefaultExemptKeywords())

// IsExempt classifies name with the default keyword set
func IsExempt(name string) bool {
	return defaultClassifier.IsExempt(name)
}
