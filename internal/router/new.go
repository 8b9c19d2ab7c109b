package router

// Router is the interface for message routing
type Router interface {
	Classify(message string) Intent
	Explain(message string) RouterOutput
}

// KeywordRouter classifies messages by substring keyword lookup.
// It holds no mutable state and is safe for concurrent use.
type KeywordRouter struct {
	rules []rule
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter with the built-in keyword sets
func New() *KeywordRouter {
	return &KeywordRouter{
		rules: []rule{
			{intent: IntentQualification, keywords: KeywordsQualification},
			{intent: IntentSales, keywords: KeywordsSales},
			{intent: IntentSupport, keywords: KeywordsSupport},
		},
	}
}
