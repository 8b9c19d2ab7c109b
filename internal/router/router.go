package router

import "strings"

// Classify returns the agent intent for a message. It never fails.
func (r *KeywordRouter) Classify(message string) Intent {
	return r.Explain(message).Intent
}

// Explain classifies the message and reports which keyword matched.
func (r *KeywordRouter) Explain(message string) RouterOutput {
	lower := strings.ToLower(message)

	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return RouterOutput{
					Intent:         rl.intent,
					MatchedKeyword: kw,
					Reasoning:      ReasonKeyword,
				}
			}
		}
	}

	return RouterOutput{
		Intent:    RouterFallbackIntent,
		Reasoning: ReasonFallback,
	}
}
