package router

// Intent names the agent a message should be routed to
type Intent string

const (
	IntentQualification Intent = "qualification"
	IntentSales         Intent = "sales"
	IntentSupport       Intent = "support"
)

// RouterOutput is the classification result with the keyword that decided it
type RouterOutput struct {
	Intent         Intent `json:"intent"`
	MatchedKeyword string `json:"matched_keyword,omitempty"`
	Reasoning      string `json:"reasoning"`
}

type rule struct {
	intent   Intent
	keywords []string
}
