package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Keyword sets, checked in ruleOrder. First match wins.
var (
	KeywordsQualification = []string{"preço", "custo", "orçamento", "investimento", "quanto"}
	KeywordsSales         = []string{"demo", "reunião", "agendar", "apresentação", "meeting"}
	KeywordsSupport       = []string{"problema", "bug", "erro", "suporte", "ajuda", "não funciona"}
)

// RouterFallbackIntent is used when no keyword matches
const RouterFallbackIntent = IntentQualification

// Reasons
const (
	ReasonKeyword  = "keyword match"
	ReasonFallback = "no keyword matched, default agent"
)
