package actions

// Kind selects the handler a smart action dispatches to.
type Kind int

const (
	KindUnknown Kind = iota
	LearnSession
	DetectContentType
	SuggestAudience
	SuggestTabNames
	OptimizeMobile
	MakeProfessional
	ApplyPreviousStructure
	StructureAsActions
	AddQuizSections
	NumberSteps
	AddExecutiveSummary
)

var kindNames = map[Kind]string{
	LearnSession:           "learnSession",
	DetectContentType:      "detectContentType",
	SuggestAudience:        "suggestAudience",
	SuggestTabNames:        "suggestTabNames",
	OptimizeMobile:         "optimizeMobile",
	MakeProfessional:       "makeProfessional",
	ApplyPreviousStructure: "applyPreviousStructure",
	StructureAsActions:     "structureAsActions",
	AddQuizSections:        "addQuizSections",
	NumberSteps:            "numberSteps",
	AddExecutiveSummary:    "addExecutiveSummary",
}

// String returns the stable name used as the usage-statistics key.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a stable name back to its Kind.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return KindUnknown
}
