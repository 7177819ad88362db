package model

// LegalIssue is built fresh from each query; it feeds guidance generation
// and is never persisted verbatim.
type LegalIssue struct {
	Type            IssueType      `json:"type"`
	Description     string         `json:"description"`
	Urgency         UrgencyLevel   `json:"urgency"`
	Complexity      ComplexityLevel `json:"complexity"`
	InvolvedParties []string       `json:"involvedParties"`
	Timeframe       string         `json:"timeframe,omitempty"`
	Documents       []DocumentType `json:"documents"`
}

type Guidance struct {
	Summary                    string       `json:"summary"`
	DetailedSteps              []string     `json:"detailedSteps"`
	UrgencyLevel               UrgencyLevel `json:"urgencyLevel"`
	RecommendsProfessionalHelp bool         `json:"recommendsProfessionalHelp"`
	ApplicableLaws             []string     `json:"applicableLaws"`
}

type Citation struct {
	Title        string `json:"title"`
	Section      string `json:"section,omitempty"`
	Jurisdiction string `json:"jurisdiction"`
	URL          string `json:"url,omitempty"`
	Summary      string `json:"summary"`
}
