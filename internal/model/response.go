package model

type Action struct {
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters,omitempty"`
}

type SystemResponse struct {
	Text               string             `json:"text"`
	RequiresDisclaimer bool               `json:"requiresDisclaimer"`
	SuggestedActions   []Action           `json:"suggestedActions"`
	Resources          []ResourceReferral `json:"resources"`
	FollowUpQuestions  []string           `json:"followUpQuestions,omitempty"`
}
