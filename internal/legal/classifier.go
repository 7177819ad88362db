package legal

import (
	"strings"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
)

// Engine is the rule-based issue classifier and guidance generator. All rule
// tables are static, so a single Engine is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Classify maps free text to an issue type by keyword scoring. A tie between
// top-scoring types, or an all-zero score, resolves to the catch-all type.
func (e *Engine) Classify(text string) model.IssueType {
	lower := strings.ToLower(text)

	best := model.IssueOther
	bestScore := 0
	tied := false
	for _, rule := range issueRules {
		score := 0
		for _, kw := range rule.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if strings.Contains(kw, " ") {
				score += phraseWeight
			} else {
				score += keywordWeight
			}
		}
		switch {
		case score > bestScore:
			best = rule.issue
			bestScore = score
			tied = false
		case score == bestScore && score > 0:
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return model.IssueOther
	}
	return best
}

// AssessUrgency walks the urgency tiers top down; the first tier with a hit
// wins, so an emergency keyword always outranks a lower-tier match.
func (e *Engine) AssessUrgency(text string) model.UrgencyLevel {
	lower := strings.ToLower(text)

	for _, kw := range emergencyIndicators {
		if strings.Contains(lower, kw) {
			return model.UrgencyEmergency
		}
	}
	for _, kw := range highUrgencyIndicators {
		if strings.Contains(lower, kw) {
			return model.UrgencyHigh
		}
	}
	for _, pattern := range timeSensitivePatterns {
		if pattern.MatchString(lower) {
			return model.UrgencyHigh
		}
	}
	for _, kw := range mediumUrgencyIndicators {
		if strings.Contains(lower, kw) {
			return model.UrgencyMedium
		}
	}
	return model.UrgencyLow
}

// AssessComplexity combines keyword tiers with a numeric score built from
// the issue's characteristics. Keyword hits short-circuit the score.
func (e *Engine) AssessComplexity(issue *model.LegalIssue) model.ComplexityLevel {
	lower := strings.ToLower(issue.Description)

	for _, kw := range highComplexityIndicators {
		if strings.Contains(lower, kw) {
			return model.ComplexityComplex
		}
	}
	for _, kw := range moderateComplexityIndicators {
		if strings.Contains(lower, kw) {
			return model.ComplexityModerate
		}
	}

	score := 0

	switch issue.Type {
	case model.IssueDomesticViolence:
		score += 2
	case model.IssueLandDispute:
		score++
	}

	switch parties := len(issue.InvolvedParties); {
	case parties > 2:
		score += 2
	case parties == 2:
		score++
	}

	switch docs := len(issue.Documents); {
	case docs > 3:
		score += 2
	case docs > 1:
		score++
	}

	switch issue.Urgency {
	case model.UrgencyEmergency:
		score += 2
	case model.UrgencyHigh:
		score++
	}

	switch words := len(strings.Fields(issue.Description)); {
	case words > 50:
		score += 2
	case words > 25:
		score++
	}

	if issue.Timeframe != "" {
		tf := strings.ToLower(issue.Timeframe)
		for _, word := range []string{"years", "months", "ongoing"} {
			if strings.Contains(tf, word) {
				score++
				break
			}
		}
	}

	switch {
	case score >= 4:
		return model.ComplexityComplex
	case score >= 2:
		return model.ComplexityModerate
	default:
		return model.ComplexitySimple
	}
}

// IssueFromQuery builds a complete LegalIssue from one user query:
// classification, urgency, extracted parties/timeframe/documents, then a
// complexity pass over the assembled issue.
func (e *Engine) IssueFromQuery(query string) *model.LegalIssue {
	issue := &model.LegalIssue{
		Type:            e.Classify(query),
		Description:     query,
		Urgency:         e.AssessUrgency(query),
		Complexity:      model.ComplexitySimple,
		InvolvedParties: extractParties(query),
		Timeframe:       extractTimeframe(query),
		Documents:       extractDocuments(query),
	}
	issue.Complexity = e.AssessComplexity(issue)
	return issue
}

func extractParties(text string) []string {
	lower := strings.ToLower(text)
	var parties []string
	for _, rule := range partyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				parties = append(parties, rule.party)
				break
			}
		}
	}
	return parties
}

func extractTimeframe(text string) string {
	lower := strings.ToLower(text)
	for _, pattern := range timeframePatterns {
		if m := pattern.FindString(lower); m != "" {
			return m
		}
	}
	return ""
}

func extractDocuments(text string) []model.DocumentType {
	lower := strings.ToLower(text)
	var docs []model.DocumentType
	for _, rule := range documentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				docs = append(docs, rule.doc)
				break
			}
		}
	}
	return docs
}
