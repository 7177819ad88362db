package legal

import (
	"regexp"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
)

// issueRule scores one issue type. Multi-word phrases count for more than
// single keywords because they are stronger evidence of the topic.
type issueRule struct {
	issue    model.IssueType
	keywords []string
}

const (
	phraseWeight  = 3
	keywordWeight = 1
)

// Rule order is the tie-break order for equal non-zero scores when callers
// need one; Classify itself resolves ties to the catch-all type.
var issueRules = []issueRule{
	{
		issue: model.IssueLandDispute,
		keywords: []string{
			"property", "land", "boundary", "deed", "title", "neighbor",
			"fence", "easement", "zoning", "property line", "real estate",
			"ownership", "survey", "encroachment",
		},
	},
	{
		issue: model.IssueDomesticViolence,
		keywords: []string{
			"domestic violence", "abuse", "restraining order", "protection order",
			"stalking", "harassment", "intimate partner", "partner", "spouse",
			"boyfriend", "girlfriend", "family violence", "assault", "battery",
			"threat",
		},
	},
	{
		issue: model.IssueWageTheft,
		keywords: []string{
			"wages", "paycheck", "overtime", "unpaid", "salary", "minimum wage",
			"employer", "work", "job", "labor", "hours", "pay", "compensation",
			"benefits", "time", "shift",
		},
	},
	{
		issue: model.IssueTenantRights,
		keywords: []string{
			"rent", "landlord", "tenant", "lease", "eviction", "deposit",
			"apartment", "housing", "repairs", "maintenance", "utilities",
			"habitability", "rental", "renter", "property manager", "evict",
		},
	},
}

// Urgency tiers, checked in order. First matching tier wins.
var emergencyIndicators = []string{
	"emergency", "immediate danger", "threat", "violence", "assault",
	"eviction notice", "deadline tomorrow", "urgent",
}

var highUrgencyIndicators = []string{
	"court date next week", "deadline", "time sensitive", "quickly",
	"harassment", "stalking", "unsafe", "threatened", "need help quickly",
}

var timeSensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(today|tomorrow|this week)\b`),
	regexp.MustCompile(`\b(deadline|due|expires?)\b`),
	regexp.MustCompile(`\b(court date|hearing)\b`),
	regexp.MustCompile(`\b(eviction notice|notice to quit)\b`),
	regexp.MustCompile(`\b(served|summons)\b`),
	regexp.MustCompile(`\b(arrest|detained|custody)\b`),
}

var mediumUrgencyIndicators = []string{
	"soon", "next month", "within", "before", "by", "until",
	"worried", "concerned", "need help", "advice",
}

// Complexity keyword tiers override the numeric score.
var highComplexityIndicators = []string{
	"court", "lawsuit", "attorney", "legal action", "trial", "judge",
	"criminal", "felony", "federal", "constitutional", "appeal",
}

var moderateComplexityIndicators = []string{
	"contract dispute", "agreement violation", "breach", "dispute", "claim",
	"damages", "settlement", "mediation", "arbitration", "violation",
}

// Any one hit forces the professional-help recommendation.
var professionalHelpKeywords = []string{
	"sue", "sued", "lawsuit", "court", "trial", "judge", "attorney",
	"legal action", "damages", "settlement", "contract", "criminal",
	"arrest", "charges", "felony", "misdemeanor",
}

type partyRule struct {
	party    string
	keywords []string
}

var partyRules = []partyRule{
	{"landlord", []string{"landlord", "property manager", "property owner"}},
	{"employer", []string{"employer", "boss", "company", "workplace", "job"}},
	{"neighbor", []string{"neighbor", "neighbour"}},
	{"spouse", []string{"spouse", "husband", "wife"}},
	{"partner", []string{"partner", "boyfriend", "girlfriend"}},
	{"family", []string{"family", "relative", "parent", "child"}},
	{"police", []string{"police", "officer", "cop"}},
	{"court", []string{"court", "judge", "lawyer", "attorney"}},
}

var timeframePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(yesterday|today|tomorrow)\b`),
	regexp.MustCompile(`\b(last|this|next)\s+(week|month|year)\b`),
	regexp.MustCompile(`\b(\d+)\s+(days?|weeks?|months?|years?)\s+ago\b`),
	regexp.MustCompile(`\b(recently|ongoing|current)\b`),
}

type documentRule struct {
	doc      model.DocumentType
	keywords []string
}

var documentRules = []documentRule{
	{model.DocumentContract, []string{"contract", "agreement", "deal"}},
	{model.DocumentLease, []string{"lease", "rental agreement"}},
	{model.DocumentEmploymentRecord, []string{"pay stub", "paycheck", "employment record", "timesheet"}},
	{model.DocumentCourtDocument, []string{"court document", "summons", "subpoena", "order"}},
	{model.DocumentIdentification, []string{"identification", "driver's license", "passport"}},
}
