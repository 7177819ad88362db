package model

// LegalAidOrganization is static reference data, read-only at runtime.
type LegalAidOrganization struct {
	ID                      string         `json:"id"`
	Name                    string         `json:"name"`
	Contact                 ContactInfo    `json:"contact"`
	Specializations         []IssueType    `json:"specializations"`
	ServiceArea             GeographicArea `json:"serviceArea"`
	Languages               []string       `json:"languages"`
	Availability            OperatingHours `json:"availability"`
	EligibilityRequirements []string       `json:"eligibilityRequirements"`
}

type ContactInfo struct {
	Phone       string         `json:"phone"`
	Email       string         `json:"email,omitempty"`
	Address     Address        `json:"address"`
	Website     string         `json:"website,omitempty"`
	IntakeHours OperatingHours `json:"intakeHours"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// GeographicArea describes where an organization serves. A states entry of
// "ALL" means national coverage.
type GeographicArea struct {
	States   []string `json:"states"`
	Counties []string `json:"counties,omitempty"`
	ZipCodes []string `json:"zipCodes,omitempty"`
	RadiusMi float64  `json:"radiusMi,omitempty"`
}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OperatingHours maps lowercase weekday names to opening hours. Days with no
// entry are closed.
type OperatingHours map[string]DayHours

// AroundTheClock reports whether any day is marked as 24-hour service.
func (h OperatingHours) AroundTheClock() bool {
	for _, day := range h {
		if day.Open == "24 hours" {
			return true
		}
	}
	return false
}

// SearchCriteria filters and ranks the organization catalog. Zero values
// mean "no constraint".
type SearchCriteria struct {
	Location  *Location
	IssueType IssueType
	Language  string
	Urgency   UrgencyLevel
}

type ResourceReferral struct {
	Organization      LegalAidOrganization `json:"organization"`
	RelevanceScore    float64              `json:"relevanceScore"`
	ContactMethod     ContactMethod        `json:"contactMethod"`
	NextSteps         []string             `json:"nextSteps"`
	EstimatedWaitTime string               `json:"estimatedWaitTime,omitempty"`
}
