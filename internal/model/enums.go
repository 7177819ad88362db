package model

type IssueType string

const (
	IssueLandDispute      IssueType = "land_dispute"
	IssueDomesticViolence IssueType = "domestic_violence"
	IssueWageTheft        IssueType = "wage_theft"
	IssueTenantRights     IssueType = "tenant_rights"
	IssueOther            IssueType = "other"
)

// IssueTypes lists every classifiable issue type, catch-all last.
var IssueTypes = []IssueType{
	IssueLandDispute,
	IssueDomesticViolence,
	IssueWageTheft,
	IssueTenantRights,
	IssueOther,
}

type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "low"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// Elevated reports whether the urgency warrants expedited handling.
func (u UrgencyLevel) Elevated() bool {
	return u == UrgencyHigh || u == UrgencyEmergency
}

type ComplexityLevel string

const (
	ComplexitySimple   ComplexityLevel = "simple"
	ComplexityModerate ComplexityLevel = "moderate"
	ComplexityComplex  ComplexityLevel = "complex"
)

type ContactMethod string

const (
	ContactPhone  ContactMethod = "phone"
	ContactEmail  ContactMethod = "email"
	ContactWalkIn ContactMethod = "walk_in"
	ContactOnline ContactMethod = "online"
)

type DocumentType string

const (
	DocumentContract         DocumentType = "contract"
	DocumentLease            DocumentType = "lease"
	DocumentEmploymentRecord DocumentType = "employment_record"
	DocumentCourtDocument    DocumentType = "court_document"
	DocumentIdentification   DocumentType = "identification"
	DocumentOther            DocumentType = "other"
)

type IncomeRange string

const (
	IncomeVeryLow       IncomeRange = "very_low"
	IncomeLow           IncomeRange = "low"
	IncomeModerate      IncomeRange = "moderate"
	IncomeAboveModerate IncomeRange = "above_moderate"
)
