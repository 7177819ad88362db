package directory

import (
	"fmt"
	"sort"

	apperrors "github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/errors"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
)

// Referral matching constants. scoreCeiling is the divisor that maps raw
// relevance scores into [0,1].
const (
	scoreSpecialization = 10.0
	scoreSoleSpecialist = 5.0
	scoreLanguage       = 3.0
	scoreGeographic     = 2.0
	scoreCountyMatch    = 3.0
	scoreAroundTheClock = 2.0
	scoreCeiling        = 20.0
	DefaultMaxReferrals = 3
)

// Directory holds the static organization catalog. Read-only after New, so
// it needs no locking.
type Directory struct {
	orgs []model.LegalAidOrganization
	byID map[string]int
}

func New() *Directory {
	orgs := seedOrganizations()
	byID := make(map[string]int, len(orgs))
	for i, org := range orgs {
		byID[org.ID] = i
	}
	return &Directory{orgs: orgs, byID: byID}
}

// Get returns one organization by id.
func (d *Directory) Get(orgID string) (*model.LegalAidOrganization, error) {
	i, ok := d.byID[orgID]
	if !ok {
		return nil, apperrors.OrganizationNotFound(orgID)
	}
	org := d.orgs[i]
	return &org, nil
}

// All returns a copy of the full catalog.
func (d *Directory) All() []model.LegalAidOrganization {
	out := make([]model.LegalAidOrganization, len(d.orgs))
	copy(out, d.orgs)
	return out
}

// Find filters the catalog by the criteria and sorts the matches by
// relevance, highest first. Equal scores fall back to id order so results
// are deterministic.
func (d *Directory) Find(criteria model.SearchCriteria) []model.LegalAidOrganization {
	var matches []model.LegalAidOrganization
	for _, org := range d.orgs {
		if matchesCriteria(&org, criteria) {
			matches = append(matches, org)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		si := relevanceScore(&matches[i], criteria)
		sj := relevanceScore(&matches[j], criteria)
		if si != sj {
			return si > sj
		}
		return matches[i].ID < matches[j].ID
	})
	return matches
}

// GenerateReferrals turns the top matches into referrals with a normalized
// relevance score, a recommended contact method, next steps and a wait-time
// estimate.
func (d *Directory) GenerateReferrals(criteria model.SearchCriteria, maxReferrals int) []model.ResourceReferral {
	if maxReferrals <= 0 {
		maxReferrals = DefaultMaxReferrals
	}

	matches := d.Find(criteria)
	if len(matches) > maxReferrals {
		matches = matches[:maxReferrals]
	}

	referrals := make([]model.ResourceReferral, 0, len(matches))
	for _, org := range matches {
		score := relevanceScore(&org, criteria) / scoreCeiling
		if score > 1.0 {
			score = 1.0
		}

		referrals = append(referrals, model.ResourceReferral{
			Organization:      org,
			RelevanceScore:    score,
			ContactMethod:     recommendedContactMethod(&org, criteria),
			NextSteps:         nextSteps(&org, criteria),
			EstimatedWaitTime: estimateWaitTime(&org, criteria),
		})
	}
	return referrals
}

func matchesCriteria(org *model.LegalAidOrganization, criteria model.SearchCriteria) bool {
	if criteria.IssueType != "" && !specializesIn(org, criteria.IssueType) {
		return false
	}
	if criteria.Language != "" && !supportsLanguage(org, criteria.Language) {
		return false
	}
	if criteria.Location != nil && !servesLocation(org, criteria.Location) {
		return false
	}
	return true
}

func specializesIn(org *model.LegalAidOrganization, issue model.IssueType) bool {
	for _, s := range org.Specializations {
		if s == issue {
			return true
		}
	}
	return false
}

func supportsLanguage(org *model.LegalAidOrganization, lang string) bool {
	for _, l := range org.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

func servesLocation(org *model.LegalAidOrganization, loc *model.Location) bool {
	area := org.ServiceArea

	for _, state := range area.States {
		if state == "ALL" {
			return true
		}
	}

	inState := false
	for _, state := range area.States {
		if state == loc.State {
			inState = true
			break
		}
	}
	if !inState {
		return false
	}

	if len(area.Counties) > 0 && loc.County != "" {
		found := false
		for _, county := range area.Counties {
			if county == loc.County {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(area.ZipCodes) > 0 && loc.ZipCode != "" {
		found := false
		for _, zip := range area.ZipCodes {
			if zip == loc.ZipCode {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func relevanceScore(org *model.LegalAidOrganization, criteria model.SearchCriteria) float64 {
	score := 0.0

	if criteria.IssueType != "" && specializesIn(org, criteria.IssueType) {
		score += scoreSpecialization
		if len(org.Specializations) == 1 {
			score += scoreSoleSpecialist
		}
	}

	if criteria.Language != "" && supportsLanguage(org, criteria.Language) {
		score += scoreLanguage
	}

	if criteria.Location != nil && servesLocation(org, criteria.Location) {
		score += scoreGeographic
		if criteria.Location.County != "" && len(org.ServiceArea.Counties) > 0 {
			for _, county := range org.ServiceArea.Counties {
				if county == criteria.Location.County {
					score += scoreCountyMatch
					break
				}
			}
		}
	}

	if criteria.Urgency.Elevated() && org.Availability.AroundTheClock() {
		score += scoreAroundTheClock
	}

	return score
}

// Urgent and safety-sensitive matters always go to phone.
func recommendedContactMethod(org *model.LegalAidOrganization, criteria model.SearchCriteria) model.ContactMethod {
	if criteria.Urgency.Elevated() {
		return model.ContactPhone
	}
	if criteria.IssueType == model.IssueDomesticViolence {
		return model.ContactPhone
	}
	if org.Contact.Website != "" {
		return model.ContactOnline
	}
	return model.ContactPhone
}

func nextSteps(org *model.LegalAidOrganization, criteria model.SearchCriteria) []string {
	steps := []string{
		fmt.Sprintf("Call %s during intake hours", org.Contact.Phone),
		"Gather relevant documents and information about your situation",
	}

	if len(org.EligibilityRequirements) > 0 {
		steps = append(steps, "Review eligibility requirements before calling")
	}
	if criteria.Language != "" && criteria.Language != "en" && supportsLanguage(org, criteria.Language) {
		steps = append(steps, "Services available in your preferred language")
	}

	if criteria.Urgency == model.UrgencyEmergency {
		steps = append([]string{"This is an emergency resource - call immediately"}, steps...)
	}
	return steps
}

func estimateWaitTime(org *model.LegalAidOrganization, criteria model.SearchCriteria) string {
	if criteria.Urgency == model.UrgencyEmergency {
		if org.Availability.AroundTheClock() {
			return "Immediate assistance available"
		}
		return "Call during business hours for urgent assistance"
	}

	if len(org.Specializations) == 1 && org.Specializations[0] == model.IssueDomesticViolence {
		return "Usually same-day response for safety planning"
	}
	return "Typically 1-2 weeks for initial consultation"
}
