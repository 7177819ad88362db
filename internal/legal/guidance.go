package legal

import (
	"fmt"
	"strings"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
)

type guidanceTemplate struct {
	summary string
	steps   []string
	laws    []string
}

var guidanceTemplates = map[model.IssueType]guidanceTemplate{
	model.IssueLandDispute: {
		summary: "Property disputes often involve boundary issues, ownership questions, or neighbor conflicts.",
		steps: []string{
			"Gather all property documents including deed, survey, and title insurance",
			"Document the specific issue with photos and written descriptions",
			"Check local zoning laws and property records",
			"Attempt to resolve the matter through direct communication with the other party",
			"Consider mediation services before pursuing litigation",
			"Consult with a real estate attorney if the dispute involves significant value or complex legal issues",
		},
		laws: []string{"State Property Law", "Local Zoning Ordinances", "Adverse Possession Statutes"},
	},
	model.IssueDomesticViolence: {
		summary: "Domestic violence is a serious crime with legal protections available for victims.",
		steps: []string{
			"Ensure your immediate safety - call 911 if in danger",
			"Contact the National Domestic Violence Hotline: 1-800-799-7233",
			"Document all incidents with dates, photos, and witness information",
			"Consider filing for a restraining order or protection order",
			"Preserve evidence including medical records, photos, and communications",
			"Seek support from local domestic violence organizations",
			"Consult with an attorney who specializes in domestic violence cases",
		},
		laws: []string{"Violence Against Women Act (VAWA)", "State Domestic Violence Laws", "Protection Order Statutes"},
	},
	model.IssueWageTheft: {
		summary: "Workers have legal rights to fair wages and proper compensation for their work.",
		steps: []string{
			"Keep detailed records of hours worked, pay stubs, and employment agreements",
			"Calculate the exact amount of unpaid wages owed",
			"Speak with your employer about the wage issue in writing",
			"File a complaint with your state's Department of Labor",
			"Contact the U.S. Department of Labor Wage and Hour Division",
			"Consider filing a lawsuit if other remedies are unsuccessful",
			"Consult with an employment attorney for complex cases",
		},
		laws: []string{"Fair Labor Standards Act (FLSA)", "State Minimum Wage Laws", "State Overtime Laws"},
	},
	model.IssueTenantRights: {
		summary: "Tenants have legal rights regarding housing conditions, rent, and eviction procedures.",
		steps: []string{
			"Review your lease agreement carefully",
			"Document any housing problems with photos and written notices to landlord",
			"Understand your state's tenant rights and landlord obligations",
			"Communicate with your landlord in writing about issues",
			"Know the proper legal procedures for rent withholding or repair requests",
			"Contact local tenant rights organizations for assistance",
			"Seek legal counsel if facing eviction or serious habitability issues",
		},
		laws: []string{"State Landlord-Tenant Laws", "Local Housing Codes", "Fair Housing Act"},
	},
}

var genericGuidance = guidanceTemplate{
	summary: "This appears to be a legal issue that may require professional consultation.",
	steps: []string{
		"Document all relevant facts and gather supporting materials",
		"Research applicable laws in your jurisdiction",
		"Consider consulting with a qualified attorney",
		"Contact your local bar association for attorney referrals",
		"Look into legal aid organizations in your area",
	},
	laws: []string{"Consult with attorney for applicable laws"},
}

// GenerateGuidance renders the issue-type template adjusted for urgency,
// complexity and user context. The professional-help flag is a logical OR
// across its triggers; once set it is never reset by a later adjustment.
func (e *Engine) GenerateGuidance(issue *model.LegalIssue, ctx *model.UserContext) *model.Guidance {
	template, ok := guidanceTemplates[issue.Type]
	if !ok {
		return &model.Guidance{
			Summary:                    genericGuidance.summary,
			DetailedSteps:              append([]string(nil), genericGuidance.steps...),
			UrgencyLevel:               issue.Urgency,
			RecommendsProfessionalHelp: true,
			ApplicableLaws:             append([]string(nil), genericGuidance.laws...),
		}
	}

	steps := append([]string(nil), template.steps...)
	recommendsProfessional := e.recommendsProfessionalHelp(issue)

	switch issue.Urgency {
	case model.UrgencyEmergency:
		steps = append([]string{
			"URGENT: Seek immediate help - call 911 if in physical danger",
			"Contact emergency legal services or domestic violence hotline immediately",
		}, steps...)
		recommendsProfessional = true
	case model.UrgencyHigh:
		steps = append([]string{
			"Address this issue promptly as time may be critical",
			"Consider seeking immediate legal consultation",
		}, steps...)
	}

	switch issue.Complexity {
	case model.ComplexityComplex:
		steps = append(steps,
			"This is a complex legal matter - professional legal representation is strongly recommended",
			"Consider seeking a consultation with a specialist attorney in this area of law",
		)
		recommendsProfessional = true
	case model.ComplexityModerate:
		steps = append(steps, "Consider consulting with an attorney for personalized advice on your situation")
	}

	if ctx != nil {
		if ctx.Location != nil && ctx.Location.State != "" {
			steps = append(steps, fmt.Sprintf("Research %s state-specific laws that may apply to your situation", ctx.Location.State))
		}
		if ctx.HouseholdIncome != nil &&
			(*ctx.HouseholdIncome == model.IncomeVeryLow || *ctx.HouseholdIncome == model.IncomeLow) {
			steps = append(steps,
				"You may qualify for free or low-cost legal aid services",
				"Contact your local legal aid society for assistance",
			)
		}
	}

	return &model.Guidance{
		Summary:                    template.summary,
		DetailedSteps:              steps,
		UrgencyLevel:               issue.Urgency,
		RecommendsProfessionalHelp: recommendsProfessional,
		ApplicableLaws:             append([]string(nil), template.laws...),
	}
}

func (e *Engine) recommendsProfessionalHelp(issue *model.LegalIssue) bool {
	if issue.Complexity == model.ComplexityComplex || issue.Complexity == model.ComplexityModerate {
		return true
	}
	if issue.Urgency.Elevated() {
		return true
	}
	if issue.Type == model.IssueDomesticViolence {
		return true
	}
	if len(issue.InvolvedParties) > 1 {
		return true
	}
	if len(issue.Documents) > 2 {
		return true
	}

	lower := strings.ToLower(issue.Description)
	for _, kw := range professionalHelpKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Citations returns the legal authorities relevant to the issue type. The
// catch-all type has none.
func (e *Engine) Citations(issue *model.LegalIssue) []model.Citation {
	switch issue.Type {
	case model.IssueLandDispute:
		return []model.Citation{
			{
				Title:        "State Property Law",
				Jurisdiction: "State",
				Summary:      "Governs property ownership, boundaries, and disputes",
			},
			{
				Title:        "Local Zoning Ordinances",
				Jurisdiction: "Local",
				Summary:      "Regulates land use and property development",
			},
		}
	case model.IssueDomesticViolence:
		return []model.Citation{
			{
				Title:        "Violence Against Women Act (VAWA)",
				Jurisdiction: "Federal",
				URL:          "https://www.justice.gov/ovw/violence-against-women-act",
				Summary:      "Federal law providing protections for domestic violence victims",
			},
			{
				Title:        "State Domestic Violence Protection Act",
				Jurisdiction: "State",
				Summary:      "State-specific protections and remedies for domestic violence",
			},
		}
	case model.IssueWageTheft:
		return []model.Citation{
			{
				Title:        "Fair Labor Standards Act (FLSA)",
				Section:      "29 U.S.C. § 201",
				Jurisdiction: "Federal",
				URL:          "https://www.dol.gov/agencies/whd/flsa",
				Summary:      "Federal law establishing minimum wage and overtime requirements",
			},
			{
				Title:        "State Wage and Hour Laws",
				Jurisdiction: "State",
				Summary:      "State-specific wage and hour protections",
			},
		}
	case model.IssueTenantRights:
		return []model.Citation{
			{
				Title:        "State Landlord-Tenant Act",
				Jurisdiction: "State",
				Summary:      "Governs rental relationships and tenant rights",
			},
			{
				Title:        "Fair Housing Act",
				Section:      "42 U.S.C. § 3601",
				Jurisdiction: "Federal",
				URL:          "https://www.hud.gov/program_offices/fair_housing_equal_opp/fair_housing_act_overview",
				Summary:      "Prohibits housing discrimination",
			},
		}
	default:
		return nil
	}
}
