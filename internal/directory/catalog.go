package directory

import "github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"

func weekdayHours(open, close string) model.OperatingHours {
	return model.OperatingHours{
		"monday":    {Open: open, Close: close},
		"tuesday":   {Open: open, Close: close},
		"wednesday": {Open: open, Close: close},
		"thursday":  {Open: open, Close: close},
		"friday":    {Open: open, Close: close},
	}
}

func allWeekHours(open, close string) model.OperatingHours {
	h := weekdayHours(open, close)
	h["saturday"] = model.DayHours{Open: open, Close: close}
	h["sunday"] = model.DayHours{Open: open, Close: close}
	return h
}

func shortFriday(open, close, fridayClose string) model.OperatingHours {
	h := weekdayHours(open, close)
	h["friday"] = model.DayHours{Open: open, Close: fridayClose}
	return h
}

// seedOrganizations is the built-in catalog. Read-only after initialization.
func seedOrganizations() []model.LegalAidOrganization {
	return []model.LegalAidOrganization{
		{
			ID:   "legal_aid_society_la",
			Name: "Legal Aid Society of Los Angeles",
			Contact: model.ContactInfo{
				Phone: "(213) 555-0123",
				Email: "intake@lasla.org",
				Address: model.Address{
					Street:  "1234 Main St",
					City:    "Los Angeles",
					State:   "CA",
					ZipCode: "90012",
					Country: "US",
				},
				Website:     "https://www.lasla.org",
				IntakeHours: shortFriday("9:00 AM", "5:00 PM", "3:00 PM"),
			},
			Specializations: []model.IssueType{
				model.IssueTenantRights,
				model.IssueWageTheft,
				model.IssueDomesticViolence,
			},
			ServiceArea: model.GeographicArea{
				States:   []string{"CA"},
				Counties: []string{"Los Angeles"},
				ZipCodes: []string{"90001", "90002", "90012", "90013", "90014"},
			},
			Languages:    []string{"en", "es"},
			Availability: shortFriday("8:00 AM", "6:00 PM", "4:00 PM"),
			EligibilityRequirements: []string{
				"Income below 125% of Federal Poverty Level",
				"Resident of Los Angeles County",
			},
		},
		{
			ID:   "domestic_violence_center_ca",
			Name: "California Domestic Violence Legal Center",
			Contact: model.ContactInfo{
				Phone: "(800) 555-0199",
				Email: "help@dvlegal-ca.org",
				Address: model.Address{
					Street:  "5678 Safety Blvd",
					City:    "San Francisco",
					State:   "CA",
					ZipCode: "94102",
					Country: "US",
				},
				Website:     "https://www.dvlegal-ca.org",
				IntakeHours: allWeekHours("24 hours", "24 hours"),
			},
			Specializations: []model.IssueType{model.IssueDomesticViolence},
			ServiceArea: model.GeographicArea{
				States:   []string{"CA"},
				Counties: []string{"Los Angeles", "San Francisco", "Orange", "San Diego"},
			},
			Languages:    []string{"en", "es"},
			Availability: allWeekHours("24 hours", "24 hours"),
			EligibilityRequirements: []string{
				"Victim of domestic violence",
				"California resident",
			},
		},
		{
			ID:   "housing_rights_center",
			Name: "Housing Rights Center",
			Contact: model.ContactInfo{
				Phone: "(213) 555-0156",
				Email: "info@housingrights.org",
				Address: model.Address{
					Street:  "9876 Tenant Ave",
					City:    "Los Angeles",
					State:   "CA",
					ZipCode: "90015",
					Country: "US",
				},
				Website:     "https://www.housingrights.org",
				IntakeHours: weekdayHours("9:00 AM", "5:00 PM"),
			},
			Specializations: []model.IssueType{
				model.IssueTenantRights,
				model.IssueLandDispute,
			},
			ServiceArea: model.GeographicArea{
				States:   []string{"CA"},
				Counties: []string{"Los Angeles", "Orange", "Ventura"},
			},
			Languages:    []string{"en", "es", "ko"},
			Availability: weekdayHours("9:00 AM", "5:00 PM"),
			EligibilityRequirements: []string{
				"Low to moderate income",
				"Housing-related legal issue",
			},
		},
		{
			ID:   "workers_rights_legal_clinic",
			Name: "Workers' Rights Legal Clinic",
			Contact: model.ContactInfo{
				Phone: "(213) 555-0178",
				Email: "intake@workersrights.org",
				Address: model.Address{
					Street:  "4321 Labor St",
					City:    "Los Angeles",
					State:   "CA",
					ZipCode: "90017",
					Country: "US",
				},
				Website:     "https://www.workersrights.org",
				IntakeHours: shortFriday("8:00 AM", "6:00 PM", "4:00 PM"),
			},
			Specializations: []model.IssueType{model.IssueWageTheft},
			ServiceArea: model.GeographicArea{
				States:   []string{"CA"},
				Counties: []string{"Los Angeles", "Orange", "Riverside", "San Bernardino"},
			},
			Languages:    []string{"en", "es"},
			Availability: shortFriday("8:00 AM", "6:00 PM", "4:00 PM"),
			EligibilityRequirements: []string{
				"Low-wage worker",
				"Employment-related legal issue",
			},
		},
		{
			ID:   "national_domestic_violence_hotline",
			Name: "National Domestic Violence Hotline",
			Contact: model.ContactInfo{
				Phone: "1-800-799-7233",
				Email: "info@thehotline.org",
				Address: model.Address{
					Street:  "P.O. Box 161810",
					City:    "Austin",
					State:   "TX",
					ZipCode: "78716",
					Country: "US",
				},
				Website:     "https://www.thehotline.org",
				IntakeHours: allWeekHours("24 hours", "24 hours"),
			},
			Specializations: []model.IssueType{model.IssueDomesticViolence},
			ServiceArea: model.GeographicArea{
				States: []string{"ALL"},
			},
			Languages:    []string{"en", "es"},
			Availability: allWeekHours("24 hours", "24 hours"),
			EligibilityRequirements: []string{
				"Anyone affected by domestic violence",
			},
		},
	}
}
