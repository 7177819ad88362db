package model

import (
	apperrors "github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/errors"
)

var validUrgencies = map[UrgencyLevel]bool{
	UrgencyLow: true, UrgencyMedium: true, UrgencyHigh: true, UrgencyEmergency: true,
}

var validIncomes = map[IncomeRange]bool{
	IncomeVeryLow: true, IncomeLow: true, IncomeModerate: true, IncomeAboveModerate: true,
}

var validIssueTypes = map[IssueType]bool{
	IssueLandDispute: true, IssueDomesticViolence: true, IssueWageTheft: true,
	IssueTenantRights: true, IssueOther: true,
}

// Validate rejects malformed coordinates before they reach a session record.
func (l *Location) Validate() error {
	if l == nil || l.Coordinates == nil {
		return nil
	}
	if l.Coordinates.Latitude < -90 || l.Coordinates.Latitude > 90 {
		return apperrors.InvalidInput("latitude", "must be between -90 and 90")
	}
	if l.Coordinates.Longitude < -180 || l.Coordinates.Longitude > 180 {
		return apperrors.InvalidInput("longitude", "must be between -180 and 180")
	}
	return nil
}

// Validate checks a partial context update before it is merged. A failed
// validation leaves the stored session untouched.
func (u *UserContextUpdate) Validate() error {
	if u == nil {
		return nil
	}
	if err := u.Location.Validate(); err != nil {
		return err
	}
	if u.IssueType != nil && !validIssueTypes[*u.IssueType] {
		return apperrors.InvalidInput("issueType", "unknown issue type")
	}
	if u.UrgencyLevel != nil && !validUrgencies[*u.UrgencyLevel] {
		return apperrors.InvalidInput("urgencyLevel", "unknown urgency level")
	}
	if u.HouseholdIncome != nil && !validIncomes[*u.HouseholdIncome] {
		return apperrors.InvalidInput("householdIncome", "unknown income range")
	}
	return nil
}

// Validate checks the fields of a turn before it is appended.
func (t *ConversationTurn) Validate() error {
	if t == nil {
		return nil
	}
	if t.Confidence < 0 || t.Confidence > 1 {
		return apperrors.InvalidInput("confidence", "must be between 0 and 1")
	}
	return nil
}

// Validate checks an update before the store applies any part of it.
func (u *SessionUpdate) Validate() error {
	if u == nil {
		return nil
	}
	if err := u.UserContext.Validate(); err != nil {
		return err
	}
	return u.AppendTurn.Validate()
}
