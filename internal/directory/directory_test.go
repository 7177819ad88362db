package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/errors"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
)

func TestGet(t *testing.T) {
	dir := New()

	t.Run("returns a known organization", func(t *testing.T) {
		org, err := dir.Get("housing_rights_center")
		require.NoError(t, err)
		assert.Equal(t, "Housing Rights Center", org.Name)
	})

	t.Run("unknown id is an error", func(t *testing.T) {
		_, err := dir.Get("no_such_org")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeOrganizationNotFound))
	})
}

func TestFind(t *testing.T) {
	dir := New()

	t.Run("filters by specialization", func(t *testing.T) {
		matches := dir.Find(model.SearchCriteria{IssueType: model.IssueWageTheft})
		require.NotEmpty(t, matches)
		for _, org := range matches {
			assert.Contains(t, org.Specializations, model.IssueWageTheft)
		}
	})

	t.Run("filters by language", func(t *testing.T) {
		matches := dir.Find(model.SearchCriteria{Language: "ko"})
		require.Len(t, matches, 1)
		assert.Equal(t, "housing_rights_center", matches[0].ID)
	})

	t.Run("state outside service area excludes local orgs", func(t *testing.T) {
		matches := dir.Find(model.SearchCriteria{
			IssueType: model.IssueDomesticViolence,
			Location:  &model.Location{State: "NY"},
		})
		// Only the national hotline serves every state.
		require.Len(t, matches, 1)
		assert.Equal(t, "national_domestic_violence_hotline", matches[0].ID)
	})

	t.Run("county restriction applies inside the state", func(t *testing.T) {
		matches := dir.Find(model.SearchCriteria{
			IssueType: model.IssueTenantRights,
			Location:  &model.Location{State: "CA", County: "Ventura"},
		})
		require.Len(t, matches, 1)
		assert.Equal(t, "housing_rights_center", matches[0].ID)
	})

	t.Run("sole specialist outranks generalist", func(t *testing.T) {
		matches := dir.Find(model.SearchCriteria{
			IssueType: model.IssueDomesticViolence,
			Location:  &model.Location{State: "CA", County: "Los Angeles"},
		})
		require.NotEmpty(t, matches)
		assert.Equal(t, "domestic_violence_center_ca", matches[0].ID)
	})

	t.Run("around-the-clock bonus requires elevated urgency", func(t *testing.T) {
		hotline, err := dir.Get("national_domestic_violence_hotline")
		require.NoError(t, err)
		require.True(t, hotline.Availability.AroundTheClock())

		criteria := model.SearchCriteria{IssueType: model.IssueDomesticViolence}
		base := relevanceScore(hotline, criteria)

		criteria.Urgency = model.UrgencyLow
		assert.Equal(t, base, relevanceScore(hotline, criteria))

		criteria.Urgency = model.UrgencyHigh
		assert.Equal(t, base+scoreAroundTheClock, relevanceScore(hotline, criteria))
	})

	t.Run("empty criteria returns the whole catalog", func(t *testing.T) {
		matches := dir.Find(model.SearchCriteria{})
		assert.Len(t, matches, len(dir.All()))
	})
}

func TestGenerateReferrals(t *testing.T) {
	dir := New()

	t.Run("caps at max referrals", func(t *testing.T) {
		referrals := dir.GenerateReferrals(model.SearchCriteria{}, 2)
		assert.Len(t, referrals, 2)
	})

	t.Run("scores are normalized to the unit interval", func(t *testing.T) {
		referrals := dir.GenerateReferrals(model.SearchCriteria{
			IssueType: model.IssueDomesticViolence,
			Language:  "es",
			Location:  &model.Location{State: "CA", County: "Los Angeles"},
			Urgency:   model.UrgencyEmergency,
		}, 3)

		require.NotEmpty(t, referrals)
		for _, r := range referrals {
			assert.GreaterOrEqual(t, r.RelevanceScore, 0.0)
			assert.LessOrEqual(t, r.RelevanceScore, 1.0)
		}
	})

	t.Run("urgent referrals recommend phone contact", func(t *testing.T) {
		referrals := dir.GenerateReferrals(model.SearchCriteria{
			IssueType: model.IssueTenantRights,
			Urgency:   model.UrgencyHigh,
		}, 3)

		require.NotEmpty(t, referrals)
		for _, r := range referrals {
			assert.Equal(t, model.ContactPhone, r.ContactMethod)
		}
	})

	t.Run("next steps start with the intake call", func(t *testing.T) {
		referrals := dir.GenerateReferrals(model.SearchCriteria{
			IssueType: model.IssueWageTheft,
		}, 1)

		require.Len(t, referrals, 1)
		require.NotEmpty(t, referrals[0].NextSteps)
		assert.Contains(t, referrals[0].NextSteps[0], "Call ")
		assert.Contains(t, referrals[0].NextSteps[0], "during intake hours")
	})

	t.Run("emergency prepends the immediate-call step", func(t *testing.T) {
		referrals := dir.GenerateReferrals(model.SearchCriteria{
			IssueType: model.IssueDomesticViolence,
			Urgency:   model.UrgencyEmergency,
		}, 1)

		require.Len(t, referrals, 1)
		assert.Contains(t, referrals[0].NextSteps[0], "emergency resource")
	})

	t.Run("wait time reflects urgency and availability", func(t *testing.T) {
		referrals := dir.GenerateReferrals(model.SearchCriteria{
			IssueType: model.IssueDomesticViolence,
			Urgency:   model.UrgencyEmergency,
		}, 3)

		require.NotEmpty(t, referrals)
		assert.Equal(t, "Immediate assistance available", referrals[0].EstimatedWaitTime)
	})

	t.Run("spanish criteria notes language availability", func(t *testing.T) {
		referrals := dir.GenerateReferrals(model.SearchCriteria{
			IssueType: model.IssueTenantRights,
			Language:  "es",
		}, 1)

		require.Len(t, referrals, 1)
		found := false
		for _, step := range referrals[0].NextSteps {
			if step == "Services available in your preferred language" {
				found = true
			}
		}
		assert.True(t, found)
	})
}
