package model

// SessionUpdate is a typed partial update applied to a stored session.
// Nil fields are left untouched; AppendTurn adds to history rather than
// replacing it. The store bumps LastActivity itself on every update.
type SessionUpdate struct {
	Language               *string
	DisclaimerAcknowledged *bool
	AppendTurn             *ConversationTurn
	UserContext            *UserContextUpdate
}

// UserContextUpdate merges field by field into the stored UserContext.
// A partial update can never blank out fields it does not mention.
type UserContextUpdate struct {
	Location          *Location
	PreferredLanguage *string
	IssueType         *IssueType
	UrgencyLevel      *UrgencyLevel
	HasMinorChildren  *bool
	HouseholdIncome   *IncomeRange
}

// Apply merges the update into ctx in place.
func (u *UserContextUpdate) Apply(ctx *UserContext) {
	if u == nil {
		return
	}
	if u.Location != nil {
		loc := *u.Location
		ctx.Location = &loc
	}
	if u.PreferredLanguage != nil {
		ctx.PreferredLanguage = *u.PreferredLanguage
	}
	if u.IssueType != nil {
		t := *u.IssueType
		ctx.IssueType = &t
	}
	if u.UrgencyLevel != nil {
		l := *u.UrgencyLevel
		ctx.UrgencyLevel = &l
	}
	if u.HasMinorChildren != nil {
		b := *u.HasMinorChildren
		ctx.HasMinorChildren = &b
	}
	if u.HouseholdIncome != nil {
		r := *u.HouseholdIncome
		ctx.HouseholdIncome = &r
	}
}
