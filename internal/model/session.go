package model

import (
	"time"
)

// Session is the live, decrypted view of one conversation. The secure store
// owns the encrypted-at-rest representation; a Session returned by the store
// is a fresh copy the caller may use only for the duration of the current
// operation.
type Session struct {
	ID                     string             `json:"id"`
	StartTime              time.Time          `json:"startTime"`
	LastActivity           time.Time          `json:"lastActivity"`
	Language               string             `json:"language"`
	History                []ConversationTurn `json:"history"`
	UserContext            UserContext        `json:"userContext"`
	DisclaimerAcknowledged bool               `json:"disclaimerAcknowledged"`
}

// ConversationTurn is immutable once appended to a session's history.
type ConversationTurn struct {
	Timestamp       time.Time      `json:"timestamp"`
	UserInput       string         `json:"userInput"`
	Response        SystemResponse `json:"response"`
	Confidence      float64        `json:"confidence"`
	DisclaimerShown bool           `json:"disclaimerShown"`
}

type UserContext struct {
	Location          *Location     `json:"location,omitempty"`
	PreferredLanguage string        `json:"preferredLanguage"`
	IssueType         *IssueType    `json:"issueType,omitempty"`
	UrgencyLevel      *UrgencyLevel `json:"urgencyLevel,omitempty"`
	HasMinorChildren  *bool         `json:"hasMinorChildren,omitempty"`
	HouseholdIncome   *IncomeRange  `json:"householdIncome,omitempty"`
}

type Location struct {
	State       string       `json:"state"`
	County      string       `json:"county,omitempty"`
	ZipCode     string       `json:"zipCode,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ConversationContext is the orchestrator's per-turn view of a session.
type ConversationContext struct {
	Session            *Session
	CurrentTurn        int
	LastUserInput      string
	ConversationLength int
}

type ConversationSummary struct {
	SessionID         string             `json:"sessionId"`
	DurationMinutes   float64            `json:"durationMinutes"`
	IssuesDiscussed   []IssueType        `json:"issuesDiscussed"`
	ResourcesProvided []ResourceReferral `json:"resourcesProvided"`
	NextSteps         []string           `json:"nextSteps"`
	DisclaimersShown  []string           `json:"disclaimersShown"`
}
