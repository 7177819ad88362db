package disclaimer

import (
	"strings"
	"sync"
	"time"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/audit"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
)

// Disclaimer tags. Contextual tags are derived per issue type.
const (
	TagInitial  = "initial"
	TagReminder = "reminder"
	TagHighRisk = "high_risk"
)

// ContextualTag returns the acknowledgment tag for an issue-specific
// disclaimer.
func ContextualTag(issue model.IssueType) string {
	return "contextual_" + string(issue)
}

const DefaultReminderInterval = 5

// Input keywords that mark a turn as high-risk regardless of classification.
var highRiskKeywords = []string{
	"sue", "lawsuit", "court", "trial", "arrest", "criminal", "charges",
	"emergency", "urgent", "deadline", "eviction notice", "served",
	"violence", "abuse", "threat", "danger", "safety",
}

// Service is the disclaimer gate. Acknowledgments are monotonic per session;
// tags are only removed by a full session purge.
type Service struct {
	trail            *audit.Trail
	reminderInterval int

	mu              sync.Mutex
	acknowledgments map[string]map[string]bool
	lastReminder    map[string]int // session id -> turn index of last reminder
}

func NewService(trail *audit.Trail, reminderInterval int) *Service {
	if reminderInterval <= 0 {
		reminderInterval = DefaultReminderInterval
	}
	return &Service{
		trail:            trail,
		reminderInterval: reminderInterval,
		acknowledgments:  make(map[string]map[string]bool),
		lastReminder:     make(map[string]int),
	}
}

// InitialDisclaimer returns the session-opening disclaimer.
func (s *Service) InitialDisclaimer(lang string) string {
	return pick(initialTemplates, lang)
}

// ContextualDisclaimer returns the issue-specific disclaimer, falling back
// to the generic reminder for issue types without a dedicated template.
func (s *Service) ContextualDisclaimer(issue model.IssueType, lang string) string {
	if byLang, ok := contextualTemplates[issue]; ok {
		return pick(byLang, lang)
	}
	return pick(reminderTemplates, lang)
}

func (s *Service) ReminderText(lang string) string {
	return pick(reminderTemplates, lang)
}

func (s *Service) HighRiskDisclaimer(lang string) string {
	return pick(highRiskTemplates, lang)
}

// BoundaryMessage explains what the system can and cannot do.
func (s *Service) BoundaryMessage(lang string) string {
	return pick(boundaryMessages, lang)
}

// TextFor resolves a tag to its disclaimer text.
func (s *Service) TextFor(tag, lang string) string {
	switch {
	case tag == TagInitial:
		return s.InitialDisclaimer(lang)
	case tag == TagReminder:
		return s.ReminderText(lang)
	case tag == TagHighRisk:
		return s.HighRiskDisclaimer(lang)
	case strings.HasPrefix(tag, "contextual_"):
		return s.ContextualDisclaimer(model.IssueType(strings.TrimPrefix(tag, "contextual_")), lang)
	default:
		return s.ReminderText(lang)
	}
}

// ShouldShow evaluates the gate for the current turn and returns the tag of
// the disclaimer to show, in priority order: initial first, then the
// contextual disclaimer for the classified issue, then the periodic
// reminder, then the high-risk disclaimer.
func (s *Service) ShouldShow(ctx *model.ConversationContext) (bool, string) {
	id := ctx.Session.ID

	if !s.Acknowledged(id, TagInitial) {
		return true, TagInitial
	}

	if ctx.Session.UserContext.IssueType != nil {
		tag := ContextualTag(*ctx.Session.UserContext.IssueType)
		if _, hasTemplate := contextualTemplates[*ctx.Session.UserContext.IssueType]; hasTemplate && !s.Acknowledged(id, tag) {
			return true, tag
		}
	}

	if s.reminderDue(id, ctx.ConversationLength) {
		return true, TagReminder
	}

	if s.isHighRisk(ctx) && !s.Acknowledged(id, TagHighRisk) {
		return true, TagHighRisk
	}

	return false, ""
}

// reminderDue fires at every multiple of the reminder interval, once per
// checkpoint.
func (s *Service) reminderDue(id string, conversationLength int) bool {
	if conversationLength <= 0 || conversationLength%s.reminderInterval != 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReminder[id] != conversationLength
}

// MarkReminderShown records the turn at which a periodic reminder was
// delivered so the same checkpoint never fires twice.
func (s *Service) MarkReminderShown(id string, conversationLength int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReminder[id] = conversationLength
}

func (s *Service) isHighRisk(ctx *model.ConversationContext) bool {
	lower := strings.ToLower(ctx.LastUserInput)
	for _, kw := range highRiskKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	if ctx.Session.UserContext.UrgencyLevel != nil && ctx.Session.UserContext.UrgencyLevel.Elevated() {
		return true
	}
	if ctx.Session.UserContext.IssueType != nil && *ctx.Session.UserContext.IssueType == model.IssueDomesticViolence {
		return true
	}
	return false
}

// RecordAcknowledgment adds a tag to the session's acknowledged set and
// appends a compliance audit record.
func (s *Service) RecordAcknowledgment(id, tag string) {
	s.mu.Lock()
	if s.acknowledgments[id] == nil {
		s.acknowledgments[id] = make(map[string]bool)
	}
	s.acknowledgments[id][tag] = true
	s.mu.Unlock()

	s.trail.Record(id, audit.ActionDisclaimerAcknowledged, map[string]string{
		"disclaimer_type": tag,
		"acknowledged_at": time.Now().Format(time.RFC3339),
	}, "disclaimer_compliance")
}

// Acknowledged reports whether the session has acknowledged a tag.
func (s *Service) Acknowledged(id, tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acknowledgments[id][tag]
}

// Status returns the acknowledgment state of every standard tag.
func (s *Service) Status(id string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	acked := s.acknowledgments[id]
	status := map[string]bool{
		TagInitial:  acked[TagInitial],
		TagHighRisk: acked[TagHighRisk],
	}
	for issue := range contextualTemplates {
		tag := ContextualTag(issue)
		status[tag] = acked[tag]
	}
	return status
}

// PurgeSession drops the session's acknowledgment and reminder state. Only a
// full session purge may call this.
func (s *Service) PurgeSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.acknowledgments, id)
	delete(s.lastReminder, id)
}
