package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/config"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/directory"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/disclaimer"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/legal"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/session"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/util"
)

const (
	confidenceClassified = 0.9
	confidenceFallback   = 0.7
)

var acknowledgmentPhrases = []string{
	"yes", "i understand", "i acknowledge", "i agree", "understood", "ok", "okay",
	"sí", "entiendo", "reconozco", "estoy de acuerdo", "entendido",
}

var negationPhrases = []string{"no", "don't", "not", "disagree", "refuse"}

var endPhrases = []string{
	"goodbye", "thank you", "that's all", "no more questions",
	"adiós", "gracias", "eso es todo", "no más preguntas",
}

// Engine orchestrates a conversation turn: disclaimer gating, issue
// classification, guidance, referrals, and durable recording of the turn.
type Engine struct {
	store        *session.Store
	legal        *legal.Engine
	directory    *directory.Directory
	disclaimers  *disclaimer.Service
	maxReferrals int
}

func NewEngine(store *session.Store, legalEngine *legal.Engine, dir *directory.Directory, disclaimers *disclaimer.Service, maxReferrals int) *Engine {
	if maxReferrals <= 0 {
		maxReferrals = directory.DefaultMaxReferrals
	}
	return &Engine{
		store:        store,
		legal:        legalEngine,
		directory:    dir,
		disclaimers:  disclaimers,
		maxReferrals: maxReferrals,
	}
}

// ProcessTurn handles one user input end to end and returns the structured
// response. The turn is appended to the session before returning, so the
// response is always durably recorded.
func (e *Engine) ProcessTurn(ctx context.Context, sessionID, inputText string) (*model.SystemResponse, error) {
	sess, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	convCtx := &model.ConversationContext{
		Session:            sess,
		CurrentTurn:        len(sess.History) + 1,
		LastUserInput:      inputText,
		ConversationLength: len(sess.History),
	}

	gated, tag := e.disclaimers.ShouldShow(convCtx)

	if gated && isAcknowledgment(inputText) {
		return e.handleAcknowledgment(ctx, sessionID, inputText, convCtx, tag)
	}
	if gated {
		return e.showDisclaimer(ctx, sessionID, inputText, convCtx, tag)
	}
	return e.processLegalQuery(ctx, sessionID, inputText, convCtx)
}

func (e *Engine) showDisclaimer(ctx context.Context, sessionID, inputText string, convCtx *model.ConversationContext, tag string) (*model.SystemResponse, error) {
	lang := convCtx.Session.Language

	resp := &model.SystemResponse{
		Text:               e.disclaimers.TextFor(tag, lang),
		RequiresDisclaimer: true,
		SuggestedActions: []model.Action{
			{
				Type:        "acknowledge_disclaimer",
				Description: "Acknowledge that you understand the disclaimer",
				Parameters:  map[string]string{"disclaimer_type": tag},
			},
		},
		FollowUpQuestions: []string{"Do you understand and acknowledge this disclaimer?"},
	}

	if tag == disclaimer.TagReminder {
		e.disclaimers.MarkReminderShown(sessionID, convCtx.ConversationLength)
	}

	if err := e.recordTurn(ctx, sessionID, inputText, resp, 1.0, true, nil); err != nil {
		return nil, err
	}
	return resp, nil
}

func (e *Engine) handleAcknowledgment(ctx context.Context, sessionID, inputText string, convCtx *model.ConversationContext, tag string) (*model.SystemResponse, error) {
	e.disclaimers.RecordAcknowledgment(sessionID, tag)

	var responseText string
	if convCtx.Session.Language == "es" {
		responseText = "Gracias por reconocer el aviso legal. ¿Cómo puedo ayudarle con su situación legal hoy?"
	} else {
		responseText = "Thank you for acknowledging the disclaimer. How can I help you with your legal situation today?"
	}

	resp := &model.SystemResponse{
		Text: responseText,
		SuggestedActions: []model.Action{
			{Type: "describe_issue", Description: "Describe your legal issue"},
		},
		FollowUpQuestions: []string{
			"What type of legal issue are you facing?",
			"Can you describe your situation?",
		},
	}
	if convCtx.Session.Language == "es" {
		resp.FollowUpQuestions = translateQuestions(resp.FollowUpQuestions)
	}

	acked := true
	upd := &model.SessionUpdate{DisclaimerAcknowledged: &acked}
	if err := e.recordTurn(ctx, sessionID, inputText, resp, 1.0, false, upd); err != nil {
		return nil, err
	}
	return resp, nil
}

func (e *Engine) processLegalQuery(ctx context.Context, sessionID, inputText string, convCtx *model.ConversationContext) (*model.SystemResponse, error) {
	issue := e.legal.IssueFromQuery(inputText)

	// Reflect the classification into the live copy so guidance, follow-ups
	// and the persisted update all see the same state.
	userCtx := &convCtx.Session.UserContext
	if issue.Type != model.IssueOther {
		t := issue.Type
		userCtx.IssueType = &t
	}
	u := issue.Urgency
	userCtx.UrgencyLevel = &u

	guidance := e.legal.GenerateGuidance(issue, userCtx)

	var referrals []model.ResourceReferral
	if issue.Type != model.IssueOther || guidance.RecommendsProfessionalHelp {
		criteria := model.SearchCriteria{
			Location:  userCtx.Location,
			IssueType: issue.Type,
			Language:  userCtx.PreferredLanguage,
			Urgency:   issue.Urgency,
		}
		referrals = e.directory.GenerateReferrals(criteria, e.maxReferrals)
	}

	resp := &model.SystemResponse{
		Text:              buildResponseText(guidance, referrals, convCtx.Session.Language),
		SuggestedActions:  suggestedActions(issue, referrals),
		Resources:         referrals,
		FollowUpQuestions: followUpQuestions(userCtx.IssueType, convCtx.Session.Language),
	}

	confidence := confidenceClassified
	if issue.Type == model.IssueOther {
		confidence = confidenceFallback
	}

	upd := &model.SessionUpdate{
		UserContext: &model.UserContextUpdate{UrgencyLevel: &issue.Urgency},
	}
	if issue.Type != model.IssueOther {
		upd.UserContext.IssueType = &issue.Type
	}

	if err := e.recordTurn(ctx, sessionID, inputText, resp, confidence, false, upd); err != nil {
		return nil, err
	}

	log.Debug().
		Str("session", util.MaskSessionID(sessionID)).
		Str("issue", string(issue.Type)).
		Str("urgency", string(issue.Urgency)).
		Int("referrals", len(referrals)).
		Msg("processed legal query")

	return resp, nil
}

// recordTurn persists the turn plus any accompanying context update in a
// single session update.
func (e *Engine) recordTurn(ctx context.Context, sessionID, userInput string, resp *model.SystemResponse, confidence float64, disclaimerShown bool, upd *model.SessionUpdate) error {
	if upd == nil {
		upd = &model.SessionUpdate{}
	}
	upd.AppendTurn = &model.ConversationTurn{
		Timestamp:       time.Now(),
		UserInput:       userInput,
		Response:        *resp,
		Confidence:      confidence,
		DisclaimerShown: disclaimerShown,
	}
	return e.store.Update(ctx, sessionID, *upd)
}

// Summarize builds a conversation summary from the stored session.
func (e *Engine) Summarize(ctx context.Context, sessionID string) (*model.ConversationSummary, error) {
	sess, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &model.ConversationSummary{
		SessionID:       sessionID,
		DurationMinutes: sess.LastActivity.Sub(sess.StartTime).Minutes(),
	}

	if sess.UserContext.IssueType != nil {
		summary.IssuesDiscussed = append(summary.IssuesDiscussed, *sess.UserContext.IssueType)
	}

	for _, turn := range sess.History {
		summary.ResourcesProvided = append(summary.ResourcesProvided, turn.Response.Resources...)
		if turn.DisclaimerShown {
			summary.DisclaimersShown = append(summary.DisclaimersShown, "Legal disclaimer presented")
		}
	}

	if len(sess.History) > 0 {
		last := sess.History[len(sess.History)-1].Response
		for _, action := range last.SuggestedActions {
			summary.NextSteps = append(summary.NextSteps, action.Description)
		}
	}

	return summary, nil
}

// ShouldEnd reports whether the conversation has run its course, either by
// length or by an explicit goodbye in either language.
func (e *Engine) ShouldEnd(convCtx *model.ConversationContext) bool {
	if convCtx.ConversationLength > config.MaxConversationTurns {
		return true
	}
	lower := strings.ToLower(convCtx.LastUserInput)
	for _, phrase := range endPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// EndSession purges the session and its disclaimer state together.
func (e *Engine) EndSession(ctx context.Context, sessionID string) error {
	if err := e.store.End(ctx, sessionID); err != nil {
		return err
	}
	e.disclaimers.PurgeSession(sessionID)
	return nil
}

// isAcknowledgment detects an affirmative response to a shown disclaimer. A
// negation anywhere in the input overrides any affirmative phrase.
func isAcknowledgment(input string) bool {
	lower := strings.TrimSpace(strings.ToLower(input))
	for _, neg := range negationPhrases {
		if strings.Contains(lower, neg) {
			return false
		}
	}
	for _, phrase := range acknowledgmentPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func suggestedActions(issue *model.LegalIssue, referrals []model.ResourceReferral) []model.Action {
	actions := []model.Action{
		{
			Type:        "gather_documents",
			Description: "Gather relevant documents for your case",
			Parameters:  map[string]string{"issue_type": string(issue.Type)},
		},
	}

	if len(referrals) > 0 {
		top := referrals[0]
		actions = append(actions, model.Action{
			Type:        "contact_resource",
			Description: fmt.Sprintf("Contact %s", top.Organization.Name),
			Parameters: map[string]string{
				"organization_id": top.Organization.ID,
				"phone":           top.Organization.Contact.Phone,
				"contact_method":  string(top.ContactMethod),
			},
		})
	}

	if issue.Urgency == model.UrgencyEmergency {
		actions = append(actions, model.Action{
			Type:        "emergency_action",
			Description: "Seek immediate help",
			Parameters:  map[string]string{"urgency": "emergency"},
		})
	}

	return actions
}

var followUps = map[model.IssueType][]string{
	model.IssueDomesticViolence: {
		"Are you currently in a safe location?",
		"Do you need immediate safety resources?",
		"Have you been able to document any incidents?",
	},
	model.IssueTenantRights: {
		"What specific issue are you having with your landlord?",
		"Do you have a written lease agreement?",
		"Have you documented the problem in writing to your landlord?",
	},
	model.IssueWageTheft: {
		"Do you have records of your hours worked?",
		"Have you spoken with your employer about the missing wages?",
		"Do you have pay stubs or other documentation?",
	},
	model.IssueLandDispute: {
		"Do you have a deed or other property documents?",
		"What is the nature of the property dispute?",
		"Have you had a recent property survey done?",
	},
}

var genericFollowUps = []string{
	"Can you provide more details about your situation?",
	"What type of legal issue are you facing?",
	"When did this situation begin?",
}

func followUpQuestions(issueType *model.IssueType, language string) []string {
	questions := genericFollowUps
	if issueType != nil {
		if qs, ok := followUps[*issueType]; ok {
			questions = qs
		}
	}

	out := make([]string, len(questions))
	copy(out, questions)
	if language == "es" {
		out = translateQuestions(out)
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

var spanishQuestions = map[string]string{
	"Can you provide more details about your situation?":          "¿Puede proporcionar más detalles sobre su situación?",
	"What type of legal issue are you facing?":                    "¿Qué tipo de problema legal está enfrentando?",
	"When did this situation begin?":                              "¿Cuándo comenzó esta situación?",
	"Can you describe your situation?":                            "¿Puede describir su situación?",
	"Are you currently in a safe location?":                       "¿Se encuentra actualmente en un lugar seguro?",
	"Do you need immediate safety resources?":                     "¿Necesita recursos de seguridad inmediatos?",
	"Have you been able to document any incidents?":               "¿Ha podido documentar algún incidente?",
	"What specific issue are you having with your landlord?":      "¿Qué problema específico tiene con su arrendador?",
	"Do you have a written lease agreement?":                      "¿Tiene un contrato de arrendamiento por escrito?",
	"Have you documented the problem in writing to your landlord?": "¿Ha documentado el problema por escrito a su arrendador?",
	"Do you have records of your hours worked?":                   "¿Tiene registros de las horas que trabajó?",
	"Have you spoken with your employer about the missing wages?": "¿Ha hablado con su empleador sobre los salarios faltantes?",
	"Do you have pay stubs or other documentation?":               "¿Tiene talones de pago u otra documentación?",
	"Do you have a deed or other property documents?":             "¿Tiene una escritura u otros documentos de propiedad?",
	"What is the nature of the property dispute?":                 "¿Cuál es la naturaleza de la disputa de propiedad?",
	"Have you had a recent property survey done?":                 "¿Ha tenido un levantamiento topográfico reciente de la propiedad?",
}

func translateQuestions(questions []string) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		if es, ok := spanishQuestions[q]; ok {
			out[i] = es
		} else {
			out[i] = q
		}
	}
	return out
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func buildResponseText(guidance *model.Guidance, referrals []model.ResourceReferral, language string) string {
	var parts []string
	parts = append(parts, guidance.Summary)

	if len(guidance.DetailedSteps) > 0 {
		if language == "es" {
			parts = append(parts, "\nPasos recomendados:")
		} else {
			parts = append(parts, "\nRecommended steps:")
		}
		steps := guidance.DetailedSteps
		if len(steps) > 5 {
			steps = steps[:5]
		}
		for i, step := range steps {
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, step))
		}
	}

	if len(referrals) > 0 {
		if language == "es" {
			parts = append(parts, "\nRecursos recomendados:")
		} else {
			parts = append(parts, "\nRecommended resources:")
		}
		shown := referrals
		if len(shown) > 2 {
			shown = shown[:2]
		}
		for _, r := range shown {
			org := r.Organization
			parts = append(parts, fmt.Sprintf("\n- %s", org.Name))
			parts = append(parts, fmt.Sprintf("  Phone: %s", org.Contact.Phone))
			if len(org.Specializations) > 0 {
				names := make([]string, len(org.Specializations))
				for i, spec := range org.Specializations {
					names[i] = titleWords(strings.ReplaceAll(string(spec), "_", " "))
				}
				if language == "es" {
					parts = append(parts, fmt.Sprintf("  Especialidades: %s", strings.Join(names, ", ")))
				} else {
					parts = append(parts, fmt.Sprintf("  Specializations: %s", strings.Join(names, ", ")))
				}
			}
		}
	}

	if guidance.RecommendsProfessionalHelp {
		if language == "es" {
			parts = append(parts, "\nSe recomienda encarecidamente consultar con un abogado calificado para su situación específica.")
		} else {
			parts = append(parts, "\nIt is strongly recommended to consult with a qualified attorney for your specific situation.")
		}
	}

	return strings.Join(parts, "\n")
}
