package privacy

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/util"
)

type piiPattern struct {
	category string
	re       *regexp.Regexp
}

// piiPatterns is evaluated in order: the most specific classes come first so
// a fragment of an email or phone number is never swallowed by the coarser
// name pattern.
var piiPatterns = []piiPattern{
	{"EMAIL", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{"PHONE", regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`)},
	{"SSN", regexp.MustCompile(`\b\d{3}-?\d{2}-?\d{4}\b`)},
	{"ADDRESS", regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z0-9\s,]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Court|Ct|Place|Pl)\b`)},
	{"DATE_OF_BIRTH", regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])[/-](?:0?[1-9]|[12]\d|3[01])[/-](?:19|20)\d{2}\b`)},
	{"ZIP_CODE", regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)},
	{"FULL_NAME", regexp.MustCompile(`\b[A-Z][a-z]{2,}\s+[A-Z][a-z]{2,}\b`)},
}

// Anonymizer replaces detected PII with stable [CATEGORY_n] placeholders.
// The literal-to-placeholder map and its counter are per instance: the same
// literal always gets the same placeholder within one anonymizer, while a
// fresh instance numbers from scratch.
type Anonymizer struct {
	mu           sync.Mutex
	replacements map[string]string
	counter      int
}

func NewAnonymizer() *Anonymizer {
	return &Anonymizer{replacements: make(map[string]string)}
}

// Text returns s with every detected PII substring replaced by its
// placeholder. Surrounding text is preserved untouched.
func (a *Anonymizer) Text(s string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, p := range piiPatterns {
		matches := p.re.FindAllStringIndex(s, -1)
		// Replace back to front so earlier indexes stay valid.
		for i := len(matches) - 1; i >= 0; i-- {
			start, end := matches[i][0], matches[i][1]
			original := s[start:end]
			placeholder, ok := a.replacements[original]
			if !ok {
				a.counter++
				placeholder = fmt.Sprintf("[%s_%d]", p.category, a.counter)
				a.replacements[original] = placeholder
			}
			s = s[:start] + placeholder + s[end:]
		}
	}
	return s
}

// Turn anonymizes a conversation turn in place: the user input and the
// response text, leaving the structural fields alone.
func (a *Anonymizer) Turn(t *model.ConversationTurn) {
	if t == nil {
		return
	}
	t.UserInput = a.Text(t.UserInput)
	t.Response.Text = a.Text(t.Response.Text)
}

// UserContext anonymizes location data in place. State is load-bearing for
// legal routing and is kept; county is hashed, the ZIP suffix truncated and
// coordinates dropped.
func (a *Anonymizer) UserContext(ctx *model.UserContext) {
	if ctx == nil || ctx.Location == nil {
		return
	}
	loc := ctx.Location
	if loc.County != "" && !anonymizedCountyRe.MatchString(loc.County) {
		loc.County = fmt.Sprintf("[COUNTY_%s]", util.ShortHash(loc.County, 8))
	}
	if len(loc.ZipCode) >= 3 && loc.ZipCode[len(loc.ZipCode)-1] != 'X' {
		loc.ZipCode = loc.ZipCode[:3] + "XX"
	}
	loc.Coordinates = nil
}

// anonymizedCountyRe recognizes already-hashed county placeholders so
// re-anonymizing a stored session is idempotent.
var anonymizedCountyRe = regexp.MustCompile(`^\[COUNTY_[0-9a-f]{8}\]$`)
