// Package chat implements the rule-based assistant. Respond evaluates an
// ordered cascade of classifiers: early rules return immediately, the
// category/FAQ stage picks a tentative answer, and three unconditional
// late-stage overrides (booking, then location, then emergency) may
// replace it. The engine is stateless per call and never fails; an
// unmatched message degrades to a fixed fallback.
package chat

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/medatlas/directory-api/internal/model"
)

var symptomTriggers = []string{"analyze", "symptom", "feel", "experiencing", "suffering", "pain", "ache"}

var geoTriggers = []string{"noida", "gorakhpur", "tier 2", "tier 3", "small city", "non-metro", "non metro"}

var greetingRe = regexp.MustCompile(`^(hi|hello|hey|greetings)`)

type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand

	// OnRuleMatch, when set, is invoked with the name of the rule that
	// produced the final answer. Used for metrics.
	OnRuleMatch func(rule string)
}

// NewEngine builds an engine whose template-variant selection draws from
// the given seed. Production wiring seeds from time; tests pass a fixed
// seed for reproducibility.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

type request struct {
	raw      string
	lower    string
	hospital *model.Hospital
}

type earlyRule struct {
	name    string
	respond func(*request) (string, bool)
}

type override struct {
	name     string
	keywords []string
	template string
}

// Applied in order; a later override replaces an earlier one, so
// emergency keywords take final precedence.
var lateOverrides = []override{
	{"booking", []string{"appointment", "book", "schedule"}, bookingTemplate},
	{"location", []string{"where", "location", "direction", "address"}, locationTemplate},
	{"emergency", []string{"emergency", "urgent", "critical"}, emergencyTemplate},
}

// Respond produces the assistant's answer for a message in the context
// of one hospital. It is a total function: every input yields a defined,
// fully-interpolated string.
func (e *Engine) Respond(message string, h *model.Hospital) string {
	req := &request{
		raw:      message,
		lower:    strings.ToLower(message),
		hospital: h,
	}

	for _, r := range e.earlyRules() {
		if resp, ok := r.respond(req); ok {
			e.hit(r.name)
			return interpolate(resp, h)
		}
	}

	resp, name := fallbackResponse, "fallback"
	if r, ok := e.categoryResponse(req); ok {
		resp, name = r, "category"
	} else if r, ok := faqResponse(req); ok {
		resp, name = r, "faq"
	}

	for _, o := range lateOverrides {
		if containsAny(req.lower, o.keywords) {
			resp, name = o.template, o.name
		}
	}

	e.hit(name)
	return interpolate(resp, h)
}

func (e *Engine) earlyRules() []earlyRule {
	return []earlyRule{
		{"symptom_analysis", symptomMoodResponse},
		{"geographic", geographicResponse},
		{"recommend", recommendResponse},
		{"greeting", greetingResponse},
		{"thanks", gratitudeResponse},
	}
}

// symptomMoodResponse handles the combined symptom/mood analysis. It
// triggers on any of the analysis keywords and runs both sub-classifiers
// independently, concatenating mood before symptoms when both match.
func symptomMoodResponse(req *request) (string, bool) {
	if !containsAny(req.lower, symptomTriggers) {
		return "", false
	}

	mood := analyzeMood(req.raw)
	analysis := analyzeSymptoms(req.lower)

	switch {
	case mood == "" && analysis.empty():
		return "I couldn't identify specific symptoms from your message. Could you describe what you're feeling in more detail? For example, where it hurts, how long it has lasted, and how severe it is.", true
	case analysis.empty():
		return mood + "\n\nCould you also describe any physical symptoms you're experiencing, so I can point you to the right specialist?", true
	case mood == "":
		return analysis.render(req.hospital), true
	default:
		return mood + "\n\n" + analysis.render(req.hospital), true
	}
}

// geographicResponse answers tier-city and coverage questions. The
// tier-3 phrasing is checked before tier-2.
func geographicResponse(req *request) (string, bool) {
	if !containsAny(req.lower, geoTriggers) {
		return "", false
	}
	switch {
	case containsAny(req.lower, []string{"tier 3", "gorakhpur"}):
		return tier3Template, true
	case containsAny(req.lower, []string{"tier 2", "noida"}):
		return tier2Template, true
	default:
		return locationsTemplate, true
	}
}

func recommendResponse(req *request) (string, bool) {
	if strings.Contains(req.lower, "suggest") || strings.Contains(req.lower, "recommend") {
		return recommendTemplate, true
	}
	return "", false
}

func greetingResponse(req *request) (string, bool) {
	if greetingRe.MatchString(strings.TrimSpace(req.lower)) {
		return greetingTemplate, true
	}
	return "", false
}

func gratitudeResponse(req *request) (string, bool) {
	if containsAny(req.lower, []string{"thank you", "thanks", "thx"}) {
		return thanksTemplate, true
	}
	return "", false
}

// categoryResponse scans the topic keys in fixed order and picks one of
// the matched topic's template variants pseudo-randomly.
func (e *Engine) categoryResponse(req *request) (string, bool) {
	for _, key := range categoryOrder {
		if strings.Contains(req.lower, key) {
			variants := categoryResponses[key]
			e.mu.Lock()
			pick := variants[e.rng.Intn(len(variants))]
			e.mu.Unlock()
			return pick, true
		}
	}
	return "", false
}

// faqResponse falls back to the legacy exact-question table.
func faqResponse(req *request) (string, bool) {
	for _, entry := range faqResponses {
		if strings.Contains(req.lower, strings.ToLower(entry.question)) {
			return entry.answer, true
		}
	}
	return "", false
}

func (e *Engine) hit(rule string) {
	if e.OnRuleMatch != nil {
		e.OnRuleMatch(rule)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
