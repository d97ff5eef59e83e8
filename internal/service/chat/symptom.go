package chat

import (
	"fmt"
	"strings"

	"github.com/medatlas/directory-api/internal/model"
)

// symptomEntry maps a symptom phrase to the specialties that treat it.
type symptomEntry struct {
	phrase      string
	specialties []string
}

// symptomTable is scanned by substring against the lowercased message.
// Order matters only for the wording of the matched-symptom list; the
// recommended specialties are the union over all matches.
var symptomTable = []symptomEntry{
	{"chest pain", []string{"Cardiology", "Emergency Medicine"}},
	{"palpitations", []string{"Cardiology"}},
	{"high blood pressure", []string{"Cardiology", "General Medicine"}},
	{"shortness of breath", []string{"Pulmonology", "Cardiology"}},
	{"difficulty breathing", []string{"Pulmonology", "Emergency Medicine"}},
	{"wheezing", []string{"Pulmonology"}},
	{"cough", []string{"Pulmonology", "General Medicine"}},
	{"sore throat", []string{"ENT", "General Medicine"}},
	{"ear pain", []string{"ENT"}},
	{"hearing loss", []string{"ENT"}},
	{"sinus", []string{"ENT"}},
	{"headache", []string{"Neurology", "General Medicine"}},
	{"migraine", []string{"Neurology"}},
	{"dizziness", []string{"Neurology", "General Medicine"}},
	{"fainting", []string{"Neurology", "Cardiology"}},
	{"seizure", []string{"Neurology", "Emergency Medicine"}},
	{"numbness", []string{"Neurology"}},
	{"memory loss", []string{"Neurology"}},
	{"blurred vision", []string{"Ophthalmology", "Neurology"}},
	{"eye pain", []string{"Ophthalmology"}},
	{"stomach ache", []string{"Gastroenterology"}},
	{"abdominal pain", []string{"Gastroenterology", "General Medicine"}},
	{"nausea", []string{"Gastroenterology", "General Medicine"}},
	{"vomiting", []string{"Gastroenterology", "Emergency Medicine"}},
	{"diarrhea", []string{"Gastroenterology"}},
	{"constipation", []string{"Gastroenterology"}},
	{"acidity", []string{"Gastroenterology"}},
	{"heartburn", []string{"Gastroenterology"}},
	{"jaundice", []string{"Liver", "Gastroenterology"}},
	{"back pain", []string{"Orthopedics", "Neurology"}},
	{"joint pain", []string{"Orthopedics", "Rheumatology"}},
	{"knee pain", []string{"Orthopedics"}},
	{"fracture", []string{"Orthopedics", "Emergency Medicine"}},
	{"muscle pain", []string{"Orthopedics", "General Medicine"}},
	{"swelling", []string{"General Medicine", "Orthopedics"}},
	{"rash", []string{"Dermatology"}},
	{"itching", []string{"Dermatology"}},
	{"acne", []string{"Dermatology"}},
	{"hair loss", []string{"Dermatology"}},
	{"fever", []string{"General Medicine"}},
	{"chills", []string{"General Medicine"}},
	{"sweating", []string{"General Medicine", "Endocrinology"}},
	{"weight loss", []string{"Endocrinology", "General Medicine", "Oncology"}},
	{"frequent urination", []string{"Urology", "Endocrinology"}},
	{"burning urination", []string{"Urology"}},
	{"blood in urine", []string{"Urology", "Nephrology"}},
	{"kidney pain", []string{"Nephrology", "Urology"}},
	{"lump", []string{"Oncology", "General Medicine"}},
	{"bleeding", []string{"Emergency Medicine"}},
	{"burn", []string{"Emergency Medicine", "Dermatology"}},
}

// firstAidEntry pairs a condition name with its advice. Conditions are
// matched against recognized symptoms by substring containment in either
// direction.
type firstAidEntry struct {
	condition string
	advice    string
}

var firstAidTable = []firstAidEntry{
	{"chest pain", "First aid: sit down, rest, and loosen tight clothing. If the pain lasts more than a few minutes or spreads to the arm or jaw, call emergency services immediately."},
	{"bleeding", "First aid: apply firm, direct pressure with a clean cloth and elevate the injured area until help arrives."},
	{"burn", "First aid: cool the burn under running water for at least 10 minutes and cover loosely with a sterile dressing. Do not apply ice or ointments."},
	{"fracture", "First aid: keep the injured limb still, immobilize it with a splint if possible, and avoid putting any weight on it."},
	{"seizure", "First aid: clear the area of hard objects, cushion the head, and turn the person on their side once movements stop. Do not restrain them or put anything in their mouth."},
	{"fainting", "First aid: lay the person flat and raise their legs. If they do not regain consciousness within a minute, call emergency services."},
	{"fever", "First aid: drink plenty of fluids, rest, and take a fever reducer if needed. Seek care if the fever exceeds 103°F (39.4°C) or lasts more than three days."},
	{"vomiting", "First aid: sip small amounts of clear fluid frequently and avoid solid food until the vomiting settles. Seek care if it persists beyond 24 hours."},
}

// symptomAnalysis is the outcome of scanning a message for symptoms.
type symptomAnalysis struct {
	symptoms    []string
	specialties []string
	firstAid    []string
}

func (a symptomAnalysis) empty() bool {
	return len(a.symptoms) == 0
}

// analyzeSymptoms collects every matching symptom phrase and unions their
// specialties, preserving first-seen order.
func analyzeSymptoms(lower string) symptomAnalysis {
	var a symptomAnalysis
	seenSpecialty := make(map[string]bool)
	seenAdvice := make(map[string]bool)

	for _, entry := range symptomTable {
		if !strings.Contains(lower, entry.phrase) {
			continue
		}
		a.symptoms = append(a.symptoms, entry.phrase)
		for _, sp := range entry.specialties {
			if !seenSpecialty[sp] {
				seenSpecialty[sp] = true
				a.specialties = append(a.specialties, sp)
			}
		}
		for _, fa := range firstAidTable {
			if strings.Contains(entry.phrase, fa.condition) || strings.Contains(fa.condition, entry.phrase) {
				if !seenAdvice[fa.advice] {
					seenAdvice[fa.advice] = true
					a.firstAid = append(a.firstAid, fa.advice)
				}
			}
		}
	}
	return a
}

// render builds the recommendation text for the analysis, including any
// first-aid advice and an appointment nudge when the hospital covers one
// of the recommended specialties.
func (a symptomAnalysis) render(h *model.Hospital) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on what you've described (%s), I recommend consulting: %s.",
		strings.Join(a.symptoms, ", "), strings.Join(a.specialties, ", "))

	for _, advice := range a.firstAid {
		b.WriteString("\n\n")
		b.WriteString(advice)
	}

	var overlap []string
	for _, sp := range a.specialties {
		if h.HasSpecialty(sp) {
			overlap = append(overlap, sp)
		}
	}
	if len(overlap) > 0 {
		fmt.Fprintf(&b, "\n\nGood news: {hospital} has a %s department. You can book an appointment right from this page.",
			strings.Join(overlap, " and "))
	}
	return b.String()
}
