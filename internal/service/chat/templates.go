package chat

import (
	"fmt"
	"strings"

	"github.com/medatlas/directory-api/internal/model"
)

// Placeholder fallbacks for optional hospital fields. Applied during
// interpolation so templates never leak a literal {placeholder}.
const (
	fallbackContact     = "our contact number"
	fallbackAddress     = "our address"
	fallbackSpecialties = "various medical fields"
)

// fallbackResponse is the terminal answer when no rule matched.
const fallbackResponse = "I'm not sure about that. Can you ask something else about the hospital or booking appointments?"

// interpolate substitutes the template placeholders with hospital data.
func interpolate(template string, h *model.Hospital) string {
	contact := h.Contact
	if contact == "" {
		contact = fallbackContact
	}
	address := h.Address
	if address == "" {
		address = fallbackAddress
	}
	specialties := strings.Join(h.Specialties, ", ")
	if specialties == "" {
		specialties = fallbackSpecialties
	}

	return strings.NewReplacer(
		"{hospital}", h.Name,
		"{contact}", contact,
		"{address}", address,
		"{specialties}", specialties,
		"{doctorCount}", fmt.Sprintf("%d", h.ID*10+5),
	).Replace(template)
}

// categoryOrder fixes the scan order for topic keys. The first key found
// as a substring of the message wins.
var categoryOrder = []string{
	"treatments", "doctors", "facilities", "emergency", "insurance", "covid",
	"pharmacy", "parking", "visiting", "nutrition", "rehabilitation",
	"telemedicine", "languages", "locations", "tier2cities", "tier3cities",
}

// categoryResponses holds several near-duplicate phrasings per topic; one
// is picked pseudo-randomly per reply.
var categoryResponses = map[string][]string{
	"treatments": {
		"At {hospital}, we offer a range of treatments including specialized surgical procedures, non-invasive therapies, and preventative care programs tailored to each patient's needs.",
		"The medical team at {hospital} is trained in the latest treatment protocols and uses state-of-the-art equipment for optimal patient outcomes.",
		"{hospital} specializes in treatments for {specialties}, with dedicated specialists available for consultations.",
	},
	"doctors": {
		"{hospital} is proud to host over {doctorCount} experienced medical professionals across various specialties.",
		"Our doctors at {hospital} include specialists in {specialties}, all committed to providing compassionate care.",
		"The medical team at {hospital} is led by renowned physicians who are pioneers in their respective fields.",
	},
	"facilities": {
		"{hospital} features modern facilities including advanced operating theaters, diagnostic imaging centers, and comfortable patient rooms.",
		"Our facilities at {hospital} are designed with patient comfort in mind, with private rooms, family waiting areas, and accessible amenities.",
		"The state-of-the-art infrastructure at {hospital} includes the latest medical technologies and equipment for accurate diagnosis and effective treatment.",
	},
	"emergency": {
		"The emergency department at {hospital} is open 24/7 and equipped to handle all types of medical emergencies.",
		"For emergencies, please come directly to {hospital}'s emergency entrance or call our emergency hotline at {contact}.",
		"{hospital} has a dedicated trauma team ready to respond to critical emergencies with rapid assessment and intervention.",
	},
	"insurance": {
		"{hospital} accepts most major insurance plans and our staff can assist with verifying your coverage before treatment.",
		"We work with various insurance providers to ensure our patients at {hospital} receive the maximum benefits available.",
		"For questions about insurance coverage at {hospital}, please contact our billing department or bring your insurance information during your visit.",
	},
	"covid": {
		"{hospital} follows strict COVID-19 protocols including screening, sanitization, and separate treatment areas for COVID patients.",
		"We have implemented comprehensive safety measures at {hospital} to protect patients and staff during the pandemic.",
		"For COVID-19 testing and treatment options at {hospital}, please call our dedicated COVID helpline before visiting.",
	},
	"pharmacy": {
		"{hospital} has an in-house pharmacy that stocks a wide range of medications and medical supplies.",
		"Our pharmacy at {hospital} is open from 8 AM to 8 PM daily, with extended hours for emergencies.",
		"Patients at {hospital} can have their prescriptions filled at our pharmacy or delivered to their rooms during their stay.",
	},
	"parking": {
		"{hospital} provides both free and paid parking options for patients and visitors.",
		"Valet parking is available at the main entrance of {hospital} for a nominal fee.",
		"There are designated parking spaces near all entrances of {hospital} for patients with disabilities.",
	},
	"visiting": {
		"Visiting hours at {hospital} are from 10 AM to 8 PM daily, with restrictions in intensive care units.",
		"We encourage family support at {hospital}, with comfortable waiting areas and accommodations for overnight stays when necessary.",
		"To ensure patient rest and recovery, {hospital} limits visitors to two per patient at any given time.",
	},
	"nutrition": {
		"{hospital} provides personalized dietary services to meet specific nutritional needs and preferences.",
		"Our nutrition team at {hospital} works closely with doctors to create meal plans that support patient recovery.",
		"Special dietary requirements, including religious and cultural preferences, are accommodated at {hospital}.",
	},
	"rehabilitation": {
		"{hospital} offers comprehensive rehabilitation services including physical therapy, occupational therapy, and speech therapy.",
		"Our rehabilitation center at {hospital} features specialized equipment and trained therapists for optimal recovery.",
		"Patients at {hospital} receive individualized rehabilitation plans designed to restore function and improve quality of life.",
	},
	"telemedicine": {
		"{hospital} provides telemedicine services for follow-up consultations and non-emergency medical advice.",
		"Virtual appointments at {hospital} can be scheduled through our website or by calling our appointment line.",
		"Telemedicine at {hospital} ensures continued care for patients who cannot visit in person, with secure and private video consultations.",
	},
	"languages": {
		"{hospital} offers interpretation services for patients who speak languages other than English.",
		"Our staff at {hospital} includes professionals fluent in multiple languages to assist diverse patient populations.",
		"For language assistance at {hospital}, please inform the reception desk when scheduling your appointment.",
	},
	"locations": {
		"{hospital} operates from {address}, with partner centers across major metros for follow-up care closer to home.",
		"Besides the main campus at {address}, {hospital} runs satellite clinics in several cities so patients can continue care locally.",
	},
	"tier2cities": {
		"{hospital} has been expanding into tier-2 cities, with full-service units in Noida, Lucknow and Jaipur offering the same treatment protocols as the main campus.",
		"Patients from tier-2 cities can visit our regional centers in Noida and Chandigarh for consultations, with referrals to {hospital} for advanced procedures.",
	},
	"tier3cities": {
		"{hospital} reaches tier-3 cities like Gorakhpur through visiting-specialist camps and telemedicine, so patients get expert opinions without long travel.",
		"For smaller cities such as Gorakhpur, {hospital} runs monthly outreach clinics and a teleconsultation desk reachable at {contact}.",
	},
}

// faqEntry is one question/answer pair in the legacy exact-question table.
type faqEntry struct {
	question string
	answer   string
}

// faqResponses is the legacy predefined-question table; scanned after the
// category table, first substring match wins.
var faqResponses = []faqEntry{
	{
		"How do I book an appointment?",
		"You can book an appointment by following these steps:\n1. Call our helpline at {contact}\n2. Use our online booking system on our website\n3. Visit the hospital reception in person\n4. Use the appointment tab on this page",
	},
	{
		"What are the visiting hours?",
		"Our visiting hours are from 10:00 AM to 8:00 PM every day. For ICU patients, there are special visiting hours from 11:00 AM to 12:00 PM and 5:00 PM to 6:00 PM.",
	},
	{
		"Do you accept insurance?",
		"Yes, we accept most major insurance providers. Please bring your insurance card and ID when you visit. You can call our billing department at {contact} to confirm if your specific insurance plan is accepted.",
	},
	{
		"How to reach this hospital?",
		"You can find our exact location on the map tab. We're located at {address}. Public transport options include buses and metro. Parking is available for private vehicles.",
	},
	{
		"What documents are required?",
		"For your first visit, please bring:\n• A valid government ID\n• Your insurance card (if applicable)\n• Previous medical records and test reports\n• Any referral letters from your primary doctor",
	},
	{
		"What's the emergency contact number?",
		"Our emergency helpline is available 24/7 at {contact}. For medical emergencies, please dial this number immediately for guidance and assistance.",
	},
}

// PredefinedQuestions lists the canned questions offered to the UI.
func PredefinedQuestions() []string {
	out := make([]string, len(faqResponses))
	for i, e := range faqResponses {
		out[i] = e.question
	}
	return out
}

// Language is a display-metadata entry for the language selector.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SupportedLanguages lists the languages the UI can offer.
func SupportedLanguages() []Language {
	return []Language{
		{Name: "English", Code: "en"},
		{Name: "Hindi", Code: "hi"},
		{Name: "Spanish", Code: "es"},
		{Name: "French", Code: "fr"},
		{Name: "German", Code: "de"},
		{Name: "Chinese", Code: "zh"},
		{Name: "Japanese", Code: "ja"},
		{Name: "Arabic", Code: "ar"},
		{Name: "Russian", Code: "ru"},
		{Name: "Portuguese", Code: "pt"},
	}
}

// Late-stage override templates. Booking keywords always win over a
// category or FAQ match, location keywords win over booking, emergency
// keywords win over everything.
const (
	bookingTemplate = "To book an appointment at {hospital}, you can:\n\n1. Call our appointment desk at {contact}\n2. Visit our website and use the online booking form\n3. Use the \"Book Appointment\" tab on this page to see available slots\n4. Walk in to our reception desk between 9am and 5pm\n\nWould you like me to guide you through the online booking process?"

	locationTemplate = "{hospital} is located at {address}.\n\nYou can view our exact location on the interactive map in the \"Map\" tab. The map shows nearby landmarks, parking facilities, and public transport options.\n\nWould you like directions from a specific location?"

	emergencyTemplate = "For medical emergencies, please call {contact} immediately or visit our 24/7 emergency department located at the east entrance of {hospital}.\n\nOur emergency team is equipped to handle all types of medical emergencies with minimal waiting time. If you're experiencing severe symptoms like chest pain, difficulty breathing, or severe bleeding, please seek immediate medical attention."
)

const greetingTemplate = "Hello there! \U0001F44B Welcome to {hospital}'s assistant. How may I help you today? You can ask about our services, doctors, booking appointments, or facilities."

const thanksTemplate = "You're welcome! Is there anything else you'd like to know about the hospital or your healthcare needs?"

const recommendTemplate = "Based on your medical needs, I can suggest these hospitals:\n\n1. {hospital} - Specializing in {specialties}\n\n2. AIIMS (All India Institute of Medical Sciences) - Government hospital with comprehensive care\n\n3. Safdarjung Hospital - Another excellent government option\n\n4. Ram Manohar Lohia Hospital - Known for affordable quality care\n\nWould you like more specific information about any of these hospitals?"

// Geographic/tier-city templates. Tier-3 phrasing is checked before
// tier-2, then the general locations answer.
const (
	tier3Template = "{hospital} serves patients from tier-3 cities like Gorakhpur through regular outreach camps, a teleconsultation desk and tie-ups with local diagnostic labs. Initial consultations can happen over video, and our patient-coordination team at {contact} helps plan travel and stay when a visit to the main campus is needed."

	tier2Template = "{hospital} has a growing presence in tier-2 cities such as Noida, with regional centers offering consultations, diagnostics and day-care procedures. Complex cases are referred to the main campus, and your treatment records move with you, so follow-ups can continue at the regional center."

	locationsTemplate = "{hospital} operates its main campus at {address}, alongside partner clinics in several metros and smaller cities. Wherever you are, you can start with a teleconsultation and our team will direct you to the nearest center offering the care you need."
)
