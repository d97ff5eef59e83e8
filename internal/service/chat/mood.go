package chat

import "strings"

// moodOrder fixes evaluation order so scoring is deterministic.
var moodOrder = []string{"anxious", "sad", "angry", "happy", "fearful", "tired"}

var moodKeywords = map[string][]string{
	"anxious": {"anxious", "worried", "nervous", "anxiety", "panic", "stress", "stressed", "fear", "scared", "frightened", "uneasy", "restless", "concerned", "disturbed"},
	"sad":     {"sad", "unhappy", "depressed", "depression", "down", "blue", "upset", "grief", "sorrow", "heartbroken", "miserable", "gloomy", "crying", "lonely", "alone"},
	"angry":   {"angry", "frustrated", "annoyed", "mad", "irritated", "furious", "rage", "outraged", "temper", "hostile", "aggravated", "resentful", "bitter"},
	"happy":   {"happy", "good", "great", "excellent", "wonderful", "fantastic", "joy", "joyful", "pleased", "delighted", "content", "cheerful", "ecstatic", "thrilled", "smile", "laughing"},
	"fearful": {"afraid", "scared", "frightened", "terrified", "fear", "horror", "dread", "phobia", "alarmed", "petrified", "terrorized"},
	"tired":   {"tired", "exhausted", "fatigue", "sleepy", "drowsy", "lethargic", "weary", "drained", "worn out", "beat", "spent", "burned out"},
}

var moodResponses = map[string]string{
	"anxious": "I notice you might be feeling anxious \U0001F61F. Anxiety can affect your physical health too. Taking slow, deep breaths might help while seeking care. Consider speaking with a mental health professional along with addressing your physical symptoms.",
	"sad":     "I sense you might be feeling down \U0001F614. Your emotional wellbeing is just as important as your physical health. Consider activities that usually lift your mood, and I'd recommend considering both emotional and physical health as you seek medical care.",
	"angry":   "I understand you might be frustrated \U0001F620. It's important to address both your physical symptoms and any stress you're experiencing. Finding healthy outlets for your emotions can help improve your overall wellbeing.",
	"happy":   "I'm glad to hear you're in good spirits \U0001F60A despite seeking medical information. A positive outlook can help with recovery and the healing process!",
	"fearful": "It seems you might be concerned or scared about your symptoms \U0001F628. This is completely natural, but remember that getting proper medical advice is the best way to address health concerns and reduce fear of the unknown.",
	"tired":   "You seem to be experiencing fatigue \U0001F634. Rest is important, but persistent tiredness can also be a symptom that should be evaluated by a healthcare professional. Consider your sleep habits and stress levels too.",
}

// analyzeMood scores the message against each mood's keyword set and
// returns the empathetic response for the dominant mood. A keyword hit
// scores 1, with 0.5 bonuses for exclamation emphasis, fully-capitalized
// occurrences and each repetition beyond the first. The dominant mood
// must score at least 1 and be a strict maximum; a tie or an all-zero
// board yields no mood.
func analyzeMood(text string) string {
	lower := strings.ToLower(text)
	hasBang := strings.Contains(text, "!")

	best, bestScore, tied := "", 0.0, false
	for _, mood := range moodOrder {
		score := 0.0
		for _, kw := range moodKeywords[mood] {
			n := strings.Count(lower, kw)
			if n == 0 {
				continue
			}
			score++
			if hasBang {
				score += 0.5
			}
			if strings.Contains(text, strings.ToUpper(kw)) {
				score += 0.5
			}
			score += 0.5 * float64(n-1)
		}

		switch {
		case score > bestScore:
			best, bestScore, tied = mood, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}

	if bestScore < 1 || tied {
		return ""
	}
	return moodResponses[best]
}
