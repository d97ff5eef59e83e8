package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeMoodSingleKeyword(t *testing.T) {
	assert.Equal(t, moodResponses["anxious"], analyzeMood("I am so worried about this"))
	assert.Equal(t, moodResponses["sad"], analyzeMood("been feeling lonely lately"))
	assert.Equal(t, moodResponses["tired"], analyzeMood("I am exhausted all the time"))
}

func TestAnalyzeMoodNoKeywordsYieldsNothing(t *testing.T) {
	assert.Empty(t, analyzeMood("my knee hurts when I walk"))
	assert.Empty(t, analyzeMood(""))
}

func TestAnalyzeMoodTieYieldsNothing(t *testing.T) {
	// "scared" scores for both anxious and fearful; a strict maximum is
	// required.
	assert.Empty(t, analyzeMood("I am scared"))

	// One extra anxious-only keyword breaks the tie.
	assert.Equal(t, moodResponses["anxious"], analyzeMood("I am scared and worried"))
}

func TestAnalyzeMoodEmphasisBonuses(t *testing.T) {
	// "worried" (anxious) vs "worried!" with a happy keyword alongside:
	// the exclamation bonus applies to every matched mood, so it cannot
	// break a tie on its own.
	assert.Empty(t, analyzeMood("worried but happy"))
	assert.Empty(t, analyzeMood("worried but happy!"))

	// An all-caps occurrence adds 0.5 only to the mood whose keyword is
	// capitalized.
	assert.Equal(t, moodResponses["anxious"], analyzeMood("WORRIED but happy"))

	// Repetition adds 0.5 per extra occurrence.
	assert.Equal(t, moodResponses["sad"], analyzeMood("sad sad and angry"))
}

func TestAnalyzeMoodMatchesSubstrings(t *testing.T) {
	// Keyword scanning is plain substring containment, so "stressed"
	// also hits "stress" and both keywords score.
	assert.Equal(t, moodResponses["anxious"], analyzeMood("so stressed out"))
}
