package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFromTranscriptEnglish(t *testing.T) {
	symptoms := ExtractFromTranscript("I have a headache and I feel dizzy")
	assert.Equal(t, []string{"headache", "dizziness"}, symptoms)
}

func TestExtractFromTranscriptTamil(t *testing.T) {
	symptoms := ExtractFromTranscript("எனக்கு காய்ச்சல் உள்ளது")
	assert.Equal(t, []string{"fever"}, symptoms)
}

func TestExtractEmitsTableOrder(t *testing.T) {
	// Mentioned dizziness first, but fever precedes it in the table.
	symptoms := ExtractFromTranscript("dizzy spells and a high fever")
	assert.Equal(t, []string{"fever", "dizziness"}, symptoms)
}

func TestExtractDeduplicates(t *testing.T) {
	symptoms := ExtractFromTranscript("cough cough coughing all night")
	assert.Equal(t, []string{"cough"}, symptoms)
}

func TestExtractGeneralComplaintFallback(t *testing.T) {
	symptoms := ExtractFromTranscript("I feel under the weather today")
	assert.Equal(t, []string{GeneralDiscomfortKey}, symptoms)
}

func TestExtractGeneralFallbackSkippedWhenSpecificMatch(t *testing.T) {
	// "hurt" alone is vague, but "back hurts" names a symptom.
	symptoms := ExtractFromTranscript("my back hurts")
	assert.Equal(t, []string{"back pain"}, symptoms)
}

func TestExtractNothingRecognized(t *testing.T) {
	assert.Empty(t, ExtractFromTranscript("the quick brown fox"))
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	symptoms := ExtractFromTranscript("TERRIBLE HEADACHE")
	assert.Equal(t, []string{"headache"}, symptoms)
}
