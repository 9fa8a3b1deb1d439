package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSplitsAndTrims(t *testing.T) {
	keys := Normalize("Fever,  Cough ,FATIGUE")
	assert.Equal(t, []string{"fever", "cough", "fatigue"}, keys)
}

func TestNormalizeAppliesAliases(t *testing.T) {
	assert.Equal(t, []string{"abdominal pain"}, Normalize("stomach pain"))
	assert.Equal(t, []string{"vision problems"}, Normalize("eye pain"))
	assert.Equal(t, []string{"joint pain"}, Normalize("leg pain"))
	assert.Equal(t, []string{"joint pain"}, Normalize("hand pain"))
}

func TestNormalizeKeepsUnknownKeys(t *testing.T) {
	assert.Equal(t, []string{"purple toes"}, Normalize("Purple Toes"))
}

func TestNormalizeDropsEmptyTokens(t *testing.T) {
	assert.Equal(t, []string{"fever"}, Normalize("fever,"))
	assert.Equal(t, []string{"fever", "cough"}, Normalize(" fever ,, cough ,"))
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize(" , ,"))
}

func TestSuggestLimitsToFive(t *testing.T) {
	matches := Suggest("pain")
	assert.Len(t, matches, 5)
	for _, m := range matches {
		assert.Contains(t, m, "pain")
	}
}

func TestSuggestIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"fever"}, Suggest("FeV"))
}

func TestSuggestEmptyQuery(t *testing.T) {
	assert.Empty(t, Suggest(""))
}

func TestVocabularyCoversPredictionTable(t *testing.T) {
	canonical := map[string]bool{}
	for _, s := range Vocabulary {
		if alias, ok := aliases[s]; ok {
			s = alias
		}
		canonical[s] = true
	}
	for key := range predictions {
		assert.Truef(t, canonical[key], "prediction key %q missing from vocabulary", key)
	}
}
