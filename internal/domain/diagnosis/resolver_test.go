package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSingleSymptom(t *testing.T) {
	p := Resolve([]string{"fever"})
	assert.Equal(t, "Fever (Pyrexia)", p.Disease)
	assert.Len(t, p.Precautions, 5)
	assert.Len(t, p.Medications, 5)
	assert.Len(t, p.Workouts, 5)
	assert.Len(t, p.Diets, 5)
}

func TestResolveAliasedKeysShareEntries(t *testing.T) {
	direct := Resolve(Normalize("abdominal pain"))
	aliased := Resolve(Normalize("stomach pain"))
	assert.Equal(t, direct, aliased)

	assert.Equal(t, Resolve(Normalize("joint pain")), Resolve(Normalize("leg pain")))
	assert.Equal(t, Resolve(Normalize("joint pain")), Resolve(Normalize("hand pain")))
	assert.Equal(t, Resolve(Normalize("vision problems")), Resolve(Normalize("eye pain")))
}

func TestResolveFluCombinationAnyOrder(t *testing.T) {
	inputs := [][]string{
		{"fever", "cough", "fatigue"},
		{"fatigue", "fever", "cough"},
		{"cough", "fatigue", "fever"},
	}
	for _, keys := range inputs {
		p := Resolve(keys)
		assert.Equal(t, "Influenza (Flu)", p.Disease)
	}
}

func TestResolveFluCombinationWithExtraSymptom(t *testing.T) {
	p := Resolve([]string{"headache", "fever", "cough", "fatigue"})
	assert.Equal(t, "Influenza (Flu)", p.Disease)
}

func TestResolveCombinationPrecedence(t *testing.T) {
	p := Resolve([]string{"chest pain", "shortness of breath"})
	assert.Equal(t, "Cardiovascular Condition", p.Disease)

	p = Resolve([]string{"nausea", "vomiting", "diarrhea"})
	assert.Equal(t, "Gastroenteritis (Stomach Flu)", p.Disease)

	p = Resolve([]string{"headache", "dizziness"})
	assert.Equal(t, "Migraine or Tension Headache", p.Disease)
}

func TestResolveMultiSymptomUsesFirstKnownKey(t *testing.T) {
	p := Resolve([]string{"unknown thing", "back pain", "fever"})
	assert.Equal(t, "Musculoskeletal Back Pain", p.Disease)
}

func TestResolveMultiSymptomFallback(t *testing.T) {
	p := Resolve([]string{"glowing skin", "third arm"})
	require.Equal(t, "Multiple Symptom Assessment", p.Disease)
	assert.Contains(t, p.Description, "glowing skin, third arm")
	assert.Len(t, p.Precautions, 5)
	assert.Len(t, p.Medications, 5)
	assert.Len(t, p.Workouts, 5)
	assert.Len(t, p.Diets, 5)
	for _, list := range [][]string{p.Precautions, p.Medications, p.Workouts, p.Diets} {
		for _, item := range list {
			assert.NotEmpty(t, item)
		}
	}
}

func TestResolveSingleUnknownSymptom(t *testing.T) {
	p := Resolve([]string{"spontaneous levitation"})
	assert.Equal(t, "General Health Assessment", p.Disease)
}

func TestResolveEmptyInput(t *testing.T) {
	p := Resolve(nil)
	assert.Equal(t, "General Health Assessment", p.Disease)

	p = Resolve(Normalize(""))
	assert.Equal(t, "General Health Assessment", p.Disease)
}

func TestResolveCommaOnlyInput(t *testing.T) {
	// Dropped empty tokens leave nothing to resolve, so comma-only
	// input gets the single-symptom fallback, not the multi one.
	p := Resolve(Normalize(" , ,"))
	assert.Equal(t, "General Health Assessment", p.Disease)
}

func TestResolveGERDSharedByHeartburnAndAcidReflux(t *testing.T) {
	heartburn := Resolve([]string{"heartburn"})
	reflux := Resolve([]string{"acid reflux"})
	assert.Equal(t, "Gastroesophageal Reflux Disease (GERD)", heartburn.Disease)
	assert.Equal(t, "Gastroesophageal Reflux Disease (GERD)", reflux.Disease)
	assert.NotEqual(t, heartburn.Description, reflux.Description)
}

func TestPredictionTableComplete(t *testing.T) {
	require.Len(t, predictions, 37)
	for key, p := range predictions {
		assert.NotEmptyf(t, p.Disease, "disease empty for %q", key)
		assert.NotEmptyf(t, p.Description, "description empty for %q", key)
		assert.Lenf(t, p.Precautions, 5, "precautions for %q", key)
		assert.Lenf(t, p.Medications, 5, "medications for %q", key)
		assert.Lenf(t, p.Workouts, 5, "workouts for %q", key)
		assert.Lenf(t, p.Diets, 5, "diets for %q", key)
	}
}
