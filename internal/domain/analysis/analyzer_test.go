package analysis

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(rand.New(rand.NewSource(1)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		fileName string
		fileType string
		want     Category
	}{
		{"chest_xray_2024.pdf", "application/pdf", CategoryChest},
		{"scan.jpg", "application/pdf", CategoryChest},
		{"Chest-Scan.png", "image/png", CategoryChest},
		{"xray_arm.jpg", "image/jpeg", CategoryChest},
		{"blood_panel.png", "image/png", CategoryBlood},
		{"LAB_results.jpg", "image/jpeg", CategoryBlood},
		{"annual_checkup.png", "image/png", CategoryGeneric},
		{"notes.txt", "text/plain", CategoryGeneric},
		// PDF check precedes the blood keyword check.
		{"blood_panel.pdf", "application/pdf", CategoryChest},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Classify(tt.fileName, tt.fileType), "%s (%s)", tt.fileName, tt.fileType)
	}
}

func TestAnalyzeChestConfidenceRange(t *testing.T) {
	a := newTestAnalyzer()
	for i := 0; i < 200; i++ {
		result := a.Analyze("chest_xray.pdf", "application/pdf")
		assert.GreaterOrEqual(t, result.Confidence, 85)
		assert.LessOrEqual(t, result.Confidence, 99)
		require.Len(t, result.Findings, 3)
		for _, f := range result.Findings {
			assert.GreaterOrEqual(t, f.Confidence, 80)
			assert.LessOrEqual(t, f.Confidence, 99)
		}
	}
}

func TestAnalyzeBloodTemplate(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze("blood_test.jpg", "image/jpeg")
	require.Len(t, result.Findings, 3)
	assert.Equal(t, "Monitor", result.Findings[1].Type)
	assert.Equal(t, "Slightly elevated cholesterol levels", result.Findings[1].Description)
	assert.GreaterOrEqual(t, result.Confidence, 88)
	assert.LessOrEqual(t, result.Confidence, 99)
}

func TestAnalyzeGenericTemplate(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze("annual_checkup.png", "image/png")
	require.Len(t, result.Findings, 2)
	assert.GreaterOrEqual(t, result.Confidence, 90)
	assert.LessOrEqual(t, result.Confidence, 99)
	assert.Len(t, result.Recommendations, 4)
	assert.Len(t, result.RiskFactors, 3)
	assert.Len(t, result.Medications, 3)
}

func TestAnalyzeDeterministicUnderFixedSeed(t *testing.T) {
	a := NewAnalyzer(rand.New(rand.NewSource(42)))
	b := NewAnalyzer(rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Analyze("chest.pdf", "application/pdf"), b.Analyze("chest.pdf", "application/pdf"))
}

func TestResultJSONRoundTrip(t *testing.T) {
	a := newTestAnalyzer()
	original := a.Analyze("blood_work.png", "image/png")

	value, err := original.Value()
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)

	// Findings serialize with the "type" key on the wire.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(value.([]byte), &raw))
	var findings []map[string]any
	require.NoError(t, json.Unmarshal(raw["findings"], &findings))
	assert.Contains(t, findings[0], "type")
}

func TestResultScanNil(t *testing.T) {
	r := Result{Confidence: 95}
	require.NoError(t, r.Scan(nil))
	assert.Zero(t, r)
}
