package diagnosis

import "strings"

// Vocabulary lists every symptom the checker recognizes, in the order
// it is presented to clients. The last four entries are colloquial
// variants that normalize onto canonical keys via the alias map.
var Vocabulary = []string{
	"fever", "headache", "cough", "fatigue", "nausea", "dizziness",
	"chest pain", "shortness of breath", "abdominal pain", "back pain",
	"joint pain", "muscle weakness", "loss of appetite", "weight loss",
	"insomnia", "anxiety", "depression", "irritability", "mood swings",
	"memory problems", "concentration issues", "tremors", "seizures",
	"vision problems", "hearing loss", "skin rash", "itching",
	"swelling", "bruising", "bleeding", "constipation", "diarrhea",
	"vomiting", "heartburn", "acid reflux", "bloating", "gas",
	"stomach pain", "leg pain", "hand pain", "eye pain",
}

var aliases = map[string]string{
	"stomach pain": "abdominal pain",
	"eye pain":     "vision problems",
	"leg pain":     "joint pain",
	"hand pain":    "joint pain",
}

// Normalize splits a free-text symptom line on commas, lowercases and
// trims each part, drops empty tokens, and folds colloquial aliases
// onto canonical keys. Unknown keys pass through unchanged so the
// resolver can apply its fallbacks.
func Normalize(raw string) []string {
	parts := strings.Split(strings.ToLower(raw), ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		if canonical, ok := aliases[key]; ok {
			key = canonical
		}
		keys = append(keys, key)
	}
	return keys
}

// Suggest returns up to five vocabulary entries containing the query
// as a case-insensitive substring, in vocabulary order. An empty query
// yields no suggestions.
func Suggest(query string) []string {
	if query == "" {
		return []string{}
	}
	q := strings.ToLower(query)
	matches := []string{}
	for _, symptom := range Vocabulary {
		if strings.Contains(symptom, q) {
			matches = append(matches, symptom)
			if len(matches) == 5 {
				break
			}
		}
	}
	return matches
}
