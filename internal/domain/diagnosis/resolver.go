package diagnosis

import (
	"fmt"
	"strings"
)

// combinationRule matches when every listed key is present in the
// normalized input. Rules are evaluated in declaration order and the
// first match wins, so more specific combinations must stay ahead of
// broader ones.
type combinationRule struct {
	requires   []string
	prediction Prediction
}

var combinationRules = []combinationRule{
	{
		requires: []string{"fever", "cough", "fatigue"},
		prediction: Prediction{
			Disease:     "Influenza (Flu)",
			Description: "Viral infection affecting the respiratory system with symptoms including fever, cough, and fatigue. This combination suggests a viral illness.",
			Precautions: []string{
				"Rest and stay hydrated",
				"Monitor temperature regularly",
				"Avoid contact with others",
				"Use over-the-counter medications",
				"Seek medical attention if symptoms worsen",
			},
			Medications: []string{
				"Paracetamol 500-1000mg every 4-6 hours for fever",
				"Dextromethorphan 15-30mg for cough",
				"Ibuprofen 400-600mg every 6-8 hours",
				"Rest and fluids",
				"Antiviral medications if prescribed",
			},
			Workouts: []string{
				"Complete rest during acute phase",
				"Light walking when fever breaks",
				"Gradual return to normal activity",
				"Avoid strenuous exercise",
				"Listen to your body",
			},
			Diets: []string{
				"Clear fluids and broth",
				"Light, easily digestible foods",
				"Include vitamin C rich foods",
				"Small, frequent meals",
				"Stay well hydrated",
			},
		},
	},
	{
		requires: []string{"chest pain", "shortness of breath"},
		prediction: Prediction{
			Disease:     "Cardiovascular Condition",
			Description: "Combination of chest pain and shortness of breath may indicate a serious cardiovascular condition requiring immediate medical attention.",
			Precautions: []string{
				"Seek immediate medical attention",
				"Call emergency services if severe",
				"Avoid physical exertion",
				"Stay calm and rest",
				"Monitor symptoms closely",
			},
			Medications: []string{
				"Nitroglycerin if prescribed",
				"Aspirin 325mg if recommended",
				"Emergency medical treatment",
				"Follow doctor's instructions",
				"Do not self-medicate",
			},
			Workouts: []string{
				"No exercise until cleared by doctor",
				"Cardiac rehabilitation if prescribed",
				"Supervised exercise only",
				"Gradual return to activity",
				"Follow medical advice",
			},
			Diets: []string{
				"Heart-healthy diet",
				"Low-sodium foods",
				"Limit saturated fats",
				"Include omega-3 rich foods",
				"Follow medical dietary advice",
			},
		},
	},
	{
		requires: []string{"nausea", "vomiting", "diarrhea"},
		prediction: Prediction{
			Disease:     "Gastroenteritis (Stomach Flu)",
			Description: "Inflammation of the stomach and intestines causing nausea, vomiting, and diarrhea. This combination suggests a gastrointestinal infection.",
			Precautions: []string{
				"Stay hydrated with clear fluids",
				"Rest and avoid solid foods initially",
				"Practice good hygiene",
				"Monitor for dehydration",
				"Seek medical attention if severe",
			},
			Medications: []string{
				"Oral rehydration solutions",
				"Loperamide 2-4mg for diarrhea",
				"Antiemetics if prescribed",
				"Probiotics",
				"Zinc supplements",
			},
			Workouts: []string{
				"Complete rest during acute phase",
				"Light walking when feeling better",
				"Avoid strenuous exercise",
				"Gradual return to activity",
				"Listen to your body",
			},
			Diets: []string{
				"BRAT diet (bananas, rice, applesauce, toast)",
				"Clear fluids initially",
				"Small, frequent meals when tolerated",
				"Avoid dairy and fatty foods",
				"Include probiotics",
			},
		},
	},
	{
		requires: []string{"headache", "dizziness"},
		prediction: Prediction{
			Disease:     "Migraine or Tension Headache",
			Description: "Combination of headache and dizziness may indicate a migraine or severe tension headache requiring medical evaluation.",
			Precautions: []string{
				"Rest in a quiet, dark room",
				"Stay hydrated",
				"Avoid triggers (bright lights, loud noises)",
				"Monitor symptoms",
				"Seek medical attention if severe",
			},
			Medications: []string{
				"Paracetamol 500-1000mg every 4-6 hours",
				"Ibuprofen 400-600mg every 6-8 hours",
				"Triptans if prescribed for migraines",
				"Anti-nausea medications if needed",
				"Prescription medications if severe",
			},
			Workouts: []string{
				"Rest during acute phase",
				"Gentle stretching when better",
				"Avoid strenuous exercise",
				"Yoga and relaxation techniques",
				"Gradual return to activity",
			},
			Diets: []string{
				"Stay hydrated",
				"Eat regular meals",
				"Avoid trigger foods",
				"Include magnesium-rich foods",
				"Limit caffeine and alcohol",
			},
		},
	},
}

func (r combinationRule) matches(keys []string) bool {
	for _, required := range r.requires {
		found := false
		for _, key := range keys {
			if key == required {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Resolve maps normalized symptom keys to a prediction. Multi-symptom
// input is checked against the combination rules first; otherwise the
// first key with a table entry wins, falling back to a generic
// assessment when nothing matches.
func Resolve(keys []string) Prediction {
	if len(keys) > 1 {
		for _, rule := range combinationRules {
			if rule.matches(keys) {
				return rule.prediction
			}
		}
		primary := keys[0]
		for _, key := range keys {
			if _, ok := predictions[key]; ok {
				primary = key
				break
			}
		}
		if p, ok := predictions[primary]; ok {
			return p
		}
		return multiSymptomAssessment(keys)
	}

	if len(keys) == 1 {
		if p, ok := predictions[keys[0]]; ok {
			return p
		}
	}
	return generalHealthAssessment()
}

func multiSymptomAssessment(keys []string) Prediction {
	return Prediction{
		Disease:     "Multiple Symptom Assessment",
		Description: fmt.Sprintf("Based on your symptoms (%s), we recommend consulting with a healthcare professional for a comprehensive evaluation.", strings.Join(keys, ", ")),
		Precautions: []string{
			"Monitor all symptoms closely",
			"Keep a detailed symptom diary",
			"Maintain good hygiene practices",
			"Get adequate rest and sleep",
			"Stay hydrated and eat nutritious foods",
		},
		Medications: []string{
			"Consult with a healthcare provider",
			"Over-the-counter medications as needed",
			"Follow prescribed medications",
			"Avoid self-medication",
			"Keep medications properly stored",
		},
		Workouts: []string{
			"Light to moderate exercise",
			"Walking for 30 minutes daily",
			"Stretching and flexibility exercises",
			"Listen to your body",
			"Avoid overexertion",
		},
		Diets: []string{
			"Eat a balanced, nutritious diet",
			"Include plenty of fruits and vegetables",
			"Stay hydrated with water",
			"Limit processed foods",
			"Eat regular meals",
		},
	}
}

func generalHealthAssessment() Prediction {
	return Prediction{
		Disease:     "General Health Assessment",
		Description: "Based on your symptoms, we recommend consulting with a healthcare professional for a comprehensive evaluation.",
		Precautions: []string{
			"Monitor your symptoms closely",
			"Keep a symptom diary",
			"Maintain good hygiene practices",
			"Get adequate rest and sleep",
			"Stay hydrated and eat nutritious foods",
		},
		Medications: []string{
			"Consult with a healthcare provider",
			"Over-the-counter pain relievers if needed",
			"Follow prescribed medications",
			"Avoid self-medication",
			"Keep medications properly stored",
		},
		Workouts: []string{
			"Light to moderate exercise",
			"Walking for 30 minutes daily",
			"Stretching and flexibility exercises",
			"Listen to your body",
			"Avoid overexertion",
		},
		Diets: []string{
			"Eat a balanced, nutritious diet",
			"Include plenty of fruits and vegetables",
			"Stay hydrated with water",
			"Limit processed foods",
			"Eat regular meals",
		},
	}
}
