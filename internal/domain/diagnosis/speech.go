package diagnosis

import "strings"

// GeneralDiscomfortKey is emitted when a transcript contains a vague
// health complaint but no recognizable symptom phrase.
const GeneralDiscomfortKey = "general discomfort"

type speechMapping struct {
	symptom string
	phrases []string
}

// speechMappings pairs each symptom with the spoken phrases (English
// and Tamil) that indicate it. Order matters: extracted symptoms are
// emitted in table order, and the first matching phrase per symptom
// short-circuits the rest.
var speechMappings = []speechMapping{
	{"fever", []string{"fever", "temperature", "hot", "burning up", "high temperature", "காய்ச்சல்", "காய்ச்சல் உள்ளது", "ஜூரம்", "ஜூரம் உள்ளது", "காய்ச்சல் வருகிறது", "காய்ச்சல் இருக்கிறது", "காய்ச்சல் வந்திருக்கிறது", "காய்ச்சல் வருகிறது"}},
	{"headache", []string{"headache", "head pain", "migraine", "head hurts", "pain in head", "தலைவலி", "தலைவலி உள்ளது", "தலைவலி வருகிறது", "தலைவலி இருக்கிறது", "தலைவலி வந்திருக்கிறது", "தலைவலி வருகிறது", "தலைவலி உள்ளது"}},
	{"cough", []string{"cough", "coughing", "dry cough", "wet cough", "hacking cough", "இருமல்", "இருமல் உள்ளது", "இருமல் வருகிறது", "இருமல் இருக்கிறது", "இருமல் வந்திருக்கிறது", "இருமல் வருகிறது", "இருமல் உள்ளது"}},
	{"fatigue", []string{"fatigue", "tired", "exhausted", "weak", "no energy", "tiredness", "சோர்வு", "சோர்வு உள்ளது", "சோர்வு வருகிறது", "சோர்வு இருக்கிறது", "சோர்வு வந்திருக்கிறது", "சோர்வு வருகிறது", "சோர்வு உள்ளது"}},
	{"nausea", []string{"nausea", "sick to stomach", "queasy", "feeling sick", "வாந்தி", "வாந்தி உள்ளது", "வாந்தி வருகிறது", "வாந்தி இருக்கிறது", "வாந்தி வந்திருக்கிறது", "வாந்தி வருகிறது", "வாந்தி உள்ளது"}},
	{"dizziness", []string{"dizzy", "dizziness", "lightheaded", "vertigo", "spinning", "மயக்கம்", "மயக்கம் உள்ளது", "மயக்கம் வருகிறது", "மயக்கம் இருக்கிறது", "மயக்கம் வந்திருக்கிறது", "மயக்கம் வருகிறது", "மயக்கம் உள்ளது"}},
	{"chest pain", []string{"chest pain", "pain in chest", "heart pain", "chest hurts", "மார்பு வலி", "மார்பு வலி உள்ளது", "மார்பு வலி வருகிறது", "மார்பு வலி இருக்கிறது", "மார்பு வலி வந்திருக்கிறது", "மார்பு வலி வருகிறது", "மார்பு வலி உள்ளது"}},
	{"shortness of breath", []string{"shortness of breath", "can't breathe", "breathing difficulty", "out of breath", "மூச்சு திணறல்", "மூச்சு திணறல் உள்ளது", "மூச்சு திணறல் வருகிறது", "மூச்சு திணறல் இருக்கிறது", "மூச்சு திணறல் வந்திருக்கிறது", "மூச்சு திணறல் வருகிறது", "மூச்சு திணறல் உள்ளது"}},
	{"abdominal pain", []string{"stomach pain", "belly pain", "abdominal pain", "tummy hurts", "வயிற்று வலி", "வயிற்று வலி உள்ளது", "வயிற்று வலி வருகிறது", "வயிற்று வலி இருக்கிறது", "வயிற்று வலி வந்திருக்கிறது", "வயிற்று வலி வருகிறது", "வயிற்று வலி உள்ளது"}},
	{"back pain", []string{"back pain", "pain in back", "back hurts", "lower back pain", "முதுகு வலி", "முதுகு வலி உள்ளது", "முதுகு வலி வருகிறது", "முதுகு வலி இருக்கிறது", "முதுகு வலி வந்திருக்கிறது", "முதுகு வலி வருகிறது", "முதுகு வலி உள்ளது"}},
	{"joint pain", []string{"joint pain", "pain in joints", "knee pain", "hip pain", "shoulder pain", "hand pain", "leg pain", "மூட்டு வலி", "மூட்டு வலி உள்ளது", "மூட்டு வலி வருகிறது", "மூட்டு வலி இருக்கிறது", "மூட்டு வலி வந்திருக்கிறது", "மூட்டு வலி வருகிறது", "மூட்டு வலி உள்ளது"}},
	{"muscle weakness", []string{"muscle weakness", "weak muscles", "can't lift", "muscle fatigue", "தசை பலவீனம்", "தசை பலவீனம் உள்ளது", "தசை பலவீனம் வருகிறது", "தசை பலவீனம் இருக்கிறது", "தசை பலவீனம் வந்திருக்கிறது", "தசை பலவீனம் வருகிறது", "தசை பலவீனம் உள்ளது"}},
	{"loss of appetite", []string{"no appetite", "not hungry", "loss of appetite", "don't want to eat", "பசி இல்லை", "பசி இல்லை உள்ளது", "பசி இல்லை வருகிறது", "பசி இல்லை இருக்கிறது", "பசி இல்லை வந்திருக்கிறது", "பசி இல்லை வருகிறது", "பசி இல்லை உள்ளது"}},
	{"weight loss", []string{"losing weight", "weight loss", "getting thinner", "எடை குறைவு", "எடை குறைவு உள்ளது", "எடை குறைவு வருகிறது", "எடை குறைவு இருக்கிறது", "எடை குறைவு வந்திருக்கிறது", "எடை குறைவு வருகிறது", "எடை குறைவு உள்ளது"}},
	{"insomnia", []string{"can't sleep", "insomnia", "sleepless", "trouble sleeping", "தூக்கம் வரவில்லை", "தூக்கம் வரவில்லை உள்ளது", "தூக்கம் வரவில்லை வருகிறது", "தூக்கம் வரவில்லை இருக்கிறது", "தூக்கம் வரவில்லை வந்திருக்கிறது", "தூக்கம் வரவில்லை வருகிறது", "தூக்கம் வரவில்லை உள்ளது"}},
	{"anxiety", []string{"anxiety", "worried", "nervous", "anxious", "panic", "கவலை", "கவலை உள்ளது", "கவலை வருகிறது", "கவலை இருக்கிறது", "கவலை வந்திருக்கிறது", "கவலை வருகிறது", "கவலை உள்ளது"}},
	{"depression", []string{"depression", "sad", "hopeless", "depressed", "down", "மனச்சோர்வு", "மனச்சோர்வு உள்ளது", "மனச்சோர்வு வருகிறது", "மனச்சோர்வு இருக்கிறது", "மனச்சோர்வு வந்திருக்கிறது", "மனச்சோர்வு வருகிறது", "மனச்சோர்வு உள்ளது"}},
	{"irritability", []string{"irritable", "moody", "cranky", "easily annoyed", "எரிச்சல்", "எரிச்சல் உள்ளது", "எரிச்சல் வருகிறது", "எரிச்சல் இருக்கிறது", "எரிச்சல் வந்திருக்கிறது", "எரிச்சல் வருகிறது", "எரிச்சல் உள்ளது"}},
	{"mood swings", []string{"mood swings", "mood changes", "emotional changes", "மனநிலை மாற்றம்", "மனநிலை மாற்றம் உள்ளது", "மனநிலை மாற்றம் வருகிறது", "மனநிலை மாற்றம் இருக்கிறது", "மனநிலை மாற்றம் வந்திருக்கிறது", "மனநிலை மாற்றம் வருகிறது", "மனநிலை மாற்றம் உள்ளது"}},
	{"memory problems", []string{"memory problems", "forgetful", "can't remember", "memory loss", "நினைவு பிரச்சினை", "நினைவு பிரச்சினை உள்ளது", "நினைவு பிரச்சினை வருகிறது", "நினைவு பிரச்சினை இருக்கிறது", "நினைவு பிரச்சினை வந்திருக்கிறது", "நினைவு பிரச்சினை வருகிறது", "நினைவு பிரச்சினை உள்ளது"}},
	{"concentration issues", []string{"can't concentrate", "focus problems", "attention issues", "கவனம் செலுத்த முடியவில்லை", "கவனம் செலுத்த முடியவில்லை உள்ளது", "கவனம் செலுத்த முடியவில்லை வருகிறது", "கவனம் செலுத்த முடியவில்லை இருக்கிறது", "கவனம் செலுத்த முடியவில்லை வந்திருக்கிறது", "கவனம் செலுத்த முடியவில்லை வருகிறது", "கவனம் செலுத்த முடியவில்லை உள்ளது"}},
	{"tremors", []string{"shaking", "tremors", "trembling", "uncontrollable shaking", "நடுக்கம்", "நடுக்கம் உள்ளது", "நடுக்கம் வருகிறது", "நடுக்கம் இருக்கிறது", "நடுக்கம் வந்திருக்கிறது", "நடுக்கம் வருகிறது", "நடுக்கம் உள்ளது"}},
	{"seizures", []string{"seizures", "fits", "convulsions", "வலிப்பு", "வலிப்பு உள்ளது", "வலிப்பு வருகிறது", "வலிப்பு இருக்கிறது", "வலிப்பு வந்திருக்கிறது", "வலிப்பு வருகிறது", "வலிப்பு உள்ளது"}},
	{"vision problems", []string{"vision problems", "blurry vision", "can't see well", "eye problems", "eye pain", "eye hurts", "பார்வை பிரச்சினை", "பார்வை பிரச்சினை உள்ளது", "பார்வை பிரச்சினை வருகிறது", "பார்வை பிரச்சினை இருக்கிறது", "பார்வை பிரச்சினை வந்திருக்கிறது", "பார்வை பிரச்சினை வருகிறது", "பார்வை பிரச்சினை உள்ளது"}},
	{"hearing loss", []string{"hearing loss", "can't hear well", "deaf", "hearing problems", "கேட்பு பிரச்சினை", "கேட்பு பிரச்சினை உள்ளது", "கேட்பு பிரச்சினை வருகிறது", "கேட்பு பிரச்சினை இருக்கிறது", "கேட்பு பிரச்சினை வந்திருக்கிறது", "கேட்பு பிரச்சினை வருகிறது", "கேட்பு பிரச்சினை உள்ளது"}},
	{"skin rash", []string{"skin rash", "rash", "red skin", "itchy skin", "தோல் வெடிப்பு", "தோல் வெடிப்பு உள்ளது", "தோல் வெடிப்பு வருகிறது", "தோல் வெடிப்பு இருக்கிறது", "தோல் வெடிப்பு வந்திருக்கிறது", "தோல் வெடிப்பு வருகிறது", "தோல் வெடிப்பு உள்ளது"}},
	{"itching", []string{"itching", "itchy", "scratching", "skin irritation", "சொறி", "சொறி உள்ளது", "சொறி வருகிறது", "சொறி இருக்கிறது", "சொறி வந்திருக்கிறது", "சொறி வருகிறது", "சொறி உள்ளது"}},
	{"swelling", []string{"swelling", "swollen", "puffy", "edema", "வீக்கம்", "வீக்கம் உள்ளது", "வீக்கம் வருகிறது", "வீக்கம் இருக்கிறது", "வீக்கம் வந்திருக்கிறது", "வீக்கம் வருகிறது", "வீக்கம் உள்ளது"}},
	{"bruising", []string{"bruising", "bruises", "black and blue", "காயம்", "காயம் உள்ளது", "காயம் வருகிறது", "காயம் இருக்கிறது", "காயம் வந்திருக்கிறது", "காயம் வருகிறது", "காயம் உள்ளது"}},
	{"bleeding", []string{"bleeding", "blood", "cuts", "wounds", "இரத்தம்", "இரத்தம் உள்ளது", "இரத்தம் வருகிறது", "இரத்தம் இருக்கிறது", "இரத்தம் வந்திருக்கிறது", "இரத்தம் வருகிறது", "இரத்தம் உள்ளது"}},
	{"constipation", []string{"constipation", "can't go", "blocked", "hard stools", "மலச்சிக்கல்", "மலச்சிக்கல் உள்ளது", "மலச்சிக்கல் வருகிறது", "மலச்சிக்கல் இருக்கிறது", "மலச்சிக்கல் வந்திருக்கிறது", "மலச்சிக்கல் வருகிறது", "மலச்சிக்கல் உள்ளது"}},
	{"diarrhea", []string{"diarrhea", "loose stools", "watery stools", "running", "வயிற்றுப்போக்கு", "வயிற்றுப்போக்கு உள்ளது", "வயிற்றுப்போக்கு வருகிறது", "வயிற்றுப்போக்கு இருக்கிறது", "வயிற்றுப்போக்கு வந்திருக்கிறது", "வயிற்றுப்போக்கு வருகிறது", "வயிற்றுப்போக்கு உள்ளது"}},
	{"vomiting", []string{"vomiting", "throwing up", "puking", "sick", "வாந்தி", "வாந்தி உள்ளது", "வாந்தி வருகிறது", "வாந்தி இருக்கிறது", "வாந்தி வந்திருக்கிறது", "வாந்தி வருகிறது", "வாந்தி உள்ளது"}},
	{"heartburn", []string{"heartburn", "acid reflux", "burning in chest", "மார்பெரிச்சல்", "மார்பெரிச்சல் உள்ளது", "மார்பெரிச்சல் வருகிறது", "மார்பெரிச்சல் இருக்கிறது", "மார்பெரிச்சல் வந்திருக்கிறது", "மார்பெரிச்சல் வருகிறது", "மார்பெரிச்சல் உள்ளது"}},
	{"acid reflux", []string{"acid reflux", "heartburn", "stomach acid", "அமில ரிஃப்ளக்ஸ்", "அமில ரிஃப்ளக்ஸ் உள்ளது", "அமில ரிஃப்ளக்ஸ் வருகிறது", "அமில ரிஃப்ளக்ஸ் இருக்கிறது", "அமில ரிஃப்ளக்ஸ் வந்திருக்கிறது", "அமில ரிஃப்ளக்ஸ் வருகிறது", "அமில ரிஃப்ளக்ஸ் உள்ளது"}},
	{"bloating", []string{"bloating", "bloated", "gassy", "stomach bloating", "வயிறு வீக்கம்", "வயிறு வீக்கம் உள்ளது", "வயிறு வீக்கம் வருகிறது", "வயிறு வீக்கம் இருக்கிறது", "வயிறு வீக்கம் வந்திருக்கிறது", "வயிறு வீக்கம் வருகிறது", "வயிறு வீக்கம் உள்ளது"}},
	{"gas", []string{"gas", "flatulence", "passing gas", "wind", "வாயு", "வாயு உள்ளது", "வாயு வருகிறது", "வாயு இருக்கிறது", "வாயு வந்திருக்கிறது", "வாயு வருகிறது", "வாயு உள்ளது"}},
}

// generalPatterns are vague complaints that yield GeneralDiscomfortKey
// when no specific symptom phrase matched.
var generalPatterns = []string{
	"pain", "hurt", "ache", "sore", "uncomfortable", "not feeling well",
	"sick", "ill", "unwell", "under the weather",
	"வலி", "வலி உள்ளது", "வலி வருகிறது", "வலி இருக்கிறது",
	"நோய்", "நோய் உள்ளது", "நோய் வருகிறது", "நோய் இருக்கிறது",
	"சரியில்லை", "சரியில்லை உள்ளது", "சரியில்லை வருகிறது", "சரியில்லை இருக்கிறது",
	"நலமில்லை", "நலமில்லை உள்ளது", "நலமில்லை வருகிறது", "நலமில்லை இருக்கிறது",
}

// ExtractFromTranscript scans a speech transcript for known symptom
// phrases and returns the matched symptom keys without duplicates, in
// table order. Vague complaints produce GeneralDiscomfortKey only when
// nothing specific matched.
func ExtractFromTranscript(transcript string) []string {
	lower := strings.ToLower(transcript)
	symptoms := []string{}
	seen := map[string]bool{}

	for _, mapping := range speechMappings {
		for _, phrase := range mapping.phrases {
			if strings.Contains(lower, phrase) {
				if !seen[mapping.symptom] {
					seen[mapping.symptom] = true
					symptoms = append(symptoms, mapping.symptom)
				}
				break
			}
		}
	}

	if len(symptoms) == 0 {
		for _, pattern := range generalPatterns {
			if strings.Contains(lower, pattern) {
				symptoms = append(symptoms, GeneralDiscomfortKey)
				break
			}
		}
	}

	return symptoms
}
