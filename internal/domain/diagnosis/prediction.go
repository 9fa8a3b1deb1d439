package diagnosis

// Prediction is the static advice bundle returned for a symptom key or
// a recognized symptom combination. Values are constant lookup-table
// entries; nothing in this package mutates them after init.
type Prediction struct {
	Disease     string   `json:"disease"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
	Medications []string `json:"medications"`
	Workouts    []string `json:"workouts"`
	Diets       []string `json:"diets"`
}

var predictions = map[string]Prediction{
	"fever": {
		Disease:     "Fever (Pyrexia)",
		Description: "Elevated body temperature above normal range (98.6°F/37°C), often indicating infection or inflammation in the body.",
		Precautions: []string{
			"Monitor temperature regularly",
			"Stay hydrated with plenty of fluids",
			"Rest in a cool, well-ventilated room",
			"Use light clothing and bedding",
			"Avoid alcohol and caffeine",
		},
		Medications: []string{
			"Paracetamol 500-1000mg every 4-6 hours",
			"Ibuprofen 400-600mg every 6-8 hours",
			"Aspirin 325-650mg (adults only)",
			"Acetaminophen for children (consult dosage)",
			"Cool compresses for comfort",
		},
		Workouts: []string{
			"Complete rest during fever",
			"Gentle stretching when temperature normalizes",
			"Light walking after fever breaks",
			"Avoid strenuous exercise",
			"Gradual return to normal activity",
		},
		Diets: []string{
			"Clear fluids (water, broth, herbal tea)",
			"Light, easily digestible foods",
			"Avoid heavy, greasy meals",
			"Include vitamin C rich foods",
			"Small, frequent meals",
		},
	},
	"headache": {
		Disease:     "Tension Headache",
		Description: "Most common type of headache characterized by mild to moderate pain, often described as a tight band around the head.",
		Precautions: []string{
			"Maintain good posture",
			"Take regular breaks from screen time",
			"Manage stress through relaxation",
			"Ensure adequate sleep",
			"Stay hydrated throughout the day",
		},
		Medications: []string{
			"Paracetamol 500-1000mg every 4-6 hours",
			"Ibuprofen 400-600mg every 6-8 hours",
			"Aspirin 325-650mg for adults",
			"Caffeine 100mg tablets",
			"Topical menthol for relief",
		},
		Workouts: []string{
			"Gentle neck and shoulder stretches",
			"Low-impact aerobic exercise",
			"Yoga and relaxation techniques",
			"Regular exercise to prevent tension",
			"Avoid high-intensity workouts during pain",
		},
		Diets: []string{
			"Stay well hydrated",
			"Eat regular meals to avoid hunger",
			"Limit caffeine and alcohol",
			"Include magnesium-rich foods",
			"Avoid processed foods with additives",
		},
	},
	"cough": {
		Disease:     "Acute Bronchitis",
		Description: "Inflammation of the bronchial tubes causing persistent cough, often with mucus production and chest discomfort.",
		Precautions: []string{
			"Rest your voice",
			"Use a humidifier in your room",
			"Avoid smoking and secondhand smoke",
			"Stay hydrated to thin mucus",
			"Cover mouth when coughing",
		},
		Medications: []string{
			"Dextromethorphan 15-30mg for dry cough",
			"Guaifenesin 200-400mg for productive cough",
			"Honey 1-2 teaspoons for natural relief",
			"Steam inhalation with eucalyptus",
			"Cough drops for throat irritation",
		},
		Workouts: []string{
			"Light walking to improve circulation",
			"Deep breathing exercises",
			"Gentle chest stretches",
			"Avoid strenuous exercise",
			"Rest when coughing is severe",
		},
		Diets: []string{
			"Warm fluids (tea, broth, soup)",
			"Honey for natural cough relief",
			"Avoid dairy if it thickens mucus",
			"Include vitamin C rich foods",
			"Small, frequent meals",
		},
	},
	"fatigue": {
		Disease:     "Chronic Fatigue",
		Description: "Persistent tiredness that doesn't improve with rest, often affecting daily activities and quality of life.",
		Precautions: []string{
			"Maintain regular sleep schedule",
			"Practice stress management",
			"Avoid overexertion",
			"Create a relaxing bedtime routine",
			"Limit caffeine and alcohol",
		},
		Medications: []string{
			"Vitamin B12 1000mcg daily",
			"Iron supplements if deficient",
			"Vitamin D3 2000-4000 IU daily",
			"Magnesium 200-400mg daily",
			"Coenzyme Q10 100-200mg daily",
		},
		Workouts: []string{
			"Gentle walking 10-15 minutes daily",
			"Light stretching exercises",
			"Yoga and meditation",
			"Gradual increase in activity",
			"Listen to your body's limits",
		},
		Diets: []string{
			"Balanced meals with protein",
			"Complex carbohydrates for energy",
			"Iron-rich foods (leafy greens, meat)",
			"Stay hydrated throughout day",
			"Avoid processed foods and sugar",
		},
	},
	"nausea": {
		Disease:     "Gastritis",
		Description: "Inflammation of the stomach lining causing nausea, discomfort, and sometimes vomiting.",
		Precautions: []string{
			"Eat small, frequent meals",
			"Avoid lying down after eating",
			"Identify and avoid trigger foods",
			"Manage stress levels",
			"Avoid alcohol and smoking",
		},
		Medications: []string{
			"Antacids (calcium carbonate)",
			"H2 blockers (ranitidine 150mg)",
			"Proton pump inhibitors (omeprazole 20mg)",
			"Ginger supplements 500mg",
			"Peppermint tea for relief",
		},
		Workouts: []string{
			"Light walking after meals",
			"Gentle abdominal exercises",
			"Deep breathing techniques",
			"Avoid intense exercise",
			"Rest when symptoms are severe",
		},
		Diets: []string{
			"Bland foods (rice, toast, bananas)",
			"Small, frequent meals",
			"Avoid spicy, fatty, acidic foods",
			"Ginger tea for nausea relief",
			"Stay hydrated with clear fluids",
		},
	},
	"dizziness": {
		Disease:     "Benign Paroxysmal Positional Vertigo (BPPV)",
		Description: "Inner ear disorder causing brief episodes of dizziness when moving the head in certain positions.",
		Precautions: []string{
			"Move slowly when changing positions",
			"Avoid sudden head movements",
			"Sleep with head elevated",
			"Be careful when driving",
			"Use handrails when walking",
		},
		Medications: []string{
			"Meclizine 25-50mg for motion sickness",
			"Dimenhydrinate 50mg for vertigo",
			"Betahistine 8-16mg three times daily",
			"Ginkgo biloba 120mg daily",
			"Vitamin D3 2000 IU daily",
		},
		Workouts: []string{
			"Balance exercises (with supervision)",
			"Gentle neck stretches",
			"Walking with support",
			"Avoid exercises that trigger dizziness",
			"Gradual return to normal activity",
		},
		Diets: []string{
			"Stay well hydrated",
			"Eat regular meals",
			"Limit salt intake",
			"Include vitamin B12 rich foods",
			"Avoid alcohol and caffeine",
		},
	},
	"chest pain": {
		Disease:     "Angina Pectoris",
		Description: "Chest pain or discomfort caused by reduced blood flow to the heart muscle, often triggered by physical exertion or stress.",
		Precautions: []string{
			"Avoid strenuous physical activity",
			"Manage stress and anxiety",
			"Quit smoking immediately",
			"Monitor blood pressure regularly",
			"Follow a heart-healthy lifestyle",
		},
		Medications: []string{
			"Nitroglycerin 0.4mg sublingual",
			"Aspirin 81-325mg daily",
			"Beta-blockers (metoprolol 25-50mg)",
			"Calcium channel blockers",
			"Statins for cholesterol control",
		},
		Workouts: []string{
			"Cardiac rehabilitation program",
			"Light walking 10-15 minutes",
			"Gentle stretching exercises",
			"Supervised exercise only",
			"Stop immediately if pain occurs",
		},
		Diets: []string{
			"Low-sodium, heart-healthy diet",
			"Omega-3 rich foods (fish, nuts)",
			"Plenty of fruits and vegetables",
			"Limit saturated fats",
			"Avoid processed foods",
		},
	},
	"shortness of breath": {
		Disease:     "Dyspnea",
		Description: "Difficulty breathing or feeling of breathlessness, which can be caused by various respiratory or cardiovascular conditions.",
		Precautions: []string{
			"Avoid triggers (allergens, smoke)",
			"Use prescribed inhalers correctly",
			"Maintain good posture",
			"Practice breathing exercises",
			"Avoid extreme temperatures",
		},
		Medications: []string{
			"Albuterol inhaler 2 puffs every 4-6 hours",
			"Ipratropium bromide inhaler",
			"Inhaled corticosteroids",
			"Oral corticosteroids if severe",
			"Oxygen therapy if prescribed",
		},
		Workouts: []string{
			"Pursed-lip breathing exercises",
			"Diaphragmatic breathing",
			"Light walking with breaks",
			"Gentle stretching",
			"Avoid high-intensity exercise",
		},
		Diets: []string{
			"Small, frequent meals",
			"Avoid foods that cause bloating",
			"Stay well hydrated",
			"Include anti-inflammatory foods",
			"Limit salt intake",
		},
	},
	"abdominal pain": {
		Disease:     "Gastritis",
		Description: "Inflammation of the stomach lining causing pain, discomfort, and sometimes nausea or vomiting.",
		Precautions: []string{
			"Eat small, frequent meals",
			"Avoid lying down after eating",
			"Identify and avoid trigger foods",
			"Manage stress levels",
			"Avoid alcohol and smoking",
		},
		Medications: []string{
			"Antacids (calcium carbonate)",
			"H2 blockers (ranitidine 150mg)",
			"Proton pump inhibitors (omeprazole 20mg)",
			"Ginger supplements 500mg",
			"Peppermint tea for relief",
		},
		Workouts: []string{
			"Light walking after meals",
			"Gentle abdominal exercises",
			"Deep breathing techniques",
			"Avoid intense exercise",
			"Rest when symptoms are severe",
		},
		Diets: []string{
			"Bland foods (rice, toast, bananas)",
			"Small, frequent meals",
			"Avoid spicy, fatty, acidic foods",
			"Ginger tea for relief",
			"Stay hydrated with clear fluids",
		},
	},
	"back pain": {
		Disease:     "Musculoskeletal Back Pain",
		Description: "Pain in the back region, often caused by muscle strain, poor posture, or spinal issues.",
		Precautions: []string{
			"Maintain good posture",
			"Use proper lifting techniques",
			"Take regular breaks from sitting",
			"Sleep on a supportive mattress",
			"Avoid heavy lifting",
		},
		Medications: []string{
			"Ibuprofen 400-600mg every 6-8 hours",
			"Acetaminophen 500-1000mg every 4-6 hours",
			"Topical pain relievers",
			"Muscle relaxants if prescribed",
			"Heat/cold therapy",
		},
		Workouts: []string{
			"Gentle stretching exercises",
			"Core strengthening exercises",
			"Low-impact aerobic exercise",
			"Yoga and pilates",
			"Walking and swimming",
		},
		Diets: []string{
			"Anti-inflammatory foods",
			"Calcium-rich foods for bone health",
			"Vitamin D rich foods",
			"Stay hydrated",
			"Maintain healthy weight",
		},
	},
	"joint pain": {
		Disease:     "Osteoarthritis",
		Description: "Degenerative joint disease causing pain, stiffness, and reduced mobility in affected joints.",
		Precautions: []string{
			"Maintain healthy weight",
			"Use joint protection techniques",
			"Avoid repetitive stress",
			"Keep joints warm",
			"Use assistive devices if needed",
		},
		Medications: []string{
			"Acetaminophen 500-1000mg every 4-6 hours",
			"Ibuprofen 400-600mg every 6-8 hours",
			"Topical NSAIDs",
			"Glucosamine 1500mg daily",
			"Chondroitin 800-1200mg daily",
		},
		Workouts: []string{
			"Low-impact exercises (swimming, cycling)",
			"Gentle stretching",
			"Strength training with light weights",
			"Tai chi and yoga",
			"Walking on soft surfaces",
		},
		Diets: []string{
			"Anti-inflammatory diet",
			"Omega-3 rich foods",
			"Vitamin C rich foods",
			"Calcium and vitamin D",
			"Avoid processed foods",
		},
	},
	"muscle weakness": {
		Disease:     "Muscle Weakness",
		Description: "Reduced strength in muscles, which can be caused by various conditions including neurological disorders.",
		Precautions: []string{
			"Avoid overexertion",
			"Use proper body mechanics",
			"Maintain good nutrition",
			"Get adequate rest",
			"Monitor for progression",
		},
		Medications: []string{
			"Vitamin B12 1000mcg daily",
			"Vitamin D3 2000-4000 IU daily",
			"Magnesium 200-400mg daily",
			"Creatine 5g daily",
			"Protein supplements if needed",
		},
		Workouts: []string{
			"Gentle resistance training",
			"Range of motion exercises",
			"Balance training",
			"Gradual progression",
			"Supervised exercise",
		},
		Diets: []string{
			"High-protein diet",
			"Complex carbohydrates",
			"Essential fatty acids",
			"Vitamin and mineral rich foods",
			"Stay hydrated",
		},
	},
	"loss of appetite": {
		Disease:     "Anorexia",
		Description: "Loss of appetite or reduced desire to eat, which can lead to weight loss and nutritional deficiencies.",
		Precautions: []string{
			"Eat small, frequent meals",
			"Create pleasant eating environment",
			"Stay hydrated",
			"Monitor weight regularly",
			"Seek medical attention if severe",
		},
		Medications: []string{
			"Appetite stimulants if prescribed",
			"Multivitamins",
			"Zinc supplements 15-30mg daily",
			"Vitamin B complex",
			"Iron supplements if needed",
		},
		Workouts: []string{
			"Light walking to stimulate appetite",
			"Gentle stretching",
			"Avoid strenuous exercise",
			"Yoga and meditation",
			"Gradual increase in activity",
		},
		Diets: []string{
			"High-calorie, nutrient-dense foods",
			"Small, frequent meals",
			"Smoothies and shakes",
			"Include favorite foods",
			"Eat with others when possible",
		},
	},
	"weight loss": {
		Disease:     "Unintentional Weight Loss",
		Description: "Loss of body weight without trying, which can indicate underlying medical conditions.",
		Precautions: []string{
			"Monitor weight regularly",
			"Keep food diary",
			"Seek medical evaluation",
			"Maintain good nutrition",
			"Address underlying causes",
		},
		Medications: []string{
			"Multivitamins",
			"Protein supplements",
			"Appetite stimulants if prescribed",
			"Nutritional supplements",
			"Treat underlying conditions",
		},
		Workouts: []string{
			"Light strength training",
			"Gentle aerobic exercise",
			"Yoga and stretching",
			"Avoid overexertion",
			"Gradual progression",
		},
		Diets: []string{
			"High-calorie, nutrient-dense foods",
			"Frequent meals and snacks",
			"Protein-rich foods",
			"Healthy fats",
			"Stay hydrated",
		},
	},
	"insomnia": {
		Disease:     "Insomnia",
		Description: "Difficulty falling asleep, staying asleep, or getting quality sleep, affecting daily functioning.",
		Precautions: []string{
			"Maintain regular sleep schedule",
			"Create relaxing bedtime routine",
			"Keep bedroom cool and dark",
			"Avoid screens before bed",
			"Limit caffeine and alcohol",
		},
		Medications: []string{
			"Melatonin 3-5mg 30 minutes before bed",
			"Diphenhydramine 25-50mg",
			"Valerian root 300-600mg",
			"Chamomile tea",
			"Prescription sleep aids if needed",
		},
		Workouts: []string{
			"Gentle evening walks",
			"Yoga and stretching",
			"Deep breathing exercises",
			"Avoid intense exercise before bed",
			"Relaxation techniques",
		},
		Diets: []string{
			"Light evening meal",
			"Avoid large meals before bed",
			"Limit caffeine after 2 PM",
			"Include tryptophan-rich foods",
			"Warm milk or herbal tea",
		},
	},
	"anxiety": {
		Disease:     "Generalized Anxiety Disorder",
		Description: "Excessive worry and anxiety about various aspects of life, often accompanied by physical symptoms.",
		Precautions: []string{
			"Practice stress management",
			"Limit caffeine and alcohol",
			"Maintain regular sleep schedule",
			"Seek professional help if needed",
			"Practice relaxation techniques",
		},
		Medications: []string{
			"SSRIs (sertraline 25-200mg daily)",
			"Benzodiazepines for acute anxiety",
			"Buspirone 15-30mg daily",
			"Herbal supplements (passionflower)",
			"L-theanine 200mg daily",
		},
		Workouts: []string{
			"Regular aerobic exercise",
			"Yoga and meditation",
			"Deep breathing exercises",
			"Progressive muscle relaxation",
			"Mindfulness practices",
		},
		Diets: []string{
			"Balanced meals",
			"Omega-3 rich foods",
			"Complex carbohydrates",
			"Limit caffeine and sugar",
			"Include magnesium-rich foods",
		},
	},
	"depression": {
		Disease:     "Major Depressive Disorder",
		Description: "Persistent feelings of sadness, hopelessness, and loss of interest in activities once enjoyed.",
		Precautions: []string{
			"Seek professional help",
			"Maintain social connections",
			"Practice self-care",
			"Stay active and engaged",
			"Monitor symptoms",
		},
		Medications: []string{
			"SSRIs (fluoxetine 20-80mg daily)",
			"SNRIs (venlafaxine 75-225mg daily)",
			"Bupropion 150-300mg daily",
			"Mirtazapine 15-45mg daily",
			"St. John's Wort 300mg daily",
		},
		Workouts: []string{
			"Regular aerobic exercise",
			"Walking outdoors",
			"Group exercise classes",
			"Yoga and meditation",
			"Gradual increase in activity",
		},
		Diets: []string{
			"Balanced, nutritious meals",
			"Omega-3 rich foods",
			"Complex carbohydrates",
			"Protein-rich foods",
			"Limit processed foods",
		},
	},
	"irritability": {
		Disease:     "Irritability",
		Description: "Easily annoyed or angered, often a symptom of stress, anxiety, or underlying medical conditions.",
		Precautions: []string{
			"Practice stress management",
			"Get adequate sleep",
			"Maintain regular routine",
			"Avoid triggers",
			"Seek professional help if needed",
		},
		Medications: []string{
			"Stress management techniques",
			"Herbal supplements (chamomile)",
			"Magnesium 200-400mg daily",
			"B-complex vitamins",
			"Omega-3 supplements",
		},
		Workouts: []string{
			"Regular exercise",
			"Yoga and meditation",
			"Deep breathing exercises",
			"Walking in nature",
			"Progressive muscle relaxation",
		},
		Diets: []string{
			"Balanced meals",
			"Complex carbohydrates",
			"Omega-3 rich foods",
			"Limit caffeine and sugar",
			"Stay hydrated",
		},
	},
	"mood swings": {
		Disease:     "Mood Disorders",
		Description: "Rapid changes in mood, from high energy and happiness to low mood and depression.",
		Precautions: []string{
			"Maintain regular routine",
			"Practice stress management",
			"Get adequate sleep",
			"Monitor mood patterns",
			"Seek professional help",
		},
		Medications: []string{
			"Mood stabilizers if prescribed",
			"SSRIs for depression",
			"Antipsychotics if needed",
			"Lithium carbonate",
			"Lamotrigine",
		},
		Workouts: []string{
			"Regular aerobic exercise",
			"Yoga and meditation",
			"Consistent routine",
			"Group activities",
			"Outdoor activities",
		},
		Diets: []string{
			"Balanced, regular meals",
			"Complex carbohydrates",
			"Omega-3 rich foods",
			"Limit caffeine and alcohol",
			"Include protein in each meal",
		},
	},
	"memory problems": {
		Disease:     "Mild Cognitive Impairment",
		Description: "Difficulty with memory, thinking, or concentration that is noticeable but not severe enough to interfere with daily life.",
		Precautions: []string{
			"Stay mentally active",
			"Maintain social connections",
			"Get adequate sleep",
			"Manage stress",
			"Regular medical check-ups",
		},
		Medications: []string{
			"Ginkgo biloba 120mg daily",
			"Vitamin B12 1000mcg daily",
			"Omega-3 supplements",
			"Acetyl-L-carnitine 1000mg daily",
			"Phosphatidylserine 100mg daily",
		},
		Workouts: []string{
			"Mental exercises and puzzles",
			"Regular physical exercise",
			"Learning new skills",
			"Social activities",
			"Mindfulness practices",
		},
		Diets: []string{
			"Mediterranean diet",
			"Omega-3 rich foods",
			"Antioxidant-rich foods",
			"B-complex vitamins",
			"Stay hydrated",
		},
	},
	"concentration issues": {
		Disease:     "Attention Deficit Disorder",
		Description: "Difficulty focusing, maintaining attention, and completing tasks, often accompanied by hyperactivity.",
		Precautions: []string{
			"Create structured environment",
			"Break tasks into smaller parts",
			"Minimize distractions",
			"Use organizational tools",
			"Practice mindfulness",
		},
		Medications: []string{
			"Stimulants (methylphenidate)",
			"Non-stimulants (atomoxetine)",
			"Alpha-2 agonists",
			"Behavioral therapy",
			"Lifestyle modifications",
		},
		Workouts: []string{
			"Regular aerobic exercise",
			"Yoga and meditation",
			"Martial arts",
			"Team sports",
			"Mindfulness exercises",
		},
		Diets: []string{
			"High-protein breakfast",
			"Complex carbohydrates",
			"Omega-3 rich foods",
			"Limit sugar and processed foods",
			"Stay hydrated",
		},
	},
	"tremors": {
		Disease:     "Essential Tremor",
		Description: "Involuntary shaking or trembling, most commonly affecting the hands, but can also affect the head, voice, or legs.",
		Precautions: []string{
			"Avoid caffeine and alcohol",
			"Get adequate sleep",
			"Manage stress",
			"Use adaptive devices",
			"Avoid fatigue",
		},
		Medications: []string{
			"Propranolol 40-320mg daily",
			"Primidone 50-750mg daily",
			"Gabapentin 300-1200mg daily",
			"Topiramate 25-400mg daily",
			"Botulinum toxin injections",
		},
		Workouts: []string{
			"Gentle exercises",
			"Balance training",
			"Coordination exercises",
			"Avoid activities requiring precision",
			"Supervised exercise",
		},
		Diets: []string{
			"Balanced diet",
			"Limit caffeine",
			"Avoid alcohol",
			"Include B-complex vitamins",
			"Stay hydrated",
		},
	},
	"seizures": {
		Disease:     "Epilepsy",
		Description: "Neurological disorder characterized by recurrent seizures, which are sudden bursts of electrical activity in the brain.",
		Precautions: []string{
			"Take medications as prescribed",
			"Get adequate sleep",
			"Avoid seizure triggers",
			"Wear medical alert bracelet",
			"Avoid driving until cleared",
		},
		Medications: []string{
			"Antiepileptic drugs (carbamazepine)",
			"Valproic acid",
			"Lamotrigine",
			"Levetiracetam",
			"Topiramate",
		},
		Workouts: []string{
			"Supervised exercise only",
			"Low-impact activities",
			"Swimming with supervision",
			"Walking and light stretching",
			"Avoid high-risk activities",
		},
		Diets: []string{
			"Ketogenic diet if prescribed",
			"Regular meal times",
			"Avoid alcohol",
			"Stay hydrated",
			"Include B-complex vitamins",
		},
	},
	"vision problems": {
		Disease:     "Refractive Errors",
		Description: "Common vision problems including nearsightedness, farsightedness, and astigmatism affecting clear vision.",
		Precautions: []string{
			"Regular eye examinations",
			"Protect eyes from UV light",
			"Take breaks from screen time",
			"Maintain good lighting",
			"Practice eye exercises",
		},
		Medications: []string{
			"Prescription glasses or contacts",
			"Eye drops for dryness",
			"Vitamin A supplements",
			"Lutein and zeaxanthin",
			"Omega-3 supplements",
		},
		Workouts: []string{
			"Eye exercises",
			"Regular physical exercise",
			"Outdoor activities",
			"Yoga and meditation",
			"Avoid straining eyes",
		},
		Diets: []string{
			"Foods rich in vitamin A",
			"Leafy green vegetables",
			"Omega-3 rich foods",
			"Antioxidant-rich foods",
			"Stay hydrated",
		},
	},
	"hearing loss": {
		Disease:     "Sensorineural Hearing Loss",
		Description: "Hearing loss caused by damage to the inner ear or auditory nerve, often age-related or due to noise exposure.",
		Precautions: []string{
			"Protect ears from loud noises",
			"Avoid inserting objects in ears",
			"Regular hearing tests",
			"Use hearing protection",
			"Monitor for changes",
		},
		Medications: []string{
			"Hearing aids if prescribed",
			"Cochlear implants if severe",
			"Vitamin B12 supplements",
			"Zinc supplements",
			"Folic acid supplements",
		},
		Workouts: []string{
			"Regular physical exercise",
			"Balance training",
			"Coordination exercises",
			"Gentle stretching",
			"Avoid high-impact activities",
		},
		Diets: []string{
			"Omega-3 rich foods",
			"Antioxidant-rich foods",
			"B-complex vitamins",
			"Zinc-rich foods",
			"Stay hydrated",
		},
	},
	"skin rash": {
		Disease:     "Contact Dermatitis",
		Description: "Inflammation of the skin caused by contact with irritants or allergens, resulting in red, itchy rash.",
		Precautions: []string{
			"Identify and avoid triggers",
			"Use gentle skin care products",
			"Wear protective clothing",
			"Keep skin moisturized",
			"Avoid scratching",
		},
		Medications: []string{
			"Topical corticosteroids",
			"Antihistamines (cetirizine 10mg)",
			"Calamine lotion",
			"Oatmeal baths",
			"Moisturizing creams",
		},
		Workouts: []string{
			"Avoid activities that cause sweating",
			"Gentle exercise",
			"Cool showers after exercise",
			"Wear breathable clothing",
			"Avoid swimming in chlorinated pools",
		},
		Diets: []string{
			"Anti-inflammatory foods",
			"Omega-3 rich foods",
			"Avoid trigger foods",
			"Stay hydrated",
			"Include vitamin E rich foods",
		},
	},
	"itching": {
		Disease:     "Pruritus",
		Description: "Itching sensation that can be caused by various skin conditions, allergies, or systemic diseases.",
		Precautions: []string{
			"Keep skin moisturized",
			"Use gentle skin care products",
			"Avoid hot showers",
			"Wear loose, breathable clothing",
			"Identify and avoid triggers",
		},
		Medications: []string{
			"Antihistamines (cetirizine 10mg)",
			"Topical corticosteroids",
			"Calamine lotion",
			"Oatmeal baths",
			"Moisturizing creams",
		},
		Workouts: []string{
			"Avoid activities that cause sweating",
			"Gentle exercise",
			"Cool showers after exercise",
			"Wear breathable clothing",
			"Avoid swimming in chlorinated pools",
		},
		Diets: []string{
			"Anti-inflammatory foods",
			"Omega-3 rich foods",
			"Avoid trigger foods",
			"Stay hydrated",
			"Include vitamin E rich foods",
		},
	},
	"swelling": {
		Disease:     "Edema",
		Description: "Abnormal accumulation of fluid in tissues, causing swelling, often in the legs, ankles, or feet.",
		Precautions: []string{
			"Elevate affected limbs",
			"Avoid standing for long periods",
			"Wear compression stockings",
			"Exercise regularly",
			"Monitor for changes",
		},
		Medications: []string{
			"Diuretics if prescribed",
			"Compression therapy",
			"Anti-inflammatory medications",
			"Elevation techniques",
			"Massage therapy",
		},
		Workouts: []string{
			"Gentle walking",
			"Leg elevation exercises",
			"Ankle pumps",
			"Swimming",
			"Avoid high-impact activities",
		},
		Diets: []string{
			"Low-sodium diet",
			"Stay hydrated",
			"Include potassium-rich foods",
			"Limit processed foods",
			"Avoid excessive salt",
		},
	},
	"bruising": {
		Disease:     "Easy Bruising",
		Description: "Tendency to bruise easily, often due to fragile blood vessels, medications, or underlying conditions.",
		Precautions: []string{
			"Avoid trauma and injury",
			"Use protective equipment",
			"Be careful with sharp objects",
			"Monitor for unusual bruising",
			"Regular medical check-ups",
		},
		Medications: []string{
			"Vitamin C 500-1000mg daily",
			"Vitamin K supplements",
			"Iron supplements if needed",
			"B-complex vitamins",
			"Zinc supplements",
		},
		Workouts: []string{
			"Low-impact exercises",
			"Gentle stretching",
			"Walking and swimming",
			"Avoid contact sports",
			"Use protective gear",
		},
		Diets: []string{
			"Vitamin C rich foods",
			"Iron-rich foods",
			"B-complex vitamins",
			"Stay hydrated",
			"Include protein-rich foods",
		},
	},
	"bleeding": {
		Disease:     "Bleeding Disorders",
		Description: "Conditions that affect the body's ability to form blood clots, leading to excessive or prolonged bleeding.",
		Precautions: []string{
			"Avoid trauma and injury",
			"Use soft toothbrush",
			"Avoid aspirin and NSAIDs",
			"Wear protective equipment",
			"Carry medical alert information",
		},
		Medications: []string{
			"Clotting factor replacement",
			"Desmopressin if prescribed",
			"Tranexamic acid",
			"Vitamin K supplements",
			"Iron supplements if needed",
		},
		Workouts: []string{
			"Low-impact exercises",
			"Gentle stretching",
			"Walking and swimming",
			"Avoid contact sports",
			"Supervised exercise only",
		},
		Diets: []string{
			"Iron-rich foods",
			"Vitamin K rich foods",
			"B-complex vitamins",
			"Stay hydrated",
			"Include protein-rich foods",
		},
	},
	"constipation": {
		Disease:     "Chronic Constipation",
		Description: "Infrequent bowel movements or difficulty passing stools, often due to diet, lifestyle, or medical conditions.",
		Precautions: []string{
			"Increase fiber intake",
			"Stay hydrated",
			"Exercise regularly",
			"Establish regular bathroom routine",
			"Avoid ignoring the urge",
		},
		Medications: []string{
			"Fiber supplements (psyllium)",
			"Stool softeners (docusate)",
			"Osmotic laxatives",
			"Probiotics",
			"Magnesium supplements",
		},
		Workouts: []string{
			"Regular walking",
			"Abdominal exercises",
			"Yoga and stretching",
			"Core strengthening",
			"Gentle aerobic exercise",
		},
		Diets: []string{
			"High-fiber foods",
			"Plenty of water",
			"Prunes and dried fruits",
			"Whole grains",
			"Vegetables and fruits",
		},
	},
	"diarrhea": {
		Disease:     "Acute Diarrhea",
		Description: "Frequent, loose, watery stools often caused by infection, food poisoning, or dietary changes.",
		Precautions: []string{
			"Stay hydrated",
			"Practice good hygiene",
			"Avoid dairy and fatty foods",
			"Rest and avoid stress",
			"Monitor for dehydration",
		},
		Medications: []string{
			"Oral rehydration solutions",
			"Loperamide 2-4mg as needed",
			"Bismuth subsalicylate",
			"Probiotics",
			"Zinc supplements",
		},
		Workouts: []string{
			"Rest during acute phase",
			"Light walking when feeling better",
			"Gentle stretching",
			"Avoid strenuous exercise",
			"Gradual return to activity",
		},
		Diets: []string{
			"BRAT diet (bananas, rice, applesauce, toast)",
			"Clear fluids",
			"Small, frequent meals",
			"Avoid dairy and fatty foods",
			"Include probiotics",
		},
	},
	"vomiting": {
		Disease:     "Gastroenteritis",
		Description: "Inflammation of the stomach and intestines, often caused by viral or bacterial infection.",
		Precautions: []string{
			"Stay hydrated",
			"Rest",
			"Practice good hygiene",
			"Avoid solid foods initially",
			"Monitor for dehydration",
		},
		Medications: []string{
			"Oral rehydration solutions",
			"Antiemetics if prescribed",
			"Bismuth subsalicylate",
			"Probiotics",
			"Zinc supplements",
		},
		Workouts: []string{
			"Complete rest during acute phase",
			"Light walking when feeling better",
			"Gentle stretching",
			"Avoid strenuous exercise",
			"Gradual return to activity",
		},
		Diets: []string{
			"Clear fluids initially",
			"BRAT diet when tolerated",
			"Small, frequent meals",
			"Avoid dairy and fatty foods",
			"Include probiotics",
		},
	},
	"heartburn": {
		Disease:     "Gastroesophageal Reflux Disease (GERD)",
		Description: "Chronic acid reflux causing heartburn, regurgitation, and other symptoms due to stomach acid flowing back into the esophagus.",
		Precautions: []string{
			"Eat smaller, frequent meals",
			"Avoid lying down after eating",
			"Elevate head of bed",
			"Avoid trigger foods",
			"Maintain healthy weight",
		},
		Medications: []string{
			"Antacids (calcium carbonate)",
			"H2 blockers (ranitidine 150mg)",
			"Proton pump inhibitors (omeprazole 20mg)",
			"Alginates",
			"Prokinetics if prescribed",
		},
		Workouts: []string{
			"Light walking after meals",
			"Gentle exercises",
			"Avoid intense exercise after eating",
			"Yoga and stretching",
			"Core strengthening",
		},
		Diets: []string{
			"Avoid trigger foods (spicy, fatty, acidic)",
			"Eat smaller meals",
			"Don't eat before bedtime",
			"Include alkaline foods",
			"Stay hydrated",
		},
	},
	"acid reflux": {
		Disease:     "Gastroesophageal Reflux Disease (GERD)",
		Description: "Chronic condition where stomach acid flows back into the esophagus, causing heartburn and other symptoms.",
		Precautions: []string{
			"Eat smaller, frequent meals",
			"Avoid lying down after eating",
			"Elevate head of bed",
			"Avoid trigger foods",
			"Maintain healthy weight",
		},
		Medications: []string{
			"Antacids (calcium carbonate)",
			"H2 blockers (ranitidine 150mg)",
			"Proton pump inhibitors (omeprazole 20mg)",
			"Alginates",
			"Prokinetics if prescribed",
		},
		Workouts: []string{
			"Light walking after meals",
			"Gentle exercises",
			"Avoid intense exercise after eating",
			"Yoga and stretching",
			"Core strengthening",
		},
		Diets: []string{
			"Avoid trigger foods (spicy, fatty, acidic)",
			"Eat smaller meals",
			"Don't eat before bedtime",
			"Include alkaline foods",
			"Stay hydrated",
		},
	},
	"bloating": {
		Disease:     "Functional Dyspepsia",
		Description: "Chronic indigestion and bloating without an identifiable cause, often related to diet and lifestyle factors.",
		Precautions: []string{
			"Eat slowly and chew thoroughly",
			"Avoid carbonated beverages",
			"Identify and avoid trigger foods",
			"Manage stress",
			"Exercise regularly",
		},
		Medications: []string{
			"Simethicone for gas relief",
			"Probiotics",
			"Digestive enzymes",
			"Peppermint oil capsules",
			"Ginger supplements",
		},
		Workouts: []string{
			"Light walking after meals",
			"Gentle abdominal exercises",
			"Yoga and stretching",
			"Deep breathing exercises",
			"Regular aerobic exercise",
		},
		Diets: []string{
			"Small, frequent meals",
			"Avoid gas-producing foods",
			"Include probiotics",
			"Stay hydrated",
			"Limit processed foods",
		},
	},
	"gas": {
		Disease:     "Excessive Gas",
		Description: "Increased production of gas in the digestive system, causing bloating, belching, and flatulence.",
		Precautions: []string{
			"Eat slowly and chew thoroughly",
			"Avoid carbonated beverages",
			"Identify and avoid trigger foods",
			"Exercise regularly",
			"Manage stress",
		},
		Medications: []string{
			"Simethicone for gas relief",
			"Activated charcoal",
			"Probiotics",
			"Digestive enzymes",
			"Peppermint oil capsules",
		},
		Workouts: []string{
			"Light walking after meals",
			"Gentle abdominal exercises",
			"Yoga and stretching",
			"Deep breathing exercises",
			"Regular aerobic exercise",
		},
		Diets: []string{
			"Small, frequent meals",
			"Avoid gas-producing foods",
			"Include probiotics",
			"Stay hydrated",
			"Limit processed foods",
		},
	},
}

// Lookup returns the static prediction for a single symptom key.
func Lookup(key string) (Prediction, bool) {
	p, ok := predictions[key]
	return p, ok
}
