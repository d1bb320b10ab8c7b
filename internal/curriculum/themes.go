package curriculum

// weeklyTheme defines one week's pair of lesson slots: each slot carries its
// own title, description, and topic seeds, and both share the category.
type weeklyTheme struct {
	category           string
	lesson1Title       string
	lesson1Description string
	lesson1Topics      []string
	lesson2Title       string
	lesson2Description string
	lesson2Topics      []string
}

var beginnerThemes = []weeklyTheme{
	{
		category:           "Foundation",
		lesson1Title:       "basics & greetings",
		lesson1Description: "start here",
		lesson1Topics:      []string{"hello", "goodbye", "please", "thank you", "yes", "no"},
		lesson2Title:       "numbers 1-10",
		lesson2Description: "count it out",
		lesson2Topics:      []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"},
	},
	{
		category:           "People",
		lesson1Title:       "family members",
		lesson1Description: "meet the family",
		lesson1Topics:      []string{"mother", "father", "sister", "brother", "grandmother", "grandfather"},
		lesson2Title:       "body parts",
		lesson2Description: "head to toe",
		lesson2Topics:      []string{"head", "eyes", "nose", "mouth", "hands", "feet", "arms", "legs"},
	},
	{
		category:           "Daily Life",
		lesson1Title:       "home & rooms",
		lesson1Description: "where you live",
		lesson1Topics:      []string{"house", "bedroom", "kitchen", "bathroom", "living room", "door", "window"},
		lesson2Title:       "furniture",
		lesson2Description: "fill your home",
		lesson2Topics:      []string{"table", "chair", "bed", "sofa", "desk", "lamp", "shelf"},
	},
	{
		category:           "Food",
		lesson1Title:       "food basics",
		lesson1Description: "time to eat",
		lesson1Topics:      []string{"bread", "water", "milk", "coffee", "tea", "apple", "banana", "rice"},
		lesson2Title:       "meals & eating",
		lesson2Description: "breakfast lunch dinner",
		lesson2Topics:      []string{"breakfast", "lunch", "dinner", "hungry", "thirsty", "delicious"},
	},
	{
		category:           "Daily Life",
		lesson1Title:       "clothing",
		lesson1Description: "what to wear",
		lesson1Topics:      []string{"shirt", "pants", "dress", "shoes", "hat", "jacket", "socks"},
		lesson2Title:       "weather",
		lesson2Description: "sun rain snow",
		lesson2Topics:      []string{"sunny", "rainy", "cloudy", "hot", "cold", "warm", "windy"},
	},
	{
		category:           "Time",
		lesson1Title:       "telling time",
		lesson1Description: "what time is it",
		lesson1Topics:      []string{"hour", "minute", "morning", "afternoon", "evening", "night", "oclock"},
		lesson2Title:       "days of week",
		lesson2Description: "monday to sunday",
		lesson2Topics:      []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	},
	{
		category:           "Time",
		lesson1Title:       "months & seasons",
		lesson1Description: "year round",
		lesson1Topics:      []string{"January", "February", "March", "spring", "summer", "autumn", "winter"},
		lesson2Title:       "daily activities",
		lesson2Description: "what you do",
		lesson2Topics:      []string{"wake up", "sleep", "eat", "drink", "walk", "run", "read", "write"},
	},
	{
		category:           "Places",
		lesson1Title:       "places in town",
		lesson1Description: "around the city",
		lesson1Topics:      []string{"restaurant", "shop", "bank", "hospital", "school", "park", "station"},
		lesson2Title:       "basic directions",
		lesson2Description: "find your way",
		lesson2Topics:      []string{"left", "right", "straight", "near", "far", "here", "there"},
	},
	{
		category:           "Nature",
		lesson1Title:       "animals",
		lesson1Description: "wild and domestic",
		lesson1Topics:      []string{"dog", "cat", "bird", "fish", "lion", "elephant", "horse", "cow"},
		lesson2Title:       "nature",
		lesson2Description: "outdoors",
		lesson2Topics:      []string{"tree", "flower", "grass", "mountain", "river", "sea", "sky", "sun"},
	},
	{
		category:           "Emotions",
		lesson1Title:       "feelings & emotions",
		lesson1Description: "how you feel",
		lesson1Topics:      []string{"happy", "sad", "angry", "scared", "excited", "tired", "bored"},
		lesson2Title:       "describing things",
		lesson2Description: "big small good bad",
		lesson2Topics:      []string{"big", "small", "tall", "short", "long", "new", "old", "beautiful"},
	},
	{
		category:           "Foundation",
		lesson1Title:       "numbers 11-100",
		lesson1Description: "count higher",
		lesson1Topics:      []string{"eleven", "twenty", "thirty", "forty", "fifty", "hundred"},
		lesson2Title:       "shopping basics",
		lesson2Description: "buying things",
		lesson2Topics:      []string{"buy", "sell", "price", "money", "expensive", "cheap", "pay"},
	},
	{
		category:           "Leisure",
		lesson1Title:       "hobbies & interests",
		lesson1Description: "what you like",
		lesson1Topics:      []string{"music", "sports", "reading", "cooking", "dancing", "painting"},
		lesson2Title:       "sports",
		lesson2Description: "play and watch",
		lesson2Topics:      []string{"football", "basketball", "tennis", "swimming", "running", "cycling"},
	},
}

var intermediateThemes = []weeklyTheme{
	{
		category:           "Grammar",
		lesson1Title:       "present tense verbs",
		lesson1Description: "actions now",
		lesson1Topics:      []string{"I am", "you are", "he is", "she is", "we are", "they are"},
		lesson2Title:       "asking questions",
		lesson2Description: "who what where",
		lesson2Topics:      []string{"who", "what", "where", "when", "why", "how"},
	},
	{
		category:           "Food",
		lesson1Title:       "at the restaurant",
		lesson1Description: "ordering food",
		lesson1Topics:      []string{"menu", "order", "waiter", "bill", "tip", "reservation"},
		lesson2Title:       "cooking",
		lesson2Description: "in the kitchen",
		lesson2Topics:      []string{"cook", "boil", "fry", "bake", "chop", "mix", "recipe"},
	},
	{
		category:           "Travel",
		lesson1Title:       "transportation",
		lesson1Description: "getting around",
		lesson1Topics:      []string{"bus", "train", "subway", "taxi", "traffic", "route"},
		lesson2Title:       "travel planning",
		lesson2Description: "plan your trip",
		lesson2Topics:      []string{"ticket", "booking", "itinerary", "passport", "visa", "luggage"},
	},
	{
		category:           "Health",
		lesson1Title:       "health & body",
		lesson1Description: "wellness vocabulary",
		lesson1Topics:      []string{"healthy", "pain", "fever", "doctor", "medicine", "symptom"},
		lesson2Title:       "medical situations",
		lesson2Description: "at the clinic",
		lesson2Topics:      []string{"appointment", "prescription", "allergy", "emergency", "hospital", "treatment"},
	},
	{
		category:           "Education",
		lesson1Title:       "study skills",
		lesson1Description: "learning language",
		lesson1Topics:      []string{"class", "homework", "exam", "subject", "grade", "project"},
		lesson2Title:       "academic conversations",
		lesson2Description: "school and university",
		lesson2Topics:      []string{"lecture", "research", "assignment", "deadline", "presentation", "discussion"},
	},
	{
		category:           "Work",
		lesson1Title:       "office communication",
		lesson1Description: "professional basics",
		lesson1Topics:      []string{"meeting", "colleague", "manager", "report", "schedule", "task"},
		lesson2Title:       "career development",
		lesson2Description: "growing at work",
		lesson2Topics:      []string{"interview", "promotion", "salary", "skills", "experience", "goal"},
	},
	{
		category:           "Technology",
		lesson1Title:       "digital life",
		lesson1Description: "tech vocabulary",
		lesson1Topics:      []string{"computer", "phone", "app", "internet", "browser", "download"},
		lesson2Title:       "online communication",
		lesson2Description: "email and messaging",
		lesson2Topics:      []string{"email", "attachment", "password", "privacy", "notification", "settings"},
	},
	{
		category:           "Conversation",
		lesson1Title:       "opinions & debates",
		lesson1Description: "express your views",
		lesson1Topics:      []string{"opinion", "agree", "disagree", "reason", "evidence", "conclusion"},
		lesson2Title:       "social interactions",
		lesson2Description: "deeper conversations",
		lesson2Topics:      []string{"advice", "suggestion", "compliment", "apology", "invitation", "response"},
	},
}

var advancedThemes = []weeklyTheme{
	{
		category:           "Grammar Mastery",
		lesson1Title:       "complex sentences",
		lesson1Description: "advanced structures",
		lesson1Topics:      []string{"conditionals", "subjunctive", "relative clauses", "passive voice", "nuance"},
		lesson2Title:       "register & style",
		lesson2Description: "formal and informal tone",
		lesson2Topics:      []string{"register", "tone", "politeness", "rhetoric", "style"},
	},
	{
		category:           "Business",
		lesson1Title:       "business communication",
		lesson1Description: "professional fluency",
		lesson1Topics:      []string{"negotiation", "strategy", "stakeholder", "proposal", "contract", "revenue"},
		lesson2Title:       "leadership language",
		lesson2Description: "influence and clarity",
		lesson2Topics:      []string{"leadership", "decision", "feedback", "alignment", "priority", "vision"},
	},
	{
		category:           "Media",
		lesson1Title:       "news and analysis",
		lesson1Description: "current events",
		lesson1Topics:      []string{"headline", "report", "bias", "analysis", "source", "fact-check"},
		lesson2Title:       "public communication",
		lesson2Description: "speeches and arguments",
		lesson2Topics:      []string{"speech", "argument", "persuasion", "counterpoint", "audience", "impact"},
	},
	{
		category:           "Culture",
		lesson1Title:       "literature and arts",
		lesson1Description: "cultural expression",
		lesson1Topics:      []string{"novel", "poetry", "metaphor", "symbolism", "genre", "critique"},
		lesson2Title:       "society and values",
		lesson2Description: "culture in context",
		lesson2Topics:      []string{"tradition", "identity", "ethics", "norms", "values", "heritage"},
	},
	{
		category:           "Civics",
		lesson1Title:       "politics and policy",
		lesson1Description: "institutional language",
		lesson1Topics:      []string{"policy", "election", "legislation", "governance", "rights", "justice"},
		lesson2Title:       "global issues",
		lesson2Description: "international topics",
		lesson2Topics:      []string{"diplomacy", "conflict", "migration", "economy", "cooperation", "security"},
	},
	{
		category:           "Environment",
		lesson1Title:       "climate and science",
		lesson1Description: "technical discussion",
		lesson1Topics:      []string{"climate", "emissions", "ecosystem", "renewable", "sustainability", "policy"},
		lesson2Title:       "problem solving",
		lesson2Description: "solutions language",
		lesson2Topics:      []string{"trade-off", "impact", "feasibility", "implementation", "measurement", "outcome"},
	},
	{
		category:           "Fluency",
		lesson1Title:       "idioms and expressions",
		lesson1Description: "natural sounding language",
		lesson1Topics:      []string{"idiom", "collocation", "expression", "humor", "slang", "context"},
		lesson2Title:       "storytelling mastery",
		lesson2Description: "speak with confidence",
		lesson2Topics:      []string{"narrative", "transition", "emphasis", "pacing", "clarity", "engagement"},
	},
	{
		category:           "Mastery",
		lesson1Title:       "precision and nuance",
		lesson1Description: "subtle meaning control",
		lesson1Topics:      []string{"nuance", "connotation", "implication", "tone shift", "brevity", "accuracy"},
		lesson2Title:       "advanced conversation",
		lesson2Description: "high-level fluency",
		lesson2Topics:      []string{"debate", "interview", "negotiation", "reflection", "synthesis", "fluency"},
	},
}
