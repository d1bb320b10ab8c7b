package content

import "lingoswipe/internal/models"

// levelBank holds the hand-curated seed terms for one learner stage
type levelBank struct {
	common  []string
	phrases []string
}

// wordBank is the fixed source vocabulary the generator draws from. Requests
// beyond a bank's size are clamped to what the bank holds.
var wordBank = map[models.Level]levelBank{
	models.LevelBeginner: {
		common: []string{
			"hello", "goodbye", "please", "thank you", "yes", "no", "sorry",
			"excuse me", "water", "food", "house", "family", "friend", "today",
			"tomorrow", "happy", "sad", "hungry", "cold", "hot", "big", "small",
			"good", "bad", "man", "woman", "child", "cat", "dog", "book",
			"phone", "computer", "love", "want", "need", "know",
		},
		phrases: []string{
			"How are you?",
			"I am fine",
			"Nice to meet you",
			"What is your name?",
			"My name is...",
			"Where are you from?",
			"I am from...",
			"I do not understand",
			"Please speak slowly",
			"Can you help me?",
			"Where is the bathroom?",
			"How much is this?",
			"Do you speak English?",
			"I am learning",
			"Good luck",
			"See you later",
			"Have a good day",
			"Sleep well",
		},
	},
	models.LevelIntermediate: {
		common: []string{
			"beautiful", "important", "different", "possible", "necessary",
			"restaurant", "hospital", "library", "museum", "office",
			"breakfast", "lunch", "dinner", "coffee", "tea", "remember",
			"forget", "explain", "decide", "weather", "season", "healthy",
			"medicine", "vacation", "airport",
		},
		phrases: []string{
			"Could you repeat that?",
			"I agree with you",
			"I do not think so",
			"That is a good idea",
			"What do you think?",
			"In my opinion...",
			"I would recommend...",
			"It depends on...",
			"Can I try this on?",
			"What time does it open?",
			"How long does it take?",
			"I have a reservation",
			"Could you give me directions?",
			"Can I have the bill, please?",
		},
	},
	models.LevelAdvanced: {
		common: []string{
			"achievement", "opportunity", "responsibility", "environment",
			"experience", "relationship", "communication", "information",
			"situation", "development", "analyze", "evaluate", "consider",
			"determine", "influence", "innovation", "technology", "automation",
		},
		phrases: []string{
			"I could not agree more",
			"That is beside the point",
			"As far as I know...",
			"According to the research...",
			"Generally speaking...",
			"From my perspective...",
			"Taking everything into account...",
			"Would you mind if...",
			"I would appreciate it if...",
			"It goes without saying...",
			"The bottom line is...",
		},
	},
}

// seedWords returns up to count seed terms for the level
func seedWords(level models.Level, count int) []string {
	return clampBank(wordBank[level].common, count)
}

// seedPhrases returns up to count seed phrases for the level
func seedPhrases(level models.Level, count int) []string {
	return clampBank(wordBank[level].phrases, count)
}

func clampBank(bank []string, count int) []string {
	if count < 0 {
		count = 0
	}
	if count > len(bank) {
		count = len(bank)
	}
	return bank[:count]
}
