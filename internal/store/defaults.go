package store

import (
	"time"

	"lingoswipe/internal/audio"
	"lingoswipe/internal/models"
)

// Bundled fallback content, served when both the cache and the remote store
// come up empty. Deck ids here are stable and referenced by saved progress,
// so they must not change.

var defaultTTS = audio.NewTranslateTTS()

var defaultWords = []models.Word{
	{
		ID:            "w1",
		Word:          "serenity",
		Translation:   "serenidad",
		Pronunciation: "/səˈrenəti/",
		AudioURL:      defaultTTS.AudioURL("serenity", "en"),
		PartOfSpeech:  models.PartNoun,
		Definition:    "the state of being calm, peaceful, and untroubled.",
		Synonyms:      []string{"calm", "quietness", "tranquillity", "peace"},
		Level:         models.LevelBeginner,
		Category:      "emotions",
	},
	{
		ID:            "w2",
		Word:          "hello",
		Translation:   "hola",
		Pronunciation: "/həˈloʊ/",
		AudioURL:      defaultTTS.AudioURL("hello", "en"),
		PartOfSpeech:  models.PartInterjection,
		Definition:    "used as a greeting or to begin a conversation.",
		Synonyms:      []string{"hi", "hey", "greetings"},
		Level:         models.LevelBeginner,
		Category:      "greetings",
	},
	{
		ID:            "w3",
		Word:          "beautiful",
		Translation:   "hermoso",
		Pronunciation: "/ˈbjuːtɪfəl/",
		AudioURL:      defaultTTS.AudioURL("beautiful", "en"),
		PartOfSpeech:  models.PartAdjective,
		Definition:    "pleasing the senses or mind aesthetically.",
		Synonyms:      []string{"gorgeous", "stunning", "lovely"},
		Level:         models.LevelBeginner,
		Category:      "descriptions",
	},
	{
		ID:            "w4",
		Word:          "gratitude",
		Translation:   "gratitud",
		Pronunciation: "/ˈɡrætɪtuːd/",
		AudioURL:      defaultTTS.AudioURL("gratitude", "en"),
		PartOfSpeech:  models.PartNoun,
		Definition:    "the quality of being thankful; readiness to show appreciation.",
		Synonyms:      []string{"thankfulness", "appreciation", "thanks"},
		Level:         models.LevelBeginner,
		Category:      "emotions",
	},
}

var defaultPhrases = []models.Phrase{
	{
		ID:            "p1",
		Phrase:        "How are you?",
		Translation:   "¿Cómo estás?",
		Pronunciation: "/haʊ ɑːr juː/",
		AudioURL:      defaultTTS.AudioURL("How are you?", "en"),
		Context:       "Casual greeting used among friends and acquaintances.",
		Level:         models.LevelBeginner,
		Category:      "greetings",
	},
	{
		ID:            "p2",
		Phrase:        "Good morning",
		Translation:   "Buenos días",
		Pronunciation: "/ɡʊd ˈmɔːrnɪŋ/",
		AudioURL:      defaultTTS.AudioURL("Good morning", "en"),
		Context:       "Greeting used before noon.",
		Level:         models.LevelBeginner,
		Category:      "greetings",
	},
	{
		ID:            "p3",
		Phrase:        "Thank you very much",
		Translation:   "Muchas gracias",
		Pronunciation: "/θæŋk juː ˈveri mʌtʃ/",
		AudioURL:      defaultTTS.AudioURL("Thank you very much", "en"),
		Context:       "Expression of gratitude.",
		Level:         models.LevelBeginner,
		Category:      "courtesy",
	},
	{
		ID:            "p4",
		Phrase:        "Have a nice day",
		Translation:   "Que tengas un buen día",
		Pronunciation: "/hæv ə naɪs deɪ/",
		AudioURL:      defaultTTS.AudioURL("Have a nice day", "en"),
		Context:       "Friendly parting expression.",
		Level:         models.LevelBeginner,
		Category:      "greetings",
	},
}

// defaultCards interleaves the bundled words and phrases into one deck
func defaultCards() []models.Card {
	cards := make([]models.Card, 0, len(defaultWords)+len(defaultPhrases))
	for i := 0; i < len(defaultWords) || i < len(defaultPhrases); i++ {
		if i < len(defaultWords) {
			cards = append(cards, models.WordCard(defaultWords[i]))
		}
		if i < len(defaultPhrases) {
			cards = append(cards, models.PhraseCard(defaultPhrases[i]))
		}
	}
	return cards
}

// defaultLessons returns a fresh copy of the bundled lesson set. Only the
// first lesson ships with cards.
func defaultLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID:           "lesson1",
			Title:        "pronunciation",
			Description:  "continue",
			Level:        models.LevelBeginner,
			WeekNumber:   1,
			Cards:        defaultCards(),
			TotalCards:   8,
			PhrasesCount: 4,
			WordsCount:   4,
		},
		{
			ID:           "lesson2",
			Title:        "listening",
			Description:  "3 podcasts",
			Level:        models.LevelBeginner,
			WeekNumber:   1,
			Cards:        []models.Card{},
			PhrasesCount: 3,
			IsLocked:     true,
		},
		{
			ID:           "lesson3",
			Title:        "vocabulary",
			Description:  "7 topics",
			Level:        models.LevelBeginner,
			WeekNumber:   1,
			Cards:        []models.Card{},
			TotalCards:   56,
			WordsCount:   56,
			IsLocked:     true,
		},
		{
			ID:           "lesson4",
			Title:        "pronunciation",
			Description:  "Week 2 content",
			Level:        models.LevelBeginner,
			WeekNumber:   2,
			Cards:        []models.Card{},
			TotalCards:   40,
			PhrasesCount: 20,
			WordsCount:   40,
			IsLocked:     true,
		},
		{
			ID:           "lesson5",
			Title:        "listening",
			Description:  "Week 2 podcasts",
			Level:        models.LevelBeginner,
			WeekNumber:   2,
			Cards:        []models.Card{},
			PhrasesCount: 5,
			IsLocked:     true,
		},
	}
}

// defaultUserProgress is the state a brand-new learner starts from
func defaultUserProgress(now time.Time) models.UserProgress {
	return models.UserProgress{
		StreakDays:       5,
		LastActiveDate:   now,
		WordsLearned:     []string{},
		PhrasesLearned:   []string{},
		Favorites:        []string{},
		DailyGoal:        20,
		CompletedLessons: []string{},
	}
}
