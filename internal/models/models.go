package models

import "time"

// Level classifies lessons and cards by learner stage
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// PartOfSpeech is the grammatical class assigned to a vocabulary word
type PartOfSpeech string

const (
	PartNoun         PartOfSpeech = "noun"
	PartVerb         PartOfSpeech = "verb"
	PartAdjective    PartOfSpeech = "adjective"
	PartAdverb       PartOfSpeech = "adverb"
	PartInterjection PartOfSpeech = "interjection"
)

// Word is a single vocabulary flashcard entry
type Word struct {
	ID            string       `json:"id"`
	Word          string       `json:"word"`
	Translation   string       `json:"translation"`
	Pronunciation string       `json:"pronunciation"`
	AudioURL      string       `json:"audioUrl"`
	PartOfSpeech  PartOfSpeech `json:"partOfSpeech"`
	Definition    string       `json:"definition"`
	Synonyms      []string     `json:"synonyms"`
	Level         Level        `json:"level"`
	Category      string       `json:"category"`
}

// Phrase is a single phrase flashcard entry
type Phrase struct {
	ID            string `json:"id"`
	Phrase        string `json:"phrase"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation"`
	AudioURL      string `json:"audioUrl"`
	Context       string `json:"context"`
	Level         Level  `json:"level"`
	Category      string `json:"category"`
}

// LessonTemplate is the static, precomputed descriptor for one lesson in the
// curriculum. Templates are created once by the planner and never mutated.
type LessonTemplate struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       Level    `json:"level"`
	WeekNumber  int      `json:"weekNumber"`
	MonthNumber int      `json:"monthNumber"`
	Category    string   `json:"category"`
	WordCount   int      `json:"wordCount"`
	PhraseCount int      `json:"phraseCount"`
	Topics      []string `json:"topics"`
	Difficulty  int      `json:"difficulty"` // 1-10
}

// Lesson is the runtime view of a lesson: template data plus the loaded card
// deck and the learner's position in it. Invariant: CompletedCards <= TotalCards.
type Lesson struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Level          Level  `json:"level"`
	WeekNumber     int    `json:"weekNumber"`
	Cards          []Card `json:"cards"`
	TotalCards     int    `json:"totalCards"`
	CompletedCards int    `json:"completedCards"`
	PhrasesCount   int    `json:"phrasesCount"`
	WordsCount     int    `json:"wordsCount"`
	IsLocked       bool   `json:"isLocked"`
}

// Clone returns a deep copy of the lesson, including its card deck
func (l Lesson) Clone() Lesson {
	out := l
	if l.Cards != nil {
		out.Cards = make([]Card, len(l.Cards))
		copy(out.Cards, l.Cards)
	}
	return out
}

// LessonProgress is one learner's progress record for one lesson.
// UnlockedAt is stamped on first creation and preserved on later updates.
type LessonProgress struct {
	LessonID       string    `json:"lessonId"`
	Completed      bool      `json:"completed"`
	Score          int       `json:"score"`
	CardsCompleted int       `json:"cardsCompleted"`
	TotalCards     int       `json:"totalCards"`
	UnlockedAt     time.Time `json:"unlockedAt,omitempty"`
	LastAccessedAt time.Time `json:"lastAccessedAt,omitempty"`
}

// UserProgress aggregates a learner's activity across all lessons and cards.
// The learned/favorite collections are sets: adds are idempotent.
type UserProgress struct {
	StreakDays       int       `json:"streakDays"`
	LastActiveDate   time.Time `json:"lastActiveDate"`
	WordsLearned     []string  `json:"wordsLearned"`
	PhrasesLearned   []string  `json:"phrasesLearned"`
	Favorites        []string  `json:"favorites"`
	DailyGoal        int       `json:"dailyGoal"`
	CompletedLessons []string  `json:"completedLessons"`
}

// Clone returns a deep copy of the progress record
func (p UserProgress) Clone() UserProgress {
	out := p
	out.WordsLearned = cloneStrings(p.WordsLearned)
	out.PhrasesLearned = cloneStrings(p.PhrasesLearned)
	out.Favorites = cloneStrings(p.Favorites)
	out.CompletedLessons = cloneStrings(p.CompletedLessons)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
