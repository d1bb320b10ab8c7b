// Package remote reads and writes the shared content database: languages,
// words, phrases, lesson definitions, and per-user progress. The local cache
// sits in front of it; callers treat remote failures as degradation, not
// fatal errors.
package remote

import (
	"context"

	"lingoswipe/internal/models"
)

// Store is the remote content and progress backend
type Store interface {
	// Lessons returns every lesson for a language, ordered by week then title.
	// No rows is an empty slice, not an error.
	Lessons(ctx context.Context, languageID string) ([]models.Lesson, error)

	// LessonCards resolves a lesson's word and phrase id lists into cards,
	// words first. Ids that no longer resolve are skipped.
	LessonCards(ctx context.Context, languageID, lessonID string) ([]models.Card, error)

	// UserProgress returns a user's progress record, or nil when none exists
	UserProgress(ctx context.Context, userID string) (*models.UserProgress, error)

	// SaveUserProgress upserts a user's progress record
	SaveUserProgress(ctx context.Context, userID string, progress models.UserProgress) error

	// AddFavorite appends a card id to the user's favorites. A user with no
	// progress record yet, or an already-favorited card, is a no-op.
	AddFavorite(ctx context.Context, userID, cardID string) error

	// RemoveFavorite removes a card id from the user's favorites
	RemoveFavorite(ctx context.Context, userID, cardID string) error

	// Seeding upserts, used by the seed tool
	PutLanguage(ctx context.Context, id, name, code string) error
	PutWord(ctx context.Context, languageID string, word models.Word) error
	PutPhrase(ctx context.Context, languageID string, phrase models.Phrase) error
	PutLesson(ctx context.Context, languageID string, lesson models.Lesson, wordIDs, phraseIDs []string) error
}
