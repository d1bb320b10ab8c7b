package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lingoswipe/internal/models"
)

const (
	lessonsKeyPrefix     = "cached_lessons_"
	lessonCardsKeyPrefix = "cached_lesson_cards_"
	userProgressKey      = "cached_user_progress"
	lastSyncKey          = "last_sync_time"
	cachedKeyPrefix      = "cached_"
)

// Service provides typed access to the cache over a raw Storage backend.
// Corrupt entries are treated as cache misses, never as hard errors.
type Service struct {
	storage Storage
}

// NewService creates a cache service over the given storage
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// CacheLessons stores the lesson list for a language
func (s *Service) CacheLessons(ctx context.Context, languageID string, lessons []models.Lesson) error {
	return s.put(ctx, lessonsKeyPrefix+languageID, lessons)
}

// CachedLessons returns the cached lesson list for a language, or ok=false
// on a miss
func (s *Service) CachedLessons(ctx context.Context, languageID string) ([]models.Lesson, bool) {
	var lessons []models.Lesson
	if !s.get(ctx, lessonsKeyPrefix+languageID, &lessons) {
		return nil, false
	}
	return lessons, true
}

// CacheLessonCards stores a generated card deck for one lesson
func (s *Service) CacheLessonCards(ctx context.Context, languageID, lessonID string, cards []models.Card) error {
	return s.put(ctx, lessonCardsKey(languageID, lessonID), cards)
}

// CachedLessonCards returns the cached deck for one lesson, or ok=false on
// a miss
func (s *Service) CachedLessonCards(ctx context.Context, languageID, lessonID string) ([]models.Card, bool) {
	var cards []models.Card
	if !s.get(ctx, lessonCardsKey(languageID, lessonID), &cards) {
		return nil, false
	}
	return cards, true
}

// CacheUserProgress stores the user's progress snapshot
func (s *Service) CacheUserProgress(ctx context.Context, progress models.UserProgress) error {
	return s.put(ctx, userProgressKey, progress)
}

// CachedUserProgress returns the cached progress snapshot, or ok=false on a
// miss
func (s *Service) CachedUserProgress(ctx context.Context) (models.UserProgress, bool) {
	var progress models.UserProgress
	if !s.get(ctx, userProgressKey, &progress) {
		return models.UserProgress{}, false
	}
	return progress, true
}

// SetLastSyncTime records when the cache last synchronized with the remote
// store
func (s *Service) SetLastSyncTime(ctx context.Context, t time.Time) error {
	return s.storage.Set(ctx, lastSyncKey, t.UTC().Format(time.RFC3339))
}

// LastSyncTime returns the recorded sync time, or ok=false when none was
// recorded or the entry is unreadable
func (s *Service) LastSyncTime(ctx context.Context) (time.Time, bool) {
	raw, ok, err := s.storage.Get(ctx, lastSyncKey)
	if err != nil || !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		log.Printf("Discarding unreadable sync timestamp %q: %v", raw, err)
		return time.Time{}, false
	}
	return t, true
}

// ClearCache removes every cached content entry. The sync timestamp is kept.
func (s *Service) ClearCache(ctx context.Context) error {
	keys, err := s.storage.Keys(ctx, cachedKeyPrefix)
	if err != nil {
		return fmt.Errorf("failed to list cache keys: %w", err)
	}
	for _, key := range keys {
		if err := s.storage.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) put(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}
	return s.storage.Set(ctx, key, string(data))
}

// get loads and decodes an entry. Read failures and corrupt payloads count
// as misses.
func (s *Service) get(ctx context.Context, key string, out interface{}) bool {
	raw, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		log.Printf("Cache read failed for %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("Discarding corrupt cache entry %s: %v", key, err)
		return false
	}
	return true
}

func lessonCardsKey(languageID, lessonID string) string {
	return lessonCardsKeyPrefix + languageID + "_" + lessonID
}
