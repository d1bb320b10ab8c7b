// Package store is the app's state hub: it owns the lesson list, the current
// lesson, and the learner's progress, loading them cache-first with remote
// revalidation and falling back to bundled defaults when both are empty.
// Every mutation commits locally first; remote mirroring runs detached and
// best-effort, so no operation waits on the backend.
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"lingoswipe/internal/cache"
	"lingoswipe/internal/content"
	"lingoswipe/internal/models"
	"lingoswipe/internal/progression"
	"lingoswipe/internal/remote"
)

// backgroundTimeout bounds detached revalidation fetches
const backgroundTimeout = 10 * time.Second

// Store holds the application state. All state lives behind one mutex, so
// each operation is a single atomic snapshot transformation.
type Store struct {
	mu sync.Mutex

	cache       *cache.Service
	remote      remote.Store
	progression *progression.Service
	generator   *content.Generator
	clock       func() time.Time

	userID     string
	languageID string
	level      models.Level
	online     bool

	lessons        []models.Lesson
	currentLesson  *models.Lesson
	lessonProgress []models.LessonProgress
	userProgress   models.UserProgress

	// version is the freshness token: bumped on every lessons commit so a
	// stale background fetch never clobbers newer state
	version    uint64
	background sync.WaitGroup
}

// New creates a store over its backends
func New(cacheSvc *cache.Service, remoteStore remote.Store, progressionSvc *progression.Service, generator *content.Generator) *Store {
	now := time.Now
	return &Store{
		cache:        cacheSvc,
		remote:       remoteStore,
		progression:  progressionSvc,
		generator:    generator,
		clock:        now,
		languageID:   "spanish",
		level:        models.LevelBeginner,
		online:       true,
		userProgress: defaultUserProgress(now()),
	}
}

// SetUserID sets the active user identity
func (s *Store) SetUserID(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
}

// EnsureUser returns the active user id, minting an anonymous one when none
// is set
func (s *Store) EnsureUser() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		s.userID = uuid.NewString()
	}
	return s.userID
}

// SetLanguage selects the active learning language
func (s *Store) SetLanguage(languageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.languageID = languageID
}

// SetLevel selects the active learner level
func (s *Store) SetLevel(level models.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// SetOnline flips connectivity. Offline, reads skip the remote store and
// serve cache or defaults.
func (s *Store) SetOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = online
}

// UserID returns the active user id, empty when anonymous and unminted
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Language returns the active language id
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.languageID
}

// Level returns the active learner level
func (s *Store) Level() models.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Lessons returns a deep copy of the loaded lesson list
func (s *Store) Lessons() []models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLessons(s.lessons)
}

// CurrentLesson returns a copy of the lesson in play, or nil
func (s *Store) CurrentLesson() *models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentLesson == nil {
		return nil
	}
	out := s.currentLesson.Clone()
	return &out
}

// UserProgress returns a copy of the learner's aggregate progress
func (s *Store) UserProgress() models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userProgress.Clone()
}

// GetLessonProgress returns the progress record for one lesson
func (s *Store) GetLessonProgress(lessonID string) (models.LessonProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.lessonProgress {
		if p.LessonID == lessonID {
			return p, true
		}
	}
	return models.LessonProgress{}, false
}

// InitializeLessons builds the full lesson structure and generates the first
// lesson's deck, caching the result. Generation failure falls back to the
// bundled lesson set.
func (s *Store) InitializeLessons(ctx context.Context, languageID string) error {
	structure := s.progression.CreateLessonStructure()
	first := &structure[0]

	words, err := s.generator.GenerateWords(ctx, first.WordsCount, first.Level, languageID)
	if err == nil {
		var phrases []models.Phrase
		phrases, err = s.generator.GeneratePhrases(ctx, first.PhrasesCount, first.Level, languageID)
		if err == nil {
			cards := content.CombineAsCards(words, phrases)
			first.Cards = cards
			first.TotalCards = len(cards)
		}
	}
	if err != nil {
		log.Printf("Error initializing lessons: %v", err)
		s.commitLessons(defaultLessons())
		return err
	}

	if err := s.cache.CacheLessons(ctx, languageID, structure); err != nil {
		log.Printf("Failed to cache initialized lessons: %v", err)
	}
	s.commitLessons(structure)
	return nil
}

// LoadLessons loads the lesson list for a language. Cache hits are served
// immediately and revalidated in the background; otherwise the remote store
// is read, with the cache and finally the bundled defaults as fallbacks.
func (s *Store) LoadLessons(ctx context.Context, languageID string, forceRefresh bool) []models.Lesson {
	if !forceRefresh {
		if cached, ok := s.cache.CachedLessons(ctx, languageID); ok && len(cached) > 0 {
			token := s.commitLessons(cached)
			s.refreshLessons(languageID, token)
			return cloneLessons(cached)
		}
	}

	lessons, err := s.remoteLessons(ctx, languageID)
	if err != nil {
		log.Printf("Error loading lessons: %v", err)
		if cached, ok := s.cache.CachedLessons(ctx, languageID); ok && len(cached) > 0 {
			s.commitLessons(cached)
			return cloneLessons(cached)
		}
		fallback := defaultLessons()
		s.commitLessons(fallback)
		return fallback
	}

	if len(lessons) == 0 {
		lessons = defaultLessons()
	}
	if err := s.cache.CacheLessons(ctx, languageID, lessons); err != nil {
		log.Printf("Failed to cache lessons: %v", err)
	}
	if err := s.cache.SetLastSyncTime(ctx, s.clock()); err != nil {
		log.Printf("Failed to record sync time: %v", err)
	}
	s.commitLessons(lessons)
	return cloneLessons(lessons)
}

// LoadLessonCards loads one lesson's deck, cache-first with background
// revalidation. When neither the cache nor the remote store has cards, the
// deck is generated on demand and cached.
func (s *Store) LoadLessonCards(ctx context.Context, languageID, lessonID string, forceRefresh bool) *models.Lesson {
	lesson := s.lessonByID(lessonID)

	if !forceRefresh {
		if cached, ok := s.cache.CachedLessonCards(ctx, languageID, lessonID); ok && len(cached) > 0 {
			lesson.Cards = cached
			token := s.commitCurrentLesson(lesson)
			s.refreshLessonCards(languageID, lessonID, token)
			out := lesson.Clone()
			return &out
		}
	}

	cards, err := s.remoteLessonCards(ctx, languageID, lessonID)
	if err != nil {
		log.Printf("Error loading lesson cards: %v", err)
		if cached, ok := s.cache.CachedLessonCards(ctx, languageID, lessonID); ok && len(cached) > 0 {
			lesson.Cards = cached
			s.commitCurrentLesson(lesson)
			out := lesson.Clone()
			return &out
		}
		cards = nil
	}

	if len(cards) == 0 {
		cards = lesson.Cards
	}
	if len(cards) == 0 {
		cards, err = s.progression.GenerateLessonContent(ctx, lesson, languageID)
		if err != nil {
			log.Printf("Error generating fallback lesson cards: %v", err)
			s.commitCurrentLesson(lesson)
			out := lesson.Clone()
			return &out
		}
	}

	if err := s.cache.CacheLessonCards(ctx, languageID, lessonID, cards); err != nil {
		log.Printf("Failed to cache lesson cards: %v", err)
	}
	lesson.Cards = cards
	lesson.TotalCards = len(cards)
	s.commitCurrentLesson(lesson)
	out := lesson.Clone()
	return &out
}

// LoadUserProgress loads a user's progress, remote-first with the cache as
// fallback. A remote hit refreshes the cache.
func (s *Store) LoadUserProgress(ctx context.Context, userID string) {
	progress, err := s.remote.UserProgress(ctx, userID)
	if err != nil {
		log.Printf("Error loading user progress: %v", err)
	} else if progress != nil {
		if err := s.cache.CacheUserProgress(ctx, *progress); err != nil {
			log.Printf("Failed to cache user progress: %v", err)
		}
		s.mu.Lock()
		s.userProgress = progress.Clone()
		s.mu.Unlock()
		return
	}

	if cached, ok := s.cache.CachedUserProgress(ctx); ok {
		s.mu.Lock()
		s.userProgress = cached.Clone()
		s.mu.Unlock()
	}
}

// AddFavorite records a favorite card. Already-favorited cards are a no-op.
func (s *Store) AddFavorite(ctx context.Context, cardID string) {
	s.mu.Lock()
	for _, id := range s.userProgress.Favorites {
		if id == cardID {
			s.mu.Unlock()
			return
		}
	}
	s.userProgress.Favorites = append(s.userProgress.Favorites, cardID)
	progress := s.userProgress.Clone()
	userID := s.userID
	s.mu.Unlock()

	if userID != "" {
		s.mirrorFavorite(userID, cardID, true)
	}
	s.persistProgress(ctx, progress)
}

// RemoveFavorite removes a favorite card
func (s *Store) RemoveFavorite(ctx context.Context, cardID string) {
	s.mu.Lock()
	kept := s.userProgress.Favorites[:0]
	for _, id := range s.userProgress.Favorites {
		if id != cardID {
			kept = append(kept, id)
		}
	}
	s.userProgress.Favorites = kept
	progress := s.userProgress.Clone()
	userID := s.userID
	s.mu.Unlock()

	if userID != "" {
		s.mirrorFavorite(userID, cardID, false)
	}
	s.persistProgress(ctx, progress)
}

// MarkCardComplete records a learned card. Repeat completions of the same
// card do not grow the learned set.
func (s *Store) MarkCardComplete(ctx context.Context, cardID string) {
	s.mu.Lock()
	for _, id := range s.userProgress.WordsLearned {
		if id == cardID {
			s.mu.Unlock()
			return
		}
	}
	s.userProgress.WordsLearned = append(s.userProgress.WordsLearned, cardID)
	progress := s.userProgress.Clone()
	s.mu.Unlock()

	s.mirrorProgress(progress)
	s.persistProgress(ctx, progress)
}

// UpdateStreak advances the daily streak: consecutive days increment it, a
// gap resets it to 1, repeat calls on the same day leave it alone. The
// active date is stamped either way.
func (s *Store) UpdateStreak(ctx context.Context) {
	s.mu.Lock()
	now := s.clock()
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	lastActive := s.userProgress.LastActiveDate.Format("2006-01-02")

	switch lastActive {
	case yesterday:
		s.userProgress.StreakDays++
	case today:
		// already counted today
	default:
		s.userProgress.StreakDays = 1
	}
	s.userProgress.LastActiveDate = now
	progress := s.userProgress.Clone()
	s.mu.Unlock()

	s.mirrorProgress(progress)
	s.persistProgress(ctx, progress)
}

// CompleteCard advances the completed-card count of a lesson by one, clamped
// to the deck size, then recomputes the lesson's progress record, the
// completed-lessons set, and the lock state of every other lesson. An
// unknown lesson id is a no-op.
func (s *Store) CompleteCard(ctx context.Context, lessonID string) {
	s.mu.Lock()

	idx := -1
	for i := range s.lessons {
		if s.lessons[i].ID == lessonID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return
	}

	lesson := &s.lessons[idx]
	limit := lesson.TotalCards
	if limit < 1 {
		limit = 1
	}
	if lesson.CompletedCards < limit {
		lesson.CompletedCards++
	}

	completed := progression.IsLessonCompleted(lesson.CompletedCards, lesson.TotalCards)
	score := progression.CalculateScore(lesson.CompletedCards, limit, 0)

	now := s.clock()
	next := models.LessonProgress{
		LessonID:       lessonID,
		Completed:      completed,
		Score:          score,
		CardsCompleted: lesson.CompletedCards,
		TotalCards:     lesson.TotalCards,
		UnlockedAt:     now,
		LastAccessedAt: now,
	}
	updated := false
	for i, p := range s.lessonProgress {
		if p.LessonID == lessonID {
			if !p.UnlockedAt.IsZero() {
				next.UnlockedAt = p.UnlockedAt
			}
			s.lessonProgress[i] = next
			updated = true
			break
		}
	}
	if !updated {
		s.lessonProgress = append(s.lessonProgress, next)
	}

	completedLessons := []string{}
	for _, p := range s.lessonProgress {
		if p.Completed {
			completedLessons = append(completedLessons, p.LessonID)
		}
	}
	s.userProgress.CompletedLessons = completedLessons

	s.unlockEligibleLocked()
	s.version++

	progress := s.userProgress.Clone()
	s.mu.Unlock()

	s.mirrorProgress(progress)
	s.persistProgress(ctx, progress)
}

// CheckAndUnlockLessons re-evaluates every locked lesson against the current
// progress records
func (s *Store) CheckAndUnlockLessons() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlockEligibleLocked()
	s.version++
}

// SyncProgress pushes the current progress to the remote store and refreshes
// the cache. Without a user id there is nothing to push.
func (s *Store) SyncProgress(ctx context.Context) error {
	s.mu.Lock()
	userID := s.userID
	progress := s.userProgress.Clone()
	s.mu.Unlock()

	if userID == "" {
		return nil
	}
	if err := s.remote.SaveUserProgress(ctx, userID, progress); err != nil {
		return err
	}
	if err := s.cache.CacheUserProgress(ctx, progress); err != nil {
		return err
	}
	return s.cache.SetLastSyncTime(ctx, s.clock())
}

// unlockEligibleLocked opens every locked lesson whose previous week has
// enough completions. Caller holds the mutex.
func (s *Store) unlockEligibleLocked() {
	for i := range s.lessons {
		if !s.lessons[i].IsLocked {
			continue
		}
		if s.progression.ShouldUnlockLesson(s.lessons[i], s.lessonProgress) {
			s.lessons[i].IsLocked = false
		}
	}
}

// lessonByID resolves a lesson from loaded state, then the bundled set, then
// the first bundled lesson as a last resort
func (s *Store) lessonByID(lessonID string) models.Lesson {
	s.mu.Lock()
	for _, lesson := range s.lessons {
		if lesson.ID == lessonID {
			s.mu.Unlock()
			return lesson.Clone()
		}
	}
	s.mu.Unlock()

	fallback := defaultLessons()
	for _, lesson := range fallback {
		if lesson.ID == lessonID {
			return lesson
		}
	}
	return fallback[0]
}

// commitLessons installs a new lesson list and bumps the freshness token,
// returning the token the commit produced
func (s *Store) commitLessons(lessons []models.Lesson) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = cloneLessons(lessons)
	s.version++
	return s.version
}

// commitCurrentLesson installs the lesson in play, updating its entry in the
// lesson list when present
func (s *Store) commitCurrentLesson(lesson models.Lesson) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := lesson.Clone()
	s.currentLesson = &current
	for i := range s.lessons {
		if s.lessons[i].ID == lesson.ID {
			s.lessons[i] = lesson.Clone()
			break
		}
	}
	s.version++
	return s.version
}

// refreshLessons revalidates the lesson list in the background. The result
// applies only while the freshness token still matches; any newer commit
// wins.
func (s *Store) refreshLessons(languageID string, token uint64) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		if !s.isOnline() {
			return
		}
		lessons, err := s.remote.Lessons(ctx, languageID)
		if err != nil {
			log.Printf("Background refresh lessons error: %v", err)
			return
		}
		if len(lessons) == 0 {
			return
		}
		if err := s.cache.CacheLessons(ctx, languageID, lessons); err != nil {
			log.Printf("Failed to cache refreshed lessons: %v", err)
		}
		if err := s.cache.SetLastSyncTime(ctx, s.clock()); err != nil {
			log.Printf("Failed to record sync time: %v", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.version != token {
			return
		}
		s.lessons = cloneLessons(lessons)
		s.version++
	}()
}

// refreshLessonCards revalidates one lesson's deck in the background under
// the same freshness-token rule
func (s *Store) refreshLessonCards(languageID, lessonID string, token uint64) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		if !s.isOnline() {
			return
		}
		cards, err := s.remote.LessonCards(ctx, languageID, lessonID)
		if err != nil {
			log.Printf("Background refresh lesson cards error: %v", err)
			return
		}
		if len(cards) == 0 {
			return
		}
		if err := s.cache.CacheLessonCards(ctx, languageID, lessonID, cards); err != nil {
			log.Printf("Failed to cache refreshed lesson cards: %v", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.version != token {
			return
		}
		if s.currentLesson != nil && s.currentLesson.ID == lessonID {
			s.currentLesson.Cards = append([]models.Card(nil), cards...)
			s.currentLesson.TotalCards = len(cards)
		}
		for i := range s.lessons {
			if s.lessons[i].ID == lessonID {
				s.lessons[i].Cards = append([]models.Card(nil), cards...)
				s.lessons[i].TotalCards = len(cards)
				break
			}
		}
		s.version++
	}()
}

// remoteLessons reads the lesson list from the remote store, honoring the
// offline flag
func (s *Store) remoteLessons(ctx context.Context, languageID string) ([]models.Lesson, error) {
	if !s.isOnline() {
		return nil, nil
	}
	return s.remote.Lessons(ctx, languageID)
}

// remoteLessonCards reads one deck from the remote store, honoring the
// offline flag
func (s *Store) remoteLessonCards(ctx context.Context, languageID, lessonID string) ([]models.Card, error) {
	if !s.isOnline() {
		return nil, nil
	}
	return s.remote.LessonCards(ctx, languageID, lessonID)
}

// mirrorProgress pushes progress to the remote store in the background. The
// mutation already committed locally, so the caller never waits on the
// round-trip; failures are logged.
func (s *Store) mirrorProgress(progress models.UserProgress) {
	userID := s.UserID()
	if userID == "" {
		return
	}
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		if err := s.remote.SaveUserProgress(ctx, userID, progress); err != nil {
			log.Printf("Failed to mirror user progress: %v", err)
		}
	}()
}

// mirrorFavorite pushes one favorite change to the remote store under the
// same no-wait rule as mirrorProgress
func (s *Store) mirrorFavorite(userID, cardID string, add bool) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		var err error
		if add {
			err = s.remote.AddFavorite(ctx, userID, cardID)
		} else {
			err = s.remote.RemoveFavorite(ctx, userID, cardID)
		}
		if err != nil {
			log.Printf("Failed to mirror favorite %s: %v", cardID, err)
		}
	}()
}

// persistProgress writes progress to the local cache best-effort
func (s *Store) persistProgress(ctx context.Context, progress models.UserProgress) {
	if err := s.cache.CacheUserProgress(ctx, progress); err != nil {
		log.Printf("Failed to cache user progress: %v", err)
	}
}

func (s *Store) isOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

func cloneLessons(lessons []models.Lesson) []models.Lesson {
	out := make([]models.Lesson, len(lessons))
	for i, lesson := range lessons {
		out[i] = lesson.Clone()
	}
	return out
}
