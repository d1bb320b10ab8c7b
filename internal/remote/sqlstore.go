package remote

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"lingoswipe/internal/database"
	"lingoswipe/internal/models"
)

// SQLStore implements Store over any database the dialect layer supports
type SQLStore struct {
	db *database.DB
}

// NewSQLStore creates a store over an open database connection
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

// schemaStatements uses only portable DDL: TEXT keys, INTEGER booleans,
// RFC3339 TEXT timestamps, JSON id lists in TEXT columns.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS languages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS words (
		id TEXT NOT NULL,
		language_id TEXT NOT NULL,
		word TEXT NOT NULL,
		translation TEXT NOT NULL,
		pronunciation TEXT NOT NULL,
		audio_url TEXT NOT NULL,
		part_of_speech TEXT NOT NULL,
		definition TEXT NOT NULL,
		synonyms TEXT NOT NULL,
		level TEXT NOT NULL,
		category TEXT NOT NULL,
		PRIMARY KEY (language_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS phrases (
		id TEXT NOT NULL,
		language_id TEXT NOT NULL,
		phrase TEXT NOT NULL,
		translation TEXT NOT NULL,
		pronunciation TEXT NOT NULL,
		audio_url TEXT NOT NULL,
		context TEXT NOT NULL,
		level TEXT NOT NULL,
		category TEXT NOT NULL,
		PRIMARY KEY (language_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS lessons (
		id TEXT NOT NULL,
		language_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		level TEXT NOT NULL,
		week_number INTEGER NOT NULL,
		total_cards INTEGER NOT NULL,
		words_count INTEGER NOT NULL,
		phrases_count INTEGER NOT NULL,
		is_locked INTEGER NOT NULL,
		word_ids TEXT NOT NULL,
		phrase_ids TEXT NOT NULL,
		PRIMARY KEY (language_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		user_id TEXT PRIMARY KEY,
		streak_days INTEGER NOT NULL,
		last_active_date TEXT NOT NULL,
		words_learned TEXT NOT NULL,
		phrases_learned TEXT NOT NULL,
		favorites TEXT NOT NULL,
		daily_goal INTEGER NOT NULL,
		completed_lessons TEXT NOT NULL
	)`,
}

// EnsureSchema creates every table the store needs
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (s *SQLStore) Lessons(ctx context.Context, languageID string) ([]models.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, level, week_number,
		       total_cards, words_count, phrases_count, is_locked
		FROM lessons
		WHERE language_id = ?
		ORDER BY week_number, title`, languageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		var lesson models.Lesson
		var locked int
		err := rows.Scan(&lesson.ID, &lesson.Title, &lesson.Description, &lesson.Level,
			&lesson.WeekNumber, &lesson.TotalCards, &lesson.WordsCount, &lesson.PhrasesCount, &locked)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lesson.IsLocked = locked != 0
		lesson.Cards = []models.Card{}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

func (s *SQLStore) LessonCards(ctx context.Context, languageID, lessonID string) ([]models.Card, error) {
	var rawWordIDs, rawPhraseIDs string
	err := s.db.QueryRowContext(ctx,
		"SELECT word_ids, phrase_ids FROM lessons WHERE language_id = ? AND id = ?",
		languageID, lessonID).Scan(&rawWordIDs, &rawPhraseIDs)
	if err == sql.ErrNoRows {
		return []models.Card{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read lesson %s: %w", lessonID, err)
	}

	wordIDs, err := decodeIDList(rawWordIDs)
	if err != nil {
		return nil, fmt.Errorf("lesson %s has a corrupt word id list: %w", lessonID, err)
	}
	phraseIDs, err := decodeIDList(rawPhraseIDs)
	if err != nil {
		return nil, fmt.Errorf("lesson %s has a corrupt phrase id list: %w", lessonID, err)
	}

	cards := make([]models.Card, 0, len(wordIDs)+len(phraseIDs))
	for _, id := range wordIDs {
		word, found, err := s.word(ctx, languageID, id)
		if err != nil {
			return nil, err
		}
		if found {
			cards = append(cards, models.WordCard(word))
		}
	}
	for _, id := range phraseIDs {
		phrase, found, err := s.phrase(ctx, languageID, id)
		if err != nil {
			return nil, err
		}
		if found {
			cards = append(cards, models.PhraseCard(phrase))
		}
	}
	return cards, nil
}

func (s *SQLStore) word(ctx context.Context, languageID, id string) (models.Word, bool, error) {
	var word models.Word
	var synonyms string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, word, translation, pronunciation, audio_url,
		       part_of_speech, definition, synonyms, level, category
		FROM words WHERE language_id = ? AND id = ?`, languageID, id).
		Scan(&word.ID, &word.Word, &word.Translation, &word.Pronunciation, &word.AudioURL,
			&word.PartOfSpeech, &word.Definition, &synonyms, &word.Level, &word.Category)
	if err == sql.ErrNoRows {
		return models.Word{}, false, nil
	}
	if err != nil {
		return models.Word{}, false, fmt.Errorf("failed to read word %s: %w", id, err)
	}
	word.Synonyms, err = decodeIDList(synonyms)
	if err != nil {
		return models.Word{}, false, fmt.Errorf("word %s has a corrupt synonym list: %w", id, err)
	}
	return word, true, nil
}

func (s *SQLStore) phrase(ctx context.Context, languageID, id string) (models.Phrase, bool, error) {
	var phrase models.Phrase
	err := s.db.QueryRowContext(ctx, `
		SELECT id, phrase, translation, pronunciation, audio_url, context, level, category
		FROM phrases WHERE language_id = ? AND id = ?`, languageID, id).
		Scan(&phrase.ID, &phrase.Phrase, &phrase.Translation, &phrase.Pronunciation,
			&phrase.AudioURL, &phrase.Context, &phrase.Level, &phrase.Category)
	if err == sql.ErrNoRows {
		return models.Phrase{}, false, nil
	}
	if err != nil {
		return models.Phrase{}, false, fmt.Errorf("failed to read phrase %s: %w", id, err)
	}
	return phrase, true, nil
}

func (s *SQLStore) UserProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	var lastActive, words, phrases, favorites, completed string
	err := s.db.QueryRowContext(ctx, `
		SELECT streak_days, last_active_date, words_learned, phrases_learned,
		       favorites, daily_goal, completed_lessons
		FROM user_progress WHERE user_id = ?`, userID).
		Scan(&progress.StreakDays, &lastActive, &words, &phrases,
			&favorites, &progress.DailyGoal, &completed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress for %s: %w", userID, err)
	}

	if lastActive != "" {
		progress.LastActiveDate, err = time.Parse(time.RFC3339, lastActive)
		if err != nil {
			return nil, fmt.Errorf("progress for %s has a corrupt active date: %w", userID, err)
		}
	}
	for _, field := range []struct {
		raw  string
		dest *[]string
	}{
		{words, &progress.WordsLearned},
		{phrases, &progress.PhrasesLearned},
		{favorites, &progress.Favorites},
		{completed, &progress.CompletedLessons},
	} {
		*field.dest, err = decodeIDList(field.raw)
		if err != nil {
			return nil, fmt.Errorf("progress for %s has a corrupt id list: %w", userID, err)
		}
	}
	return &progress, nil
}

func (s *SQLStore) SaveUserProgress(ctx context.Context, userID string, progress models.UserProgress) error {
	lastActive := ""
	if !progress.LastActiveDate.IsZero() {
		lastActive = progress.LastActiveDate.UTC().Format(time.RFC3339)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE user_progress
		SET streak_days = ?, last_active_date = ?, words_learned = ?,
		    phrases_learned = ?, favorites = ?, daily_goal = ?, completed_lessons = ?
		WHERE user_id = ?`,
		progress.StreakDays, lastActive, encodeIDList(progress.WordsLearned),
		encodeIDList(progress.PhrasesLearned), encodeIDList(progress.Favorites),
		progress.DailyGoal, encodeIDList(progress.CompletedLessons), userID)
	if err != nil {
		return fmt.Errorf("failed to update progress for %s: %w", userID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_progress
			(user_id, streak_days, last_active_date, words_learned,
			 phrases_learned, favorites, daily_goal, completed_lessons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, progress.StreakDays, lastActive, encodeIDList(progress.WordsLearned),
		encodeIDList(progress.PhrasesLearned), encodeIDList(progress.Favorites),
		progress.DailyGoal, encodeIDList(progress.CompletedLessons))
	if err != nil {
		return fmt.Errorf("failed to insert progress for %s: %w", userID, err)
	}
	return nil
}

func (s *SQLStore) AddFavorite(ctx context.Context, userID, cardID string) error {
	progress, err := s.UserProgress(ctx, userID)
	if err != nil {
		return err
	}
	if progress == nil {
		// Nothing to attach the favorite to yet
		return nil
	}
	for _, id := range progress.Favorites {
		if id == cardID {
			return nil
		}
	}
	progress.Favorites = append(progress.Favorites, cardID)
	return s.SaveUserProgress(ctx, userID, *progress)
}

func (s *SQLStore) RemoveFavorite(ctx context.Context, userID, cardID string) error {
	progress, err := s.UserProgress(ctx, userID)
	if err != nil {
		return err
	}
	if progress == nil {
		return nil
	}
	kept := progress.Favorites[:0]
	for _, id := range progress.Favorites {
		if id != cardID {
			kept = append(kept, id)
		}
	}
	progress.Favorites = kept
	return s.SaveUserProgress(ctx, userID, *progress)
}

func (s *SQLStore) PutLanguage(ctx context.Context, id, name, code string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE languages SET name = ?, code = ? WHERE id = ?", name, code, id)
	if err != nil {
		return fmt.Errorf("failed to update language %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO languages (id, name, code) VALUES (?, ?, ?)", id, name, code); err != nil {
		return fmt.Errorf("failed to insert language %s: %w", id, err)
	}
	return nil
}

// execer abstracts the connection and a transaction so the same upserts run
// standalone or batched
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (s *SQLStore) PutWord(ctx context.Context, languageID string, word models.Word) error {
	return putWord(ctx, s.db, languageID, word)
}

// PutWords upserts a batch of words in one transaction
func (s *SQLStore) PutWords(ctx context.Context, languageID string, words []models.Word) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, word := range words {
		if err := putWord(ctx, tx, languageID, word); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func putWord(ctx context.Context, ex execer, languageID string, word models.Word) error {
	synonyms := encodeIDList(word.Synonyms)
	result, err := ex.ExecContext(ctx, `
		UPDATE words
		SET word = ?, translation = ?, pronunciation = ?, audio_url = ?,
		    part_of_speech = ?, definition = ?, synonyms = ?, level = ?, category = ?
		WHERE language_id = ? AND id = ?`,
		word.Word, word.Translation, word.Pronunciation, word.AudioURL,
		word.PartOfSpeech, word.Definition, synonyms, word.Level, word.Category,
		languageID, word.ID)
	if err != nil {
		return fmt.Errorf("failed to update word %s: %w", word.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO words
			(id, language_id, word, translation, pronunciation, audio_url,
			 part_of_speech, definition, synonyms, level, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		word.ID, languageID, word.Word, word.Translation, word.Pronunciation,
		word.AudioURL, word.PartOfSpeech, word.Definition, synonyms, word.Level, word.Category)
	if err != nil {
		return fmt.Errorf("failed to insert word %s: %w", word.ID, err)
	}
	return nil
}

func (s *SQLStore) PutPhrase(ctx context.Context, languageID string, phrase models.Phrase) error {
	return putPhrase(ctx, s.db, languageID, phrase)
}

// PutPhrases upserts a batch of phrases in one transaction
func (s *SQLStore) PutPhrases(ctx context.Context, languageID string, phrases []models.Phrase) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, phrase := range phrases {
		if err := putPhrase(ctx, tx, languageID, phrase); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func putPhrase(ctx context.Context, ex execer, languageID string, phrase models.Phrase) error {
	result, err := ex.ExecContext(ctx, `
		UPDATE phrases
		SET phrase = ?, translation = ?, pronunciation = ?, audio_url = ?,
		    context = ?, level = ?, category = ?
		WHERE language_id = ? AND id = ?`,
		phrase.Phrase, phrase.Translation, phrase.Pronunciation, phrase.AudioURL,
		phrase.Context, phrase.Level, phrase.Category, languageID, phrase.ID)
	if err != nil {
		return fmt.Errorf("failed to update phrase %s: %w", phrase.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO phrases
			(id, language_id, phrase, translation, pronunciation, audio_url,
			 context, level, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		phrase.ID, languageID, phrase.Phrase, phrase.Translation, phrase.Pronunciation,
		phrase.AudioURL, phrase.Context, phrase.Level, phrase.Category)
	if err != nil {
		return fmt.Errorf("failed to insert phrase %s: %w", phrase.ID, err)
	}
	return nil
}

func (s *SQLStore) PutLesson(ctx context.Context, languageID string, lesson models.Lesson, wordIDs, phraseIDs []string) error {
	return putLesson(ctx, s.db, languageID, lesson, wordIDs, phraseIDs)
}

func putLesson(ctx context.Context, ex execer, languageID string, lesson models.Lesson, wordIDs, phraseIDs []string) error {
	locked := 0
	if lesson.IsLocked {
		locked = 1
	}
	words := encodeIDList(wordIDs)
	phrases := encodeIDList(phraseIDs)

	result, err := ex.ExecContext(ctx, `
		UPDATE lessons
		SET title = ?, description = ?, level = ?, week_number = ?,
		    total_cards = ?, words_count = ?, phrases_count = ?, is_locked = ?,
		    word_ids = ?, phrase_ids = ?
		WHERE language_id = ? AND id = ?`,
		lesson.Title, lesson.Description, lesson.Level, lesson.WeekNumber,
		lesson.TotalCards, lesson.WordsCount, lesson.PhrasesCount, locked,
		words, phrases, languageID, lesson.ID)
	if err != nil {
		return fmt.Errorf("failed to update lesson %s: %w", lesson.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO lessons
			(id, language_id, title, description, level, week_number,
			 total_cards, words_count, phrases_count, is_locked, word_ids, phrase_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lesson.ID, languageID, lesson.Title, lesson.Description, lesson.Level,
		lesson.WeekNumber, lesson.TotalCards, lesson.WordsCount, lesson.PhrasesCount,
		locked, words, phrases)
	if err != nil {
		return fmt.Errorf("failed to insert lesson %s: %w", lesson.ID, err)
	}
	return nil
}

// AudioTerm is one content row still lacking an audio file
type AudioTerm struct {
	ID         string
	LanguageID string
	Text       string
	IsPhrase   bool
}

// TermsWithoutAudio lists every word and phrase whose audio_url is empty.
// The audio generation tool fills these in.
func (s *SQLStore) TermsWithoutAudio(ctx context.Context) ([]AudioTerm, error) {
	var terms []AudioTerm

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, language_id, word FROM words WHERE audio_url = ''")
	if err != nil {
		return nil, fmt.Errorf("failed to list words without audio: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var term AudioTerm
		if err := rows.Scan(&term.ID, &term.LanguageID, &term.Text); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	phraseRows, err := s.db.QueryContext(ctx,
		"SELECT id, language_id, phrase FROM phrases WHERE audio_url = ''")
	if err != nil {
		return nil, fmt.Errorf("failed to list phrases without audio: %w", err)
	}
	defer phraseRows.Close()
	for phraseRows.Next() {
		term := AudioTerm{IsPhrase: true}
		if err := phraseRows.Scan(&term.ID, &term.LanguageID, &term.Text); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, phraseRows.Err()
}

// SetAudioURL records the generated audio reference for a word or phrase row
func (s *SQLStore) SetAudioURL(ctx context.Context, term AudioTerm, url string) error {
	table := "words"
	if term.IsPhrase {
		table = "phrases"
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE "+table+" SET audio_url = ? WHERE language_id = ? AND id = ?",
		url, term.LanguageID, term.ID)
	if err != nil {
		return fmt.Errorf("failed to set audio url for %s: %w", term.ID, err)
	}
	return nil
}

func encodeIDList(ids []string) string {
	if ids == nil {
		ids = []string{}
	}
	data, _ := json.Marshal(ids)
	return string(data)
}

func decodeIDList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
