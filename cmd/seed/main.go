// Command seed populates the remote content database: the full two-year
// lesson structure plus generated word and phrase content for the first
// weeks. Safe to re-run; every write is an upsert.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"lingoswipe/internal/audio"
	"lingoswipe/internal/config"
	"lingoswipe/internal/content"
	"lingoswipe/internal/database"
	"lingoswipe/internal/models"
	"lingoswipe/internal/progression"
	"lingoswipe/internal/remote"
	"lingoswipe/internal/translate"
)

func main() {
	weeks := flag.Int("weeks", 2, "generate card content for the first N weeks")
	language := flag.String("language", "", "language id to seed (default: DEFAULT_LANGUAGE)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Load configuration
	cfg := config.Load()
	languageID := *language
	if languageID == "" {
		languageID = cfg.DefaultLanguage
	}

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Open(cfg.RemoteDBType, cfg.RemoteDBURL, cfg.RemoteDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.RemoteDBType)

	ctx := context.Background()
	store := remote.NewSQLStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	name := titleCase(languageID)
	if err := store.PutLanguage(ctx, languageID, name, content.TargetLanguageCode(languageID)); err != nil {
		log.Fatalf("Failed to upsert language: %v", err)
	}

	translator := translate.New(cfg.DeepLAPIKey, cfg.DeepLAPIURL)
	generator := content.NewGenerator(translator, audio.NewTranslateTTS()).WithDelay(cfg.CallDelay)
	progressionSvc := progression.NewService(generator)

	lessons := progressionSvc.CreateLessonStructure()
	log.Printf("Planned %d lessons across %d weeks", len(lessons), lessons[len(lessons)-1].WeekNumber)

	var wordCount, phraseCount int
	for _, lesson := range lessons {
		var wordIDs, phraseIDs []string

		if lesson.WeekNumber <= *weeks {
			words, err := generator.GenerateWords(ctx, lesson.WordsCount, lesson.Level, languageID)
			if err != nil {
				log.Fatalf("Failed to generate words for %s: %v", lesson.ID, err)
			}
			phrases, err := generator.GeneratePhrases(ctx, lesson.PhrasesCount, lesson.Level, languageID)
			if err != nil {
				log.Fatalf("Failed to generate phrases for %s: %v", lesson.ID, err)
			}

			// Batch each lesson's content into one transaction
			if err := store.PutWords(ctx, languageID, words); err != nil {
				log.Fatalf("Failed to upsert words for %s: %v", lesson.ID, err)
			}
			if err := store.PutPhrases(ctx, languageID, phrases); err != nil {
				log.Fatalf("Failed to upsert phrases for %s: %v", lesson.ID, err)
			}

			wordIDs = idsOfWords(words)
			phraseIDs = idsOfPhrases(phrases)
			wordCount += len(words)
			phraseCount += len(phrases)
		}

		if err := store.PutLesson(ctx, languageID, lesson, wordIDs, phraseIDs); err != nil {
			log.Fatalf("Failed to upsert lesson %s: %v", lesson.ID, err)
		}
	}

	log.Printf("Seeded %s: %d lessons, %d words, %d phrases (content for %d weeks)",
		languageID, len(lessons), wordCount, phraseCount, *weeks)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func idsOfWords(words []models.Word) []string {
	ids := make([]string, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	return ids
}

func idsOfPhrases(phrases []models.Phrase) []string {
	ids := make([]string, len(phrases))
	for i, p := range phrases {
		ids[i] = p.ID
	}
	return ids
}
