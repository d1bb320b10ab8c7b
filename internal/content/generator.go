// Package content generates concrete vocabulary and phrase cards for a
// lesson's quota. Seed terms come from a fixed word bank; translations and
// audio references come from external providers, each with a deterministic
// fallback so a provider outage degrades the output instead of failing it.
package content

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"lingoswipe/internal/audio"
	"lingoswipe/internal/models"
	"lingoswipe/internal/translate"
)

// DefaultCallDelay spaces successive provider calls to respect rate limits
const DefaultCallDelay = 75 * time.Millisecond

// Generator produces cards from the seed bank and the external providers
type Generator struct {
	translator translate.Translator
	audio      audio.Provider
	delay      time.Duration
}

// NewGenerator wires a generator to its providers
func NewGenerator(translator translate.Translator, provider audio.Provider) *Generator {
	return &Generator{
		translator: translator,
		audio:      provider,
		delay:      DefaultCallDelay,
	}
}

// WithDelay overrides the inter-call pacing. Zero disables it.
func (g *Generator) WithDelay(d time.Duration) *Generator {
	g.delay = d
	return g
}

// GenerateWords produces up to count vocabulary cards at the given level,
// translated into the target language. A failing translation degrades that
// term to its untranslated source text; the batch always completes.
func (g *Generator) GenerateWords(ctx context.Context, count int, level models.Level, languageID string) ([]models.Word, error) {
	target := TargetLanguageCode(languageID)
	seeds := seedWords(level, count)

	words := make([]models.Word, 0, len(seeds))
	for i, term := range seeds {
		translation := g.translateOrEcho(ctx, term, target)
		pos := guessPartOfSpeech(term)

		words = append(words, models.Word{
			ID:            fmt.Sprintf("w_%s_%d", level, i),
			Word:          term,
			Translation:   translation,
			Pronunciation: pronounce(term),
			AudioURL:      g.audio.AudioURL(term, "en"),
			PartOfSpeech:  pos,
			Definition:    definitionFor(pos),
			Synonyms:      synonymsFor(term),
			Level:         level,
			Category:      categorizeWord(term),
		})

		if err := g.pause(ctx); err != nil {
			return words, err
		}
	}

	return words, nil
}

// GeneratePhrases produces up to count phrase cards at the given level
func (g *Generator) GeneratePhrases(ctx context.Context, count int, level models.Level, languageID string) ([]models.Phrase, error) {
	target := TargetLanguageCode(languageID)
	seeds := seedPhrases(level, count)

	phrases := make([]models.Phrase, 0, len(seeds))
	for i, text := range seeds {
		translation := g.translateOrEcho(ctx, text, target)

		phrases = append(phrases, models.Phrase{
			ID:            fmt.Sprintf("p_%s_%d", level, i),
			Phrase:        text,
			Translation:   translation,
			Pronunciation: pronounce(text),
			AudioURL:      g.audio.AudioURL(text, "en"),
			Context:       contextFor(level),
			Level:         level,
			Category:      categorizePhrase(text),
		})

		if err := g.pause(ctx); err != nil {
			return phrases, err
		}
	}

	return phrases, nil
}

// CombineAsCards concatenates words and phrases into one card deck, words
// first
func CombineAsCards(words []models.Word, phrases []models.Phrase) []models.Card {
	cards := make([]models.Card, 0, len(words)+len(phrases))
	for _, w := range words {
		cards = append(cards, models.WordCard(w))
	}
	for _, p := range phrases {
		cards = append(cards, models.PhraseCard(p))
	}
	return cards
}

// translateOrEcho asks the translator for the term and falls back to the
// source text on any failure. Degraded mode, not an error.
func (g *Generator) translateOrEcho(ctx context.Context, text, target string) string {
	translated, err := g.translator.Translate(ctx, text, target, "en")
	if err != nil {
		log.Printf("Translation degraded for %q: %v", text, err)
		return text
	}
	return translated
}

// pause spaces provider calls, honoring context cancellation
func (g *Generator) pause(ctx context.Context) error {
	if g.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(g.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TargetLanguageCode maps an app language identifier to its ISO 639-1 code,
// defaulting to Spanish
func TargetLanguageCode(languageID string) string {
	codes := map[string]string{
		"spanish":    "es",
		"french":     "fr",
		"german":     "de",
		"italian":    "it",
		"portuguese": "pt",
		"japanese":   "ja",
	}
	if code, ok := codes[strings.ToLower(languageID)]; ok {
		return code
	}
	return "es"
}
