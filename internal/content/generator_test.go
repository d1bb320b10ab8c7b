package content

import (
	"context"
	"errors"
	"testing"

	"lingoswipe/internal/audio"
	"lingoswipe/internal/models"
	"lingoswipe/internal/translate"
)

// failingTranslator errors on every call to exercise degraded mode
type failingTranslator struct{}

func (failingTranslator) Translate(_ context.Context, _, _, _ string) (string, error) {
	return "", errors.New("provider down")
}

// prefixTranslator marks translations so tests can tell them apart from the
// source text
type prefixTranslator struct{}

func (prefixTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return "x-" + text, nil
}

func newTestGenerator(t translate.Translator) *Generator {
	return NewGenerator(t, audio.NewTranslateTTS()).WithDelay(0)
}

func TestGenerateWords(t *testing.T) {
	gen := newTestGenerator(prefixTranslator{})

	words, err := gen.GenerateWords(context.Background(), 5, models.LevelBeginner, "spanish")
	if err != nil {
		t.Fatalf("GenerateWords returned error: %v", err)
	}
	if len(words) != 5 {
		t.Fatalf("got %d words, want 5", len(words))
	}

	first := words[0]
	if first.ID != "w_beginner_0" {
		t.Errorf("id = %q, want w_beginner_0", first.ID)
	}
	if first.Word != "hello" {
		t.Errorf("word = %q, want hello", first.Word)
	}
	if first.Translation != "x-hello" {
		t.Errorf("translation = %q, want x-hello", first.Translation)
	}
	if first.Pronunciation != "/hello/" {
		t.Errorf("pronunciation = %q, want /hello/", first.Pronunciation)
	}
	if first.PartOfSpeech != models.PartInterjection {
		t.Errorf("partOfSpeech = %q, want interjection", first.PartOfSpeech)
	}
	if first.Category != "greetings" {
		t.Errorf("category = %q, want greetings", first.Category)
	}
	if first.AudioURL == "" {
		t.Error("audio URL is empty")
	}
	if first.Definition != "A short exclamation or expression." {
		t.Errorf("definition = %q", first.Definition)
	}
}

func TestGenerateWordsClampsToBank(t *testing.T) {
	gen := newTestGenerator(translate.Noop{})

	bankSize := len(wordBank[models.LevelAdvanced].common)
	words, err := gen.GenerateWords(context.Background(), bankSize+50, models.LevelAdvanced, "french")
	if err != nil {
		t.Fatalf("GenerateWords returned error: %v", err)
	}
	if len(words) != bankSize {
		t.Errorf("got %d words, want bank size %d", len(words), bankSize)
	}
}

func TestGenerateWordsDegradedTranslation(t *testing.T) {
	gen := newTestGenerator(failingTranslator{})

	words, err := gen.GenerateWords(context.Background(), 3, models.LevelBeginner, "german")
	if err != nil {
		t.Fatalf("GenerateWords returned error despite degraded mode: %v", err)
	}
	for _, w := range words {
		if w.Translation != w.Word {
			t.Errorf("degraded translation = %q, want source %q", w.Translation, w.Word)
		}
	}
}

func TestGeneratePhrases(t *testing.T) {
	gen := newTestGenerator(translate.Noop{})

	phrases, err := gen.GeneratePhrases(context.Background(), 2, models.LevelIntermediate, "italian")
	if err != nil {
		t.Fatalf("GeneratePhrases returned error: %v", err)
	}
	if len(phrases) != 2 {
		t.Fatalf("got %d phrases, want 2", len(phrases))
	}

	first := phrases[0]
	if first.ID != "p_intermediate_0" {
		t.Errorf("id = %q, want p_intermediate_0", first.ID)
	}
	if first.Phrase != "Could you repeat that?" {
		t.Errorf("phrase = %q", first.Phrase)
	}
	if first.Category != "questions" {
		t.Errorf("category = %q, want questions", first.Category)
	}
	if first.Context != "Common in social and professional settings." {
		t.Errorf("context = %q", first.Context)
	}
}

func TestSynonymsAndPartOfSpeechTables(t *testing.T) {
	tests := []struct {
		word     string
		pos      models.PartOfSpeech
		synonyms int
	}{
		{"happy", models.PartAdjective, 3},
		{"want", models.PartVerb, 0},
		{"hello", models.PartInterjection, 0},
		{"water", models.PartNoun, 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := guessPartOfSpeech(tt.word); got != tt.pos {
				t.Errorf("guessPartOfSpeech(%q) = %q, want %q", tt.word, got, tt.pos)
			}
			if got := synonymsFor(tt.word); len(got) != tt.synonyms {
				t.Errorf("synonymsFor(%q) has %d entries, want %d", tt.word, len(got), tt.synonyms)
			}
		})
	}
}

func TestCategorizePhrase(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"Can you help me?", "questions"},
		{"Please speak slowly", "courtesy"},
		{"See you later", "conversation"},
	}
	for _, tt := range tests {
		if got := categorizePhrase(tt.phrase); got != tt.want {
			t.Errorf("categorizePhrase(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

func TestCombineAsCards(t *testing.T) {
	words := []models.Word{{ID: "w1"}, {ID: "w2"}}
	phrases := []models.Phrase{{ID: "p1"}}

	cards := CombineAsCards(words, phrases)
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}
	wantTypes := []models.CardType{models.CardTypeWord, models.CardTypeWord, models.CardTypePhrase}
	for i, card := range cards {
		if card.Type != wantTypes[i] {
			t.Errorf("card %d type = %q, want %q", i, card.Type, wantTypes[i])
		}
	}
}

func TestTargetLanguageCode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"spanish", "es"},
		{"Japanese", "ja"},
		{"klingon", "es"},
		{"", "es"},
	}
	for _, tt := range tests {
		if got := TargetLanguageCode(tt.in); got != tt.want {
			t.Errorf("TargetLanguageCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
