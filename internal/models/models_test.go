package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCardJSONWordRoundTrip(t *testing.T) {
	card := WordCard(Word{
		ID:           "w_beginner_0",
		Word:         "hello",
		Translation:  "hola",
		PartOfSpeech: PartInterjection,
		Synonyms:     []string{"hi"},
		Level:        LevelBeginner,
		Category:     "greetings",
	})

	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if !strings.Contains(string(data), `"type":"word"`) {
		t.Errorf("envelope missing type tag: %s", data)
	}
	if !strings.Contains(string(data), `"partOfSpeech":"interjection"`) {
		t.Errorf("payload missing camelCase field: %s", data)
	}

	var decoded Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded.Type != CardTypeWord || decoded.Word == nil || decoded.Phrase != nil {
		t.Fatalf("decoded card shape wrong: %+v", decoded)
	}
	if decoded.Word.Word != "hello" || decoded.Word.Translation != "hola" {
		t.Errorf("decoded word = %+v", decoded.Word)
	}
	if decoded.CardID() != "w_beginner_0" {
		t.Errorf("CardID() = %q", decoded.CardID())
	}
}

func TestCardJSONPhraseRoundTrip(t *testing.T) {
	card := PhraseCard(Phrase{
		ID:          "p_beginner_0",
		Phrase:      "How are you?",
		Translation: "¿Cómo estás?",
		Level:       LevelBeginner,
		Category:    "greetings",
	})

	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded.Type != CardTypePhrase || decoded.Phrase == nil || decoded.Word != nil {
		t.Fatalf("decoded card shape wrong: %+v", decoded)
	}
	if decoded.Phrase.Phrase != "How are you?" {
		t.Errorf("decoded phrase = %+v", decoded.Phrase)
	}
}

func TestCardJSONUnknownType(t *testing.T) {
	var card Card
	err := json.Unmarshal([]byte(`{"type":"video","data":{}}`), &card)
	if err == nil {
		t.Fatal("expected an error for an unknown card type")
	}

	if _, err := json.Marshal(Card{Type: "video"}); err == nil {
		t.Fatal("expected an error marshaling an unknown card type")
	}
}

func TestLessonClone(t *testing.T) {
	lesson := Lesson{
		ID:    "w1_l1_basics",
		Cards: []Card{WordCard(Word{ID: "w1"})},
	}

	clone := lesson.Clone()
	clone.Cards[0] = PhraseCard(Phrase{ID: "p1"})
	clone.Title = "changed"

	if lesson.Cards[0].Type != CardTypeWord {
		t.Error("mutating a clone's deck changed the original")
	}
	if lesson.Title == "changed" {
		t.Error("mutating a clone changed the original")
	}
}

func TestUserProgressClone(t *testing.T) {
	progress := UserProgress{
		Favorites:        []string{"w1"},
		CompletedLessons: []string{"w1_l1_basics"},
	}

	clone := progress.Clone()
	clone.Favorites[0] = "other"
	clone.CompletedLessons = append(clone.CompletedLessons, "extra")

	if progress.Favorites[0] != "w1" {
		t.Error("mutating a clone's favorites changed the original")
	}
	if len(progress.CompletedLessons) != 1 {
		t.Error("mutating a clone's completed lessons changed the original")
	}
}
