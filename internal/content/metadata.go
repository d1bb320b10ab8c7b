package content

import (
	"strings"

	"lingoswipe/internal/models"
)

// Word metadata that the upstream providers do not supply is synthesized
// from small fixed rule tables keyed on the source term.

var verbTerms = map[string]bool{
	"walk": true, "run": true, "eat": true, "drink": true, "sleep": true,
	"think": true, "know": true, "like": true, "love": true, "want": true,
	"need": true,
}

var adjectiveTerms = map[string]bool{
	"happy": true, "sad": true, "big": true, "small": true, "good": true,
	"bad": true, "hot": true, "cold": true, "fast": true, "slow": true,
}

var interjectionTerms = map[string]bool{
	"hello": true, "goodbye": true, "sorry": true, "please": true,
}

// guessPartOfSpeech classifies a term by lookup, defaulting to noun
func guessPartOfSpeech(word string) models.PartOfSpeech {
	lower := strings.ToLower(word)
	switch {
	case verbTerms[lower]:
		return models.PartVerb
	case adjectiveTerms[lower]:
		return models.PartAdjective
	case interjectionTerms[lower]:
		return models.PartInterjection
	default:
		return models.PartNoun
	}
}

// definitionFor renders the stock definition template for a word class
func definitionFor(pos models.PartOfSpeech) string {
	switch pos {
	case models.PartNoun:
		return "A person, place, thing, or idea."
	case models.PartVerb:
		return "An action or state."
	case models.PartAdjective:
		return "A word that describes a noun."
	case models.PartAdverb:
		return "A word that modifies a verb, adjective, or adverb."
	case models.PartInterjection:
		return "A short exclamation or expression."
	default:
		return ""
	}
}

var synonymTable = map[string][]string{
	"happy": {"joyful", "cheerful", "pleased"},
	"sad":   {"unhappy", "sorrowful", "dejected"},
	"big":   {"large", "huge", "enormous"},
	"small": {"tiny", "little", "mini"},
	"good":  {"great", "excellent", "wonderful"},
	"bad":   {"poor", "terrible", "awful"},
}

// synonymsFor returns the curated synonym list for a term, empty if unknown
func synonymsFor(word string) []string {
	if syns, ok := synonymTable[strings.ToLower(word)]; ok {
		out := make([]string, len(syns))
		copy(out, syns)
		return out
	}
	return []string{}
}

var wordCategories = map[string]string{
	"red": "colors", "blue": "colors", "green": "colors", "yellow": "colors",
	"one": "numbers", "two": "numbers", "three": "numbers", "four": "numbers",
	"hello": "greetings", "goodbye": "greetings", "please": "greetings",
	"happy": "emotions", "sad": "emotions", "angry": "emotions",
}

// categorizeWord buckets a term by lookup, defaulting to general
func categorizeWord(word string) string {
	if category, ok := wordCategories[word]; ok {
		return category
	}
	return "general"
}

// categorizePhrase buckets a phrase by keyword containment
func categorizePhrase(phrase string) string {
	lower := strings.ToLower(phrase)
	switch {
	case strings.Contains(phrase, "?"):
		return "questions"
	case strings.Contains(lower, "please") || strings.Contains(lower, "thank"):
		return "courtesy"
	case strings.Contains(lower, "how are"):
		return "greetings"
	default:
		return "conversation"
	}
}

// contextFor describes the register a phrase is used in, per level
func contextFor(level models.Level) string {
	switch level {
	case models.LevelBeginner:
		return "Used in everyday casual conversation."
	case models.LevelIntermediate:
		return "Common in social and professional settings."
	case models.LevelAdvanced:
		return "A more formal or nuanced expression."
	default:
		return ""
	}
}

// pronounce renders the deterministic pronunciation placeholder
func pronounce(text string) string {
	return "/" + strings.ToLower(text) + "/"
}
