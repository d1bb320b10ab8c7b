// Package audio supplies playable audio references for cards. The baseline
// provider builds Google Translate TTS URLs and never fails; the cloud
// synthesizer is an optional capability resolved at startup.
package audio

import (
	"fmt"
	"net/url"
)

// Provider yields a playable audio reference for a piece of text. The result
// is never empty.
type Provider interface {
	AudioURL(text, languageCode string) string
}

// TranslateTTS builds streaming URLs against Google Translate's free TTS
// endpoint. No API key is needed.
type TranslateTTS struct{}

// NewTranslateTTS creates the URL-building provider
func NewTranslateTTS() *TranslateTTS {
	return &TranslateTTS{}
}

// AudioURL returns a translate_tts URL for the text
func (TranslateTTS) AudioURL(text, languageCode string) string {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", languageCode)
	params.Set("client", "tw-ob")
	return fmt.Sprintf("https://translate.google.com/translate_tts?%s", params.Encode())
}

// voiceName picks a standard-tier voice for a language code
func voiceName(languageCode string) string {
	voices := map[string]string{
		"es": "es-ES-Standard-A",
		"fr": "fr-FR-Standard-A",
		"de": "de-DE-Standard-A",
		"it": "it-IT-Standard-A",
		"pt": "pt-BR-Standard-A",
		"ja": "ja-JP-Standard-A",
		"en": "en-US-Standard-A",
	}
	if voice, ok := voices[languageCode]; ok {
		return voice
	}
	return "en-US-Standard-A"
}
