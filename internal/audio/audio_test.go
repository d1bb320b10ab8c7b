package audio

import (
	"net/url"
	"strings"
	"testing"
)

func TestTranslateTTSAudioURL(t *testing.T) {
	provider := NewTranslateTTS()

	got := provider.AudioURL("How are you?", "en")
	if !strings.HasPrefix(got, "https://translate.google.com/translate_tts?") {
		t.Fatalf("AudioURL = %q, want translate_tts endpoint", got)
	}

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("AudioURL produced an unparsable URL: %v", err)
	}
	query := parsed.Query()
	if query.Get("q") != "How are you?" {
		t.Errorf("q = %q, want %q", query.Get("q"), "How are you?")
	}
	if query.Get("tl") != "en" {
		t.Errorf("tl = %q, want en", query.Get("tl"))
	}
	if query.Get("client") != "tw-ob" {
		t.Errorf("client = %q, want tw-ob", query.Get("client"))
	}
}

func TestAudioURLNeverEmpty(t *testing.T) {
	provider := NewTranslateTTS()
	if provider.AudioURL("", "") == "" {
		t.Error("AudioURL returned an empty reference")
	}
}

func TestVoiceName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"es", "es-ES-Standard-A"},
		{"pt", "pt-BR-Standard-A"},
		{"xx", "en-US-Standard-A"},
	}
	for _, tt := range tests {
		if got := voiceName(tt.code); got != tt.want {
			t.Errorf("voiceName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestUnsupportedSynthesizer(t *testing.T) {
	s := &CloudSynthesizer{}
	if s.Supported() {
		t.Error("zero synthesizer should report unsupported")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close on unsupported synthesizer returned %v", err)
	}
}
