package audio

import (
	"context"
	"fmt"
	"log"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "google.golang.org/genproto/googleapis/cloud/texttospeech/v1"
)

// CloudSynthesizer renders MP3 audio through the Google Cloud Text-to-Speech
// API. It is an optional capability: construction probes for credentials
// once, and Supported reports whether synthesis is available. Callers without
// the capability fall back to TranslateTTS URLs.
type CloudSynthesizer struct {
	client *texttospeech.Client
}

// NewCloudSynthesizer connects to the Cloud TTS API using ambient
// GOOGLE_APPLICATION_CREDENTIALS. A missing or invalid credential yields an
// unsupported synthesizer, not an error.
func NewCloudSynthesizer(ctx context.Context) *CloudSynthesizer {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		log.Printf("Cloud TTS unavailable, falling back to URL provider: %v", err)
		return &CloudSynthesizer{}
	}
	return &CloudSynthesizer{client: client}
}

// Supported reports whether cloud synthesis is available
func (s *CloudSynthesizer) Supported() bool {
	return s != nil && s.client != nil
}

// SynthesizeMP3 renders the text as MP3 bytes using a standard-tier voice
// for the language
func (s *CloudSynthesizer) SynthesizeMP3(ctx context.Context, text, languageCode string) ([]byte, error) {
	if !s.Supported() {
		return nil, fmt.Errorf("cloud tts is not configured")
	}

	// Voice names embed their BCP-47 locale, e.g. "es-ES-Standard-A"
	voice := voiceName(languageCode)
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voice[:5],
			Name:         voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	return resp.AudioContent, nil
}

// Close releases the API connection
func (s *CloudSynthesizer) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
