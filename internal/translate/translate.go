// Package translate resolves card translations through an external machine
// translation provider. An unconfigured or failing provider degrades to
// returning the source text unchanged; it never fails a caller.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Translator converts text between languages. Implementations must be safe
// for concurrent use.
type Translator interface {
	// Translate returns the text in the target language. Implementations may
	// return the input unchanged when translation is unavailable.
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
}

// Noop is the degraded-mode translator: it echoes the source text
type Noop struct{}

// Translate returns the input unchanged
func (Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

const (
	defaultAPIURL  = "https://api-free.deepl.com/v2/translate"
	requestTimeout = 10 * time.Second
)

// DeepLClient translates via the DeepL REST API
type DeepLClient struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewDeepLClient creates a DeepL-backed translator. An empty apiURL selects
// the free-tier endpoint.
func NewDeepLClient(apiKey, apiURL string) *DeepLClient {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &DeepLClient{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// New returns a DeepL translator when an API key is configured, and the
// identity translator otherwise. Resolved once at startup.
func New(apiKey, apiURL string) Translator {
	if apiKey == "" {
		return Noop{}
	}
	return NewDeepLClient(apiKey, apiURL)
}

type deepLResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
	Message string `json:"message"`
}

// Translate posts the text to DeepL and returns the first translation
func (c *DeepLClient) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	params := url.Values{}
	params.Set("text", text)
	params.Set("source_lang", deepLLanguageCode(sourceLang))
	params.Set("target_lang", deepLLanguageCode(targetLang))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call translation api: %w", err)
	}
	defer resp.Body.Close()

	var body deepLResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}

	if len(body.Translations) == 0 || body.Translations[0].Text == "" {
		if body.Message != "" {
			return "", fmt.Errorf("translation failed: %s", body.Message)
		}
		return "", fmt.Errorf("translation failed: empty response (status %d)", resp.StatusCode)
	}

	return body.Translations[0].Text, nil
}

// deepLLanguageCode maps app language identifiers and ISO codes onto DeepL's
// uppercase codes. Unknown values pass through uppercased.
func deepLLanguageCode(language string) string {
	codes := map[string]string{
		"en":         "EN",
		"english":    "EN",
		"es":         "ES",
		"spanish":    "ES",
		"fr":         "FR",
		"french":     "FR",
		"de":         "DE",
		"german":     "DE",
		"it":         "IT",
		"italian":    "IT",
		"pt":         "PT-BR",
		"portuguese": "PT-BR",
		"ja":         "JA",
		"japanese":   "JA",
	}

	normalized := strings.ToLower(language)
	if code, ok := codes[normalized]; ok {
		return code
	}
	return strings.ToUpper(normalized)
}
