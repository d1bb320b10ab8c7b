package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNoopEchoesSource(t *testing.T) {
	got, err := Noop{}.Translate(context.Background(), "hello", "es", "en")
	if err != nil {
		t.Fatalf("Noop.Translate returned error: %v", err)
	}
	if got != "hello" {
		t.Errorf("Noop.Translate = %q, want %q", got, "hello")
	}
}

func TestNewSelectsByConfiguration(t *testing.T) {
	if _, ok := New("", "").(Noop); !ok {
		t.Error("New with empty key should return the identity translator")
	}
	if _, ok := New("key", "").(*DeepLClient); !ok {
		t.Error("New with a key should return the DeepL client")
	}
}

func TestDeepLClientTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "DeepL-Auth-Key test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("target_lang"); got != "ES" {
			t.Errorf("target_lang = %q, want ES", got)
		}
		if got := r.PostForm.Get("source_lang"); got != "EN" {
			t.Errorf("source_lang = %q, want EN", got)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"translations": []map[string]string{{"text": "hola"}},
		})
	}))
	defer server.Close()

	client := NewDeepLClient("test-key", server.URL)
	got, err := client.Translate(context.Background(), "hello", "spanish", "en")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "hola" {
		t.Errorf("Translate = %q, want %q", got, "hola")
	}
}

func TestDeepLClientErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid key"})
	}))
	defer server.Close()

	client := NewDeepLClient("bad-key", server.URL)
	if _, err := client.Translate(context.Background(), "hello", "es", "en"); err == nil {
		t.Error("Translate should report an error on a failed response")
	}
}

func TestDeepLLanguageCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"spanish", "ES"},
		{"portuguese", "PT-BR"},
		{"ja", "JA"},
		{"English", "EN"},
		{"nl", "NL"},
	}
	for _, tt := range tests {
		if got := deepLLanguageCode(tt.in); got != tt.want {
			t.Errorf("deepLLanguageCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
