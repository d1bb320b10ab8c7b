package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const fetchTimeout = 10 * time.Second

// Downloader fetches MP3 audio from the free Translate TTS endpoint and
// stores it on disk. It needs no credentials, so it serves as the fallback
// when cloud synthesis is not configured.
type Downloader struct {
	provider *TranslateTTS
	client   *http.Client
}

// NewDownloader creates a downloader over the URL provider
func NewDownloader() *Downloader {
	return &Downloader{
		provider: NewTranslateTTS(),
		client:   &http.Client{Timeout: fetchTimeout},
	}
}

// FetchTo downloads the spoken text into the given file. An already-existing
// file is left alone.
func (d *Downloader) FetchTo(ctx context.Context, text, languageCode, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.provider.AudioURL(text, languageCode), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// The endpoint rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
