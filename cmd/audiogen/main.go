// Command audiogen backfills audio for content rows that lack it: it renders
// each word and phrase to an MP3 file through Google Cloud Text-to-Speech
// and records the file path on the row. Requires ambient
// GOOGLE_APPLICATION_CREDENTIALS.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"lingoswipe/internal/audio"
	"lingoswipe/internal/config"
	"lingoswipe/internal/content"
	"lingoswipe/internal/database"
	"lingoswipe/internal/remote"
)

// synthesisPause spaces API calls per worker to stay under the quota
const synthesisPause = 200 * time.Millisecond

func main() {
	workers := flag.Int("workers", 4, "number of concurrent synthesis workers")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Load configuration
	cfg := config.Load()

	db, err := database.Open(cfg.RemoteDBType, cfg.RemoteDBURL, cfg.RemoteDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	store := remote.NewSQLStore(db)

	synthesizer := audio.NewCloudSynthesizer(ctx)
	defer synthesizer.Close()
	downloader := audio.NewDownloader()
	if !synthesizer.Supported() {
		log.Println("Cloud TTS is not configured; using the free Translate TTS endpoint")
	}

	terms, err := store.TermsWithoutAudio(ctx)
	if err != nil {
		log.Fatalf("Failed to list terms without audio: %v", err)
	}
	if len(terms) == 0 {
		log.Println("All content rows already have audio")
		return
	}
	log.Printf("Generating audio for %d terms with %d workers", len(terms), *workers)

	if err := os.MkdirAll(cfg.TTSAudioDir, 0755); err != nil {
		log.Fatalf("Failed to create audio directory: %v", err)
	}

	jobs := make(chan remote.AudioTerm)
	var generated, failed int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for term := range jobs {
				if err := generate(ctx, store, synthesizer, downloader, cfg.TTSAudioDir, term); err != nil {
					log.Printf("Failed to generate audio for %s: %v", term.ID, err)
					mu.Lock()
					failed++
					mu.Unlock()
				} else {
					mu.Lock()
					generated++
					mu.Unlock()
				}
				time.Sleep(synthesisPause)
			}
		}()
	}

	for _, term := range terms {
		jobs <- term
	}
	close(jobs)
	wg.Wait()

	log.Printf("Audio generation complete: %d generated, %d failed", generated, failed)
}

// generate renders one term to disk and records its path on the row. Cloud
// synthesis is preferred; without it the term is fetched from the free
// endpoint instead.
func generate(ctx context.Context, store *remote.SQLStore, synthesizer *audio.CloudSynthesizer, downloader *audio.Downloader, dir string, term remote.AudioTerm) error {
	languageCode := content.TargetLanguageCode(term.LanguageID)
	path := filepath.Join(dir, term.LanguageID+"_"+term.ID+".mp3")

	if synthesizer.Supported() {
		data, err := synthesizer.SynthesizeMP3(ctx, term.Text, languageCode)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
	} else if err := downloader.FetchTo(ctx, term.Text, languageCode, path); err != nil {
		return err
	}

	return store.SetAudioURL(ctx, term, path)
}
