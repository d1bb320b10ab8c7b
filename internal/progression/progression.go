// Package progression turns the static curriculum into runtime lessons,
// fills lesson decks on demand, and decides scoring, completion, and
// week-by-week unlock gating.
package progression

import (
	"context"
	"math"
	"regexp"
	"strconv"

	"lingoswipe/internal/content"
	"lingoswipe/internal/curriculum"
	"lingoswipe/internal/models"
)

// unlockThreshold is the share of the previous week's lessons that must be
// completed before a locked week opens
const unlockThreshold = 0.6

// Service builds lessons from the curriculum and generates their content
type Service struct {
	generator *content.Generator
}

// NewService creates a progression service over a content generator
func NewService(generator *content.Generator) *Service {
	return &Service{generator: generator}
}

// CreateLessonStructure maps every curriculum template onto a zeroed runtime
// lesson. Week-1 lessons start unlocked; everything later starts locked.
func (s *Service) CreateLessonStructure() []models.Lesson {
	templates := curriculum.Full()
	lessons := make([]models.Lesson, 0, len(templates))

	for _, tpl := range templates {
		lessons = append(lessons, models.Lesson{
			ID:             tpl.ID,
			Title:          tpl.Title,
			Description:    tpl.Description,
			Level:          tpl.Level,
			WeekNumber:     tpl.WeekNumber,
			Cards:          []models.Card{},
			TotalCards:     tpl.WordCount + tpl.PhraseCount,
			CompletedCards: 0,
			PhrasesCount:   tpl.PhraseCount,
			WordsCount:     tpl.WordCount,
			IsLocked:       tpl.WeekNumber != 1,
		})
	}

	return lessons
}

// GenerateLessonContent fills a lesson's deck: words and phrases are
// generated at the lesson's quotas and interleaved word-phrase-word-phrase,
// with the longer list's leftovers appended. The alternating order is part
// of the contract.
func (s *Service) GenerateLessonContent(ctx context.Context, lesson models.Lesson, languageID string) ([]models.Card, error) {
	words, err := s.generator.GenerateWords(ctx, lesson.WordsCount, lesson.Level, languageID)
	if err != nil {
		return nil, err
	}
	phrases, err := s.generator.GeneratePhrases(ctx, lesson.PhrasesCount, lesson.Level, languageID)
	if err != nil {
		return nil, err
	}

	cards := make([]models.Card, 0, len(words)+len(phrases))
	for i := 0; i < len(words) || i < len(phrases); i++ {
		if i < len(words) {
			cards = append(cards, models.WordCard(words[i]))
		}
		if i < len(phrases) {
			cards = append(cards, models.PhraseCard(phrases[i]))
		}
	}

	return cards, nil
}

// ShouldUnlockLesson reports whether a lesson may open. Week-1 lessons are
// always unlocked; later weeks open once at least 60% (rounded up) of the
// previous week's planned lessons are completed. The week size comes from
// the static curriculum, not the runtime lesson list.
func (s *Service) ShouldUnlockLesson(lesson models.Lesson, progress []models.LessonProgress) bool {
	if lesson.WeekNumber == 1 {
		return true
	}

	previousWeek := lesson.WeekNumber - 1
	total := curriculum.WeekSize(previousWeek)
	if total == 0 {
		return false
	}

	completed := 0
	for _, p := range progress {
		if p.Completed && WeekFromLessonID(p.LessonID) == previousWeek {
			completed++
		}
	}

	required := int(math.Ceil(float64(total) * unlockThreshold))
	return completed >= required
}

// CompletionPercentage is the rounded percent of cards completed
func CompletionPercentage(cardsCompleted, totalCards int) int {
	if totalCards <= 0 {
		return 0
	}
	return int(math.Round(float64(cardsCompleted) / float64(totalCards) * 100))
}

// IsLessonCompleted reports whether a lesson counts as done: 80% of its
// cards, after rounding
func IsLessonCompleted(cardsCompleted, totalCards int) bool {
	return CompletionPercentage(cardsCompleted, totalCards) >= 80
}

// CalculateScore scores a lesson run: up to 70 points for completion, an
// accuracy bonus of 20 minus 2 per mistake (floored at 0), and a flat speed
// bonus of 10. The sum is rounded but deliberately not clamped to 100.
func CalculateScore(cardsCompleted, totalCards, mistakes int) int {
	if totalCards <= 0 {
		return 0
	}

	completionScore := float64(cardsCompleted) / float64(totalCards) * 70
	accuracyBonus := 20 - mistakes*2
	if accuracyBonus < 0 {
		accuracyBonus = 0
	}
	const speedBonus = 10

	return int(math.Round(completionScore + float64(accuracyBonus) + speedBonus))
}

var lessonWeekPattern = regexp.MustCompile(`^w(\d+)_`)

// WeekFromLessonID parses the week number out of a "w<week>_..." lesson id,
// returning 0 when the id does not carry one
func WeekFromLessonID(lessonID string) int {
	match := lessonWeekPattern.FindStringSubmatch(lessonID)
	if match == nil {
		return 0
	}
	week, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return week
}
