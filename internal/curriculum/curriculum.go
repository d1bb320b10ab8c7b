// Package curriculum plans the full two-year lesson catalog: 104 weeks, two
// lessons per week, themed per level and scaled in difficulty by week number.
// Generation is deterministic and does no I/O.
package curriculum

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"lingoswipe/internal/models"
)

const (
	// TotalWeeks is the length of the planned curriculum
	TotalWeeks = 104
	// LessonsPerWeek is the number of lesson slots per week
	LessonsPerWeek = 2
)

// Generate builds the full ordered curriculum. The same call always yields
// the same templates: level is a step function of the week number, the
// week's theme cycles through the per-level theme table, and word/phrase
// quotas derive from the week's difficulty score. Output is sorted by week
// number, then id.
func Generate() []models.LessonTemplate {
	templates := make([]models.LessonTemplate, 0, TotalWeeks*LessonsPerWeek)

	for week := 1; week <= TotalWeeks; week++ {
		theme := themeForWeek(week)
		for slot := 1; slot <= LessonsPerWeek; slot++ {
			templates = append(templates, newTemplate(week, slot, theme))
		}
	}

	sort.Slice(templates, func(i, j int) bool {
		if templates[i].WeekNumber != templates[j].WeekNumber {
			return templates[i].WeekNumber < templates[j].WeekNumber
		}
		return templates[i].ID < templates[j].ID
	})

	return templates
}

var (
	fullOnce sync.Once
	full     []models.LessonTemplate
)

// Full returns the memoized curriculum. The returned slice is shared and
// must be treated as read-only.
func Full() []models.LessonTemplate {
	fullOnce.Do(func() {
		full = Generate()
	})
	return full
}

// WeekSize returns how many lessons the static curriculum plans for the
// given week, zero for weeks outside the plan.
func WeekSize(weekNumber int) int {
	if weekNumber < 1 || weekNumber > TotalWeeks {
		return 0
	}
	return LessonsPerWeek
}

// LevelForWeek maps a week number onto its learner stage
func LevelForWeek(weekNumber int) models.Level {
	switch {
	case weekNumber <= 32:
		return models.LevelBeginner
	case weekNumber <= 72:
		return models.LevelIntermediate
	default:
		return models.LevelAdvanced
	}
}

// DifficultyForWeek scores a week 1-10. The score is non-decreasing in the
// week number, stepping through four bands with per-band caps.
func DifficultyForWeek(weekNumber int) int {
	switch {
	case weekNumber <= 12:
		return minInt(4, 1+(weekNumber-1)/3)
	case weekNumber <= 32:
		return minInt(5, 4+(weekNumber-13)/10)
	case weekNumber <= 72:
		return minInt(8, 5+(weekNumber-33)/10)
	default:
		return minInt(10, 8+(weekNumber-73)/12)
	}
}

// MonthForWeek converts a week number into a 1-based month number
func MonthForWeek(weekNumber int) int {
	return (weekNumber + 3) / 4
}

func themeForWeek(weekNumber int) weeklyTheme {
	var source []weeklyTheme
	switch LevelForWeek(weekNumber) {
	case models.LevelBeginner:
		source = beginnerThemes
	case models.LevelIntermediate:
		source = intermediateThemes
	default:
		source = advancedThemes
	}
	return source[(weekNumber-1)%len(source)]
}

func newTemplate(weekNumber, slot int, theme weeklyTheme) models.LessonTemplate {
	difficulty := DifficultyForWeek(weekNumber)
	baseWordCount := 10 + difficulty*2
	basePhraseCount := 6 + difficulty*2

	title := theme.lesson1Title
	description := theme.lesson1Description
	topics := theme.lesson1Topics
	wordCount := baseWordCount
	phraseCount := maxInt(6, basePhraseCount-2)
	if slot == 2 {
		title = theme.lesson2Title
		description = theme.lesson2Description
		topics = theme.lesson2Topics
		wordCount = maxInt(8, baseWordCount-2)
		phraseCount = basePhraseCount
	}

	return models.LessonTemplate{
		ID:          fmt.Sprintf("w%d_l%d_%s", weekNumber, slot, slugify(title)),
		Title:       title,
		Description: description,
		Level:       LevelForWeek(weekNumber),
		WeekNumber:  weekNumber,
		MonthNumber: MonthForWeek(weekNumber),
		Category:    theme.category,
		WordCount:   wordCount,
		PhraseCount: phraseCount,
		Topics:      topics,
		Difficulty:  difficulty,
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases a title and collapses every non-alphanumeric run into a
// single underscore, trimming leading and trailing underscores
func slugify(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "_")
	return strings.Trim(slug, "_")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
