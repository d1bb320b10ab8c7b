package progression

import (
	"context"
	"testing"

	"lingoswipe/internal/audio"
	"lingoswipe/internal/content"
	"lingoswipe/internal/curriculum"
	"lingoswipe/internal/models"
	"lingoswipe/internal/translate"
)

func newTestService() *Service {
	gen := content.NewGenerator(translate.Noop{}, audio.NewTranslateTTS()).WithDelay(0)
	return NewService(gen)
}

func TestCreateLessonStructure(t *testing.T) {
	svc := newTestService()
	lessons := svc.CreateLessonStructure()

	if len(lessons) != curriculum.TotalWeeks*curriculum.LessonsPerWeek {
		t.Fatalf("got %d lessons, want %d", len(lessons), curriculum.TotalWeeks*curriculum.LessonsPerWeek)
	}

	for _, lesson := range lessons {
		if lesson.CompletedCards != 0 {
			t.Errorf("lesson %q starts with completedCards %d", lesson.ID, lesson.CompletedCards)
		}
		if len(lesson.Cards) != 0 {
			t.Errorf("lesson %q starts with a non-empty deck", lesson.ID)
		}
		if lesson.TotalCards != lesson.WordsCount+lesson.PhrasesCount {
			t.Errorf("lesson %q totalCards = %d, want %d", lesson.ID, lesson.TotalCards, lesson.WordsCount+lesson.PhrasesCount)
		}
		if wantLocked := lesson.WeekNumber != 1; lesson.IsLocked != wantLocked {
			t.Errorf("lesson %q (week %d) isLocked = %v, want %v", lesson.ID, lesson.WeekNumber, lesson.IsLocked, wantLocked)
		}
	}
}

func TestGenerateLessonContentInterleaves(t *testing.T) {
	svc := newTestService()

	lesson := models.Lesson{
		ID:           "w1_l1_test",
		Level:        models.LevelBeginner,
		WeekNumber:   1,
		WordsCount:   3,
		PhrasesCount: 2,
	}

	cards, err := svc.GenerateLessonContent(context.Background(), lesson, "spanish")
	if err != nil {
		t.Fatalf("GenerateLessonContent returned error: %v", err)
	}

	wantTypes := []models.CardType{
		models.CardTypeWord,
		models.CardTypePhrase,
		models.CardTypeWord,
		models.CardTypePhrase,
		models.CardTypeWord,
	}
	if len(cards) != len(wantTypes) {
		t.Fatalf("got %d cards, want %d", len(cards), len(wantTypes))
	}
	for i, card := range cards {
		if card.Type != wantTypes[i] {
			t.Errorf("card %d type = %q, want %q", i, card.Type, wantTypes[i])
		}
	}
}

func TestGenerateLessonContentPhraseLeftovers(t *testing.T) {
	svc := newTestService()

	lesson := models.Lesson{
		Level:        models.LevelBeginner,
		WordsCount:   1,
		PhrasesCount: 4,
	}

	cards, err := svc.GenerateLessonContent(context.Background(), lesson, "french")
	if err != nil {
		t.Fatalf("GenerateLessonContent returned error: %v", err)
	}

	wantTypes := []models.CardType{
		models.CardTypeWord,
		models.CardTypePhrase,
		models.CardTypePhrase,
		models.CardTypePhrase,
		models.CardTypePhrase,
	}
	if len(cards) != len(wantTypes) {
		t.Fatalf("got %d cards, want %d", len(cards), len(wantTypes))
	}
	for i, card := range cards {
		if card.Type != wantTypes[i] {
			t.Errorf("card %d type = %q, want %q", i, card.Type, wantTypes[i])
		}
	}
}

func TestShouldUnlockLesson(t *testing.T) {
	svc := newTestService()

	week1 := models.Lesson{ID: "w1_l1_intro", WeekNumber: 1}
	week2 := models.Lesson{ID: "w2_l1_next", WeekNumber: 2}

	if !svc.ShouldUnlockLesson(week1, nil) {
		t.Error("week-1 lesson must always unlock")
	}

	// Week 1 plans 2 lessons; ceil(2*0.6) = 2 completions required
	oneDone := []models.LessonProgress{
		{LessonID: "w1_l1_intro", Completed: true},
		{LessonID: "w1_l2_other", Completed: false},
	}
	if svc.ShouldUnlockLesson(week2, oneDone) {
		t.Error("week 2 unlocked with only 1 of 2 previous-week completions")
	}

	bothDone := []models.LessonProgress{
		{LessonID: "w1_l1_intro", Completed: true},
		{LessonID: "w1_l2_other", Completed: true},
	}
	if !svc.ShouldUnlockLesson(week2, bothDone) {
		t.Error("week 2 stayed locked with all previous-week lessons completed")
	}

	// Completions from unrelated weeks must not count
	wrongWeek := []models.LessonProgress{
		{LessonID: "w3_l1_later", Completed: true},
		{LessonID: "w3_l2_later", Completed: true},
	}
	if svc.ShouldUnlockLesson(week2, wrongWeek) {
		t.Error("week 2 unlocked from completions in week 3")
	}
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name                                 string
		cardsCompleted, totalCards, mistakes int
		want                                 int
	}{
		{"no cards completed", 0, 10, 0, 30},
		{"half done one mistake", 5, 10, 1, 63},
		{"perfect run", 10, 10, 0, 100},
		{"mistakes floor at zero bonus", 10, 10, 50, 80},
		{"zero total cards", 5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScore(tt.cardsCompleted, tt.totalCards, tt.mistakes)
			if got != tt.want {
				t.Errorf("CalculateScore(%d, %d, %d) = %d, want %d", tt.cardsCompleted, tt.totalCards, tt.mistakes, got, tt.want)
			}
		})
	}
}

func TestIsLessonCompleted(t *testing.T) {
	tests := []struct {
		cardsCompleted, totalCards int
		want                       bool
	}{
		{8, 10, true},
		{7, 10, false},
		{79, 100, false},
		{80, 100, true},
		{0, 0, false},
		// 7.96 of 10 would round to 80%, so 7960/10000 counts
		{7960, 10000, true},
	}

	for _, tt := range tests {
		if got := IsLessonCompleted(tt.cardsCompleted, tt.totalCards); got != tt.want {
			t.Errorf("IsLessonCompleted(%d, %d) = %v, want %v", tt.cardsCompleted, tt.totalCards, got, tt.want)
		}
	}
}

func TestWeekFromLessonID(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"w1_l1_basics_greetings", 1},
		{"w104_l2_advanced_conversation", 104},
		{"lesson1", 0},
		{"w_l1_missing", 0},
	}
	for _, tt := range tests {
		if got := WeekFromLessonID(tt.id); got != tt.want {
			t.Errorf("WeekFromLessonID(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}
