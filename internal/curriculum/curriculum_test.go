package curriculum

import (
	"reflect"
	"testing"

	"lingoswipe/internal/models"
)

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate()
	second := Generate()

	if !reflect.DeepEqual(first, second) {
		t.Error("Generate() produced different output on repeated calls")
	}
}

func TestGenerateCatalogShape(t *testing.T) {
	templates := Generate()

	want := TotalWeeks * LessonsPerWeek
	if len(templates) != want {
		t.Fatalf("Generate() returned %d templates, want %d", len(templates), want)
	}

	seen := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		if seen[tpl.ID] {
			t.Errorf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true
	}

	for i := 1; i < len(templates); i++ {
		prev, cur := templates[i-1], templates[i]
		if cur.WeekNumber < prev.WeekNumber {
			t.Fatalf("templates not sorted by week: %d before %d", prev.WeekNumber, cur.WeekNumber)
		}
		if cur.WeekNumber == prev.WeekNumber && cur.ID < prev.ID {
			t.Fatalf("templates not sorted by id within week %d: %q before %q", cur.WeekNumber, prev.ID, cur.ID)
		}
	}
}

func TestLevelForWeekBands(t *testing.T) {
	tests := []struct {
		week int
		want models.Level
	}{
		{1, models.LevelBeginner},
		{32, models.LevelBeginner},
		{33, models.LevelIntermediate},
		{72, models.LevelIntermediate},
		{73, models.LevelAdvanced},
		{104, models.LevelAdvanced},
	}

	for _, tt := range tests {
		if got := LevelForWeek(tt.week); got != tt.want {
			t.Errorf("LevelForWeek(%d) = %q, want %q", tt.week, got, tt.want)
		}
	}

	// Every generated template must agree with the band function
	for _, tpl := range Generate() {
		if tpl.Level != LevelForWeek(tpl.WeekNumber) {
			t.Errorf("template %q has level %q, want %q for week %d", tpl.ID, tpl.Level, LevelForWeek(tpl.WeekNumber), tpl.WeekNumber)
		}
	}
}

func TestDifficultyForWeek(t *testing.T) {
	tests := []struct {
		week int
		want int
	}{
		{1, 1},
		{3, 1},
		{4, 2},
		{12, 4},
		{13, 4},
		{23, 5},
		{32, 5},
		{33, 5},
		{63, 8},
		{72, 8},
		{73, 8},
		{97, 10},
		{104, 10},
	}

	for _, tt := range tests {
		if got := DifficultyForWeek(tt.week); got != tt.want {
			t.Errorf("DifficultyForWeek(%d) = %d, want %d", tt.week, got, tt.want)
		}
	}

	prev := 0
	for week := 1; week <= TotalWeeks; week++ {
		d := DifficultyForWeek(week)
		if d < 1 || d > 10 {
			t.Errorf("DifficultyForWeek(%d) = %d, outside 1-10", week, d)
		}
		if d < prev {
			t.Errorf("difficulty decreased at week %d: %d after %d", week, d, prev)
		}
		prev = d
	}
}

func TestCardQuotasFollowDifficulty(t *testing.T) {
	for _, tpl := range Generate() {
		base := 10 + tpl.Difficulty*2
		wantWords := base
		wantPhrases := maxInt(6, 6+tpl.Difficulty*2-2)
		if slotFromID(tpl.ID) == 2 {
			wantWords = maxInt(8, base-2)
			wantPhrases = 6 + tpl.Difficulty*2
		}

		if tpl.WordCount != wantWords {
			t.Errorf("template %q wordCount = %d, want %d", tpl.ID, tpl.WordCount, wantWords)
		}
		if tpl.PhraseCount != wantPhrases {
			t.Errorf("template %q phraseCount = %d, want %d", tpl.ID, tpl.PhraseCount, wantPhrases)
		}
	}
}

func TestThemeCycling(t *testing.T) {
	templates := Generate()
	byWeekSlot := make(map[[2]int]models.LessonTemplate)
	for _, tpl := range templates {
		byWeekSlot[[2]int{tpl.WeekNumber, slotFromID(tpl.ID)}] = tpl
	}

	// Beginner themes cycle with period 11: week 12 repeats week 1's theme
	week1 := byWeekSlot[[2]int{1, 1}]
	week12 := byWeekSlot[[2]int{12, 1}]
	if week12.Title != week1.Title || week12.Category != week1.Category {
		t.Errorf("week 12 slot 1 = %q/%q, want theme of week 1 (%q/%q)", week12.Title, week12.Category, week1.Title, week1.Category)
	}

	// Intermediate themes cycle with period 8 starting at week 33
	week33 := byWeekSlot[[2]int{33, 2}]
	week41 := byWeekSlot[[2]int{41, 2}]
	if week41.Title != week33.Title {
		t.Errorf("week 41 slot 2 title = %q, want %q", week41.Title, week33.Title)
	}
}

func TestMonthForWeek(t *testing.T) {
	tests := []struct{ week, want int }{
		{1, 1}, {4, 1}, {5, 2}, {8, 2}, {104, 26},
	}
	for _, tt := range tests {
		if got := MonthForWeek(tt.week); got != tt.want {
			t.Errorf("MonthForWeek(%d) = %d, want %d", tt.week, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"basics & greetings", "basics_greetings"},
		{"numbers 1-10", "numbers_1_10"},
		{"register & style", "register_style"},
		{"UPPER case", "upper_case"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFullIsMemoized(t *testing.T) {
	a := Full()
	b := Full()
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("Full() did not return the memoized catalog")
	}
}

// slotFromID reads the lesson slot out of a "w<week>_l<slot>_..." id
func slotFromID(id string) int {
	for i := 0; i < len(id)-1; i++ {
		if id[i] == '_' && id[i+1] == 'l' {
			return int(id[i+2] - '0')
		}
	}
	return 0
}
