package session

import (
	"testing"

	"github.com/ssantos/wordkids/internal/catalog"
)

func TestSelectCategoryResetsEverything(t *testing.T) {
	s := NewState()
	s.Mode = ModeQuiz
	s.CurrentIndex = 3
	s.Score = 200
	s.Completed = true

	SelectCategory(s, catalog.CategoryAnimals)

	if s.Category != catalog.CategoryAnimals {
		t.Errorf("category = %q, want %q", s.Category, catalog.CategoryAnimals)
	}
	if s.Mode != ModeNone || s.CurrentIndex != 0 || s.Score != 0 || s.Completed {
		t.Errorf("state not reset: %+v", s)
	}
}

func TestSelectModeStartsFresh(t *testing.T) {
	s := NewState()
	SelectCategory(s, catalog.CategoryColors)
	s.Score = 500
	s.Completed = true

	SelectMode(s, ModeMemory)

	if s.Mode != ModeMemory {
		t.Errorf("mode = %v, want %v", s.Mode, ModeMemory)
	}
	if s.CurrentIndex != 0 || s.Score != 0 || s.Completed {
		t.Errorf("mode start not fresh: %+v", s)
	}
	if s.Category != catalog.CategoryColors {
		t.Errorf("category lost on mode select: %q", s.Category)
	}
}

func TestAdvanceAwardsPointsPerCard(t *testing.T) {
	s := NewState()
	SelectCategory(s, catalog.CategoryFruits)
	SelectMode(s, ModeLearn)

	const items = 3
	Advance(s, items)
	Advance(s, items)

	if s.CurrentIndex != 2 {
		t.Errorf("index = %d, want 2", s.CurrentIndex)
	}
	if s.Score != 2*LearnPoints {
		t.Errorf("score = %d, want %d", s.Score, 2*LearnPoints)
	}
	if s.Completed {
		t.Error("completed before last card")
	}
}

func TestAdvancePastLastCardCompletes(t *testing.T) {
	s := NewState()
	SelectMode(s, ModeLearn)

	const items = 2
	Advance(s, items)
	Advance(s, items)

	if !s.Completed {
		t.Error("expected completion past the last card")
	}
	if s.CurrentIndex != items-1 {
		t.Errorf("index = %d, want %d (never reaches item count)", s.CurrentIndex, items-1)
	}
	if s.Score != 2*LearnPoints {
		t.Errorf("score = %d, want %d", s.Score, 2*LearnPoints)
	}
}

func TestGameComplete(t *testing.T) {
	s := NewState()
	SelectMode(s, ModeMemory)

	GameComplete(s, 870)

	if !s.Completed {
		t.Error("expected completed")
	}
	if s.Score != 870 {
		t.Errorf("score = %d, want 870", s.Score)
	}
}

func TestBackToModesKeepsCategory(t *testing.T) {
	s := NewState()
	SelectCategory(s, catalog.CategoryNumbers)
	SelectMode(s, ModeQuiz)
	s.Score = 300

	BackToModes(s)

	if s.Category != catalog.CategoryNumbers {
		t.Errorf("category = %q, want %q", s.Category, catalog.CategoryNumbers)
	}
	if s.Mode != ModeNone || s.Score != 0 || s.Completed {
		t.Errorf("mode state not cleared: %+v", s)
	}
}

func TestBackToCategoriesClearsEverything(t *testing.T) {
	s := NewState()
	SelectCategory(s, catalog.CategoryNumbers)
	SelectMode(s, ModeQuiz)

	BackToCategories(s)

	if s.HasCategory() {
		t.Errorf("category = %q, want empty", s.Category)
	}
	if s.Mode != ModeNone {
		t.Errorf("mode = %v, want none", s.Mode)
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    int
	}{
		{"start", 0, 10, 0},
		{"half", 5, 10, 50},
		{"done", 10, 10, 100},
		{"over", 12, 10, 100},
		{"empty total", 3, 0, 0},
		{"negative total", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressPercent(tt.current, tt.total); got != tt.want {
				t.Errorf("ProgressPercent(%d, %d) = %d, want %d", tt.current, tt.total, got, tt.want)
			}
		})
	}
}
