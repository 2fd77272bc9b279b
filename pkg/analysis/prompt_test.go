package analysis

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/entities"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func promptDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad day %q: %v", value, err)
	}
	return day
}

func TestRenderEntriesFormatsOneLinePerMeal(t *testing.T) {
	feelings := "sluggish"
	entries := []*entities.FoodEntry{
		{
			ID:          uuid.New(),
			Date:        promptDay(t, "2026-08-20"),
			MealType:    "Breakfast",
			Description: "Oatmeal with berries",
		},
		{
			ID:          uuid.New(),
			Date:        promptDay(t, "2026-08-20"),
			MealType:    "Dinner",
			Description: "Late-night pizza",
			Feelings:    &feelings,
		},
	}

	got := renderEntries(entries)
	want := "Date: 2026-08-20, Meal: Breakfast, Description: Oatmeal with berries\n" +
		"Date: 2026-08-20, Meal: Dinner, Description: Late-night pizza, Feelings after: sluggish"
	if got != want {
		t.Fatalf("rendered entries mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestRenderEntriesIsDeterministic(t *testing.T) {
	entries := []*entities.FoodEntry{
		{ID: uuid.New(), Date: promptDay(t, "2026-08-20"), MealType: "Lunch", Description: "Salmon"},
	}
	if renderEntries(entries) != renderEntries(entries) {
		t.Fatal("rendering the same entries twice must produce identical text")
	}
}

func TestComposePromptWithoutPriorContext(t *testing.T) {
	got := composePrompt("Date: 2026-08-20, Meal: Lunch, Description: Salmon", "")
	if !strings.HasPrefix(got, "Food diary entries:\n") {
		t.Fatalf("unexpected prompt: %q", got)
	}
	if strings.Contains(got, "Previous analysis") {
		t.Fatalf("prompt must not mention a previous analysis: %q", got)
	}
}

func TestComposePromptWithPriorContext(t *testing.T) {
	got := composePrompt("Date: 2026-08-23, Meal: Lunch, Description: Salmon", `{"recommended":[]}`)
	for _, want := range []string{
		"Previous analysis:\n{\"recommended\":[]}",
		"New food entries since last analysis:\nDate: 2026-08-23",
		"Please update your analysis incorporating the new entries.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestSerializePriorContextIsStable(t *testing.T) {
	result := domain.AnalysisResult{
		Recommended:    []domain.DishAdvice{{Dish: "Salmon", Reason: "Good energy"}},
		NotRecommended: []domain.DishAdvice{},
		AvoidProducts:  []domain.ProductAdvice{{Product: "Soda", Reason: "Crashes"}},
	}

	first, err := serializePriorContext(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := serializePriorContext(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("serialization must be stable:\nfirst:  %s\nsecond: %s", first, second)
	}
	if !strings.HasPrefix(first, `{"recommended":`) {
		t.Fatalf("unexpected field order: %s", first)
	}
}
