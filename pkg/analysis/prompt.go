package analysis

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/entities"
	"Ralph-Backend/pkg/gemini"
	"encoding/json"
	"fmt"
	"strings"
)

// systemInstruction is constant; nothing user-supplied is ever mixed into it.
const systemInstruction = "You are a professional nutrition and wellness analyst. " +
	"Analyze the user's food diary and correlate what they eat with how they feel after meals. " +
	"Identify patterns between specific foods/meals and reported emotional or physical states. " +
	"Provide personalized dietary recommendations based on these patterns."

var dishAdviceSchema = &gemini.Schema{
	Type: "OBJECT",
	Properties: map[string]*gemini.Schema{
		"dish":   {Type: "STRING"},
		"reason": {Type: "STRING"},
	},
	Required: []string{"dish", "reason"},
}

var analysisSchema = &gemini.Schema{
	Type: "OBJECT",
	Properties: map[string]*gemini.Schema{
		"recommended":    {Type: "ARRAY", Items: dishAdviceSchema},
		"notRecommended": {Type: "ARRAY", Items: dishAdviceSchema},
		"avoidProducts": {Type: "ARRAY", Items: &gemini.Schema{
			Type: "OBJECT",
			Properties: map[string]*gemini.Schema{
				"product": {Type: "STRING"},
				"reason":  {Type: "STRING"},
			},
			Required: []string{"product", "reason"},
		}},
	},
	Required: []string{"recommended", "notRecommended", "avoidProducts"},
}

// renderEntries turns the selected entries into the one line per meal the
// generation service sees. Same entries always produce byte-identical text.
func renderEntries(entries []*entities.FoodEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		line := fmt.Sprintf("Date: %s, Meal: %s, Description: %s",
			entry.Date.Format("2006-01-02"), entry.MealType, entry.Description)
		if entry.Feelings != nil {
			line += fmt.Sprintf(", Feelings after: %s", *entry.Feelings)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func composePrompt(entriesText string, priorContext string) string {
	if priorContext != "" {
		return "Previous analysis:\n" + priorContext +
			"\n\nNew food entries since last analysis:\n" + entriesText +
			"\n\nPlease update your analysis incorporating the new entries."
	}
	return "Food diary entries:\n" + entriesText
}

// serializePriorContext produces the stable string embedded verbatim in the
// incremental prompt. Field order follows the struct, so the same logical
// content always serializes identically.
func serializePriorContext(result domain.AnalysisResult) (string, error) {
	serialized, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(serialized), nil
}
