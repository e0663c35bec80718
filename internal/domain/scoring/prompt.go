package scoring

import (
	"fmt"
	"strings"
)

// RecipeNamePrompt asks the model to grade a recipe name and answer with a
// JSON object carrying "score" and "reason".
func RecipeNamePrompt(recipeName string) string {
	return fmt.Sprintf(`Evaluate the following recipe name for creativity, relevance, and originality:
"%s"
Provide:
- A score out of 10
- A brief reason for the score.
Return this as a JSON object with keys 'score' and 'reason'.`, recipeName)
}

// LeftoverPrompt asks the model for five dishes built from the given leftovers.
func LeftoverPrompt(ingredients []string) string {
	return fmt.Sprintf(`Suggest 5 creative dish names and recipes based on the following leftover ingredients:
%s
Provide the output as a list of dictionaries with "name" and "recipe" keys.`, strings.Join(ingredients, ", "))
}

// SplitIngredients splits a comma-separated list, trimming items and
// dropping empty ones.
func SplitIngredients(list string) []string {
	var out []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
