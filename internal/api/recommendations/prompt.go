package recommendations

import "fmt"

// buildRecommendationPrompt is deterministic for a given set of preferences.
func buildRecommendationPrompt(placeType, budget, season, source string) string {
	return fmt.Sprintf(`
You are a travel advisor specializing in Indian tourism.
Suggest 5 specific destinations in India for %[1]s places with a budget of %[2]s INR to visit in %[3]s from %[4]s.

Format your response as follows:

Start with a brief introduction paragraph.

Then list 5 destinations in this format:
1. State Name (Specific places/cities/towns/villages inside parentheses)
• Special: Brief description of what makes this destination special.
• Attractions: Key attractions to visit.
• Budget Considerations: Information about costs.
• Best Season: When to visit and current conditions.
• Ideal Days: Recommended length of stay.
• Travel from %[4]s: How to get there.

2. Next Destination (Specific places)
...and so on.

After listing all 5 destinations, include:
• Budget Breakdown (Approximate for 7 Days): with categories like Transportation, Accommodation, Food, etc.
• Travel Tips for %[3]s: practical advice for travelers.

IMPORTANT: Make sure to use proper bullet points (•) and avoid using ** or <strong> tags for formatting.
`, placeType, budget, season, source)
}
