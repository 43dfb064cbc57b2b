package llmChat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

const (
	greeting = "👋 Hi! I'm your Smart Tour travel guide! "

	questionPlaceType = "What kind of place do you want to visit? Mountain, Beach, Historical, City, Village, etc."
	questionBudget    = "What is your budget in INR? Example: 30k"
	questionSeason    = "What month or season do you want to visit in? Example July or Monsoon"
	questionSource    = "Where will you be travelling from?"

	askMoreMessage = "Do you need more recommendations? (yes/no)"
	closingMessage = "Thank you for using Smart Tour! I hope you found the recommendations helpful. " +
		"Feel free to come back anytime you're planning your next adventure!"
	recommendationFailedMessage = "I'm having trouble connecting to my travel database right now. " +
		"Please try again in a few moments."
)

var questions = map[types.ConversationState]string{
	types.StateAskPlaceType: questionPlaceType,
	types.StateAskBudget:    questionBudget,
	types.StateAskSeason:    questionSeason,
	types.StateAskSource:    questionSource,
}

// nextState is the questionnaire order. AskSource hands off to the recommender.
var nextState = map[types.ConversationState]types.ConversationState{
	types.StateAskPlaceType: types.StateAskBudget,
	types.StateAskBudget:    types.StateAskSeason,
	types.StateAskSeason:    types.StateAskSource,
	types.StateAskSource:    types.StateAwaitingRecommendation,
}

var emptyAnswerMessages = map[types.ConversationState]string{
	types.StateAskPlaceType: "Please specify what kind of place you want to visit (Mountain, Beach, Historical, etc.).",
	types.StateAskBudget:    "Please provide a valid budget in INR.",
	types.StateAskSeason:    "Please specify when you want to travel (month or season).",
	types.StateAskSource:    "Please specify where you will be traveling from.",
}

const (
	invalidPlaceTypeMessage = "Please specify a valid place type like Mountain, Beach, Historical, City, etc."
	invalidBudgetMessage    = "Please provide a valid budget in INR format (e.g., 500, 30k, 30,000, 30000 INR)."
	invalidSeasonMessage    = "Please specify a valid season or month (e.g., Summer, Winter, July, December)."
	invalidSourceMessage    = "Please provide a valid city name you'll be traveling from."
)

// Closed keyword lists. An answer is accepted if it contains any entry.
var (
	placeTypeKeywords = []string{
		"mountain", "beach", "historical", "city", "village", "adventure", "hill", "desert", "forest",
		"wildlife", "pilgrimage", "romantic", "urban", "fun", "honeymoon", "museum", "local", "educational",
	}
	seasonKeywords = []string{
		"summer", "winter", "monsoon", "spring", "autumn", "fall", "rainy",
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
	}
	majorCities = []string{
		"delhi", "mumbai", "kolkata", "chennai", "bangalore", "hyderabad", "ahmedabad", "pune",
		"jaipur", "lucknow", "kanpur", "nagpur", "indore", "thane", "bhopal",
	}
)

var (
	budgetPattern = regexp.MustCompile(`\b(\d+k|\d{1,3}(?:,\d{3})+|\d+)\s*(inr|rs)?\b`)
	// figurePattern is a number with grouping or decimals and the word right after it.
	figurePattern = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*([a-z]+)?`)
	// a minus not glued to a preceding figure, so "10-20k" is a range
	negativePattern = regexp.MustCompile(`(?:^|[^\w])-\s*\d`)
)

var unitMultipliers = map[string]float64{
	"":         1,
	"inr":      1,
	"rs":       1,
	"rupee":    1,
	"rupees":   1,
	"k":        1e3,
	"thousand": 1e3,
	"l":        1e5,
	"lac":      1e5,
	"lacs":     1e5,
	"lakh":     1e5,
	"lakhs":    1e5,
	"cr":       1e7,
	"crore":    1e7,
	"crores":   1e7,
}

// Validator checks a raw answer against the rule of the step being asked.
type Validator struct {
	minBudgetINR int
}

func NewValidator(minBudgetINR int) *Validator {
	return &Validator{minBudgetINR: minBudgetINR}
}

// Validate returns ("", true) when input is acceptable for state, otherwise
// the corrective message to send back.
func (v *Validator) Validate(state types.ConversationState, input string) (string, bool) {
	answer := strings.ToLower(strings.TrimSpace(input))
	if answer == "" || answer == "don't know" || answer == "dont know" || answer == "don’t know" {
		if msg, ok := emptyAnswerMessages[state]; ok {
			return msg, false
		}
		return "Please provide a valid response.", false
	}

	switch state {
	case types.StateAskPlaceType:
		if !containsAny(answer, placeTypeKeywords) {
			return invalidPlaceTypeMessage, false
		}
	case types.StateAskBudget:
		return v.validateBudget(answer)
	case types.StateAskSeason:
		if !containsAny(answer, seasonKeywords) {
			return invalidSeasonMessage, false
		}
	case types.StateAskSource:
		if !containsAny(answer, majorCities) && len([]rune(answer)) < 3 {
			return invalidSourceMessage, false
		}
	}
	return "", true
}

func (v *Validator) validateBudget(answer string) (string, bool) {
	if !budgetPattern.MatchString(answer) {
		return invalidBudgetMessage, false
	}
	tooLow := fmt.Sprintf("Please enter a budget of at least %d INR.", v.minBudgetINR)
	if negativePattern.MatchString(answer) {
		return tooLow, false
	}
	if amount, ok := readBudgetAmount(answer); ok && amount < float64(v.minBudgetINR) {
		return tooLow, false
	}
	return "", true
}

// readBudgetAmount returns the largest figure in the answer in rupees, so a
// range counts by its upper bound. Units k, thousand, lakh and crore are
// applied. ok is false when no figure is found or a figure carries a word
// that is not a known unit.
func readBudgetAmount(answer string) (float64, bool) {
	matches := figurePattern.FindAllStringSubmatch(answer, -1)
	if len(matches) == 0 {
		return 0, false
	}
	var highest float64
	for _, m := range matches {
		multiplier, known := unitMultipliers[m[2]]
		if !known {
			return 0, false
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			return 0, false
		}
		highest = max(highest, n*multiplier)
	}
	return highest, true
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// wantsMore reports whether an answer to the follow-up question restarts the flow.
func wantsMore(input string) bool {
	return strings.Contains(strings.ToLower(input), "yes")
}
