// questions.go declares the fixed question sequence of
// the guided dialog and the per-question answer parsing.

package checkin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironkeep/fitness-bot/internal/features/scoring"
)

type fieldKind int

const (
	fieldInt fieldKind = iota
	fieldFloat
	fieldYesNo
)

// Question is one step of the dialog. Every field defaults to zero/no;
// "skip" and a timeout both resolve to that default.
type Question struct {
	Key    string
	prompt string // body, with one %s for the day label
	kind   fieldKind
	max    float64
}

// questions is the fixed order the dialog walks through. The summary
// state follows the last entry.
var questions = []Question{
	{Key: "strength", kind: fieldInt, max: scoring.MaxActivityMinutes,
		prompt: "For **%s**, how many **minutes of lifting/strength** did you do?"},
	{Key: "cardio", kind: fieldInt, max: scoring.MaxActivityMinutes,
		prompt: "For **%s**, how many **minutes of running/cardio** did you do? (If you only want steps, use `0` here.)"},
	{Key: "steps", kind: fieldInt, max: scoring.MaxSteps,
		prompt: "For **%s**, how many **steps** did you take?"},
	{Key: "sleep", kind: fieldFloat, max: scoring.MaxSleepHours,
		prompt: "For **%s**, how many **hours of sleep** did you get (e.g. 7.5)?"},
	{Key: "heavy_meals", kind: fieldInt, max: scoring.MaxProteinMeals,
		prompt: "For **%s**, how many **heavy protein meals** (chicken/steak/fish/4+ eggs) did you have?"},
	{Key: "shakes", kind: fieldInt, max: scoring.MaxProteinShakes,
		prompt: "For **%s**, how many **protein shakes** did you drink?"},
	{Key: "vitamins", kind: fieldYesNo,
		prompt: "For **%s**, did you take your **vitamin**?"},
	{Key: "creatine", kind: fieldYesNo,
		prompt: "For **%s**, did you take **creatine**?"},
	{Key: "magnesium", kind: fieldYesNo,
		prompt: "For **%s**, did you take **magnesium**?"},
	{Key: "omega3", kind: fieldYesNo,
		prompt: "For **%s**, did you take **omega-3**?"},
	{Key: "water", kind: fieldInt, max: scoring.MaxWaterOunces,
		prompt: "For **%s**, how many **ounces of water** did you drink?"},
	{Key: "alcohol", kind: fieldInt, max: scoring.MaxAlcoholDrinks,
		prompt: "For **%s**, how many **alcoholic drinks** did you have?"},
	{Key: "pastry", kind: fieldInt, max: scoring.MaxPastries,
		prompt: "For **%s**, how many **pastries/desserts** did you eat?"},
	{Key: "fastfood", kind: fieldInt, max: scoring.MaxFastFoodMeals,
		prompt: "For **%s**, how many **fast-food meals** did you eat?"},
}

// PromptFor renders the full prompt line for a user, including the skip
// hint with the default.
func (q Question) PromptFor(mention, label string) string {
	body := fmt.Sprintf(q.prompt, label)
	if q.kind == fieldYesNo {
		return fmt.Sprintf("%s %s (yes/no, or `skip` to use `no`)", mention, body)
	}
	return fmt.Sprintf("%s %s (type a number, or `skip` to use `%s`)", mention, body, q.DefaultLabel())
}

// DefaultLabel is the default shown in prompts and timeout notices.
func (q Question) DefaultLabel() string {
	if q.kind == fieldYesNo {
		return "no"
	}
	return "0"
}

// Parse interprets one reply. It returns the parsed value and true when
// the answer is accepted, or false plus the re-prompt to send when the
// reply is invalid or out of range. Yes/no answers parse to 1/0.
func (q Question) Parse(content string) (float64, bool, string) {
	content = strings.ToLower(strings.TrimSpace(content))
	if content == "skip" {
		return 0, true, ""
	}

	if q.kind == fieldYesNo {
		switch content {
		case "y", "yes":
			return 1, true, ""
		case "n", "no":
			return 0, true, ""
		}
		return 0, false, "Please reply with `yes`, `no`, or `skip`."
	}

	var val float64
	if q.kind == fieldFloat {
		parsed, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return 0, false, "Please enter a valid number or `skip`."
		}
		val = parsed
	} else {
		parsed, err := strconv.Atoi(content)
		if err != nil {
			return 0, false, "Please enter a valid number or `skip`."
		}
		val = float64(parsed)
	}

	if val < 0 {
		return 0, false, "Please enter a value ≥ 0, or `skip`."
	}
	if val > q.max {
		return 0, false, fmt.Sprintf("Please enter a value ≤ %s, or `skip`.", strconv.FormatFloat(q.max, 'f', -1, 64))
	}
	return val, true, ""
}
