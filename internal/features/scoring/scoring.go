// Package scoring is the points engine for the fitness challenge.
// Every function here is a pure step function over fixed thresholds:
// no IO, no clock, no state. Points are computed once at log time and
// stored with the entry, so changing a threshold never rewrites history.
//
// Inputs are assumed to be inside the documented bounds (Min*/Max* below);
// the command layer and the check-in dialog validate before calling.
package scoring

// Input bounds, enforced by slash-command option ranges and by the
// check-in dialog before anything reaches the calculators.
const (
	MaxActivityMinutes = 300
	MaxSteps           = 100_000
	MaxSleepHours      = 16.0
	MaxProteinMeals    = 10
	MaxProteinShakes   = 10
	MaxWaterOunces     = 300
	MaxAlcoholDrinks   = 30
	MaxPastries        = 20
	MaxFastFoodMeals   = 10
)

// StrengthPoints scores a lifting / strength session by minutes.
//
//	<30 → 0, <45 → 1.0, <60 → 1.25, ≥60 → 1.5
func StrengthPoints(minutes int) float64 {
	switch {
	case minutes < 30:
		return 0.0
	case minutes < 45:
		return 1.0
	case minutes < 60:
		return 1.25
	default:
		return 1.5
	}
}

// CardioPoints scores a running / cardio session by minutes.
// Same thresholds as strength.
func CardioPoints(minutes int) float64 {
	return StrengthPoints(minutes)
}

// StepsPoints scores a day's step count. 10,000 steps meets the 30-minute
// run criteria (1 pt); 15,000+ is the 1.5 pt tier.
func StepsPoints(steps int) float64 {
	switch {
	case steps < 10_000:
		return 0.0
	case steps < 15_000:
		return 1.0
	default:
		return 1.5
	}
}

// SleepPoints scores last night's sleep in hours.
//
//	<6 → 0, <8 → 1.0, ≥8 → 2.0
func SleepPoints(hours float64) float64 {
	switch {
	case hours < 6:
		return 0.0
	case hours < 8:
		return 1.0
	default:
		return 2.0
	}
}

// ProteinPoints scores protein intake: 1.0 per heavy meal, 0.5 per shake,
// capped at 1.5 for the day.
func ProteinPoints(heavyMeals, shakes int) float64 {
	pts := float64(heavyMeals)*1.0 + float64(shakes)*0.5
	if pts > 1.5 {
		return 1.5
	}
	return pts
}

// SupplementPoints scores the four daily supplements at 0.25 each,
// so a full stack is worth 1.0.
func SupplementPoints(vitamins, creatine, magnesium, omega3 bool) float64 {
	count := 0
	for _, taken := range []bool{vitamins, creatine, magnesium, omega3} {
		if taken {
			count++
		}
	}
	return float64(count) * 0.25
}

// SupplementCount is the number of supplements taken; stored as the
// entry value so the log stays inspectable.
func SupplementCount(vitamins, creatine, magnesium, omega3 bool) int {
	count := 0
	for _, taken := range []bool{vitamins, creatine, magnesium, omega3} {
		if taken {
			count++
		}
	}
	return count
}

// WaterPoints scores water intake: 0.5 for 80oz or more, otherwise nothing.
func WaterPoints(ounces int) float64 {
	if ounces >= 80 {
		return 0.5
	}
	return 0.0
}

// AlcoholPenalty is -1 for every full 3 drinks. Fewer than 3 is free.
//
//	2 → 0, 3 → -1, 5 → -1, 6 → -2
func AlcoholPenalty(drinks int) float64 {
	if drinks < 3 {
		return 0.0
	}
	return -1.0 * float64(drinks/3)
}

// PastryPenalty is -1 per pastry / dessert.
func PastryPenalty(count int) float64 {
	return -1.0 * float64(count)
}

// FastFoodPenalty is -1 per fast-food meal.
func FastFoodPenalty(meals int) float64 {
	return -1.0 * float64(meals)
}
