// rules.go renders the static /rules help text.

package scoring

// RulesText is the full scoring cheat sheet shown by /rules.
// Keep it in sync with the calculators above; the thresholds are
// compile-time constants, not configuration.
func RulesText() string {
	return "📜 **Fitness Challenge Rules (Simplified)**\n\n" +
		"**EARNING POINTS**\n" +
		"• Lifting: 30m=1, 45m=1.25, 60m=1.5 (`/log_lift`)\n" +
		"• Running/Cardio: 30m=1, 45m=1.25, 60m=1.5 (`/log_run`)\n" +
		"• Steps: 10k=1, 15k+=1.5 (`/log_steps`)\n" +
		"• Sleep: 6–7.9h=1, 8h+=2 (`/log_sleep`)\n" +
		"• Protein: heavy meal=1, shake=0.5, cap 1.5 (`/log_protein`)\n" +
		"• Supplements: +0.25 each (vitamins, creatine, magnesium, omega-3) (`/log_supplements`)\n" +
		"• Water: 80oz+=0.5 (`/log_water`)\n\n" +
		"**NEGATIVE POINTS**\n" +
		"• Alcohol: -1 per 3 drinks (`/log_alcohol`)\n" +
		"• Pastries: -1 each (`/log_pastry`)\n" +
		"• Fast Food: -1 each (`/log_fastfood`)\n\n" +
		"Use `/checkin`, `/checkin_yesterday`, `/week_summary`, `/weekly_winners`, `/streak`, " +
		"`/daily_summary`, and `/leaderboard` to play."
}
