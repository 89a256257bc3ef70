// badges.go maps a current streak length to its named
// tier. A pure step function, highest tier first.

package streak

// Badge returns the badge line for a current streak length.
func Badge(streak int) string {
	switch {
	case streak >= 30:
		return "🚀 30-Day Legend"
	case streak >= 21:
		return "👑 21-Day Monarch"
	case streak >= 14:
		return "🐉 14-Day Beast"
	case streak >= 7:
		return "🏅 7-Day Warrior"
	case streak >= 5:
		return "💪 5-Day Grinder"
	case streak >= 3:
		return "🔥 3-Day Spark"
	default:
		return "✨ No badge yet — keep going!"
	}
}
