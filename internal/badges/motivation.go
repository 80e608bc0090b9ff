package badges

import (
	"fmt"
	"math/rand"
)

// Tier groups streak lengths that share a message pool.
type Tier string

const (
	TierNone   Tier = "none"
	TierLow    Tier = "low"    // 1-2 days
	TierMedium Tier = "medium" // 3-6 days
	TierHigh   Tier = "high"   // 7+ days
)

// TierFor maps a current streak to its tier.
func TierFor(streak int) Tier {
	switch {
	case streak >= 7:
		return TierHigh
	case streak >= 3:
		return TierMedium
	case streak >= 1:
		return TierLow
	}
	return TierNone
}

// Messages returns the pool for streak with the day count filled in.
func Messages(streak int) []string {
	switch TierFor(streak) {
	case TierHigh:
		return []string{
			fmt.Sprintf("Amazing %d-day streak! Keep the momentum going! 🔥", streak),
			fmt.Sprintf("%d days strong! Your dedication is inspiring! ⭐", streak),
			fmt.Sprintf("Subhan'Allah! %d consecutive days of prayers! 🤲", streak),
		}
	case TierMedium:
		return []string{
			fmt.Sprintf("Great work on your %d-day streak! 💪", streak),
			fmt.Sprintf("%d days of consistent prayers! Keep it up! 🌟", streak),
			fmt.Sprintf("Your %d-day journey is beautiful! 🌱", streak),
		}
	case TierLow:
		return []string{
			"Every prayer is a step closer to Allah 🤲",
			"Consistency is key. You're building a beautiful habit! 🌱",
			"Each prayer is a blessing. Keep going! ⭐",
		}
	}
	return []string{
		"Today is a new beginning. Start fresh! 🌅",
		"Every moment is a chance to reconnect with Allah 🤲",
		"Your spiritual journey starts with a single prayer 🌟",
	}
}

// Motivation picks a message for streak. A nil rnd uses the global source.
func Motivation(streak int, rnd *rand.Rand) string {
	pool := Messages(streak)
	if rnd == nil {
		return pool[rand.Intn(len(pool))]
	}
	return pool[rnd.Intn(len(pool))]
}
