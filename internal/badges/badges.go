// Package badges turns a stats.Summary into newly earned achievements.
package badges

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/stats"
)

// Metric names the summary value a rule is compared against.
type Metric string

const (
	MetricPrayerStreak     Metric = "prayer_streak"
	MetricOnTimeRate       Metric = "on_time_rate"
	MetricPrayerRate       Metric = "prayer_rate" // needs Rule.Prayer
	MetricReflectionsTotal Metric = "reflections_total"
	MetricDhikrSessions    Metric = "dhikr_sessions"
)

// Rule awards a badge once its metric reaches Threshold.
type Rule struct {
	ID          string
	Metric      Metric
	Prayer      constants.PrayerName
	Threshold   float64
	Title       string
	Description string
	Icon        string
	Color       string
}

// Value extracts the rule's metric from s.
func (r Rule) Value(s stats.Summary) float64 {
	switch r.Metric {
	case MetricPrayerStreak:
		return float64(s.Prayers.CurrentStreak)
	case MetricOnTimeRate:
		return s.Prayers.OnTimeRate
	case MetricPrayerRate:
		return s.Prayers.PerPrayer[r.Prayer]
	case MetricReflectionsTotal:
		return float64(s.Reflections.Total)
	case MetricDhikrSessions:
		return float64(s.Dhikr.TotalSessions)
	}
	return 0
}

// Met reports whether s satisfies the rule.
func (r Rule) Met(s stats.Summary) bool {
	return r.Value(s) >= r.Threshold
}

// Badge stamps the rule as earned at now.
func (r Rule) Badge(now time.Time) models.Badge {
	return models.Badge{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Color:       r.Color,
		EarnedAt:    now,
	}
}

var prayerIcons = map[constants.PrayerName]string{
	constants.Fajr:    "🌅",
	constants.Dhuhr:   "☀️",
	constants.Asr:     "🌤️",
	constants.Maghrib: "🌅",
	constants.Isha:    "🌙",
}

// Catalog is every rule in evaluation order.
var Catalog = buildCatalog()

func buildCatalog() []Rule {
	rules := []Rule{
		streak(3, "First Steps", "3 days of complete prayers", "🌱", "#10B981"),
		streak(7, "Week Warrior", "7 days straight!", "⭐", "#F59E0B"),
		streak(14, "Two Weeks Strong", "14 days of dedication", "🔥", "#EF4444"),
		streak(30, "Month Master", "30 days of consistency", "👑", "#8B5CF6"),
		streak(100, "Century Club", "100 days of prayers!", "💎", "#06B6D4"),

		rate(50, "Getting Started", "🎯", "#10B981"),
		rate(75, "Consistent Worshipper", "🏆", "#F59E0B"),
		rate(90, "Punctual Prayer", "⏰", "#EF4444"),
		rate(95, "Near Perfect", "✨", "#8B5CF6"),
	}

	for _, name := range constants.Prayers {
		rules = append(rules, Rule{
			ID:          strings.ToLower(string(name)) + "_master",
			Metric:      MetricPrayerRate,
			Prayer:      name,
			Threshold:   0.8,
			Title:       fmt.Sprintf("%s Master", name),
			Description: fmt.Sprintf("80%% %s prayers on time", name),
			Icon:        prayerIcons[name],
			Color:       "#3B82F6",
		})
	}

	return append(rules,
		count("reflections", MetricReflectionsTotal, 1, "First Reflection", "Wrote your first reflection", "📝", "#10B981"),
		count("reflections", MetricReflectionsTotal, 10, "Thoughtful Heart", "10 reflections written", "📖", "#F59E0B"),
		count("reflections", MetricReflectionsTotal, 50, "Devoted Journal", "50 reflections written", "🕯️", "#8B5CF6"),
		count("dhikr", MetricDhikrSessions, 1, "First Remembrance", "Completed your first dhikr session", "📿", "#10B981"),
		count("dhikr", MetricDhikrSessions, 10, "Steady Tongue", "10 dhikr sessions completed", "💫", "#F59E0B"),
		count("dhikr", MetricDhikrSessions, 100, "Remembrance Keeper", "100 dhikr sessions completed", "🌟", "#06B6D4"),
	)
}

func streak(days int, title, desc, icon, color string) Rule {
	return Rule{
		ID:          fmt.Sprintf("streak_%d", days),
		Metric:      MetricPrayerStreak,
		Threshold:   float64(days),
		Title:       title,
		Description: desc,
		Icon:        icon,
		Color:       color,
	}
}

func rate(pct int, title, icon, color string) Rule {
	return Rule{
		ID:          fmt.Sprintf("rate_%d", pct),
		Metric:      MetricOnTimeRate,
		Threshold:   float64(pct) / 100,
		Title:       title,
		Description: fmt.Sprintf("%d%% prayers on time", pct),
		Icon:        icon,
		Color:       color,
	}
}

func count(prefix string, metric Metric, n int, title, desc, icon, color string) Rule {
	return Rule{
		ID:          fmt.Sprintf("%s_%d", prefix, n),
		Metric:      metric,
		Threshold:   float64(n),
		Title:       title,
		Description: desc,
		Icon:        icon,
		Color:       color,
	}
}

// Evaluate returns the badges s newly qualifies for, in catalog order.
// Rules whose id is already in earned are skipped even if still met.
func Evaluate(s stats.Summary, earned map[string]bool, now time.Time) []models.Badge {
	var out []models.Badge
	for _, rule := range Catalog {
		if earned[rule.ID] || !rule.Met(s) {
			continue
		}
		out = append(out, rule.Badge(now))
	}
	return out
}

// EarnedIDs indexes a badge list by id.
func EarnedIDs(list []models.Badge) map[string]bool {
	ids := make(map[string]bool, len(list))
	for _, b := range list {
		ids[b.ID] = true
	}
	return ids
}

// Lookup finds a catalog rule by badge id.
func Lookup(id string) (Rule, bool) {
	for _, rule := range Catalog {
		if rule.ID == id {
			return rule, true
		}
	}
	return Rule{}, false
}
