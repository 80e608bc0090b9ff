package stats

// Summary bundles every domain summary; badges are evaluated against it.
type Summary struct {
	Prayers     PrayerSummary     `json:"prayers"`
	Reflections ReflectionSummary `json:"reflections"`
	Dhikr       DhikrSummary      `json:"dhikr"`
}
