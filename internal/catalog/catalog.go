// Package catalog holds the static reference content: the dhikr catalog and
// the hadith corpus.
package catalog

import (
	"strings"
	"time"

	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/utils"
)

// AllCategories is the filter value that matches every category.
const AllCategories = "All"

// Dhikr returns a copy of the catalog in display order.
func Dhikr() []models.DhikrItem {
	return append([]models.DhikrItem(nil), dhikrItems...)
}

// Find looks up a catalog item by id.
func Find(id string) (models.DhikrItem, bool) {
	for _, item := range dhikrItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.DhikrItem{}, false
}

// Categories lists the distinct categories in first-seen order, prefixed
// with AllCategories.
func Categories() []string {
	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, item := range dhikrItems {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// Search filters the catalog by category and a case-insensitive query
// matched against transliteration, translation and Arabic text.
func Search(query, category string) []models.DhikrItem {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.DhikrItem
	for _, item := range dhikrItems {
		if category != "" && category != AllCategories && !strings.EqualFold(item.Category, category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Transliteration), query) &&
			!strings.Contains(strings.ToLower(item.Translation), query) &&
			!strings.Contains(item.Text, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// GroupByCategory buckets items by category, preserving order within each.
func GroupByCategory(items []models.DhikrItem) map[string][]models.DhikrItem {
	out := make(map[string][]models.DhikrItem)
	for _, item := range items {
		out[item.Category] = append(out[item.Category], item)
	}
	return out
}

// Hadith is one entry of the daily hadith rotation.
type Hadith struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Narrator string `json:"narrator"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// Hadiths returns a copy of the corpus.
func Hadiths() []Hadith {
	return append([]Hadith(nil), hadiths...)
}

// HadithForDay rotates through the corpus by day of year, so 1 January
// always shows the first entry.
func HadithForDay(t time.Time) Hadith {
	return hadiths[(t.YearDay()-1)%len(hadiths)]
}

// DailyHadith is HadithForDay for a YYYY-MM-DD date. An invalid date falls
// back to the first entry.
func DailyHadith(date string) Hadith {
	t, err := utils.ParseDate(date)
	if err != nil {
		return hadiths[0]
	}
	return HadithForDay(t)
}
