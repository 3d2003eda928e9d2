package media

import "github.com/vitrine-app/vitrine/internal/models"

// ValidCategory reports whether category is "all" or a known media type
func ValidCategory(category string) bool {
	return category == models.CategoryAll || models.MediaType(category).Valid()
}

// FilterByCategory narrows items to the selected category. "all" passes
// everything through. The result is an order-preserving subsequence of the
// input; the caller's sort (newest first) survives filtering.
func FilterByCategory(items []*models.MediaItem, category string) []*models.MediaItem {
	if category == models.CategoryAll {
		return items
	}

	filtered := make([]*models.MediaItem, 0, len(items))
	for _, item := range items {
		if string(item.Type) == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
