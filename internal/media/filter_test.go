package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine-app/vitrine/internal/models"
)

func makeItems(types ...models.MediaType) []*models.MediaItem {
	items := make([]*models.MediaItem, 0, len(types))
	for _, mt := range types {
		url := "https://example.com/content"
		if mt.RequiresFile() {
			url = "https://storage.example.com/media/blob"
		}
		item := models.NewMediaItem("Item", nil, mt, url, "https://storage.example.com/media/thumbnails/thumb")
		items = append(items, item)
	}
	return items
}

func TestFilterByCategory_All(t *testing.T) {
	items := makeItems(models.MediaTypeVideo, models.MediaTypeAudio, models.MediaTypeLink)

	filtered := FilterByCategory(items, models.CategoryAll)

	assert.Equal(t, items, filtered)
}

func TestFilterByCategory_SingleType(t *testing.T) {
	// The dashboard scenario: [video, audio, link], filter on audio
	items := makeItems(models.MediaTypeVideo, models.MediaTypeAudio, models.MediaTypeLink)

	filtered := FilterByCategory(items, "audio")

	require.Len(t, filtered, 1)
	assert.Equal(t, items[1], filtered[0])
}

func TestFilterByCategory_PreservesOrder(t *testing.T) {
	items := makeItems(
		models.MediaTypeVideo,
		models.MediaTypeLink,
		models.MediaTypeVideo,
		models.MediaTypeAudio,
		models.MediaTypeVideo,
	)

	filtered := FilterByCategory(items, "video")

	require.Len(t, filtered, 3)
	assert.Equal(t, items[0], filtered[0])
	assert.Equal(t, items[2], filtered[1])
	assert.Equal(t, items[4], filtered[2])
}

func TestFilterByCategory_Subsequence(t *testing.T) {
	items := makeItems(
		models.MediaTypeAudio,
		models.MediaTypeVideo,
		models.MediaTypeLink,
		models.MediaTypeAudio,
	)

	for _, category := range []string{"all", "video", "audio", "link"} {
		t.Run(category, func(t *testing.T) {
			filtered := FilterByCategory(items, category)

			// Every returned item matches the category
			for _, item := range filtered {
				if category != models.CategoryAll {
					assert.Equal(t, category, string(item.Type))
				}
			}

			// The result is a subsequence: items appear in their input order
			pos := 0
			for _, item := range filtered {
				found := false
				for ; pos < len(items); pos++ {
					if items[pos] == item {
						found = true
						pos++
						break
					}
				}
				assert.True(t, found, "filtered item out of input order")
			}
		})
	}
}

func TestFilterByCategory_NoMatches(t *testing.T) {
	items := makeItems(models.MediaTypeVideo, models.MediaTypeVideo)

	filtered := FilterByCategory(items, "link")

	assert.Empty(t, filtered)
}

func TestFilterByCategory_EmptyInput(t *testing.T) {
	filtered := FilterByCategory(nil, "video")

	assert.Empty(t, filtered)
}

func TestValidCategory(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{"all", true},
		{"video", true},
		{"audio", true},
		{"link", true},
		{"", false},
		{"document", false},
		{"Video", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCategory(tt.category))
		})
	}
}
