package models

// MediaType classifies a media item and drives validation rules
type MediaType string

// Media type constants
const (
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"
	MediaTypeLink  MediaType = "link"
)

// CategoryAll is the pseudo-category that matches every media type
const CategoryAll = "all"

// Valid reports whether t is one of the known media types
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeVideo, MediaTypeAudio, MediaTypeLink:
		return true
	}
	return false
}

// RequiresFile reports whether items of this type carry an uploaded blob.
// Link items reference an external URL and never touch blob storage.
func (t MediaType) RequiresFile() bool {
	return t == MediaTypeVideo || t == MediaTypeAudio
}
