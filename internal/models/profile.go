package models

import "github.com/google/uuid"

// Profile holds display names for a user, keyed by the user's ID.
// Rows are created lazily on first dashboard visit; names may be backfilled
// once from the account email's local part when both are empty.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	FirstName *string   `json:"first_name" gorm:"type:text;column:first_name"`
	LastName  *string   `json:"last_name" gorm:"type:text;column:last_name"`
}

// HasName reports whether at least one name field is set and non-empty
func (p *Profile) HasName() bool {
	if p.FirstName != nil && *p.FirstName != "" {
		return true
	}
	return p.LastName != nil && *p.LastName != ""
}
