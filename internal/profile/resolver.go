// Package profile consolidates display-name resolution into one policy:
// stored name > name derived from the email local-part > literal "User".
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vitrine-app/vitrine/internal/db"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/models"
)

// fallbackDisplayName is shown when neither stored nor derived names exist
const fallbackDisplayName = "User"

// Resolved is a profile plus the display name computed from it
type Resolved struct {
	Profile     *models.Profile
	DisplayName string
}

// Resolver loads a user's profile, creating it lazily on first visit.
type Resolver struct {
	repos *db.Repositories
}

// NewResolver creates a new profile resolver instance
func NewResolver(repos *db.Repositories) *Resolver {
	return &Resolver{repos: repos}
}

// Resolve returns the profile for a user, applying the name policy.
//
// On a read-miss the row is created eagerly, seeded from the email's
// local-part when one can be derived. That backfill happens exactly once;
// after it the stored names are authoritative and user edits are never
// overwritten.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID, email string) (*Resolved, error) {
	prof, err := r.repos.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !db.IsNotFound(err) {
			logger.Log.Error().
				Err(err).
				Str("user_id", userID.String()).
				Msg("Failed to load profile")
			return nil, fmt.Errorf("failed to resolve profile: %w", err)
		}

		prof = &models.Profile{ID: userID}
		if first, last, ok := namesFromEmail(email); ok {
			prof.FirstName = &first
			if last != "" {
				prof.LastName = &last
			}
		}

		if err := r.repos.Profiles.Create(ctx, prof); err != nil {
			// A concurrent first visit may have won the insert; fall back to
			// reading what it wrote
			if db.IsDuplicate(err) {
				prof, err = r.repos.Profiles.GetByUserID(ctx, userID)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to create profile: %w", err)
			}
		}
	}

	return &Resolved{
		Profile:     prof,
		DisplayName: displayName(prof),
	}, nil
}

// displayName applies the precedence order for what the header greets with
func displayName(p *models.Profile) string {
	var parts []string
	if p.FirstName != nil && *p.FirstName != "" {
		parts = append(parts, *p.FirstName)
	}
	if p.LastName != nil && *p.LastName != "" {
		parts = append(parts, *p.LastName)
	}
	if len(parts) == 0 {
		return fallbackDisplayName
	}
	return strings.Join(parts, " ")
}

// namesFromEmail derives first/last names from an email local-part split on
// "." or "_", e.g. "jane.doe@example.com" -> ("Jane", "Doe"). Returns false
// when nothing usable can be derived.
func namesFromEmail(email string) (first, last string, ok bool) {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "", "", false
	}

	local := email[:at]
	fields := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_'
	})
	if len(fields) == 0 {
		return "", "", false
	}

	first = capitalize(fields[0])
	if len(fields) > 1 {
		last = capitalize(fields[1])
	}
	return first, last, first != ""
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
