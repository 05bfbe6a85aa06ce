package model

import "strings"

// Profile is a user document from the auth provider's era. Read-only for
// this service; several legacy name fields may be present.
type Profile struct {
	UID         string `bson:"_id"`
	Nome        string `bson:"nome,omitempty"`
	DisplayName string `bson:"displayName,omitempty"`
	AvatarURL   string `bson:"avatarUrl,omitempty"`
}

// DisplayNameOr resolves the display name by consulting the legacy name
// fields in priority order, returning the first non-empty value.
func (p *Profile) DisplayNameOr(fallback string) string {
	if p == nil {
		return fallback
	}
	for _, candidate := range []string{p.Nome, p.DisplayName} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return fallback
}

// AvatarOr returns the profile avatar, or the given placeholder.
func (p *Profile) AvatarOr(fallback string) string {
	if p == nil || strings.TrimSpace(p.AvatarURL) == "" {
		return fallback
	}
	return p.AvatarURL
}
