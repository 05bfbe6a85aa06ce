package dto

// ProfileDTO mirrors the stored user document, legacy field names kept.
type ProfileDTO struct {
	Nome        string `json:"nome,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}
