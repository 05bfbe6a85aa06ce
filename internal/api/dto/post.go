package dto

import (
	"io"
	"time"
)

// PostCreateDTO carries the multipart fields of a new post. Media is nil
// when no attachment was sent.
type PostCreateDTO struct {
	UserID string
	Texto  string
	Media  *MediaFileDTO
}

// MediaFileDTO is an uploaded attachment as declared by the client.
type MediaFileDTO struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// PostCreatedDTO is the creation acknowledgment.
type PostCreatedDTO struct {
	ID          string `json:"id"`
	Mensagem    string `json:"mensagem"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	StoragePath string `json:"storagePath,omitempty"`
}

// PostViewDTO is a post joined with its author's display profile.
type PostViewDTO struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	MediaURL  string     `json:"mediaUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	AuthorID  string     `json:"authorId"`
	Author    *AuthorDTO `json:"author"`
}

// AuthorDTO is the resolved display profile embedded in a post view.
type AuthorDTO struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// PostDeleteResultDTO reports the primary deletion plus the informational
// outcome of the companion media cleanup.
type PostDeleteResultDTO struct {
	Mensagem string `json:"mensagem"`
	Midia    string `json:"midia"`
}
