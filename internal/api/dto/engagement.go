package dto

import "time"

// LikeToggleDTO flips the like membership for (postId, userId).
type LikeToggleDTO struct {
	PostID string `json:"postId" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

// LikeToggleResultDTO reports the transition taken: curtido or descurtido.
type LikeToggleResultDTO struct {
	Status string `json:"status"`
}

// LikeCountDTO is the exact like-set cardinality of a post.
type LikeCountDTO struct {
	Total int64 `json:"total"`
}

// LikersDTO lists the users who liked a post, order not guaranteed.
type LikersDTO struct {
	Usuarios []string `json:"usuarios"`
}

// CommentCreateDTO creates a comment on a post.
type CommentCreateDTO struct {
	PostID string `json:"postId" binding:"required"`
	UserID string `json:"userId" binding:"required"`
	Texto  string `json:"texto" binding:"required"`
}

// CommentViewDTO is a comment joined with the commenting user's profile.
type CommentViewDTO struct {
	ID       string          `json:"id"`
	PostID   string          `json:"postId"`
	UserID   string          `json:"userId"`
	Texto    string          `json:"texto"`
	CriadoEm time.Time       `json:"criadoEm"`
	User     *CommentUserDTO `json:"user"`
}

// CommentUserDTO is the resolved commenter embedded in a comment view.
type CommentUserDTO struct {
	Nome   string `json:"nome"`
	Avatar string `json:"avatar"`
}
