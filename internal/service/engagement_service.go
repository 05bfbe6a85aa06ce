package service

import (
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/consts"
	"github.com/Wellingtondela/wsapet-backend/internal/repository"
)

// Like-toggle transition results, part of the client contract.
const (
	LikeStatusLiked   = "curtido"
	LikeStatusUnliked = "descurtido"
)

type EngagementService interface {
	ToggleLike(ctx context.Context, postID, userID string) (*dto.LikeToggleResultDTO, error)
	LikeCount(ctx context.Context, postID string) (int64, error)
	ListLikers(ctx context.Context, postID string) ([]string, error)

	CreateComment(ctx context.Context, req *dto.CommentCreateDTO) error
	ListComments(ctx context.Context, postID string) ([]*dto.CommentViewDTO, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type engagementServiceImpl struct {
	likeRepo    repository.LikeRepo
	commentRepo repository.CommentRepo
	profileRepo repository.ProfileRepo
}

func NewEngagementService(
	likeRepo repository.LikeRepo,
	commentRepo repository.CommentRepo,
	profileRepo repository.ProfileRepo,
) EngagementService {
	return &engagementServiceImpl{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		profileRepo: profileRepo,
	}
}

// ToggleLike flips the membership for (postID, userID). The conditional
// delete decides the transition: a removed document means the user had
// liked the post, otherwise an upsert inserts the membership. No plain
// read-then-write, so two concurrent toggles cannot double-insert.
func (s *engagementServiceImpl) ToggleLike(ctx context.Context, postID, userID string) (*dto.LikeToggleResultDTO, error) {
	if postID == "" {
		return nil, ErrPostIDRequired
	}
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	removed, err := s.likeRepo.Remove(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &dto.LikeToggleResultDTO{Status: LikeStatusUnliked}, nil
	}

	like := &model.Like{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.likeRepo.Add(ctx, like); err != nil {
		return nil, err
	}
	return &dto.LikeToggleResultDTO{Status: LikeStatusLiked}, nil
}

func (s *engagementServiceImpl) LikeCount(ctx context.Context, postID string) (int64, error) {
	if postID == "" {
		return 0, ErrPostIDRequired
	}
	return s.likeRepo.Count(ctx, postID)
}

func (s *engagementServiceImpl) ListLikers(ctx context.Context, postID string) ([]string, error) {
	if postID == "" {
		return nil, ErrPostIDRequired
	}
	return s.likeRepo.ListUserIDs(ctx, postID)
}

func (s *engagementServiceImpl) CreateComment(ctx context.Context, req *dto.CommentCreateDTO) error {
	if req.PostID == "" {
		return ErrPostIDRequired
	}
	if req.UserID == "" {
		return ErrUserIDRequired
	}
	if strings.TrimSpace(req.Texto) == "" {
		return ErrCommentTextRequired
	}

	comment := &model.Comment{
		PostID:    req.PostID,
		UserID:    req.UserID,
		Texto:     req.Texto,
		CreatedAt: time.Now(),
	}
	return s.commentRepo.Insert(ctx, comment)
}

// ListComments returns the thread oldest first, each comment joined with
// the commenting user. Unresolvable authors degrade to the anonymous
// placeholder instead of failing the listing.
func (s *engagementServiceImpl) ListComments(ctx context.Context, postID string) ([]*dto.CommentViewDTO, error) {
	if postID == "" {
		return nil, ErrPostIDRequired
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.CommentViewDTO, 0, len(comments))
	for _, c := range comments {
		profile, err := s.profileRepo.Get(ctx, c.UserID)
		if err != nil {
			log.WarnContext(ctx, "commenter profile lookup failed", "userID", c.UserID, "err", err)
			profile = nil
		}

		views = append(views, &dto.CommentViewDTO{
			ID:       c.ID.Hex(),
			PostID:   c.PostID,
			UserID:   c.UserID,
			Texto:    c.Texto,
			CriadoEm: c.CreatedAt,
			User: &dto.CommentUserDTO{
				Nome:   profile.DisplayNameOr(consts.FallbackAnonymous),
				Avatar: profile.AvatarOr(consts.AnonymousAvatarURL),
			},
		})
	}

	return views, nil
}

// DeleteComment deletes by id unconditionally; a nonexistent id is
// treated as success, same as the post delete convention.
func (s *engagementServiceImpl) DeleteComment(ctx context.Context, commentID string) error {
	return s.commentRepo.Delete(ctx, commentID)
}
