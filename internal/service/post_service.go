package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/consts"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/storage"
	"github.com/Wellingtondela/wsapet-backend/internal/repository"

	"github.com/google/uuid"
)

type PostService interface {
	CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostCreatedDTO, error)
	ListPosts(ctx context.Context, userID string) ([]*dto.PostViewDTO, error)
	DeletePost(ctx context.Context, postID string) (*dto.PostDeleteResultDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	profileRepo repository.ProfileRepo
	blob        storage.BlobStore
}

func NewPostService(
	postRepo repository.PostRepo,
	profileRepo repository.ProfileRepo,
	blob storage.BlobStore,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		blob:        blob,
	}
}

// CreatePost uploads the attachment first, then persists the post with a
// server-assigned timestamp. An insert failing after a successful upload
// leaves the blob orphaned; there is no rollback.
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostCreatedDTO, error) {
	if req.UserID == "" {
		return nil, ErrUserIDRequired
	}

	post := &model.Post{
		UserID:    req.UserID,
		Texto:     req.Texto,
		CreatedAt: time.Now(),
	}

	if req.Media != nil {
		key := consts.PostMediaPrefix + uuid.NewString() + "-" + req.Media.Filename

		url, err := s.blob.Put(ctx, key, req.Media.Reader, req.Media.Size, req.Media.ContentType)
		if err != nil {
			return nil, err
		}

		// Both fields or neither: a dangling URL without a deletable
		// path is a data-integrity defect.
		post.MediaURL = url
		post.StoragePath = key
	}

	id, err := s.postRepo.Insert(ctx, post)
	if err != nil {
		return nil, err
	}

	return &dto.PostCreatedDTO{
		ID:          id,
		MediaURL:    post.MediaURL,
		StoragePath: post.StoragePath,
	}, nil
}

// ListPosts returns the feed newest first, each post joined with its
// author's display profile. A missing profile never fails the listing.
func (s *postServiceImpl) ListPosts(ctx context.Context, userID string) ([]*dto.PostViewDTO, error) {
	posts, err := s.postRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The open feed and the per-author listing predate each other and
	// kept different fallback literals.
	fallback := consts.FallbackUnknownUser
	if userID != "" {
		fallback = consts.FallbackUser
	}

	views := make([]*dto.PostViewDTO, 0, len(posts))
	for _, p := range posts {
		profile, err := s.profileRepo.Get(ctx, p.UserID)
		if err != nil {
			log.WarnContext(ctx, "author profile lookup failed", "userID", p.UserID, "err", err)
			profile = nil
		}

		views = append(views, &dto.PostViewDTO{
			ID:        p.ID.Hex(),
			Text:      p.Texto,
			MediaURL:  p.MediaURL,
			CreatedAt: p.CreatedAt,
			AuthorID:  p.UserID,
			Author: &dto.AuthorDTO{
				Name:      profile.DisplayNameOr(fallback),
				AvatarURL: profile.AvatarOr(consts.DefaultAvatarURL),
			},
		})
	}

	return views, nil
}

// DeletePost removes the post document, then best-effort cleans up the
// attached blob. A failed cleanup is logged and reported as an
// informational status, never as an error: the user-visible removal must
// not be blocked by the companion store.
func (s *postServiceImpl) DeletePost(ctx context.Context, postID string) (*dto.PostDeleteResultDTO, error) {
	post, err := s.postRepo.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return nil, err
	}

	mediaStatus := consts.MediaStatusNone
	if post.StoragePath != "" {
		if err := s.blob.Delete(ctx, post.StoragePath); err != nil {
			log.WarnContext(ctx, "post media cleanup failed", "postID", postID, "storagePath", post.StoragePath, "err", err)
			mediaStatus = consts.MediaStatusFailed
		} else {
			mediaStatus = consts.MediaStatusRemoved
		}
	}

	return &dto.PostDeleteResultDTO{
		Mensagem: "Post excluído com sucesso",
		Midia:    mediaStatus,
	}, nil
}
