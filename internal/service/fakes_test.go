package service

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/Wellingtondela/wsapet-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the mongo repositories and the blob store,
// mirroring the contracts documented on the real implementations.

type fakePostRepo struct {
	posts []*model.Post
}

func (f *fakePostRepo) Insert(_ context.Context, post *model.Post) (string, error) {
	stored := *post
	stored.ID = primitive.NewObjectID()
	f.posts = append(f.posts, &stored)
	return stored.ID.Hex(), nil
}

func (f *fakePostRepo) Get(_ context.Context, id string) (*model.Post, error) {
	for _, p := range f.posts {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) List(_ context.Context, userID string) ([]*model.Post, error) {
	var res []*model.Post
	for _, p := range f.posts {
		if userID == "" || p.UserID == userID {
			res = append(res, p)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.posts {
		if p.ID.Hex() == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLikeRepo struct {
	likes map[string]map[string]*model.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]map[string]*model.Like)}
}

func (f *fakeLikeRepo) Remove(_ context.Context, postID, userID string) (bool, error) {
	byUser, ok := f.likes[postID]
	if !ok {
		return false, nil
	}
	if _, ok := byUser[userID]; !ok {
		return false, nil
	}
	delete(byUser, userID)
	return true, nil
}

func (f *fakeLikeRepo) Add(_ context.Context, like *model.Like) error {
	byUser, ok := f.likes[like.PostID]
	if !ok {
		byUser = make(map[string]*model.Like)
		f.likes[like.PostID] = byUser
	}
	if _, exists := byUser[like.UserID]; !exists {
		byUser[like.UserID] = like
	}
	return nil
}

func (f *fakeLikeRepo) Count(_ context.Context, postID string) (int64, error) {
	return int64(len(f.likes[postID])), nil
}

func (f *fakeLikeRepo) ListUserIDs(_ context.Context, postID string) ([]string, error) {
	userIDs := make([]string, 0, len(f.likes[postID]))
	for userID := range f.likes[postID] {
		userIDs = append(userIDs, userID)
	}
	return userIDs, nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
}

func (f *fakeCommentRepo) Insert(_ context.Context, comment *model.Comment) error {
	stored := *comment
	stored.ID = primitive.NewObjectID()
	f.comments = append(f.comments, &stored)
	return nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, postID string) ([]*model.Comment, error) {
	var res []*model.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			res = append(res, c)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id string) error {
	for i, c := range f.comments {
		if c.ID.Hex() == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles  map[string]*model.Profile
	failUsers map[string]bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:  make(map[string]*model.Profile),
		failUsers: make(map[string]bool),
	}
}

func (f *fakeProfileRepo) Get(_ context.Context, uid string) (*model.Profile, error) {
	if f.failUsers[uid] {
		return nil, errors.New("profile lookup failed")
	}
	return f.profiles[uid], nil
}

type fakeBlobStore struct {
	objects   map[string]string
	deleted   []string
	deleteErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string]string)}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, reader io.Reader, _ int64, contentType string) (string, error) {
	if reader != nil {
		_, _ = io.ReadAll(reader)
	}
	f.objects[key] = contentType
	return "http://localhost:9000/wsapet-media/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}
