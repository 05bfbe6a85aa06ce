package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/api/handler"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/logger"
	"github.com/Wellingtondela/wsapet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Service stubs: the route tests only exercise the HTTP contract, the
// workflow semantics are covered by the service tests.

type stubPostSvc struct{}

func (s *stubPostSvc) CreatePost(context.Context, *dto.PostCreateDTO) (*dto.PostCreatedDTO, error) {
	return &dto.PostCreatedDTO{ID: "p1"}, nil
}

func (s *stubPostSvc) ListPosts(context.Context, string) ([]*dto.PostViewDTO, error) {
	return []*dto.PostViewDTO{}, nil
}

func (s *stubPostSvc) DeletePost(context.Context, string) (*dto.PostDeleteResultDTO, error) {
	return nil, service.ErrPostNotFound
}

type stubEngagementSvc struct {
	liked map[string]bool
}

func (s *stubEngagementSvc) ToggleLike(_ context.Context, postID, userID string) (*dto.LikeToggleResultDTO, error) {
	key := postID + "/" + userID
	if s.liked[key] {
		delete(s.liked, key)
		return &dto.LikeToggleResultDTO{Status: service.LikeStatusUnliked}, nil
	}
	s.liked[key] = true
	return &dto.LikeToggleResultDTO{Status: service.LikeStatusLiked}, nil
}

func (s *stubEngagementSvc) LikeCount(context.Context, string) (int64, error) { return 0, nil }

func (s *stubEngagementSvc) ListLikers(context.Context, string) ([]string, error) {
	return []string{}, nil
}

func (s *stubEngagementSvc) CreateComment(context.Context, *dto.CommentCreateDTO) error { return nil }

func (s *stubEngagementSvc) ListComments(context.Context, string) ([]*dto.CommentViewDTO, error) {
	return []*dto.CommentViewDTO{}, nil
}

func (s *stubEngagementSvc) DeleteComment(context.Context, string) error { return nil }

type stubProfileSvc struct{}

func (s *stubProfileSvc) GetProfile(context.Context, string) (*dto.ProfileDTO, error) {
	return nil, service.ErrProfileNotFound
}

type stubAppointmentSvc struct{}

func (s *stubAppointmentSvc) CreateAppointment(_ context.Context, req *dto.AppointmentCreateDTO) (*dto.AppointmentCreatedDTO, error) {
	if _, err := time.Parse(time.RFC3339, req.DataHora); err != nil {
		return nil, service.ErrAppointmentInvalid
	}
	return &dto.AppointmentCreatedDTO{ID: "a1"}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()

	return SetupRouter(&HandlersGroup{
		PostHandler:        handler.NewPostHandler(&stubPostSvc{}),
		EngagementHandler:  handler.NewEngagementHandler(&stubEngagementSvc{liked: map[string]bool{}}),
		ProfileHandler:     handler.NewProfileHandler(&stubProfileSvc{}),
		AppointmentHandler: handler.NewAppointmentHandler(&stubAppointmentSvc{}),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestCurtirPost_ToggleContract(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/curtir-post", `{"postId":"p1","userId":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "curtido", body["status"])

	w, body = doJSON(t, r, http.MethodPost, "/curtir-post", `{"postId":"p1","userId":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "descurtido", body["status"])
}

func TestCurtirPost_MissingField(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/curtir-post", `{"postId":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body, "erro")
}

func TestDeletePost_NotFoundUsesErroKey(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodDelete, "/posts/ffffffffffffffffffffffff", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "post não encontrado", body["erro"])
}

func TestPerfil_NotFoundUsesErrorKey(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/perfil/u404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuário não encontrado", body["error"])
}

func TestAgendamentos_Create(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/agendamentos",
		`{"uid":"u1","clinicaId":"c1","dataHora":"2026-09-01T14:30:00-03:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "a1", body["id"])

	w, body = doJSON(t, r, http.MethodPost, "/agendamentos",
		`{"uid":"u1","clinicaId":"c1","dataHora":"amanhã"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body, "error")
}
