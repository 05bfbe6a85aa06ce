package handler

import (
	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/response"
	"github.com/Wellingtondela/wsapet-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// Create handles the multipart salvar-post route: text plus an optional
// image/video attachment.
func (s *PostHandler) Create(c *gin.Context) {
	req := &dto.PostCreateDTO{
		UserID: c.PostForm("userId"),
		Texto:  c.PostForm("texto"),
	}

	file, err := c.FormFile("media")
	if err == nil && file != nil {
		reader, err := file.Open()
		if err != nil {
			response.Erro(c, err)
			return
		}
		defer func() { _ = reader.Close() }()

		req.Media = &dto.MediaFileDTO{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Reader:      reader,
		}
	}

	res, err := s.postSvc.CreatePost(c.Request.Context(), req)
	if err != nil {
		response.Erro(c, err)
		return
	}

	res.Mensagem = "Post salvo com sucesso!"
	response.Success(c, res)
}

func (s *PostHandler) List(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) Delete(c *gin.Context) {
	res, err := s.postSvc.DeletePost(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, res)
}
