package handler

import (
	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/response"
	"github.com/Wellingtondela/wsapet-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

func (s *EngagementHandler) ToggleLike(c *gin.Context) {
	var req dto.LikeToggleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Erro(c, err)
		return
	}

	res, err := s.engagementSvc.ToggleLike(c.Request.Context(), req.PostID, req.UserID)
	if err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, res)
}

func (s *EngagementHandler) ListLikers(c *gin.Context) {
	usuarios, err := s.engagementSvc.ListLikers(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, dto.LikersDTO{Usuarios: usuarios})
}

func (s *EngagementHandler) LikeCount(c *gin.Context) {
	total, err := s.engagementSvc.LikeCount(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, dto.LikeCountDTO{Total: total})
}

// CreateComment acknowledges without returning the new id, an asymmetry
// with post creation kept for client compatibility.
func (s *EngagementHandler) CreateComment(c *gin.Context) {
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Erro(c, err)
		return
	}

	if err := s.engagementSvc.CreateComment(c.Request.Context(), &req); err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, gin.H{"mensagem": "Comentário adicionado com sucesso!"})
}

func (s *EngagementHandler) ListComments(c *gin.Context) {
	comments, err := s.engagementSvc.ListComments(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *EngagementHandler) DeleteComment(c *gin.Context) {
	if err := s.engagementSvc.DeleteComment(c.Request.Context(), c.Param("comment_id")); err != nil {
		response.Erro(c, err)
		return
	}
	response.Success(c, gin.H{"mensagem": "Comentário removido"})
}
