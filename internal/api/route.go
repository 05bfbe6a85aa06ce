package api

import (
	"net/http"

	"github.com/Wellingtondela/wsapet-backend/internal/api/middleware"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the legacy route table. Paths and their Portuguese
// names are part of the client contract and kept verbatim.
func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"mensagem": "pong"})
	})

	r.POST("/salvar-post", group.PostHandler.Create)
	r.POST("/curtir-post", group.EngagementHandler.ToggleLike)

	postGroup := r.Group("/posts")
	{
		postGroup.GET("", group.PostHandler.List)
		postGroup.DELETE("/:post_id", group.PostHandler.Delete)
		postGroup.GET("/:post_id/curtidas", group.EngagementHandler.ListLikers)
		postGroup.GET("/:post_id/curtidas/total", group.EngagementHandler.LikeCount)
	}

	commentGroup := r.Group("/comentarios")
	{
		commentGroup.POST("", group.EngagementHandler.CreateComment)
		commentGroup.GET("/:post_id", group.EngagementHandler.ListComments)
		commentGroup.DELETE("/:comment_id", group.EngagementHandler.DeleteComment)
	}

	r.GET("/perfil/:uid", group.ProfileHandler.Get)
	r.POST("/agendamentos", group.AppointmentHandler.Create)

	return r
}
