package wire

import (
	"github.com/Wellingtondela/wsapet-backend/internal/api"
	"github.com/Wellingtondela/wsapet-backend/internal/api/handler"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/storage"
	"github.com/Wellingtondela/wsapet-backend/internal/repository"
	"github.com/Wellingtondela/wsapet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer bundles the top-level components the process runs.
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *mongo.Database
}

// BuildApplication assembles repositories, services and handlers. The
// store handles are passed down explicitly; nothing reaches for them as
// ambient globals.
func BuildApplication(db *mongo.Database, blob storage.BlobStore) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)

	postService := service.NewPostService(postRepo, profileRepo, blob)
	engagementService := service.NewEngagementService(likeRepo, commentRepo, profileRepo)
	profileService := service.NewProfileService(profileRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	handlers := &api.HandlersGroup{
		PostHandler:        handler.NewPostHandler(postService),
		EngagementHandler:  handler.NewEngagementHandler(engagementService),
		ProfileHandler:     handler.NewProfileHandler(profileService),
		AppointmentHandler: handler.NewAppointmentHandler(appointmentService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
