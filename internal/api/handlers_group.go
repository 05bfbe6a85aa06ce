package api

import "github.com/Wellingtondela/wsapet-backend/internal/api/handler"

// HandlersGroup bundles the initialized handler instances.
type HandlersGroup struct {
	PostHandler        *handler.PostHandler
	EngagementHandler  *handler.EngagementHandler
	ProfileHandler     *handler.ProfileHandler
	AppointmentHandler *handler.AppointmentHandler
}
