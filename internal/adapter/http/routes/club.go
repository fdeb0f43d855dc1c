package routes

import (
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/handlers"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathProfiles      = "/profiles"
	PathAssets        = "/assets"
	PathRequests      = "/information-requests"
	PathRegistrations = "/registrations"
)

func addClubRoutes(
	rg *gin.RouterGroup,
	authMw *middleware.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileAdminHandler,
	assetHandler *handlers.AssetHandler,
	requestHandler *handlers.InformationRequestHandler,
	registrationHandler *handlers.RegistrationHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
		auth.GET("/me", authMw.Authenticate(), authHandler.Me)
	}

	// Membership applications: submitting is public, deciding is admin-only.
	registrations := rg.Group(PathRegistrations)
	{
		registrations.POST("", registrationHandler.Submit)

		decisions := registrations.Group("", authMw.Authenticate(), middleware.RequireAdmin())
		decisions.GET("", registrationHandler.List)
		decisions.POST("/:registration_id/approve", registrationHandler.Approve)
		decisions.POST("/:registration_id/reject", registrationHandler.Reject)
	}

	assets := rg.Group(PathAssets, authMw.Authenticate(), middleware.RequireActive())
	{
		assets.GET("", assetHandler.Search)
		assets.GET("/mine", assetHandler.ListMine)
		assets.GET("/:asset_id", assetHandler.GetByID)
		assets.POST("", assetHandler.Create)
		assets.PUT("/:asset_id", assetHandler.Update)
		assets.DELETE("/:asset_id", assetHandler.Delete)
	}

	requests := rg.Group(PathRequests, authMw.Authenticate(), middleware.RequireActive())
	{
		requests.POST("", requestHandler.Create)
		requests.GET("/mine", requestHandler.ListMine)
		requests.GET("/:request_id", requestHandler.GetByID)

		admin := requests.Group("", middleware.RequireAdmin())
		admin.GET("", requestHandler.ListAll)
		admin.POST("/:request_id/approve", requestHandler.Approve)
		admin.POST("/:request_id/reject", requestHandler.Reject)
		admin.POST("/:request_id/request-nda", requestHandler.RequestNDA)
		admin.POST("/:request_id/confirm-nda", requestHandler.ConfirmNDA)
		admin.POST("/:request_id/share", requestHandler.ShareInformation)
	}

	profiles := rg.Group(PathProfiles, authMw.Authenticate(), middleware.RequireAdmin())
	{
		profiles.GET("", profileHandler.List)
		profiles.GET("/:profile_id", profileHandler.GetByID)
		profiles.PATCH("/:profile_id/role", profileHandler.ChangeRole)
		profiles.PATCH("/:profile_id/active", profileHandler.SetActive)
	}
}
