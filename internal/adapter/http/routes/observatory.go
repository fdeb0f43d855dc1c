package routes

import (
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/handlers"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathSurveys = "/surveys"
	PathKPIs    = "/kpis"
	PathChat    = "/chat"
)

func addObservatoryRoutes(
	rg *gin.RouterGroup,
	authMw *middleware.AuthMiddleware,
	surveyHandler *handlers.SurveyHandler,
	chatHandler *handlers.ChatHandler,
	kpiHandler *handlers.KPIHandler,
) {
	// Open-data pages: no account needed.
	rg.GET(PathKPIs, kpiHandler.List)
	rg.POST(PathChat, chatHandler.Ask)

	surveys := rg.Group(PathSurveys)
	{
		// Public listing hides drafts; editors see theirs when they send a
		// token. The detail page is needed to answer.
		surveys.GET("", authMw.AuthenticateOptional(), surveyHandler.List)
		surveys.GET("/:survey_id", surveyHandler.GetByID)

		// Responding requires an active account.
		surveys.POST("/:survey_id/responses", authMw.Authenticate(), middleware.RequireActive(), surveyHandler.Respond)

		// Authoring is editor territory.
		editor := surveys.Group("", authMw.Authenticate(), middleware.RequireEditor())
		editor.POST("", surveyHandler.Create)
		editor.POST("/:survey_id/questions", surveyHandler.AddQuestion)
		editor.POST("/:survey_id/publish", surveyHandler.Publish)
		editor.GET("/:survey_id/responses", surveyHandler.ListResponses)
	}
}
