package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/VLP-TECH/real-state-enrique-sub000/docs" // This will be auto-generated
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/handlers"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/middleware"
	repository2 "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/persistence/repository"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/infrastructure/auth"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/infrastructure/database"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/infrastructure/kpistore"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	assetRepo := repository2.NewAssetDynamoRepository(ddb)
	requestRepo := repository2.NewInformationRequestDynamoRepository(ddb)
	registrationRepo := repository2.NewRegistrationRequestDynamoRepository(ddb)
	surveyRepo := repository2.NewSurveyDynamoRepository(ddb)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Printf("[auth][routes] JWT_SECRET not set, using an insecure development secret")
	}
	tokenManager := auth.NewJWTManager(secret)

	kpiSource := kpistore.NewCSVSource(
		getenvDefault("KPI_DATASET_PATH", "data/kpis.csv"),
		getenvDefault("INDICATOR_DATASET_PATH", "data/indicators.csv"),
	)

	authUseCase := usecase.NewAuthUseCase(profileRepo, tokenManager, tokenTTL())
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	assetUseCase := usecase.NewAssetUseCase(assetRepo)
	requestUseCase := usecase.NewInformationRequestUseCase(requestRepo, assetRepo)
	registrationUseCase := usecase.NewRegistrationUseCase(registrationRepo, profileRepo)
	surveyUseCase := usecase.NewSurveyUseCase(surveyRepo)
	chatUseCase := usecase.NewChatUseCase(kpiSource, requestRepo, surveyRepo)
	kpiUseCase := usecase.NewKPICatalogUseCase(kpiSource)

	authHandler := handlers.NewAuthHandler(authUseCase)
	profileHandler := handlers.NewProfileAdminHandler(profileUseCase)
	assetHandler := handlers.NewAssetHandler(assetUseCase)
	requestHandler := handlers.NewInformationRequestHandler(requestUseCase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	kpiHandler := handlers.NewKPIHandler(kpiUseCase)

	authMw := middleware.NewAuthMiddleware(tokenManager, profileRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClubRoutes(v1, authMw, authHandler, profileHandler, assetHandler, requestHandler, registrationHandler)
	addObservatoryRoutes(v1, authMw, surveyHandler, chatHandler, kpiHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func tokenTTL() time.Duration {
	hours, err := strconv.Atoi(getenvDefault("TOKEN_TTL_HOURS", "24"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
