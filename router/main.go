package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/config"
	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/handlers"
	auth_handlers "github.com/krishimitra/api/handlers/auth"
	crop_handlers "github.com/krishimitra/api/handlers/crop"
	disease_handlers "github.com/krishimitra/api/handlers/disease"
	feedback_handlers "github.com/krishimitra/api/handlers/feedback"
	user_handlers "github.com/krishimitra/api/handlers/user"
	"github.com/krishimitra/api/utils"
	"github.com/krishimitra/api/utils/auth"
	"github.com/krishimitra/api/utils/cache"
	"github.com/krishimitra/api/utils/middleware"
)

// SetupRoutes wires the REST surface. Crop and disease mutations are
// unauthenticated by design: the admin flag exists on users but is not
// enforced server-side. Phone verification exists so feedback can be
// attributed to a user.
func SetupRoutes(app *fiber.App, store database.Storage, getEnv *config.EnviornmentVariable) {
	jwtSecret := getEnv.JWT_SECRET
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "krishi-mitra-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	cropHandler := crop_handlers.NewCropHandler(store)
	diseaseHandler := disease_handlers.NewDiseaseHandler(store)
	feedbackHandler := feedback_handlers.NewFeedbackHandler(store)
	userHandler := user_handlers.NewUserHandler(store)

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	api := app.Group("/api")

	// Crops routes
	crops := api.Group("/crops")
	crops.Get("/", cropHandler.ListCrops)
	crops.Get("/:id", cropHandler.GetCrop)
	crops.Post("/", cropHandler.CreateCrop)
	crops.Put("/:id", cropHandler.UpdateCrop)
	crops.Delete("/:id", cropHandler.DeleteCrop)

	// Diseases nested under crops, plus top-level disease routes
	crops.Get("/:cropId/diseases", diseaseHandler.ListByCrop)

	diseases := api.Group("/diseases")
	diseases.Get("/:id", diseaseHandler.GetDisease)
	diseases.Post("/", diseaseHandler.CreateDisease)
	diseases.Put("/:id", diseaseHandler.UpdateDisease)
	diseases.Delete("/:id", diseaseHandler.DeleteDisease)

	// Feedback routes
	feedback := api.Group("/feedback")
	feedback.Post("/", authMiddleware.Optional(), feedbackHandler.CreateFeedback)
	feedback.Get("/", feedbackHandler.ListFeedback)
	feedback.Get("/export", feedbackHandler.ExportFeedback)
	crops.Get("/:cropId/feedback", feedbackHandler.ListByCrop)
	diseases.Get("/:diseaseId/feedback", feedbackHandler.ListByDisease)

	// User routes
	users := api.Group("/users")
	users.Get("/phone/:phoneNumber", userHandler.GetUserByPhone)
	users.Get("/:id", userHandler.GetUser)

	// Phone verification routes; disabled when Redis is unreachable
	redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Phone verification will be disabled.", err)
		return
	}

	otpService := auth.NewOTPService(redisCache, auth.LogSMSSender{})
	authHandler := auth_handlers.NewAuthHandler(store, otpService, jwtManager)

	authGroup := api.Group("/auth")
	authGroup.Post("/otp/request", authHandler.RequestOTP)
	authGroup.Post("/otp/verify", authHandler.VerifyOTP)
}
