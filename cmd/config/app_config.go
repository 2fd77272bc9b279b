package config

import (
	"Ralph-Backend/internal/api/handlers"
	"Ralph-Backend/internal/api/routes"
	"Ralph-Backend/internal/middleware"
	"Ralph-Backend/internal/utils"
	"Ralph-Backend/internal/utils/storage"
	"Ralph-Backend/pkg/analysis"
	"Ralph-Backend/pkg/diary"
	"Ralph-Backend/pkg/gemini"
	"Ralph-Backend/pkg/jwt"
	"Ralph-Backend/pkg/schedule"
	"Ralph-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	geminiClient, err := gemini.NewClient()
	if err != nil {
		return nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	scheduleRepository := schedule.NewScheduleRepository(db)
	diaryRepository := diary.NewDiaryRepository(db)
	analysisRepository := analysis.NewAnalysisRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	scheduleService := schedule.NewScheduleService(scheduleRepository)
	diaryService := diary.NewDiaryService(diaryRepository)
	analysisService := analysis.NewAnalysisService(analysisRepository, diaryRepository, geminiClient)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, validator)
	diaryHandler := handlers.NewDiaryHandler(diaryService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ScheduleHandler: scheduleHandler,
		DiaryHandler:    diaryHandler,
		AnalysisHandler: analysisHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
