package routes

import (
	"Ralph-Backend/internal/api/handlers"
	"Ralph-Backend/internal/middleware"
	"Ralph-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ScheduleHandler handlers.ScheduleHandler
	DiaryHandler    handlers.DiaryHandler
	AnalysisHandler handlers.AnalysisHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Schedule()
	c.FoodDiary()
	c.AiAnalysis()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Get("/visible-routes", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetVisibleRoutes)
		user.Put("/visible-routes", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateVisibleRoutes)
	}
}

func (c *Config) Schedule() {
	schedule := c.App.Group("/api/v1/schedule", c.Middleware.AuthMiddleware(c.JWTService))
	schedule.Post("", c.ScheduleHandler.AddEntry)
	schedule.Get("", c.ScheduleHandler.GetEntries)
	schedule.Delete("/:id", c.ScheduleHandler.DeleteEntry)
}

func (c *Config) FoodDiary() {
	diary := c.App.Group("/api/v1/food-diary", c.Middleware.AuthMiddleware(c.JWTService))
	diary.Post("", c.DiaryHandler.AddFoodEntry)
	diary.Get("/today", c.DiaryHandler.GetTodayEntries)
	diary.Patch("/:id/feelings", c.DiaryHandler.UpdateFeelings)
}

// AiAnalysis keeps the analyze endpoint at the path the clients already use.
func (c *Config) AiAnalysis() {
	ai := c.App.Group("/api/ai", c.Middleware.AuthMiddleware(c.JWTService))
	ai.Post("/analyze", c.AnalysisHandler.Analyze)
	ai.Get("/overview", c.AnalysisHandler.GetOverview)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
