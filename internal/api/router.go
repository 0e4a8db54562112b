package api

import (
	"staffmatch/docs"
	"staffmatch/internal/api/handlers"
	"staffmatch/pkg/auth"
	"staffmatch/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	refHandler *handlers.ReferenceHandler,
	chatHandler *handlers.ChatHandler,
	oppHandler *handlers.OpportunityHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger spec through its init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Opportunity collector is running"})
	})

	// Auth
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/me", middleware.AuthMiddleware(jwtManager, appLogger), authHandler.Me)

	// Reference data
	app.Get("/options", refHandler.ListOptions)
	app.Get("/query/:option_id", refHandler.ListQueries)
	app.Get("/department", refHandler.ListDepartments)
	app.Get("/designation/:department_id", refHandler.ListDesignations)

	// Opportunities and chat
	app.Get("/opportunities", oppHandler.List)
	app.Post("/chat", chatHandler.Chat)
	app.Post("/summarize", chatHandler.Summarize)
	app.Get("/index-opportunity", chatHandler.RebuildIndex)

	return app
}
