package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/gorimarket/talent-api/configs"
	"github.com/gorimarket/talent-api/database"
	"github.com/gorimarket/talent-api/handlers"
	"github.com/gorimarket/talent-api/jobs"
	"github.com/gorimarket/talent-api/notifications"
	"github.com/gorimarket/talent-api/repository"
	"github.com/gorimarket/talent-api/routes"
	"github.com/gorimarket/talent-api/utils"
)

func main() {
	log := utils.NewLogger("talent-api", config.ConfigOr("APP_ENV", "development"))

	database.ConnectDB()
	database.Migrate()
	database.SeedStaff()
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("0 9 * * *", jobs.SendPendingRegistrationReminders)
	go c.Start()
	log.Info("cron job for pending-registration reminders scheduled")

	h := handlers.New(
		log,
		repository.NewUserRepo(database.DB),
		repository.NewTutorRepo(database.DB),
		repository.NewTalentRepo(database.DB),
		repository.NewLocationRepo(database.DB),
		repository.NewRegistrationRepo(database.DB),
		repository.NewWishListRepo(database.DB),
		repository.NewReviewRepo(database.DB),
	)

	app := fiber.New(fiber.Config{
		AppName:       "Gori Talent Market",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.WithError(err).WithFields(map[string]interface{}{
				"path":   c.Path(),
				"method": c.Method(),
			}).Error("unhandled request error")
			return c.Status(code).JSON(fiber.Map{
				"detail": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.ProfileRoutes(app, h)
	routes.TutorRoutes(app, h)
	routes.TalentRoutes(app, h)
	routes.RegistrationRoutes(app, h)
	routes.StaffRoutes(app, h)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	addr := ":" + config.ConfigOr("PORT", "8080")
	log.WithField("addr", addr).Info("server starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("server failed to start")
	}
}
