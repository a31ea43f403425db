package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"reabita_backend/internal/controller"
	"reabita_backend/internal/middleware"
	"reabita_backend/internal/model"
	"reabita_backend/pkg/calendar"
	"reabita_backend/pkg/config"
	reabitacron "reabita_backend/pkg/cron"
	"reabita_backend/pkg/database"
	"reabita_backend/pkg/email"
	"reabita_backend/pkg/kvstore"
	"reabita_backend/pkg/seed"
	"reabita_backend/pkg/utils/jwt"
	"reabita_backend/pkg/utils/storage"
)

type controllers struct {
	auth        *controller.AuthController
	contact     *controller.ContactController
	newsletter  *controller.NewsletterController
	project     *controller.ProjectController
	insight     *controller.InsightController
	testimonial *controller.TestimonialController
	lead        *controller.LeadController
	schedule    *controller.ScheduleController
	stats       *controller.StatsController
	upload      *controller.UploadController
}

func setupRoutes(app *fiber.App, c controllers, trustAdminHeader bool) {
	app.Use(middleware.ResolveScope(trustAdminHeader))

	app.Get("/health", controller.Health)
	app.Post("/auth/login", c.auth.Login)

	// Contactos
	app.Post("/contact", c.contact.Create)
	app.Get("/contacts", middleware.RequireAdmin(), c.contact.List)
	app.Put("/contacts/:id", middleware.RequireAdmin(), c.contact.Update)

	// Newsletter
	app.Post("/newsletter", c.newsletter.Subscribe)
	app.Get("/subscribers", middleware.RequireAdmin(), c.newsletter.List)
	app.Delete("/subscribers/:id", middleware.RequireAdmin(), c.newsletter.Delete)

	// Conteúdo do site
	projects := app.Group("/projects")
	projects.Get("/", c.project.List)
	projects.Get("/:id", c.project.GetOne)
	projects.Post("/", middleware.RequireAdmin(), c.project.Create)
	projects.Patch("/:id", middleware.RequireAdmin(), c.project.Update)
	projects.Delete("/:id", middleware.RequireAdmin(), c.project.Delete)

	insights := app.Group("/insights")
	insights.Get("/", c.insight.List)
	insights.Get("/:id", c.insight.GetOne)
	insights.Post("/", middleware.RequireAdmin(), c.insight.Create)
	insights.Patch("/:id", middleware.RequireAdmin(), c.insight.Update)
	insights.Delete("/:id", middleware.RequireAdmin(), c.insight.Delete)

	testimonials := app.Group("/testimonials")
	testimonials.Get("/", c.testimonial.List)
	testimonials.Get("/:id", c.testimonial.GetOne)
	testimonials.Post("/", middleware.RequireAdmin(), c.testimonial.Create)
	testimonials.Patch("/:id", middleware.RequireAdmin(), c.testimonial.Update)
	testimonials.Delete("/:id", middleware.RequireAdmin(), c.testimonial.Delete)

	// Agendamento
	app.Post("/leads", c.lead.Create)
	app.Post("/schedule-meeting", c.schedule.ScheduleMeeting)
	app.Get("/calendar-slots", c.schedule.CalendarSlots)

	// Administração
	admin := app.Group("/admin", middleware.RequireAdmin())
	admin.Get("/stats", c.stats.Dashboard)
	admin.Post("/media", c.upload.Upload)
	admin.Delete("/media", c.upload.Delete)
}

func main() {
	cfg := config.Load()

	jwt.SetSecret(cfg.Admin.JWTSecret)

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = database.Migrate(db,
		&model.Contact{},
		&model.Project{},
		&model.Insight{},
		&model.Testimonial{},
		&model.KVEntry{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	kv := kvstore.New(db)

	var mailer *email.EmailService
	if cfg.Email.ResendAPIKey != "" {
		mailer, err = email.NewEmailService(cfg.Email.ResendAPIKey)
		if err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
	} else {
		log.Println("RESEND_API_KEY not set, email notifications disabled")
	}

	if cfg.Storage.Bucket != "" {
		if err := storage.InitStorage(cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			log.Fatal("Could not initialize storage:", err)
		}
	} else {
		log.Println("AWS_BUCKET_NAME not set, media uploads disabled")
	}

	if cfg.SeedDemo {
		seed.SeedDemoContent(db)
	}

	cal := calendar.NewClient(cfg.Calendar.WebhookURL)

	reabitacron.InitBookingReconcileCron(db, kv)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-admin-request",
	}))

	setupRoutes(app, controllers{
		auth:        controller.NewAuthController(cfg.Admin.PasswordHash),
		contact:     controller.NewContactController(db, mailer, cfg.Email.NotifyTo),
		newsletter:  controller.NewNewsletterController(kv, mailer),
		project:     controller.NewProjectController(db),
		insight:     controller.NewInsightController(db),
		testimonial: controller.NewTestimonialController(db),
		lead:        controller.NewLeadController(db, mailer, cfg.Email.NotifyTo),
		schedule:    controller.NewScheduleController(db, kv, cal),
		stats:       controller.NewStatsController(db, kv),
		upload:      controller.NewUploadController(),
	}, cfg.Admin.TrustHeader)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
