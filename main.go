package main

import (
	"flexopted/config"
	"flexopted/database"
	authRoutes "flexopted/routers/authRoutes"
	courseRoutes "flexopted/routers/courseRoutes"
	"flexopted/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: config.AppConfig.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowOrigin,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded videos
	app.Static("/uploads/videos", config.AppConfig.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend running...")
	})

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	utils.InitializeUploadSweeper()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
