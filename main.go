package main

import (
	"log"

	"pms_server/config"
	"pms_server/database"
	"pms_server/handler"
	"pms_server/helper"
	"pms_server/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	rdb := database.ConnectRedis()
	cld := helper.InitCloudinary()
	hub := handler.NewDeskHub()

	helper.StartArrivalReminderScheduler(db)
	defer helper.StopArrivalReminderScheduler()
	helper.StartDepartureSweepScheduler(db)
	defer helper.StopDepartureSweepScheduler()

	router.SetupRoutes(app, db, rdb, cld, hub)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
