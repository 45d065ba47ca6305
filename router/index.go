package router

import (
	"pms_server/handler"
	"pms_server/middleware"
	"pms_server/validate"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes mounts the whole API under /api/v1/pmsserver.
func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, cld *cloudinary.Cloudinary, hub *handler.DeskHub) {
	authHandler := handler.NewAuthHandler(db)
	propertyHandler := handler.NewPropertyHandler(db, cld)
	roomTypeHandler := handler.NewRoomTypeHandler(db)
	roomHandler := handler.NewRoomHandler(db)
	profileHandler := handler.NewProfileHandler(db)
	taxHandler := handler.NewTaxHandler(db)
	mealPlanHandler := handler.NewMealPlanHandler(db)
	facilityHandler := handler.NewFacilityHandler(db)
	occupancyHandler := handler.NewOccupancyHandler(db, rdb)
	reservationHandler := handler.NewReservationHandler(db, hub)
	paymentHandler := handler.NewPaymentHandler(db, hub)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("pms server is running")
	})

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1/pmsserver")

	v1.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := v1.Group("/auth", logger.New())
	auth.Post("/register", validate.Register(), authHandler.Register)
	auth.Post("/register-team", middleware.Protected(), middleware.WithUserRole(db), validate.RegisterTeamMember(), authHandler.RegisterTeamMember)
	auth.Post("/login", validate.Login(), authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/validate", middleware.Protected(), authHandler.ValidateToken)

	v1.Post("/cloudinary-signature", middleware.Protected(), propertyHandler.GenerateSignature)

	properties := v1.Group("/properties", logger.New())
	properties.Post("/", middleware.Protected(), middleware.WithUserRole(db), validate.CreateProperty(), propertyHandler.CreateProperty)
	properties.Get("/", middleware.Protected(), middleware.WithUserRole(db), propertyHandler.GetMyProperties)

	// Everything below is scoped to one property and requires a link to it.
	property := v1.Group("/properties/:propertyId",
		middleware.Protected(), middleware.WithUserRole(db), middleware.VerifyPropertyAccess(db))

	property.Get("/", propertyHandler.GetPropertyById)
	property.Put("/", middleware.VerifyAdminAccess(db), validate.UpdateProperty(), propertyHandler.UpdateProperty)
	property.Post("/images", middleware.VerifyAdminAccess(db), propertyHandler.UploadPropertyImage)

	roomTypes := property.Group("/room-types")
	roomTypes.Post("/", middleware.VerifyAdminAccess(db), validate.RoomTypeBody(), roomTypeHandler.CreateRoomType)
	roomTypes.Get("/", roomTypeHandler.GetRoomTypes)
	roomTypes.Get("/:roomTypeId", validate.GetById("roomTypeId"), roomTypeHandler.GetRoomTypeById)
	roomTypes.Put("/:roomTypeId", middleware.VerifyAdminAccess(db), validate.GetById("roomTypeId"), validate.RoomTypeBody(), roomTypeHandler.UpdateRoomType)
	roomTypes.Delete("/:roomTypeId", middleware.VerifyAdminAccess(db), validate.GetById("roomTypeId"), roomTypeHandler.DeleteRoomType)

	rooms := property.Group("/rooms")
	rooms.Post("/", middleware.VerifyAdminAccess(db), validate.RoomBody(db), roomHandler.CreateRoom)
	rooms.Get("/", roomHandler.GetRooms)
	rooms.Get("/:roomId", validate.GetById("roomId"), roomHandler.GetRoomById)
	rooms.Patch("/:roomId/availability", middleware.VerifyAdminAccess(db), validate.GetById("roomId"), roomHandler.SetRoomAvailability)
	rooms.Delete("/:roomId", middleware.VerifyAdminAccess(db), validate.GetById("roomId"), roomHandler.DeleteRoom)

	individuals := property.Group("/profiles/individual")
	individuals.Post("/", validate.IndividualProfileBody(), profileHandler.CreateIndividualProfile)
	individuals.Get("/", profileHandler.GetIndividualProfiles)
	individuals.Get("/:profileId", validate.GetById("profileId"), profileHandler.GetIndividualProfileById)
	individuals.Put("/:profileId", validate.GetById("profileId"), validate.IndividualProfileBody(), profileHandler.UpdateIndividualProfile)

	companies := property.Group("/profiles/company")
	companies.Post("/", validate.CompanyProfileBody(), profileHandler.CreateCompanyProfile)
	companies.Get("/", profileHandler.GetCompanyProfiles)
	companies.Get("/:profileId", validate.GetById("profileId"), profileHandler.GetCompanyProfileById)
	companies.Put("/:profileId", validate.GetById("profileId"), validate.CompanyProfileBody(), profileHandler.UpdateCompanyProfile)

	taxes := property.Group("/taxes")
	taxes.Post("/", middleware.VerifyAdminAccess(db), validate.TaxBody(), taxHandler.CreateTax)
	taxes.Get("/", taxHandler.GetTaxes)
	taxes.Put("/:taxId", middleware.VerifyAdminAccess(db), validate.GetById("taxId"), validate.TaxBody(), taxHandler.UpdateTax)
	taxes.Delete("/:taxId", middleware.VerifyAdminAccess(db), validate.GetById("taxId"), taxHandler.DeleteTax)

	mealPlans := property.Group("/meal-plans")
	mealPlans.Post("/", middleware.VerifyAdminAccess(db), validate.MealPlanBody(), mealPlanHandler.CreateMealPlan)
	mealPlans.Get("/", mealPlanHandler.GetMealPlans)
	mealPlans.Put("/:mealPlanId", middleware.VerifyAdminAccess(db), validate.GetById("mealPlanId"), validate.MealPlanBody(), mealPlanHandler.UpdateMealPlan)
	mealPlans.Delete("/:mealPlanId", middleware.VerifyAdminAccess(db), validate.GetById("mealPlanId"), mealPlanHandler.DeleteMealPlan)

	facilities := property.Group("/facilities")
	facilities.Post("/", middleware.VerifyAdminAccess(db), validate.FacilityBody(), facilityHandler.CreateFacility)
	facilities.Get("/", facilityHandler.GetFacilities)
	facilities.Put("/:facilityId", middleware.VerifyAdminAccess(db), validate.GetById("facilityId"), validate.FacilityBody(), facilityHandler.UpdateFacility)
	facilities.Delete("/:facilityId", middleware.VerifyAdminAccess(db), validate.GetById("facilityId"), facilityHandler.DeleteFacility)

	property.Get("/occupancy", occupancyHandler.GetOccupancy)

	reservations := property.Group("/reservations")
	reservations.Post("/", validate.CreateReservation(), reservationHandler.CreateReservation)
	reservations.Get("/", reservationHandler.GetReservations)
	reservations.Get("/:reservationId", validate.GetById("reservationId"), reservationHandler.GetReservationById)
	reservations.Get("/:reservationId/qr", validate.GetById("reservationId"), reservationHandler.GetReservationQR)
	reservations.Patch("/:reservationId/cancel", validate.GetById("reservationId"), validate.CancelReservation(), reservationHandler.CancelReservation)

	licenses := reservations.Group("/:reservationId/licenses", validate.GetById("reservationId"))
	licenses.Patch("/:licenseId/check-in", validate.GetById("licenseId"), reservationHandler.CheckInLicense)
	licenses.Patch("/:licenseId/check-out", validate.GetById("licenseId"), reservationHandler.CheckOutLicense)
	licenses.Patch("/:licenseId/assign-room", validate.GetById("licenseId"), validate.AssignRoom(), reservationHandler.AssignRoom)
	licenses.Patch("/:licenseId/unassign-room", validate.GetById("licenseId"), reservationHandler.UnassignRoom)

	payments := reservations.Group("/:reservationId/payments", validate.GetById("reservationId"))
	payments.Post("/", validate.PaymentBody(), paymentHandler.AddPayment)
	payments.Get("/", paymentHandler.GetPayments)
	payments.Put("/:paymentId", validate.GetById("paymentId"), validate.PaymentBody(), paymentHandler.UpdatePayment)
	payments.Patch("/:paymentId/void", validate.GetById("paymentId"), paymentHandler.VoidPayment)

	// Live desk feed. The upgrade request carries the same auth as the rest
	// of the property routes.
	ws := v1.Group("/ws/properties/:propertyId",
		middleware.Protected(), middleware.WithUserRole(db), middleware.VerifyPropertyAccess(db))
	ws.Use("/desk", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/desk", websocket.New(hub.Serve))
}
