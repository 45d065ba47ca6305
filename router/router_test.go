package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pms_server/database"
	"pms_server/handler"
	"pms_server/model"
	"pms_server/router"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "changeme-now"
)

type envelope struct {
	Message string          `json:"message"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	router.SetupRoutes(app, db, nil, nil, handler.NewDeskHub())
	return app, db
}

func request(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		json.Unmarshal(raw, &env)
	}
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	code, env := request(t, app, http.MethodPost, "/api/v1/pmsserver/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func createProperty(t *testing.T, app *fiber.App, token, name string) uint {
	t.Helper()

	code, env := request(t, app, http.MethodPost, "/api/v1/pmsserver/properties", token, fiber.Map{
		"name":  name,
		"email": "desk@example.com",
	})
	require.Equal(t, http.StatusCreated, code)

	var property model.Property
	require.NoError(t, json.Unmarshal(env.Data, &property))
	return property.ID
}

func createRoomType(t *testing.T, app *fiber.App, token string, propertyId uint, code, name string) uint {
	t.Helper()

	status, env := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/room-types", propertyId), token, fiber.Map{
			"name":         name,
			"code":         code,
			"basePrice":    4500.0,
			"maxOccupancy": 2,
		})
	require.Equal(t, http.StatusCreated, status)

	var roomType model.RoomType
	require.NoError(t, json.Unmarshal(env.Data, &roomType))
	return roomType.ID
}

func createRoom(t *testing.T, app *fiber.App, token string, propertyId, roomTypeId uint, number string) uint {
	t.Helper()

	status, env := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/rooms", propertyId), token, fiber.Map{
			"roomNumber":  number,
			"roomTypeRef": roomTypeId,
			"floor":       1,
		})
	require.Equal(t, http.StatusCreated, status)

	var room model.Room
	require.NoError(t, json.Unmarshal(env.Data, &room))
	return room.ID
}

func createGuestProfile(t *testing.T, app *fiber.App, token string, propertyId uint) uint {
	t.Helper()

	status, env := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/profiles/individual", propertyId), token, fiber.Map{
			"firstName": "Asha",
			"lastName":  "Rao",
			"email":     "asha@example.com",
			"phone":     "9999999999",
		})
	require.Equal(t, http.StatusCreated, status)

	var profile model.IndividualProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	return profile.ID
}

func createReservation(t *testing.T, app *fiber.App, token string, propertyId, bookerId uint, checkIn, checkOut time.Time, licenses []fiber.Map) model.Reservation {
	t.Helper()

	status, env := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations", propertyId), token, fiber.Map{
			"bookerId":     bookerId,
			"bookerType":   "INDIVIDUAL",
			"checkInDate":  checkIn.Format("2006-01-02"),
			"checkOutDate": checkOut.Format("2006-01-02"),
			"source":       "PHONE",
			"payType":      "DIRECT",
			"licenses":     licenses,
		})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var reservation model.Reservation
	require.NoError(t, json.Unmarshal(env.Data, &reservation))
	return reservation
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := request(t, app, http.MethodPost, "/api/v1/pmsserver/auth/register", "", fiber.Map{
		"name":        "Front Desk",
		"email":       "desk@example.com",
		"phoneNumber": "1234567890",
		"password":    "supersecret1",
	})
	require.Equal(t, http.StatusCreated, code)

	code, _ = request(t, app, http.MethodPost, "/api/v1/pmsserver/auth/register", "", fiber.Map{
		"name":        "Front Desk Again",
		"email":       "desk@example.com",
		"phoneNumber": "1234567890",
		"password":    "supersecret1",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = request(t, app, http.MethodPost, "/api/v1/pmsserver/auth/login", "", fiber.Map{
		"email":    "desk@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	token := login(t, app, "desk@example.com", "supersecret1")

	code, env := request(t, app, http.MethodGet, "/api/v1/pmsserver/auth/validate", token, nil)
	require.Equal(t, http.StatusOK, code)

	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "desk@example.com", user.Email)

	code, _ = request(t, app, http.MethodGet, "/api/v1/pmsserver/auth/validate", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPropertyAccessControl(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Seaside Inn")

	code, _ := request(t, app, http.MethodPost, "/api/v1/pmsserver/auth/register", "", fiber.Map{
		"name":        "Outsider",
		"email":       "outsider@example.com",
		"phoneNumber": "1234567890",
		"password":    "supersecret1",
	})
	require.Equal(t, http.StatusCreated, code)
	outsider := login(t, app, "outsider@example.com", "supersecret1")

	code, _ = request(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d", propertyId), outsider, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = request(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d", propertyId), admin, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRoomTypeDuplicateCode(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Hill View")

	createRoomType(t, app, admin, propertyId, "DLX", "Deluxe")

	code, _ := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/room-types", propertyId), admin, fiber.Map{
			"name":         "Deluxe Again",
			"code":         "DLX",
			"basePrice":    5000.0,
			"maxOccupancy": 3,
		})
	assert.Equal(t, http.StatusConflict, code)
}

func TestReservationLifecycle(t *testing.T) {
	app, db := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Lake Palace")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	roomA := createRoom(t, app, admin, propertyId, roomTypeId, "101")
	roomB := createRoom(t, app, admin, propertyId, roomTypeId, "102")
	guestId := createGuestProfile(t, app, admin, propertyId)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	checkOut := today.AddDate(0, 0, 2)

	reservation := createReservation(t, app, admin, propertyId, guestId, today, checkOut, []fiber.Map{
		{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0, "discountAmount": 200.0},
		{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0, "discountAmount": 0.0},
	})
	require.Len(t, reservation.Licenses, 2)
	assert.NotEmpty(t, reservation.ConfirmationCode)
	assert.InDelta(t, 8760.0, reservation.PaymentDetails.TotalAmount, 0.001)
	assert.InDelta(t, 8760.0, reservation.PaymentDetails.Balance, 0.001)
	assert.Equal(t, model.LicenseNotStarted, reservation.Licenses[0].LicenseStatus)

	base := fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d", propertyId, reservation.ID)
	first := reservation.Licenses[0].ID
	second := reservation.Licenses[1].ID

	// Check-in needs a room first.
	code, _ := request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/check-in", base, first), admin, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/assign-room", base, first), admin, fiber.Map{"roomRef": roomA})
	require.Equal(t, http.StatusOK, code)

	// Same room for an overlapping license is rejected.
	code, env := request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/assign-room", base, second), admin, fiber.Map{"roomRef": roomA})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, env.Message, "already assigned")

	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/assign-room", base, second), admin, fiber.Map{"roomRef": roomB})
	require.Equal(t, http.StatusOK, code)

	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/check-in", base, first), admin, nil)
	require.Equal(t, http.StatusOK, code)

	// Second check-in of the same license conflicts.
	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/check-in", base, first), admin, nil)
	assert.Equal(t, http.StatusConflict, code)

	// Checking out a license that never started conflicts.
	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/check-out", base, second), admin, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/check-out", base, first), admin, nil)
	require.Equal(t, http.StatusOK, code)

	// One license still open, so the reservation stays open.
	var current model.Reservation
	require.NoError(t, db.First(&current, reservation.ID).Error)
	assert.False(t, current.IsClosed)

	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/check-in", base, second), admin, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("%s/licenses/%d/check-out", base, second), admin, nil)
	require.Equal(t, http.StatusOK, code)

	require.NoError(t, db.First(&current, reservation.ID).Error)
	assert.True(t, current.IsClosed)
}

func TestCancelReservation(t *testing.T) {
	app, db := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Garden Court")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	guestId := createGuestProfile(t, app, admin, propertyId)

	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)

	t.Run("without charges drops the totals", func(t *testing.T) {
		reservation := createReservation(t, app, admin, propertyId, guestId,
			tomorrow, tomorrow.AddDate(0, 0, 2), []fiber.Map{
				{"roomTypeRef": roomTypeId, "baseRate": 3000.0, "taxAmount": 360.0},
			})

		code, _ := request(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/cancel", propertyId, reservation.ID),
			admin, fiber.Map{"isCancelled": true, "cancelWithCharges": false})
		require.Equal(t, http.StatusOK, code)

		var current model.Reservation
		require.NoError(t, db.Preload("Licenses").First(&current, reservation.ID).Error)
		assert.True(t, current.IsCancelled)
		assert.Zero(t, current.PaymentDetails.TotalAmount)
		require.Len(t, current.Licenses, 1)
		assert.Equal(t, model.LicenseCancelled, current.Licenses[0].LicenseStatus)
		assert.Zero(t, current.Licenses[0].Charges.TotalCharges)
		assert.Zero(t, current.Licenses[0].CancelledCharges.TotalCharges)

		// Cancelling twice is a conflict.
		code, _ = request(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/cancel", propertyId, reservation.ID),
			admin, fiber.Map{"isCancelled": true})
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("with charges keeps them owed", func(t *testing.T) {
		reservation := createReservation(t, app, admin, propertyId, guestId,
			tomorrow, tomorrow.AddDate(0, 0, 2), []fiber.Map{
				{"roomTypeRef": roomTypeId, "baseRate": 3000.0, "taxAmount": 360.0},
			})

		code, _ := request(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/cancel", propertyId, reservation.ID),
			admin, fiber.Map{"isCancelled": true, "cancelWithCharges": true})
		require.Equal(t, http.StatusOK, code)

		var current model.Reservation
		require.NoError(t, db.Preload("Licenses").First(&current, reservation.ID).Error)
		assert.InDelta(t, 3360.0, current.PaymentDetails.TotalAmount, 0.001)
		require.Len(t, current.Licenses, 1)
		assert.Zero(t, current.Licenses[0].Charges.TotalCharges)
		assert.InDelta(t, 3360.0, current.Licenses[0].CancelledCharges.TotalCharges, 0.001)
	})

	t.Run("past-dated licenses block cancellation", func(t *testing.T) {
		lastWeek := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -7)
		reservation := createReservation(t, app, admin, propertyId, guestId,
			lastWeek, lastWeek.AddDate(0, 0, 2), []fiber.Map{
				{"roomTypeRef": roomTypeId, "baseRate": 3000.0, "taxAmount": 360.0},
			})

		code, _ := request(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/cancel", propertyId, reservation.ID),
			admin, fiber.Map{"isCancelled": true})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("past check-in blocks even after the stay started", func(t *testing.T) {
		yesterday := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
		roomId := createRoom(t, app, admin, propertyId, roomTypeId, "301")
		reservation := createReservation(t, app, admin, propertyId, guestId,
			yesterday, yesterday.AddDate(0, 0, 3), []fiber.Map{
				{"roomTypeRef": roomTypeId, "baseRate": 3000.0, "taxAmount": 360.0},
			})
		require.Len(t, reservation.Licenses, 1)

		base := fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d", propertyId, reservation.ID)
		licenseId := reservation.Licenses[0].ID

		code, _ := request(t, app, http.MethodPatch,
			fmt.Sprintf("%s/licenses/%d/assign-room", base, licenseId), admin, fiber.Map{"roomRef": roomId})
		require.Equal(t, http.StatusOK, code)
		code, _ = request(t, app, http.MethodPatch,
			fmt.Sprintf("%s/licenses/%d/check-in", base, licenseId), admin, nil)
		require.Equal(t, http.StatusOK, code)

		code, _ = request(t, app, http.MethodPatch, base+"/cancel",
			admin, fiber.Map{"isCancelled": true})
		assert.Equal(t, http.StatusBadRequest, code)

		var current model.License
		require.NoError(t, db.First(&current, licenseId).Error)
		assert.Equal(t, model.LicenseStarted, current.LicenseStatus)
	})
}

func TestRoomReassignAfterCheckout(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Harbor View")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	roomId := createRoom(t, app, admin, propertyId, roomTypeId, "101")
	guestId := createGuestProfile(t, app, admin, propertyId)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	first := createReservation(t, app, admin, propertyId, guestId, today, today.AddDate(0, 0, 2), []fiber.Map{
		{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0},
	})
	firstBase := fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/licenses/%d",
		propertyId, first.ID, first.Licenses[0].ID)

	code, _ := request(t, app, http.MethodPatch, firstBase+"/assign-room", admin, fiber.Map{"roomRef": roomId})
	require.Equal(t, http.StatusOK, code)
	code, _ = request(t, app, http.MethodPatch, firstBase+"/check-in", admin, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = request(t, app, http.MethodPatch, firstBase+"/check-out", admin, nil)
	require.Equal(t, http.StatusOK, code)

	// The closed license no longer holds the room, so an overlapping stay
	// can take it.
	second := createReservation(t, app, admin, propertyId, guestId, today, today.AddDate(0, 0, 2), []fiber.Map{
		{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0},
	})
	code, _ = request(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/licenses/%d/assign-room",
			propertyId, second.ID, second.Licenses[0].ID),
		admin, fiber.Map{"roomRef": roomId})
	require.Equal(t, http.StatusOK, code)
}

func TestCheckInOutsideStayWindow(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Hillside Retreat")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	roomId := createRoom(t, app, admin, propertyId, roomTypeId, "101")
	guestId := createGuestProfile(t, app, admin, propertyId)

	nextWeek := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 7)
	reservation := createReservation(t, app, admin, propertyId, guestId,
		nextWeek, nextWeek.AddDate(0, 0, 2), []fiber.Map{
			{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0},
		})
	base := fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/licenses/%d",
		propertyId, reservation.ID, reservation.Licenses[0].ID)

	code, _ := request(t, app, http.MethodPatch, base+"/assign-room", admin, fiber.Map{"roomRef": roomId})
	require.Equal(t, http.StatusOK, code)

	code, _ = request(t, app, http.MethodPatch, base+"/check-in", admin, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestZeroNightReservationRejected(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Canal House")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	guestId := createGuestProfile(t, app, admin, propertyId)

	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	code, _ := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations", propertyId), admin, fiber.Map{
			"bookerId":     guestId,
			"bookerType":   "INDIVIDUAL",
			"checkInDate":  tomorrow.Format("2006-01-02"),
			"checkOutDate": tomorrow.Format("2006-01-02"),
			"source":       "PHONE",
			"payType":      "DIRECT",
			"licenses": []fiber.Map{
				{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0},
			},
		})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPayments(t *testing.T) {
	app, db := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "City Stay")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	guestId := createGuestProfile(t, app, admin, propertyId)

	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	reservation := createReservation(t, app, admin, propertyId, guestId,
		tomorrow, tomorrow.AddDate(0, 0, 1), []fiber.Map{
			{"roomTypeRef": roomTypeId, "baseRate": 5000.0, "taxAmount": 600.0},
		})
	base := fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/payments", propertyId, reservation.ID)

	code, env := request(t, app, http.MethodPost, base, admin, fiber.Map{
		"amountPaid":      2000.0,
		"paymentMethod":   "CASH",
		"referenceNumber": "RCPT-1",
	})
	require.Equal(t, http.StatusCreated, code)

	var payment model.Payment
	require.NoError(t, json.Unmarshal(env.Data, &payment))

	var current model.Reservation
	require.NoError(t, db.First(&current, reservation.ID).Error)
	assert.InDelta(t, 2000.0, current.PaymentDetails.TotalPaid, 0.001)
	assert.InDelta(t, 3600.0, current.PaymentDetails.Balance, 0.001)

	// Amending the amount shifts the totals by the delta.
	code, _ = request(t, app, http.MethodPut, fmt.Sprintf("%s/%d", base, payment.ID), admin, fiber.Map{
		"amountPaid":      2500.0,
		"paymentMethod":   "UPI",
		"referenceNumber": "RCPT-1A",
	})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, db.First(&current, reservation.ID).Error)
	assert.InDelta(t, 2500.0, current.PaymentDetails.TotalPaid, 0.001)

	code, _ = request(t, app, http.MethodPatch, fmt.Sprintf("%s/%d/void", base, payment.ID), admin, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, db.First(&current, reservation.ID).Error)
	assert.Zero(t, current.PaymentDetails.TotalPaid)
	assert.InDelta(t, 5600.0, current.PaymentDetails.Balance, 0.001)

	// Void is terminal: no second void, no edits.
	code, _ = request(t, app, http.MethodPatch, fmt.Sprintf("%s/%d/void", base, payment.ID), admin, nil)
	assert.Equal(t, http.StatusConflict, code)
	code, _ = request(t, app, http.MethodPut, fmt.Sprintf("%s/%d", base, payment.ID), admin, fiber.Map{
		"amountPaid":      100.0,
		"paymentMethod":   "CASH",
		"referenceNumber": "RCPT-2",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = request(t, app, http.MethodPatch, fmt.Sprintf("%s/999/void", base), admin, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOccupancy(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Transit Lodge")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	createRoom(t, app, admin, propertyId, roomTypeId, "101")
	createRoom(t, app, admin, propertyId, roomTypeId, "102")
	guestId := createGuestProfile(t, app, admin, propertyId)

	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	reservation := createReservation(t, app, admin, propertyId, guestId,
		tomorrow, tomorrow.AddDate(0, 0, 3), []fiber.Map{
			{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0},
		})

	occupancyURL := fmt.Sprintf("/api/v1/pmsserver/properties/%d/occupancy?checkInDate=%s&checkOutDate=%s",
		propertyId, tomorrow.Format("2006-01-02"), tomorrow.AddDate(0, 0, 1).Format("2006-01-02"))

	type row struct {
		RoomTypeRef    uint  `json:"roomTypeRef"`
		TotalRooms     int64 `json:"totalRooms"`
		BookedRooms    int64 `json:"bookedRooms"`
		AvailableRooms int64 `json:"availableRooms"`
	}

	code, env := request(t, app, http.MethodGet, occupancyURL, admin, nil)
	require.Equal(t, http.StatusOK, code)
	var report []row
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Len(t, report, 1)
	assert.Equal(t, int64(2), report[0].TotalRooms)
	assert.Equal(t, int64(1), report[0].BookedRooms)
	assert.Equal(t, int64(1), report[0].AvailableRooms)

	// A range that misses the stay leaves everything free.
	farOut := tomorrow.AddDate(0, 1, 0)
	code, env = request(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/occupancy?checkInDate=%s&checkOutDate=%s",
			propertyId, farOut.Format("2006-01-02"), farOut.AddDate(0, 0, 1).Format("2006-01-02")),
		admin, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, int64(0), report[0].BookedRooms)

	// Cancelled licenses stop counting against availability.
	codeCancel, _ := request(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/cancel", propertyId, reservation.ID),
		admin, fiber.Map{"isCancelled": true})
	require.Equal(t, http.StatusOK, codeCancel)

	code, env = request(t, app, http.MethodGet, occupancyURL, admin, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, int64(0), report[0].BookedRooms)
	assert.Equal(t, int64(2), report[0].AvailableRooms)

	// Zero-night ranges are invalid.
	code, _ = request(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/occupancy?checkInDate=%s&checkOutDate=%s",
			propertyId, tomorrow.Format("2006-01-02"), tomorrow.Format("2006-01-02")),
		admin, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestReservationQR(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, adminEmail, adminPassword)
	propertyId := createProperty(t, app, admin, "Airport Inn")
	roomTypeId := createRoomType(t, app, admin, propertyId, "STD", "Standard")
	guestId := createGuestProfile(t, app, admin, propertyId)

	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	reservation := createReservation(t, app, admin, propertyId, guestId,
		tomorrow, tomorrow.AddDate(0, 0, 1), []fiber.Map{
			{"roomTypeRef": roomTypeId, "baseRate": 4000.0, "taxAmount": 480.0},
		})

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/pmsserver/properties/%d/reservations/%d/qr", propertyId, reservation.ID), nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
