package constants

// Global roles
const (
	ROLE_SUPER_ADMIN  = "SUPER_ADMIN"
	ROLE_REGULAR_USER = "REGULAR_USER"
	ROLE_BOT          = "BOT"
)

// Property-level roles
const (
	PROPERTY_ROLE_ADMIN      = "ADMIN"
	PROPERTY_ROLE_RECEPTION  = "RECEPTION"
	PROPERTY_ROLE_ACCOUNTING = "ACCOUNTING"
)

// Common response messages
const (
	ERROR_INTERNAL_ERROR     = "Internal Server Error"
	ERROR_INPUT              = "Missing or Invalid input fields!"
	NOT_AUTHORIZED           = "Un-authorized request!"
	NOT_ADMIN                = "You are not authorized to complete this request!"
	DUPLICATE_ENTRY          = "Duplicate entry"
	FETCH_SUCCESS            = "Fetched successfully"
	DATA_INPUT_IS_NOT_NUMBER = "Provided id is not a number"
)

// Reservation / license messages
const (
	MSG_BOOKER_ID_REQUIRED    = "Booker Id is required!"
	MSG_BOOKER_TYPE_REQUIRED  = "Booker type is required!"
	MSG_DATE_RANGE_REQUIRED   = "Booking date range required!"
	MSG_RESERVATION_NOT_FOUND = "Reservation not found"
	MSG_LICENSE_NOT_FOUND     = "License not found"
	MSG_ROOM_OVERLAP          = "Room already assigned for the selected dates"
	MSG_PAST_DATED_CANCEL     = "Reservation has past-dated licenses and cannot be cancelled"
	MSG_ALREADY_CANCELLED     = "Reservation is already cancelled"
)
