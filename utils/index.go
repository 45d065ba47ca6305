package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform API response body.
type Envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data"`
}

func Success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{Message: message, Success: true, Data: data})
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Message: message, Success: false, Data: nil})
}

var dateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}

// ParseDate accepts the date formats clients send (ISO date, MM/DD/YYYY,
// or a full RFC3339 timestamp) and truncates to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errors.New("invalid date: " + s)
}

// Today returns the current date truncated to midnight UTC.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether [aStart, aEnd] intersects [bStart, bEnd] under
// inclusive bounds: a.start <= b.end && a.end >= b.start.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

func Ptr[T any](v T) *T {
	return &v
}
