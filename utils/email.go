package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"pms_server/config"

	"gopkg.in/gomail.v2"
)

// ReservationEmailData feeds the confirmation template.
type ReservationEmailData struct {
	ConfirmationCode string
	PropertyName     string
	CheckInDate      string
	CheckOutDate     string
	RoomCount        int
	TotalAmount      float64
}

// SendReservationConfirmationEmail renders and sends the booking confirmation (async).
func SendReservationConfirmationEmail(to string, data ReservationEmailData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/reservation_confirmation.html")
		if err != nil {
			log.Printf("email template load failed: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("email template render failed: %v", err)
			return
		}

		sendMail(to, "Reservation confirmed #"+data.ConfirmationCode, body.String())
	}()
}

// SendArrivalReminderEmail notifies a booker of tomorrow's arrival (async).
func SendArrivalReminderEmail(to string, data ReservationEmailData) {
	go func() {
		body := "Reminder: your stay at " + data.PropertyName +
			" begins on " + data.CheckInDate +
			". Confirmation code: " + data.ConfirmationCode + "."
		sendMail(to, "Upcoming stay reminder", "<p>"+template.HTMLEscapeString(body)+"</p>")
	}()
}

func sendMail(to, subject, htmlBody string) {
	host := config.Config("SMTP_HOST")
	if host == "" {
		return
	}
	port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("email send failed: %v", err)
	}
}
