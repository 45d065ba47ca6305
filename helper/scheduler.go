package helper

import (
	"log"
	"time"

	"pms_server/model"
	"pms_server/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var reminderScheduler *cron.Cron
var departureScheduler gocron.Scheduler

// SendArrivalReminders mails every booker whose reservation checks in
// tomorrow. Cancelled reservations are skipped.
func SendArrivalReminders(db *gorm.DB) {
	log.Println("[CRON] SendArrivalReminders triggered")

	tomorrow := utils.Today().AddDate(0, 0, 1)

	var reservations []model.Reservation
	if err := db.Preload("Licenses").
		Where("check_in_date = ? AND is_cancelled = ?", tomorrow, false).
		Find(&reservations).Error; err != nil {
		log.Printf("arrival reminder scan failed: %v", err)
		return
	}

	for _, r := range reservations {
		var property model.Property
		if err := db.First(&property, r.PropertyRef).Error; err != nil {
			continue
		}

		email := ""
		switch r.BookerType {
		case model.BookerIndividual:
			var p model.IndividualProfile
			if err := db.First(&p, r.BookerRef).Error; err == nil {
				email = p.Email
			}
		case model.BookerCompany:
			var p model.CompanyProfile
			if err := db.First(&p, r.BookerRef).Error; err == nil {
				email = p.ContactEmail
			}
		}
		if email == "" {
			continue
		}

		utils.SendArrivalReminderEmail(email, utils.ReservationEmailData{
			ConfirmationCode: r.ConfirmationCode,
			PropertyName:     property.Name,
			CheckInDate:      r.CheckInDate.Format("2006-01-02"),
			CheckOutDate:     r.CheckOutDate.Format("2006-01-02"),
			RoomCount:        len(r.Licenses),
			TotalAmount:      r.PaymentDetails.TotalAmount,
		})
	}
}

func StartArrivalReminderScheduler(db *gorm.DB) {
	reminderScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// 08:00 every day
	_, err := reminderScheduler.AddFunc("0 8 * * *", func() {
		SendArrivalReminders(db)
	})
	if err != nil {
		log.Printf("arrival reminder scheduler init failed: %v", err)
		return
	}

	reminderScheduler.Start()
	log.Println("Arrival reminder scheduler started (daily 08:00)")
}

func StopArrivalReminderScheduler() {
	if reminderScheduler != nil {
		reminderScheduler.Stop()
		log.Println("Arrival reminder scheduler stopped")
	}
}

// logOverdueDepartures flags licenses still in-house past their check-out
// date. Logging only, front desk decides what to do.
func logOverdueDepartures(db *gorm.DB) {
	today := utils.Today()

	var licenses []model.License
	if err := db.Where("license_status = ? AND check_out_date < ?", model.LicenseStarted, today).
		Find(&licenses).Error; err != nil {
		log.Printf("overdue departure scan failed: %v", err)
		return
	}

	for _, l := range licenses {
		log.Printf("overdue departure: license %d (reservation %d) was due out %s",
			l.ID, l.ReservationRef, l.CheckOutDate.Format("2006-01-02"))
	}
}

func StartDepartureSweepScheduler(db *gorm.DB) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Printf("departure sweep scheduler init failed: %v", err)
		return
	}

	departureScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(logOverdueDepartures, db),
	)
	if err != nil {
		log.Printf("departure sweep job init failed: %v", err)
		return
	}

	s.Start()
	log.Println("Departure sweep scheduler started (hourly)")
}

func StopDepartureSweepScheduler() {
	if departureScheduler != nil {
		_ = departureScheduler.Shutdown()
		log.Println("Departure sweep scheduler stopped")
	}
}
