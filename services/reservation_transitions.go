package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"gorm.io/gorm"
)

// StatusUpdate reports the persisted transition and whether the guest
// notification actually went out.
type StatusUpdate struct {
	Reservation    *entity.Reservation `json:"reservation"`
	EmailDelivered bool                `json:"emailDelivered"`
}

// UpdateStatus moves a reservation to one of Pending/Confirmed/Cancelled
// and emails the guest. The status write is never rolled back on a mail
// failure; the failure is logged and reported in the result.
func (s *ReservationService) UpdateStatus(id uint, target string) (*StatusUpdate, error) {
	if !entity.IsValidReservationStatus(target) {
		return nil, apperr.Validation("Invalid status value", map[string][]string{
			"status": {"must be one of Pending, Confirmed, Cancelled"},
		})
	}

	res, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Reservation not found.")
		}
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, target); err != nil {
		return nil, err
	}
	res.Status = target
	s.publish("reservation.status", res)

	if res.Email == "" {
		// status change is already persisted; surface the data error
		return nil, apperr.Validation("Reservation email missing", nil)
	}

	subject, body := statusEmail(res, target)
	delivered := true
	if err := s.mail.Send(res.Email, subject, body); err != nil {
		log.Printf("[RESERVATION_PATCH] send email failed: %v", err)
		delivered = false
	}

	return &StatusUpdate{Reservation: res, EmailDelivered: delivered}, nil
}

// statusEmail picks the guest-facing template. Confirmed gets the
// confirmation wording; Cancelled and Pending both take the
// cancellation-style message.
func statusEmail(res *entity.Reservation, status string) (subject, body string) {
	date := res.Date.Format("2006-01-02")
	if status == entity.StatusConfirmed {
		return "Your Reservation is Confirmed", fmt.Sprintf(
			"Hello %s,\n\nYour reservation for %s at %s has been confirmed. We look forward to serving you!",
			res.Name, date, res.Time,
		)
	}
	return "Your Reservation is Canceled", fmt.Sprintf(
		"Hello %s,\n\nUnfortunately, your reservation for %s at %s has been canceled. Please contact us for more details.",
		res.Name, date, res.Time,
	)
}
