package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/NebiyouChanie/sapore/pkg/mailer"
	"github.com/NebiyouChanie/sapore/repository"
	"gorm.io/gorm"
)

// FeedPublisher pushes reservation events to the admin live feed.
type FeedPublisher interface {
	Publish(event string, reservation *entity.Reservation)
}

type ReservationService struct {
	repo        *repository.ReservationRepository
	mail        mailer.Mailer
	feed        FeedPublisher
	notifyEmail string
}

func NewReservationService(repo *repository.ReservationRepository, mail mailer.Mailer, feed FeedPublisher, notifyEmail string) *ReservationService {
	return &ReservationService{repo: repo, mail: mail, feed: feed, notifyEmail: notifyEmail}
}

func (s *ReservationService) publish(event string, res *entity.Reservation) {
	if s.feed != nil {
		s.feed.Publish(event, res)
	}
}

// Create persists the reservation (status defaults to Pending at the
// store) and notifies the restaurant. A failed notification keeps the
// row: it is logged and reported, never rolled back.
func (s *ReservationService) Create(res *entity.Reservation) (bool, error) {
	if err := s.repo.Create(res); err != nil {
		return false, err
	}
	s.publish("reservation.created", res)

	// no notification address configured: nothing was dispatched, so
	// nothing was delivered
	if s.notifyEmail == "" {
		return false, nil
	}

	message := res.Message
	if message == "" {
		message = "No additional message"
	}
	body := fmt.Sprintf(
		"A new reservation has been made:\n"+
			"- Name: %s\n"+
			"- Email: %s\n"+
			"- Phone: %s\n"+
			"- Guests: %d\n"+
			"- Date: %s\n"+
			"- Time: %s\n"+
			"- Message: %s\n",
		res.Name, res.Email, res.PhoneNumber, res.NumberOfGuests,
		res.Date.Format("2006-01-02"), res.Time, message,
	)
	if err := s.mail.Send(s.notifyEmail, "New Table Reservation", body); err != nil {
		log.Printf("[RESERVATION_CREATE] send email failed: %v", err)
		return false, nil
	}
	return true, nil
}

func (s *ReservationService) List(f repository.ReservationFilter) ([]entity.Reservation, int64, error) {
	return s.repo.List(f)
}

func (s *ReservationService) Get(id uint) (*entity.Reservation, error) {
	res, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Reservation not found.")
		}
		return nil, err
	}
	return res, nil
}

// Update overwrites the guest-supplied fields; status only moves through
// UpdateStatus.
func (s *ReservationService) Update(id uint, updated *entity.Reservation) (*entity.Reservation, error) {
	res, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	res.Name = updated.Name
	res.Email = updated.Email
	res.PhoneNumber = updated.PhoneNumber
	res.NumberOfGuests = updated.NumberOfGuests
	res.Date = updated.Date
	res.Time = updated.Time
	res.Message = updated.Message

	if err := s.repo.Save(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Reservation not found.")
	}
	return nil
}
