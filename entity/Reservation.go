package entity

import "time"

type Reservation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Date           time.Time `gorm:"index" json:"date"`
	Time           string    `json:"time"`
	Message        string    `json:"message"`
	Status         string    `gorm:"default:Pending" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
