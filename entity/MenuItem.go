package entity

import "time"

type MenuItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	IsSpecial   bool     `json:"isSpecial"`
	IsMainMenu  bool     `json:"isMainMenu"`
	ImageUrl    string   `json:"imageUrl"`
	ItemType    ItemType `json:"itemType"`

	CategoryID uint     `gorm:"index;not null" json:"categoryId"`
	Category   Category `json:"category"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
