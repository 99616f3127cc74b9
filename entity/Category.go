package entity

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Referenced by menu items; not serialized to avoid payload bloat.
	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
