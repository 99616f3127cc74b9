package entity

// MenuSettings is the single-row display policy applied to menu item
// responses for non-admin callers.
type MenuSettings struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	ShowPrice       bool `json:"showPrice"`
	ShowDescription bool `json:"showDescription"`
}
