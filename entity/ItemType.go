package entity

type ItemType string

const (
	ItemTypeStarter  ItemType = "starter"
	ItemTypeMainDish ItemType = "maindish"
	ItemTypeDessert  ItemType = "dessert"
)
