package entities

import (
	"github.com/google/uuid"
)

const (
	NotificationExpiry       = "expiry"
	NotificationLowStock     = "low_stock"
	NotificationWastage      = "wastage"
	NotificationReport       = "report"
	NotificationBudget       = "budget"
	NotificationConsumption  = "consumption"
	NotificationShoppingList = "shopping_list"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"index" json:"user_id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `gorm:"type:text" json:"message"`
	Read    bool      `gorm:"default:false" json:"read"`
	Link    string    `json:"link,omitempty"`

	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	ShoppingListID *uuid.UUID `json:"shopping_list_id,omitempty"`

	User         *User         `gorm:"foreignKey:UserID"`
	Product      *Product      `gorm:"foreignKey:ProductID"`
	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}
