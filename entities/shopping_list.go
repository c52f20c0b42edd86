package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShoppingList struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Name     string    `json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	User  *User               `gorm:"foreignKey:UserID"`
	Items []*ShoppingListItem `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID       `json:"shopping_list_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit           string          `json:"unit"`
	IsBought       bool            `gorm:"default:false" json:"is_bought"`

	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID"`
	Product      *Product      `gorm:"foreignKey:ProductID"`
	Timestamp
}
