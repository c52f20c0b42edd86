package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	Products []*Product `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode,omitempty"`
	ExpiryDate  time.Time       `json:"expiry_date"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit        string          `json:"unit"` // kg, g, l, ml, szt
	MinQuantity decimal.Decimal `gorm:"type:decimal(10,2);default:1" json:"min_quantity"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`

	User     *User     `gorm:"foreignKey:UserID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}
