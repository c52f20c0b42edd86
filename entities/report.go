package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConsumptionRecord struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID       `gorm:"index" json:"user_id"`
	ProductID       uuid.UUID       `json:"product_id"`
	Quantity        decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit            string          `json:"unit"`
	ConsumptionDate time.Time       `gorm:"index" json:"consumption_date"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

type ExpenseRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID       `gorm:"index" json:"user_id"`
	ShoppingListID uuid.UUID       `json:"shopping_list_id"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	ShoppingDate   time.Time       `gorm:"index" json:"shopping_date"`

	User         *User         `gorm:"foreignKey:UserID"`
	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}

type WastageRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID       `gorm:"index" json:"user_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit        string          `json:"unit"`
	WastageDate time.Time       `gorm:"index" json:"wastage_date"`
	Reason      string          `gorm:"type:text" json:"reason"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

// CategoryExpense is a per-month rollup of spending inside one category,
// unique per (user, category, month).
type CategoryExpense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID       `gorm:"uniqueIndex:idx_category_expense_month" json:"user_id"`
	CategoryID  uuid.UUID       `gorm:"uniqueIndex:idx_category_expense_month" json:"category_id"`
	Month       time.Time       `gorm:"uniqueIndex:idx_category_expense_month" json:"month"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`

	User     *User     `gorm:"foreignKey:UserID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}
