package migration

import (
	"Homestock-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.FriendRequest{},
		&entities.Category{},
		&entities.Product{},
		&entities.ShoppingList{},
		&entities.ShoppingListItem{},
		&entities.ConsumptionRecord{},
		&entities.ExpenseRecord{},
		&entities.WastageRecord{},
		&entities.CategoryExpense{},
		&entities.Notification{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
