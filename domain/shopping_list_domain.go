package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateList  = "shopping list created successfully"
	MessageSuccessGetLists    = "shopping lists retrieved successfully"
	MessageSuccessDeleteList  = "shopping list deleted successfully"
	MessageSuccessAddItem     = "item added to shopping list"
	MessageSuccessRemoveItem  = "item removed from shopping list"
	MessageSuccessToggleItem  = "item status toggled"

	MessageFailedCreateList = "failed to create shopping list"
	MessageFailedGetLists   = "failed to retrieve shopping lists"
	MessageFailedDeleteList = "failed to delete shopping list"
	MessageFailedAddItem    = "failed to add item to shopping list"
	MessageFailedRemoveItem = "failed to remove item from shopping list"
	MessageFailedToggleItem = "failed to toggle item status"

	ErrShoppingListNotFound     = errors.New("shopping list not found")
	ErrShoppingListItemNotFound = errors.New("shopping list item not found")
)

type (
	CreateShoppingListRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AddShoppingListItemRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  string `json:"quantity" validate:"required"`
		Unit      string `json:"unit" validate:"required"`
	}

	ShoppingListItemResponse struct {
		ID        string `json:"id"`
		ProductID string `json:"product_id"`
		Product   string `json:"product"`
		Quantity  string `json:"quantity"`
		Unit      string `json:"unit"`
		IsBought  bool   `json:"is_bought"`
	}

	ShoppingListResponse struct {
		ID        string                     `json:"id"`
		Name      string                     `json:"name"`
		CreatedAt time.Time                  `json:"created_at"`
		Items     []ShoppingListItemResponse `json:"items,omitempty"`
	}

	ToggleItemResponse struct {
		ID       string `json:"id"`
		IsBought bool   `json:"is_bought"`
	}
)
