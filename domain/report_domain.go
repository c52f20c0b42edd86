package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddConsumption = "consumption record added successfully"
	MessageSuccessAddExpense     = "expense record added successfully"
	MessageSuccessAddWastage     = "wastage record added successfully"
	MessageSuccessGetDashboard   = "dashboard retrieved successfully"
	MessageSuccessGetReport      = "report retrieved successfully"

	MessageFailedAddConsumption = "failed to add consumption record"
	MessageFailedAddExpense     = "failed to add expense record"
	MessageFailedAddWastage     = "failed to add wastage record"
	MessageFailedGetDashboard   = "failed to retrieve dashboard"
	MessageFailedGetReport      = "failed to retrieve report"
	MessageFailedExportReport   = "failed to export report"

	ErrUnitMismatch        = errors.New("unit does not match the product unit")
	ErrEmptyReason         = errors.New("reason must not be empty")
	ErrUnknownReportKind   = errors.New("unknown report kind")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrShoppingListMissing = errors.New("shopping list not found")
)

type (
	AddConsumptionRequest struct {
		ProductID       string `json:"product_id" validate:"required,uuid"`
		Quantity        string `json:"quantity" validate:"required"`
		Unit            string `json:"unit" validate:"required"`
		ConsumptionDate string `json:"consumption_date" validate:"required"`
	}

	AddExpenseRequest struct {
		ShoppingListID string `json:"shopping_list_id" validate:"required,uuid"`
		TotalAmount    string `json:"total_amount" validate:"required"`
		ShoppingDate   string `json:"shopping_date" validate:"required"`
	}

	AddWastageRequest struct {
		ProductID   string `json:"product_id" validate:"required,uuid"`
		Quantity    string `json:"quantity" validate:"required"`
		Unit        string `json:"unit" validate:"required"`
		WastageDate string `json:"wastage_date" validate:"required"`
		Reason      string `json:"reason" validate:"required"`
	}

	// SummaryResponse carries the windowed aggregate for one record kind.
	SummaryResponse struct {
		Count   int64               `json:"count"`
		Total   string              `json:"total"`
		Average string              `json:"average"`
		Series  []SeriesPointResponse `json:"series"`
	}

	SeriesPointResponse struct {
		Period string `json:"period"` // first day of the month, YYYY-MM-DD
		Total  string `json:"total"`
	}

	TopProductResponse struct {
		ProductID     string `json:"product_id"`
		Name          string `json:"name"`
		TotalQuantity string `json:"total_quantity"`
		Count         int64  `json:"count"`
	}

	DashboardResponse struct {
		Consumption SummaryResponse      `json:"consumption"`
		Expense     SummaryResponse      `json:"expense"`
		Wastage     SummaryResponse      `json:"wastage"`
		TopProducts []TopProductResponse `json:"top_products"`
	}

	ConsumptionEntryResponse struct {
		ID              string    `json:"id"`
		Product         string    `json:"product"`
		Category        string    `json:"category,omitempty"`
		Quantity        string    `json:"quantity"`
		Unit            string    `json:"unit"`
		ConsumptionDate time.Time `json:"consumption_date"`
	}

	ExpenseEntryResponse struct {
		ID           string    `json:"id"`
		ShoppingList string    `json:"shopping_list"`
		TotalAmount  string    `json:"total_amount"`
		ShoppingDate time.Time `json:"shopping_date"`
	}

	WastageEntryResponse struct {
		ID          string    `json:"id"`
		Product     string    `json:"product"`
		Category    string    `json:"category,omitempty"`
		Quantity    string    `json:"quantity"`
		Unit        string    `json:"unit"`
		WastageDate time.Time `json:"wastage_date"`
		Reason      string    `json:"reason"`
	}

	ConsumptionReportResponse struct {
		Summary SummaryResponse            `json:"summary"`
		Entries []ConsumptionEntryResponse `json:"entries"`
	}

	ExpenseReportResponse struct {
		Summary SummaryResponse        `json:"summary"`
		Entries []ExpenseEntryResponse `json:"entries"`
	}

	WastageReportResponse struct {
		Summary SummaryResponse        `json:"summary"`
		Entries []WastageEntryResponse `json:"entries"`
	}

	// TrendsResponse matches the chart endpoints contract.
	TrendsResponse struct {
		Labels   []string        `json:"labels"`
		Datasets []TrendDataset  `json:"datasets"`
	}

	TrendDataset struct {
		Data []float64 `json:"data"`
	}
)
