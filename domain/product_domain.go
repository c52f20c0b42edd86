package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddProduct      = "product added successfully"
	MessageSuccessUpdateProduct   = "product updated successfully"
	MessageSuccessDeleteProduct   = "product deleted successfully"
	MessageSuccessGetProducts     = "products retrieved successfully"
	MessageSuccessUploadImage     = "product image uploaded successfully"
	MessageSuccessAddCategory     = "category added successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"

	MessageFailedAddProduct     = "failed to add product"
	MessageFailedUpdateProduct  = "failed to update product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedUploadImage    = "failed to upload product image"
	MessageFailedAddCategory    = "failed to add category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedGetCategories  = "failed to retrieve categories"

	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidExpiry    = errors.New("invalid expiry date")
)

type (
	AddProductRequest struct {
		Name        string `json:"name" validate:"required"`
		Barcode     string `json:"barcode" validate:"omitempty"`
		CategoryID  string `json:"category_id" validate:"required,uuid"`
		ExpiryDate  string `json:"expiry_date" validate:"required"`
		Quantity    string `json:"quantity" validate:"required"`
		Unit        string `json:"unit" validate:"required"`
		MinQuantity string `json:"min_quantity" validate:"omitempty"`
	}

	UpdateProductRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Barcode     string `json:"barcode" validate:"omitempty"`
		CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
		Quantity    string `json:"quantity" validate:"omitempty"`
		Unit        string `json:"unit" validate:"omitempty"`
		MinQuantity string `json:"min_quantity" validate:"omitempty"`
		IsActive    *bool  `json:"is_active" validate:"omitempty"`
	}

	UploadProductImageRequest struct {
		ProductID string                `json:"product_id" form:"product_id" validate:"required,uuid"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ProductResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Barcode     string    `json:"barcode,omitempty"`
		CategoryID  string    `json:"category_id"`
		Category    string    `json:"category,omitempty"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Quantity    string    `json:"quantity"`
		Unit        string    `json:"unit"`
		MinQuantity string    `json:"min_quantity"`
		ImageURL    string    `json:"image_url,omitempty"`
		IsActive    bool      `json:"is_active"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}
)
