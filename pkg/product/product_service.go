package product

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/entities"
	"Homestock-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, userID string) error
		DeleteProduct(ctx context.Context, id string, userID string) error
		GetProducts(ctx context.Context, userID string, page, limit int) ([]domain.ProductResponse, int64, error)
		GetProductByID(ctx context.Context, id string, userID string) (domain.ProductResponse, error)
		UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest, userID string) (string, error)

		AddCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) error
		DeleteCategory(ctx context.Context, id string) error
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Barcode:     p.Barcode,
		CategoryID:  p.CategoryID.String(),
		ExpiryDate:  p.ExpiryDate,
		Quantity:    p.Quantity.String(),
		Unit:        p.Unit,
		MinQuantity: p.MinQuantity.String(),
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
	if p.Category != nil {
		res.Category = p.Category.Name
	}
	return res
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest, userID string) (domain.ProductResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}
	if _, err := s.productRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrCategoryNotFound
		}
		return domain.ProductResponse{}, err
	}

	expiryDate, err := time.Parse(domain.DateLayout, req.ExpiryDate)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrInvalidExpiry
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil || quantity.IsNegative() {
		return domain.ProductResponse{}, domain.ErrInvalidQty
	}

	if !domain.IsAllowedUnit(req.Unit) {
		return domain.ProductResponse{}, domain.ErrInvalidUnit
	}

	minQuantity := decimal.NewFromInt(1)
	if req.MinQuantity != "" {
		parsed, err := decimal.NewFromString(req.MinQuantity)
		if err != nil || parsed.IsNegative() {
			return domain.ProductResponse{}, domain.ErrInvalidQty
		}
		minQuantity = parsed
	}

	product := &entities.Product{
		ID:          uuid.New(),
		UserID:      userUUID,
		CategoryID:  categoryUUID,
		Name:        req.Name,
		Barcode:     req.Barcode,
		ExpiryDate:  expiryDate,
		Quantity:    quantity,
		Unit:        req.Unit,
		MinQuantity: minQuantity,
		IsActive:    true,
	}

	if err := s.productRepository.AddProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, userID string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if product.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Barcode != "" {
		product.Barcode = req.Barcode
	}
	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		if _, err := s.productRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
		product.CategoryID = categoryUUID
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse(domain.DateLayout, req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiry
		}
		product.ExpiryDate = expiryDate
	}
	if req.Quantity != "" {
		quantity, err := decimal.NewFromString(req.Quantity)
		if err != nil || quantity.IsNegative() {
			return domain.ErrInvalidQty
		}
		product.Quantity = quantity
	}
	if req.Unit != "" {
		if !domain.IsAllowedUnit(req.Unit) {
			return domain.ErrInvalidUnit
		}
		product.Unit = req.Unit
	}
	if req.MinQuantity != "" {
		minQuantity, err := decimal.NewFromString(req.MinQuantity)
		if err != nil || minQuantity.IsNegative() {
			return domain.ErrInvalidQty
		}
		product.MinQuantity = minQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id string, userID string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if product.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if product.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(product.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.productRepository.DeleteProduct(ctx, id)
}

func (s *productService) GetProducts(ctx context.Context, userID string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.productRepository.GetProducts(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	return response, count, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string, userID string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	if product.UserID.String() != userID {
		return domain.ProductResponse{}, domain.ErrUserNotAllowed
	}

	return toProductResponse(product), nil
}

func (s *productService) UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest, userID string) (string, error) {
	product, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrProductNotFound
		}
		return "", err
	}

	if product.UserID.String() != userID {
		return "", domain.ErrUserNotAllowed
	}

	fileName := fmt.Sprintf("product-%s", product.ID.String())
	var objectKey string
	var uploadErr error

	if product.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(product.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	product.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return "", err
	}

	return product.ImageURL, nil
}

func (s *productService) AddCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.productRepository.AddCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
	}, nil
}

func (s *productService) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) error {
	category, err := s.productRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	category.Name = req.Name
	category.Description = req.Description

	return s.productRepository.UpdateCategory(ctx, category)
}

func (s *productService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.productRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.productRepository.DeleteCategory(ctx, id)
}

func (s *productService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.productRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, domain.CategoryResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
		})
	}

	return response, nil
}
