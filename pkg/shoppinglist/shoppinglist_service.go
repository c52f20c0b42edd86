package shoppinglist

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/entities"
	"Homestock-Backend/pkg/notification"
	"Homestock-Backend/pkg/product"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		CreateList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error)
		GetLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error)
		GetListByID(ctx context.Context, id string, userID string) (domain.ShoppingListResponse, error)
		DeleteList(ctx context.Context, id string, userID string) error

		AddItem(ctx context.Context, listID string, req domain.AddShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error)
		RemoveItem(ctx context.Context, itemID string, userID string) error
		ToggleItem(ctx context.Context, itemID string, userID string) (domain.ToggleItemResponse, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		productRepository      product.ProductRepository
		notificationRepository notification.NotificationRepository
	}
)

func NewShoppingListService(
	shoppingListRepository ShoppingListRepository,
	productRepository product.ProductRepository,
	notificationRepository notification.NotificationRepository,
) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		productRepository:      productRepository,
		notificationRepository: notificationRepository,
	}
}

func toItemResponse(item *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	res := domain.ShoppingListItemResponse{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity.String(),
		Unit:      item.Unit,
		IsBought:  item.IsBought,
	}
	if item.Product != nil {
		res.Product = item.Product.Name
	}
	return res
}

func toListResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	res := domain.ShoppingListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
	}
	for _, item := range list.Items {
		res.Items = append(res.Items, toItemResponse(item))
	}
	return res
}

func (s *shoppingListService) CreateList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	list := &entities.ShoppingList{
		ID:       uuid.New(),
		UserID:   userUUID,
		Name:     req.Name,
		IsActive: true,
	}

	if err := s.shoppingListRepository.CreateList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	// The creation notice is best effort; the list exists either way.
	_ = s.notificationRepository.CreateNotification(ctx, notification.ShoppingListCreated(list))

	return toListResponse(list), nil
}

func (s *shoppingListService) GetLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error) {
	lists, err := s.shoppingListRepository.GetLists(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toListResponse(list))
	}

	return response, nil
}

func (s *shoppingListService) GetListByID(ctx context.Context, id string, userID string) (domain.ShoppingListResponse, error) {
	list, err := s.shoppingListRepository.GetListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListResponse{}, domain.ErrShoppingListNotFound
		}
		return domain.ShoppingListResponse{}, err
	}

	if list.UserID.String() != userID {
		return domain.ShoppingListResponse{}, domain.ErrUserNotAllowed
	}

	return toListResponse(list), nil
}

func (s *shoppingListService) DeleteList(ctx context.Context, id string, userID string) error {
	list, err := s.shoppingListRepository.GetListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingListNotFound
		}
		return err
	}

	if list.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.shoppingListRepository.DeleteList(ctx, id)
}

func (s *shoppingListService) AddItem(ctx context.Context, listID string, req domain.AddShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error) {
	list, err := s.shoppingListRepository.GetListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListItemResponse{}, domain.ErrShoppingListNotFound
		}
		return domain.ShoppingListItemResponse{}, err
	}

	if list.UserID.String() != userID {
		return domain.ShoppingListItemResponse{}, domain.ErrUserNotAllowed
	}

	item, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListItemResponse{}, domain.ErrProductNotFound
		}
		return domain.ShoppingListItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.ShoppingListItemResponse{}, domain.ErrUserNotAllowed
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil || !quantity.IsPositive() {
		return domain.ShoppingListItemResponse{}, domain.ErrInvalidQty
	}

	if !domain.IsAllowedUnit(req.Unit) {
		return domain.ShoppingListItemResponse{}, domain.ErrInvalidUnit
	}

	listItem := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		ProductID:      item.ID,
		Quantity:       quantity,
		Unit:           req.Unit,
	}

	if err := s.shoppingListRepository.AddItem(ctx, listItem); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	listItem.Product = item
	return toItemResponse(listItem), nil
}

func (s *shoppingListService) RemoveItem(ctx context.Context, itemID string, userID string) error {
	item, err := s.shoppingListRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingListItemNotFound
		}
		return err
	}

	if item.ShoppingList == nil || item.ShoppingList.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.shoppingListRepository.DeleteItem(ctx, itemID)
}

func (s *shoppingListService) ToggleItem(ctx context.Context, itemID string, userID string) (domain.ToggleItemResponse, error) {
	item, err := s.shoppingListRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleItemResponse{}, domain.ErrShoppingListItemNotFound
		}
		return domain.ToggleItemResponse{}, err
	}

	if item.ShoppingList == nil || item.ShoppingList.UserID.String() != userID {
		return domain.ToggleItemResponse{}, domain.ErrUserNotAllowed
	}

	item.IsBought = !item.IsBought
	if err := s.shoppingListRepository.UpdateItem(ctx, item); err != nil {
		return domain.ToggleItemResponse{}, err
	}

	return domain.ToggleItemResponse{
		ID:       item.ID.String(),
		IsBought: item.IsBought,
	}, nil
}
