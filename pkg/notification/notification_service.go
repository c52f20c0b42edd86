package notification

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/entities"
	"Homestock-Backend/internal/utils/mailing"
	"Homestock-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GenerateAll(ctx context.Context, userID string) error
		GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, error)
		MarkRead(ctx context.Context, id string, userID string) error
		MarkAllRead(ctx context.Context, userID string) error
		UnreadCount(ctx context.Context, userID string) (domain.UnreadCountResponse, error)
		Refresh(ctx context.Context, userID string) ([]domain.NotificationResponse, int64, error)
		SendDigest(ctx context.Context, userID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		userRepository         user.UserRepository
		rules                  []Rule
	}
)

func NewNotificationService(notificationRepository NotificationRepository, userRepository user.UserRepository, rules []Rule) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		rules:                  rules,
	}
}

func toNotificationResponse(n *entities.Notification) domain.NotificationResponse {
	res := domain.NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
	if n.ProductID != nil {
		res.ProductID = n.ProductID.String()
	}
	if n.ShoppingListID != nil {
		res.ShoppingListID = n.ShoppingListID.String()
	}
	return res
}

// GenerateAll runs every rule for the owner and stores whatever fired.
// Rules are independent, so a single failing rule aborts the batch but
// leaves already stored notifications in place.
func (s *notificationService) GenerateAll(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	now := time.Now()
	for _, rule := range s.rules {
		notifications, err := rule.Evaluate(ctx, s.notificationRepository, userUUID, now)
		if err != nil {
			return err
		}
		for i := range notifications {
			notifications[i].ID = uuid.New()
			if err := s.notificationRepository.CreateNotification(ctx, &notifications[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, error) {
	notifications, count, err := s.notificationRepository.GetNotifications(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}

	return response, count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string, userID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if notification.Read {
		return nil
	}

	notification.Read = true
	return s.notificationRepository.UpdateNotification(ctx, notification)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (domain.UnreadCountResponse, error) {
	count, err := s.notificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return domain.UnreadCountResponse{}, err
	}
	return domain.UnreadCountResponse{Count: count}, nil
}

// Refresh regenerates notifications from the current state and returns
// the first page of the result.
func (s *notificationService) Refresh(ctx context.Context, userID string) ([]domain.NotificationResponse, int64, error) {
	if err := s.GenerateAll(ctx, userID); err != nil {
		return nil, 0, err
	}
	return s.GetNotifications(ctx, userID, 1, 20)
}

// SendDigest mails the owner a summary of their unread notifications.
// Nothing is sent when everything has been read.
func (s *notificationService) SendDigest(ctx context.Context, userID string) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	notifications, err := s.notificationRepository.GetUnreadNotifications(ctx, userID)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<p>Hi %s,</p>", account.Name))
	body.WriteString(fmt.Sprintf("<p>You have %d unread notifications:</p><ul>", len(notifications)))
	for _, n := range notifications {
		body.WriteString(fmt.Sprintf("<li><b>%s</b>: %s</li>", n.Title, n.Message))
	}
	body.WriteString("</ul>")

	return mailing.SendMail(account.Email, "Your household inventory digest", body.String())
}
