package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"
	MessageSuccessMarkAllRead      = "all notifications marked as read"
	MessageSuccessUnreadCount      = "unread count retrieved successfully"
	MessageSuccessRefresh          = "notifications refreshed successfully"
	MessageSuccessSendDigest       = "notification digest sent"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"
	MessageFailedMarkAllRead      = "failed to mark all notifications as read"
	MessageFailedUnreadCount      = "failed to retrieve unread count"
	MessageFailedRefresh          = "failed to refresh notifications"
	MessageFailedSendDigest       = "failed to send notification digest"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	NotificationResponse struct {
		ID             string    `json:"id"`
		Type           string    `json:"type"`
		Title          string    `json:"title"`
		Message        string    `json:"message"`
		Read           bool      `json:"read"`
		Link           string    `json:"link,omitempty"`
		ProductID      string    `json:"product_id,omitempty"`
		ShoppingListID string    `json:"shopping_list_id,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}

	UnreadCountResponse struct {
		Count int64 `json:"count"`
	}
)
