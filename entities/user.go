package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"`

	Friends []*User `gorm:"many2many:user_friends" json:"friends,omitempty"`
	Timestamp
}

const (
	FriendRequestPending  = "Pending"
	FriendRequestAccepted = "Accepted"
	FriendRequestRejected = "Rejected"
)

type FriendRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SenderID   uuid.UUID `gorm:"uniqueIndex:idx_friend_request_pair" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"uniqueIndex:idx_friend_request_pair" json:"receiver_id"`
	Status     string    `json:"status"`

	Sender   *User `gorm:"foreignKey:SenderID"`
	Receiver *User `gorm:"foreignKey:ReceiverID"`
	Timestamp
}
