package user

import (
	"Homestock-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error

		CreateFriendRequest(ctx context.Context, request *entities.FriendRequest) error
		GetFriendRequestByID(ctx context.Context, id string) (*entities.FriendRequest, error)
		GetFriendRequestBetween(ctx context.Context, userA, userB string) (*entities.FriendRequest, error)
		GetFriendRequestsBySender(ctx context.Context, senderID string) ([]*entities.FriendRequest, error)
		GetFriendRequestsByReceiver(ctx context.Context, receiverID string) ([]*entities.FriendRequest, error)
		UpdateFriendRequest(ctx context.Context, request *entities.FriendRequest) error

		GetFriends(ctx context.Context, userID string) ([]*entities.User, error)
		AddFriend(ctx context.Context, user, friend *entities.User) error
		RemoveFriend(ctx context.Context, user, friend *entities.User) error
		IsFriend(ctx context.Context, userID, friendID string) (bool, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CreateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *userRepository) GetFriendRequestByID(ctx context.Context, id string) (*entities.FriendRequest, error) {
	var request entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *userRepository) GetFriendRequestBetween(ctx context.Context, userA, userB string) (*entities.FriendRequest, error) {
	var request entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *userRepository) GetFriendRequestsBySender(ctx context.Context, senderID string) ([]*entities.FriendRequest, error) {
	var requests []*entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? AND status = ?", senderID, entities.FriendRequestPending).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *userRepository) GetFriendRequestsByReceiver(ctx context.Context, receiverID string) ([]*entities.FriendRequest, error) {
	var requests []*entities.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("receiver_id = ? AND status = ?", receiverID, entities.FriendRequestPending).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *userRepository) UpdateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *userRepository) GetFriends(ctx context.Context, userID string) ([]*entities.User, error) {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var friends []*entities.User
	if err := r.db.WithContext(ctx).Model(user).Association("Friends").Find(&friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// AddFriend links both sides of the relation so it reads symmetrically.
func (r *userRepository) AddFriend(ctx context.Context, user, friend *entities.User) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(user).Association("Friends").Append(friend); err != nil {
		return err
	}
	return db.Model(friend).Association("Friends").Append(user)
}

func (r *userRepository) RemoveFriend(ctx context.Context, user, friend *entities.User) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(user).Association("Friends").Delete(friend); err != nil {
		return err
	}
	return db.Model(friend).Association("Friends").Delete(user)
}

func (r *userRepository) IsFriend(ctx context.Context, userID, friendID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("user_friends").
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
