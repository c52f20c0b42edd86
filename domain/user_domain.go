package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister            = "user registered successfully"
	MessageSuccessLogin               = "login successful"
	MessageSuccessGetProfile          = "profile retrieved successfully"
	MessageSuccessUpdateProfile       = "profile updated successfully"
	MessageSuccessSendFriendRequest   = "friend request sent"
	MessageSuccessAcceptFriendRequest = "friend request accepted"
	MessageSuccessRejectFriendRequest = "friend request rejected"
	MessageSuccessRemoveFriend        = "friend removed"
	MessageSuccessGetFriends          = "friends retrieved successfully"

	MessageFailedRegister          = "failed to register user"
	MessageFailedLogin             = "failed to login"
	MessageLoginRequired           = "login required"
	MessageFailedGetProfile        = "failed to retrieve profile"
	MessageFailedUpdateProfile     = "failed to update profile"
	MessageFailedFriendRequest     = "failed to process friend request"
	MessageFailedGetFriends        = "failed to retrieve friends"

	ErrEmailAlreadyRegistered   = errors.New("email already registered")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrFriendSelf               = errors.New("cannot befriend yourself")
	ErrAlreadyFriends           = errors.New("user is already a friend")
	ErrFriendRequestExists      = errors.New("friend request already pending")
	ErrFriendRequestNotFound    = errors.New("friend request not found")
	ErrFriendRequestNotPending  = errors.New("friend request is not pending")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		Name string `json:"name" validate:"omitempty"`
	}

	ProfileResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}

	AddFriendRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	FriendResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	FriendRequestResponse struct {
		ID        string         `json:"id"`
		Sender    FriendResponse `json:"sender"`
		Receiver  FriendResponse `json:"receiver"`
		Status    string         `json:"status"`
		CreatedAt time.Time      `json:"created_at"`
	}

	FriendsOverviewResponse struct {
		Friends          []FriendResponse        `json:"friends"`
		PendingRequests  []FriendRequestResponse `json:"pending_requests"`
		ReceivedRequests []FriendRequestResponse `json:"received_requests"`
	}
)
