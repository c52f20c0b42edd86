package user

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/entities"
	"Homestock-Backend/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error

		SendFriendRequest(ctx context.Context, userID string, req domain.AddFriendRequest) error
		AcceptFriendRequest(ctx context.Context, requestID string, userID string) error
		RejectFriendRequest(ctx context.Context, requestID string, userID string) error
		RemoveFriend(ctx context.Context, userID string, friendID string) error
		GetFriendsOverview(ctx context.Context, userID string) (domain.FriendsOverviewResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func toFriendResponse(u *entities.User) domain.FriendResponse {
	return domain.FriendResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func toFriendRequestResponse(r *entities.FriendRequest) domain.FriendRequestResponse {
	res := domain.FriendRequestResponse{
		ID:        r.ID.String(),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.Sender != nil {
		res.Sender = toFriendResponse(r.Sender)
	}
	if r.Receiver != nil {
		res.Receiver = toFriendResponse(r.Receiver)
	}
	return res
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	newUser := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    newUser.ID.String(),
		Name:  newUser.Name,
		Email: newUser.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	account, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(account.ID.String(), account.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  account.Role,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return domain.ProfileResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		account.Name = req.Name
	}

	return s.userRepository.UpdateUser(ctx, account)
}

func (s *userService) SendFriendRequest(ctx context.Context, userID string, req domain.AddFriendRequest) error {
	sender, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	receiver, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if sender.ID == receiver.ID {
		return domain.ErrFriendSelf
	}

	alreadyFriends, err := s.userRepository.IsFriend(ctx, sender.ID.String(), receiver.ID.String())
	if err != nil {
		return err
	}
	if alreadyFriends {
		return domain.ErrAlreadyFriends
	}

	existing, err := s.userRepository.GetFriendRequestBetween(ctx, sender.ID.String(), receiver.ID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil && existing.Status == entities.FriendRequestPending {
		return domain.ErrFriendRequestExists
	}

	// A rejected pair can try again with a fresh request.
	if existing != nil {
		existing.SenderID = sender.ID
		existing.ReceiverID = receiver.ID
		existing.Status = entities.FriendRequestPending
		return s.userRepository.UpdateFriendRequest(ctx, existing)
	}

	return s.userRepository.CreateFriendRequest(ctx, &entities.FriendRequest{
		ID:         uuid.New(),
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     entities.FriendRequestPending,
	})
}

func (s *userService) AcceptFriendRequest(ctx context.Context, requestID string, userID string) error {
	request, err := s.userRepository.GetFriendRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFriendRequestNotFound
		}
		return err
	}

	if request.ReceiverID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	if request.Status != entities.FriendRequestPending {
		return domain.ErrFriendRequestNotPending
	}

	request.Status = entities.FriendRequestAccepted
	if err := s.userRepository.UpdateFriendRequest(ctx, request); err != nil {
		return err
	}

	sender, err := s.userRepository.GetUserByID(ctx, request.SenderID.String())
	if err != nil {
		return err
	}
	receiver, err := s.userRepository.GetUserByID(ctx, request.ReceiverID.String())
	if err != nil {
		return err
	}

	return s.userRepository.AddFriend(ctx, sender, receiver)
}

func (s *userService) RejectFriendRequest(ctx context.Context, requestID string, userID string) error {
	request, err := s.userRepository.GetFriendRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFriendRequestNotFound
		}
		return err
	}

	if request.ReceiverID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	if request.Status != entities.FriendRequestPending {
		return domain.ErrFriendRequestNotPending
	}

	request.Status = entities.FriendRequestRejected
	return s.userRepository.UpdateFriendRequest(ctx, request)
}

func (s *userService) RemoveFriend(ctx context.Context, userID string, friendID string) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	friend, err := s.userRepository.GetUserByID(ctx, friendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	areFriends, err := s.userRepository.IsFriend(ctx, account.ID.String(), friend.ID.String())
	if err != nil {
		return err
	}
	if !areFriends {
		return domain.ErrUserNotFound
	}

	return s.userRepository.RemoveFriend(ctx, account, friend)
}

func (s *userService) GetFriendsOverview(ctx context.Context, userID string) (domain.FriendsOverviewResponse, error) {
	friends, err := s.userRepository.GetFriends(ctx, userID)
	if err != nil {
		return domain.FriendsOverviewResponse{}, err
	}

	sent, err := s.userRepository.GetFriendRequestsBySender(ctx, userID)
	if err != nil {
		return domain.FriendsOverviewResponse{}, err
	}

	received, err := s.userRepository.GetFriendRequestsByReceiver(ctx, userID)
	if err != nil {
		return domain.FriendsOverviewResponse{}, err
	}

	overview := domain.FriendsOverviewResponse{
		Friends:          make([]domain.FriendResponse, 0, len(friends)),
		PendingRequests:  make([]domain.FriendRequestResponse, 0, len(sent)),
		ReceivedRequests: make([]domain.FriendRequestResponse, 0, len(received)),
	}

	for _, f := range friends {
		overview.Friends = append(overview.Friends, toFriendResponse(f))
	}
	for _, r := range sent {
		overview.PendingRequests = append(overview.PendingRequests, toFriendRequestResponse(r))
	}
	for _, r := range received {
		overview.ReceivedRequests = append(overview.ReceivedRequests, toFriendRequestResponse(r))
	}

	return overview, nil
}
