package user

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/entities"
	"context"
	"errors"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	usersByID    map[string]*entities.User
	usersByEmail map[string]*entities.User
	requests     map[string]*entities.FriendRequest
	friends      map[string]map[string]bool
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		usersByID:    make(map[string]*entities.User),
		usersByEmail: make(map[string]*entities.User),
		requests:     make(map[string]*entities.FriendRequest),
		friends:      make(map[string]map[string]bool),
	}
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	m.usersByID[user.ID.String()] = user
	m.usersByEmail[user.Email] = user
	return nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if u, ok := m.usersByID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := m.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	m.usersByID[user.ID.String()] = user
	m.usersByEmail[user.Email] = user
	return nil
}

func (m *mockUserRepository) CreateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	m.requests[request.ID.String()] = request
	return nil
}

func (m *mockUserRepository) GetFriendRequestByID(ctx context.Context, id string) (*entities.FriendRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetFriendRequestBetween(ctx context.Context, userA, userB string) (*entities.FriendRequest, error) {
	for _, r := range m.requests {
		s, v := r.SenderID.String(), r.ReceiverID.String()
		if (s == userA && v == userB) || (s == userB && v == userA) {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetFriendRequestsBySender(ctx context.Context, senderID string) ([]*entities.FriendRequest, error) {
	var out []*entities.FriendRequest
	for _, r := range m.requests {
		if r.SenderID.String() == senderID && r.Status == entities.FriendRequestPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockUserRepository) GetFriendRequestsByReceiver(ctx context.Context, receiverID string) ([]*entities.FriendRequest, error) {
	var out []*entities.FriendRequest
	for _, r := range m.requests {
		if r.ReceiverID.String() == receiverID && r.Status == entities.FriendRequestPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockUserRepository) UpdateFriendRequest(ctx context.Context, request *entities.FriendRequest) error {
	m.requests[request.ID.String()] = request
	return nil
}

func (m *mockUserRepository) GetFriends(ctx context.Context, userID string) ([]*entities.User, error) {
	var out []*entities.User
	for friendID := range m.friends[userID] {
		if u, ok := m.usersByID[friendID]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) AddFriend(ctx context.Context, user, friend *entities.User) error {
	link := func(a, b string) {
		if m.friends[a] == nil {
			m.friends[a] = make(map[string]bool)
		}
		m.friends[a][b] = true
	}
	link(user.ID.String(), friend.ID.String())
	link(friend.ID.String(), user.ID.String())
	return nil
}

func (m *mockUserRepository) RemoveFriend(ctx context.Context, user, friend *entities.User) error {
	delete(m.friends[user.ID.String()], friend.ID.String())
	delete(m.friends[friend.ID.String()], user.ID.String())
	return nil
}

func (m *mockUserRepository) IsFriend(ctx context.Context, userID, friendID string) (bool, error) {
	return m.friends[userID][friendID], nil
}

type stubJWTService struct{}

func (s stubJWTService) GenerateTokenUser(userID string, role string) string { return "token-" + userID }
func (s stubJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}
func (s stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func registerTestUser(t *testing.T, svc UserService, email string) domain.RegisterResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return res
}

func TestRegister(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	res := registerTestUser(t, svc, "anna@example.com")

	stored, err := repo.GetUserByEmail(context.Background(), "anna@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.ID.String() != res.ID {
		t.Errorf("response id %s does not match stored id %s", res.ID, stored.ID)
	}
	if stored.Password == "secret-password" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-password")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if stored.Role != domain.RoleUser {
		t.Errorf("expected role %q, got %q", domain.RoleUser, stored.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	registerTestUser(t, svc, "anna@example.com")

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Second",
		Email:    "anna@example.com",
		Password: "another-password",
	})
	if !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
		t.Errorf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewUserService(repo, stubJWTService{})
	registerTestUser(t, svc, "anna@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "anna@example.com",
			Password: "secret-password",
		})
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if res.Token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "anna@example.com",
			Password: "wrong",
		})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestFriendRequestFlow(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	anna := registerTestUser(t, svc, "anna@example.com")
	bart := registerTestUser(t, svc, "bart@example.com")
	ctx := context.Background()

	t.Run("cannot befriend yourself", func(t *testing.T) {
		err := svc.SendFriendRequest(ctx, anna.ID, domain.AddFriendRequest{Email: "anna@example.com"})
		if !errors.Is(err, domain.ErrFriendSelf) {
			t.Errorf("expected ErrFriendSelf, got %v", err)
		}
	})

	if err := svc.SendFriendRequest(ctx, anna.ID, domain.AddFriendRequest{Email: "bart@example.com"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	t.Run("duplicate request rejected", func(t *testing.T) {
		err := svc.SendFriendRequest(ctx, anna.ID, domain.AddFriendRequest{Email: "bart@example.com"})
		if !errors.Is(err, domain.ErrFriendRequestExists) {
			t.Errorf("expected ErrFriendRequestExists, got %v", err)
		}
	})

	request, err := repo.GetFriendRequestBetween(ctx, anna.ID, bart.ID)
	if err != nil {
		t.Fatalf("request not stored: %v", err)
	}

	t.Run("only receiver may accept", func(t *testing.T) {
		err := svc.AcceptFriendRequest(ctx, request.ID.String(), anna.ID)
		if !errors.Is(err, domain.ErrUserNotAllowed) {
			t.Errorf("expected ErrUserNotAllowed, got %v", err)
		}
	})

	if err := svc.AcceptFriendRequest(ctx, request.ID.String(), bart.ID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	t.Run("friendship is mutual", func(t *testing.T) {
		for _, pair := range [][2]string{{anna.ID, bart.ID}, {bart.ID, anna.ID}} {
			ok, err := repo.IsFriend(ctx, pair[0], pair[1])
			if err != nil || !ok {
				t.Errorf("expected %s and %s to be friends", pair[0], pair[1])
			}
		}
	})

	t.Run("sending to an existing friend fails", func(t *testing.T) {
		err := svc.SendFriendRequest(ctx, anna.ID, domain.AddFriendRequest{Email: "bart@example.com"})
		if !errors.Is(err, domain.ErrAlreadyFriends) {
			t.Errorf("expected ErrAlreadyFriends, got %v", err)
		}
	})

	if err := svc.RemoveFriend(ctx, anna.ID, bart.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	ok, _ := repo.IsFriend(ctx, anna.ID, bart.ID)
	if ok {
		t.Error("expected friendship to be removed")
	}
}

func TestRejectFriendRequest(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	anna := registerTestUser(t, svc, "anna@example.com")
	bart := registerTestUser(t, svc, "bart@example.com")
	ctx := context.Background()

	if err := svc.SendFriendRequest(ctx, anna.ID, domain.AddFriendRequest{Email: "bart@example.com"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	request, err := repo.GetFriendRequestBetween(ctx, anna.ID, bart.ID)
	if err != nil {
		t.Fatalf("request not stored: %v", err)
	}

	if err := svc.RejectFriendRequest(ctx, request.ID.String(), bart.ID); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if request.Status != entities.FriendRequestRejected {
		t.Errorf("expected rejected status, got %q", request.Status)
	}

	t.Run("accepting a rejected request fails", func(t *testing.T) {
		err := svc.AcceptFriendRequest(ctx, request.ID.String(), bart.ID)
		if !errors.Is(err, domain.ErrFriendRequestNotPending) {
			t.Errorf("expected ErrFriendRequestNotPending, got %v", err)
		}
	})

	t.Run("rejected pair can try again", func(t *testing.T) {
		if err := svc.SendFriendRequest(ctx, bart.ID, domain.AddFriendRequest{Email: "anna@example.com"}); err != nil {
			t.Fatalf("resend failed: %v", err)
		}
		renewed, err := repo.GetFriendRequestBetween(ctx, anna.ID, bart.ID)
		if err != nil {
			t.Fatalf("request not found: %v", err)
		}
		if renewed.Status != entities.FriendRequestPending {
			t.Errorf("expected pending status, got %q", renewed.Status)
		}
		if renewed.SenderID != uuid.MustParse(bart.ID) {
			t.Error("expected sender to flip to the new requester")
		}
	})
}
