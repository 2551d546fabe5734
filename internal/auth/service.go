//go:generate mockgen -source ./service.go -destination=./mocks/auth.go -package=mock_auth
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/carrylink/carrylink/internal/lifecycle"
	"github.com/carrylink/carrylink/internal/repository"
)

const (
	sessionTTL        = 24 * time.Hour
	pgUniqueViolation = "23505"
)

type UserRepository interface {
	Create(ctx context.Context, user *repository.User) error
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *repository.Session) error
	GetByToken(ctx context.Context, token uuid.UUID) (*repository.Session, error)
	Delete(ctx context.Context, token uuid.UUID) error
}

// Service is the identity provider: email+password sign-up/sign-in and
// bearer-token sessions.
type Service struct {
	users    UserRepository
	sessions SessionRepository
}

func NewService(users UserRepository, sessions SessionRepository) *Service {
	return &Service{users: users, sessions: sessions}
}

type SignupParams struct {
	Email       string
	Password    string
	Nickname    string
	PhoneNumber string
	CountryCode string
}

func (s *Service) Signup(ctx context.Context, params SignupParams) (lifecycle.Identity, error) {
	if !strings.Contains(params.Email, "@") {
		return lifecycle.Identity{}, fmt.Errorf("%w: invalid email address", lifecycle.ErrValidationRejected)
	}
	if len(params.Password) < 8 {
		return lifecycle.Identity{}, fmt.Errorf("%w: password must be at least 8 characters", lifecycle.ErrValidationRejected)
	}
	if params.Nickname == "" {
		return lifecycle.Identity{}, fmt.Errorf("%w: nickname is required", lifecycle.ErrValidationRejected)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return lifecycle.Identity{}, err
	}

	user := &repository.User{
		ID:          uuid.New(),
		Email:       params.Email,
		Password:    string(hashed),
		Nickname:    params.Nickname,
		PhoneNumber: params.PhoneNumber,
		CountryCode: params.CountryCode,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return lifecycle.Identity{}, fmt.Errorf("%w: email already registered", lifecycle.ErrValidationRejected)
		}
		return lifecycle.Identity{}, fmt.Errorf("%w: %v", lifecycle.ErrStoreUnavailable, err)
	}

	return lifecycle.Identity{ID: user.ID, Email: user.Email, Nickname: user.Nickname}, nil
}

// Login verifies the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, lifecycle.Identity, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return "", lifecycle.Identity{}, lifecycle.ErrUnauthenticated
		}
		return "", lifecycle.Identity{}, fmt.Errorf("%w: %v", lifecycle.ErrStoreUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", lifecycle.Identity{}, lifecycle.ErrUnauthenticated
	}

	session := &repository.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", lifecycle.Identity{}, fmt.Errorf("%w: %v", lifecycle.ErrStoreUnavailable, err)
	}

	identity := lifecycle.Identity{ID: user.ID, Email: user.Email, Nickname: user.Nickname}
	return session.Token.String(), identity, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return lifecycle.ErrUnauthenticated
	}
	return s.sessions.Delete(ctx, parsed)
}

// CurrentUser resolves a bearer token to the identity it belongs to.
func (s *Service) CurrentUser(ctx context.Context, token string) (lifecycle.Identity, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return lifecycle.Identity{}, lifecycle.ErrUnauthenticated
	}

	session, err := s.sessions.GetByToken(ctx, parsed)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return lifecycle.Identity{}, lifecycle.ErrUnauthenticated
		}
		return lifecycle.Identity{}, fmt.Errorf("%w: %v", lifecycle.ErrStoreUnavailable, err)
	}
	if time.Now().UTC().After(session.ExpiresAt) {
		return lifecycle.Identity{}, lifecycle.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return lifecycle.Identity{}, lifecycle.ErrUnauthenticated
		}
		return lifecycle.Identity{}, fmt.Errorf("%w: %v", lifecycle.ErrStoreUnavailable, err)
	}

	return lifecycle.Identity{ID: user.ID, Email: user.Email, Nickname: user.Nickname}, nil
}
