package admins

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/cbmworship/songlibrary/internal/auth"
)

type Admin struct {
	AdminID      int64
	Username     string
	PasswordHash string
}

var (
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so login failures cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}

type Service struct {
	repo Repository
	jwt  *auth.JWTManager
}

func NewService(repo Repository, jwt *auth.JWTManager) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Login exchanges a username/password pair for a signed token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.Generate(admin.Username)
}
