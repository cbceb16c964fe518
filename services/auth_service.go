package services

import (
	"errors"
	"strings"
	"time"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"
	"github.com/andyrob2215/AAASmores/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles staff login and token issue.
type AuthService struct {
	staffRepo *repository.StaffRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.StaffRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		staffRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks staff credentials and mints a JWT. Both unknown-user and
// bad-password collapse to the same error.
func (s *AuthService) Login(username, password string) (string, *entity.StaffUser, error) {
	username = strings.TrimSpace(username)
	user, err := s.staffRepo.FindByUsername(username)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}
