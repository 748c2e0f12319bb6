package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dgrijalva/jwt-go"
	"github.com/ushnuel/next-dashboard/internal/config"
	"github.com/ushnuel/next-dashboard/internal/domain"
	"github.com/ushnuel/next-dashboard/pkg/dto"
	"github.com/ushnuel/next-dashboard/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	UserByEmail(email string) (*domain.User, error)
}

type AuthService struct {
	config *config.Config
	repo   UserRepository
}

func NewAuthService(repo UserRepository, config *config.Config) *AuthService {
	return &AuthService{
		repo:   repo,
		config: config,
	}
}

// Authenticate checks a candidate credential pair and returns the matching
// user with the password hash stripped. A nil user with a nil error means
// the credentials were rejected; which check failed is never reported. An
// error is returned only when the user lookup itself fails.
func (s *AuthService) Authenticate(creds dto.Credentials) (*domain.User, error) {
	if err := creds.IsValid(); err != nil {
		logger.Log.Warn("malformed credentials", logger.Error(err))
		return nil, nil
	}

	user, err := s.repo.UserByEmail(creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Log.Warn("unknown email", logger.String("email", creds.Email))
			return nil, nil
		}
		logger.Log.Error("error fetching user", logger.Error(err))
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		logger.Log.Warn("incorrect password", logger.String("email", creds.Email))
		return nil, nil
	}

	user.Password = ""

	return user, nil
}

// Login authenticates and, on success, issues a signed bearer token the
// router middleware accepts for the dashboard routes.
func (s *AuthService) Login(creds dto.Credentials) (*domain.User, string, error) {
	user, err := s.Authenticate(creds)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrIncorrectCredentials
	}

	token, err := generateJWTToken(user.ID, s.config.PrivateKey)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func generateJWTToken(userID int64, privateKey string) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(privateKey))
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return signedToken, nil
}
