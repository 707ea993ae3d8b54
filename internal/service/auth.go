package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
)

// AuthService issues and verifies the bearer tokens carrying user identity.
type AuthService struct {
	userRepo  repositoryUser
	jwtSecret string
	jwtExpiry time.Duration
}

// repositoryUser is the slice of UserRepository the auth boundary needs.
type repositoryUser interface {
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
}

func NewAuthService(userRepo repositoryUser, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// TokenForEmail issues a bearer token for a known user.
func (s *AuthService) TokenForEmail(email string) (string, *model.User, error) {
	user, err := s.userRepo.ByEmail(email)
	if err != nil {
		return "", nil, err
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// UserFromClaims resolves the token subject against the store.
func (s *AuthService) UserFromClaims(claims jwt.MapClaims) (*model.User, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return s.userRepo.ByID(userID)
}
