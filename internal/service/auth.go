package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
	"github.com/baeksh/quickreserve/internal/repository"
	"github.com/baeksh/quickreserve/pkg/auth"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewAuthService(users repository.UserRepository, log *zap.Logger) *AuthService {
	return &AuthService{
		users: users,
		log:   log,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.SignUpRequest) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return errs.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{auth.RoleUser}
	}
	return s.users.CreateUser(ctx, model.User{
		Username:    req.Username,
		Password:    string(hash),
		Roles:       roles,
		PhoneNumber: req.PhoneNumber,
	})
}

func (s *AuthService) Login(ctx context.Context, req model.SignInRequest) (model.AuthResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidPassword
	}

	role := auth.RoleUser
	for _, r := range user.Roles {
		if r == auth.RoleAdmin {
			role = auth.RoleAdmin
		}
	}

	expirationTime := time.Now().Add(tokenTTL)
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	claims.Profile.Username = user.Username
	claims.Profile.Role = role

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		ExpiresIn:   int(expirationTime.Unix()),
		AccessToken: tokenString,
	}, nil
}
