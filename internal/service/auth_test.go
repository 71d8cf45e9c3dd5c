package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
	mock_repository "github.com/baeksh/quickreserve/internal/repository/mocks"
	"github.com/baeksh/quickreserve/pkg/auth"
)

func TestAuthService_Register(t *testing.T) {
	t.Run("ok with default role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_repository.NewMockUserRepository(ctrl)
		users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				require.Equal(t, "alice", user.Username)
				require.Equal(t, []string{auth.RoleUser}, user.Roles)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
				return nil
			})

		svc := NewAuthService(users, zap.NewExample())
		err := svc.Register(context.Background(), model.SignUpRequest{
			Username: "alice",
			Password: "secret",
		})
		require.NoError(t, err)
	})

	t.Run("blank username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewAuthService(mock_repository.NewMockUserRepository(ctrl), zap.NewExample())

		err := svc.Register(context.Background(), model.SignUpRequest{Username: " ", Password: "secret"})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_repository.NewMockUserRepository(ctrl)
		users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(errs.ErrUsernameAlreadyExists)

		svc := NewAuthService(users, zap.NewExample())
		err := svc.Register(context.Background(), model.SignUpRequest{Username: "alice", Password: "secret"})
		require.ErrorIs(t, err, errs.ErrUsernameAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := model.User{
		ID:       7,
		Username: "alice",
		Password: string(hash),
		Roles:    []string{auth.RoleUser, auth.RoleAdmin},
	}

	t.Run("ok issues a signed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_repository.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(storedUser, nil)

		svc := NewAuthService(users, zap.NewExample())
		resp, err := svc.Login(context.Background(), model.SignInRequest{Username: "alice", Password: "secret"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		claims := &auth.Claims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.Equal(t, "alice", claims.Profile.Username)
		require.Equal(t, auth.RoleAdmin, claims.Profile.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_repository.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(storedUser, nil)

		svc := NewAuthService(users, zap.NewExample())
		_, err := svc.Login(context.Background(), model.SignInRequest{Username: "alice", Password: "nope"})
		require.ErrorIs(t, err, errs.ErrInvalidPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_repository.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(model.User{}, errs.ErrUserNotFound)

		svc := NewAuthService(users, zap.NewExample())
		_, err := svc.Login(context.Background(), model.SignInRequest{Username: "ghost", Password: "secret"})
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
