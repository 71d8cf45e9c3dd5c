package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

var JWTKey = []byte("quickreserve_jwt_key")

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type contextKey int

const (
	userNameKey contextKey = iota + 1
	userRoleKey
)

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserName(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}

func Role(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

func IsAdmin(ctx context.Context) bool {
	return Role(ctx) == RoleAdmin
}
