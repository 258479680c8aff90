package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleUser       Role = "user"
)

// Identity is the caller identity threaded explicitly into every lifecycle
// operation. It is consumed as opaque data: the service never looks anything
// up about the caller beyond name and role.
type Identity struct {
	Name string
	Role Role
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

func (id Identity) CanModerate() bool {
	return id.Role == RoleAdmin || id.Role == RoleSupervisor
}

type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role Role   `json:"role"`
}

type Config struct {
	Secret string `yaml:"secret" envconfig:"JWT_SECRET" default:"secret"`
}

var ErrNoIdentity = errors.New("no identity in context")

type identityKey struct{}

func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func GetIdentity(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.Name == "" {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// ParseToken verifies an HS256 token carrying name and role claims. Tokens
// are issued by the external identity service; nothing here mints them.
func ParseToken(cfg Config, tokenStr string) (Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}
	if claims.Name == "" {
		return Identity{}, errors.New("token has no name claim")
	}
	role := claims.Role
	if role == "" {
		role = RoleUser
	}
	return Identity{Name: claims.Name, Role: role}, nil
}
