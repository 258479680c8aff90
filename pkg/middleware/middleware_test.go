package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/equiphub/booking-service/pkg/auth"
	md "github.com/equiphub/booking-service/pkg/middleware"
)

func whoami(c echo.Context) error {
	id, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.String(http.StatusOK, id.Name)
}

func withIdentity(id auth.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(auth.SetIdentity(req.Context(), id)))
			return next(c)
		}
	}
}

func signedToken(t *testing.T, secret, name string, role auth.Role) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name: name,
		Role: role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "test-secret"}

	var tests = []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "valid token threads identity",
			header:       "Bearer " + signedToken(t, cfg.Secret, "alice", auth.RoleUser),
			expectedCode: http.StatusOK,
			expectedBody: "alice",
		},
		{
			name:         "missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong scheme",
			header:       "Basic abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "garbage token",
			header:       "Bearer not.a.token",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong secret",
			header:       "Bearer " + signedToken(t, "other", "alice", auth.RoleUser),
			expectedCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/whoami", whoami, md.JwtAuthentication(cfg))

			r := httptest.NewRequest(http.MethodGet, "/whoami", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestRoleGates(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name         string
		gate         echo.MiddlewareFunc
		role         auth.Role
		expectedCode int
	}{
		{name: "moderator gate admits supervisor", gate: md.RequireModerator(), role: auth.RoleSupervisor, expectedCode: http.StatusOK},
		{name: "moderator gate admits admin", gate: md.RequireModerator(), role: auth.RoleAdmin, expectedCode: http.StatusOK},
		{name: "moderator gate rejects user", gate: md.RequireModerator(), role: auth.RoleUser, expectedCode: http.StatusForbidden},
		{name: "admin gate admits admin", gate: md.RequireAdmin(), role: auth.RoleAdmin, expectedCode: http.StatusOK},
		{name: "admin gate rejects supervisor", gate: md.RequireAdmin(), role: auth.RoleSupervisor, expectedCode: http.StatusForbidden},
		{name: "admin gate rejects user", gate: md.RequireAdmin(), role: auth.RoleUser, expectedCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/guarded", whoami, withIdentity(auth.Identity{Name: "x", Role: tt.role}), tt.gate)

			r := httptest.NewRequest(http.MethodGet, "/guarded", http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRoleGateWithoutIdentity(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.GET("/guarded", whoami, md.RequireAdmin())

	r := httptest.NewRequest(http.MethodGet, "/guarded", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
