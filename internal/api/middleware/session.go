package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionIDKey is the echo context key holding the authenticated session id.
const SessionIDKey = "session_id"

const tokenIssuer = "jpk-web"

// SessionClaims is the payload of a session token. The token only proves
// which session the caller holds; the logged-in flag lives server-side.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokens issues and verifies HS256 session tokens.
type SessionTokens struct {
	secret []byte
}

func NewSessionTokens(secret string) *SessionTokens {
	return &SessionTokens{secret: []byte(secret)}
}

// Issue signs a token for sessionID that expires at expiresAt.
func (t *SessionTokens) Issue(sessionID string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies raw and returns the session id it carries.
func (t *SessionTokens) Parse(raw string) (string, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !tkn.Valid {
		return "", errors.New("invalid token")
	}
	if claims.SessionID == "" {
		return "", errors.New("token missing session id")
	}
	return claims.SessionID, nil
}

// Session validates the bearer token and injects the session id into context.
func Session(tokens *SessionTokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sid, err := tokens.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(SessionIDKey, sid)
			return next(c)
		}
	}
}
