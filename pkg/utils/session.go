package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"laundry-service/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookieName = "laundry_session"

type SessionClaims struct {
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      entity.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies the client-side session token.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessionCodec(config SessionConfig, secureCookie bool) *SessionCodec {
	ttl := time.Duration(config.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionCodec{
		secret: []byte(config.Secret),
		ttl:    ttl,
		secure: secureCookie,
	}
}

func (c *SessionCodec) Encode(identity *Identity, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(c.ttl)
	claims := SessionClaims{
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Role:      identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, expiresAt, nil
}

func (c *SessionCodec) Decode(tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return c.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, errors.New("invalid session subject")
	}

	role, err := entity.ParseUserRole(string(claims.Role))
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID:    userID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      role,
	}, nil
}

// SetCookie replaces any previous session with one for identity.
func (c *SessionCodec) SetCookie(w http.ResponseWriter, identity *Identity) error {
	token, expiresAt, err := c.Encode(identity, time.Now())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (c *SessionCodec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
