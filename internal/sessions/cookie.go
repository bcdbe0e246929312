package sessions

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the cookie carrying the signed session ID.
const CookieName = "agenda_session"

// ErrInvalidCookie is returned when the session cookie fails signature or
// claim validation.
var ErrInvalidCookie = errors.New("invalid session cookie")

// sessionClaims carries only the session ID. All session state stays server
// side; the cookie is just a tamper-evident pointer.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CookieSigner signs and verifies session cookie values with an HMAC secret.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a CookieSigner from the application session secret.
func NewCookieSigner(secret string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret)}
}

// Sign produces the cookie value for the given session ID.
func (s *CookieSigner) Sign(sessionID string) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session cookie: %w", err)
	}
	return signed, nil
}

// Parse validates a cookie value and returns the session ID it carries.
func (s *CookieSigner) Parse(cookieValue string) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(cookieValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidCookie
	}
	return claims.SessionID, nil
}
