package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/phsants/usetravel-service/internal/pkg/exception"
)

// ErrSessionExpired means the request carried no usable bearer token.
// The UI must redirect to login; no upstream call is attempted.
var ErrSessionExpired = exception.ApplicationError{
	Message:    "Sessão expirada, faça login novamente.",
	StatusCode: http.StatusUnauthorized,
}

type contextKey string

const sessionKey contextKey = "session"

// Session is the authenticated caller extracted from the bearer token.
// Token keeps the raw value so it can be forwarded to the upstream API.
type Session struct {
	Subject string
	Token   string
}

// Manager verifies bearer tokens issued by the upstream auth endpoint.
type Manager struct {
	signingKey string
}

func NewManager(signingKey string) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	return &Manager{signingKey: signingKey}, nil
}

// Issue signs a token for the given subject. Only used by tests and
// local tooling; production tokens come from the upstream login.
func (m *Manager) Issue(subject string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(ttl).Unix(),
		Subject:   subject,
	})

	return token.SignedString([]byte(m.signingKey))
}

// Parse validates the token signature and expiry and returns the subject.
func (m *Manager) Parse(accessToken string) (string, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	subject, _ := claims["sub"].(string)

	return subject, nil
}

// FromRequest extracts and validates the bearer token on a request.
func (m *Manager) FromRequest(r *http.Request) (Session, error) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return Session{}, ErrSessionExpired
	}

	raw := strings.TrimPrefix(header, "Bearer ")

	subject, err := m.Parse(raw)
	if err != nil {
		return Session{}, ErrSessionExpired
	}

	return Session{Subject: subject, Token: raw}, nil
}

// WithSession stores the session on the context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the session placed by the auth middleware.
// ErrSessionExpired when the context carries none.
func FromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(sessionKey).(Session)
	if !ok || s.Token == "" {
		return Session{}, ErrSessionExpired
	}

	return s, nil
}
