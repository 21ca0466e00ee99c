package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"calpages/internal/domain"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "session"

	issuer = "calpages"
)

// Session is what the pages know about the signed-in user.
type Session struct {
	UserID    uint
	ExpiresAt time.Time
}

// Manager issues and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for userID valid for the manager's TTL.
func (m *Manager) Issue(userID uint) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies raw and returns its session. Every failure wraps
// domain.ErrUnauthenticated.
func (m *Manager) Parse(raw string) (*Session, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrUnauthenticated
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: bad subject %q", domain.ErrUnauthenticated, claims.Subject)
	}
	return &Session{UserID: uint(id), ExpiresAt: claims.ExpiresAt.Time}, nil
}

// FromRequest picks the token from the session cookie, falling back to an
// "Authorization: Bearer" header.
func (m *Manager) FromRequest(cookie, authorization string) (*Session, error) {
	if cookie != "" {
		return m.Parse(cookie)
	}
	token, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return m.Parse(token)
}
