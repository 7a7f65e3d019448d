// Package auth handles local sign-in for the trainer. Credentials are
// checked against the bcrypt hash stored with the user row; a signed
// session token is held in memory for the life of the program.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ssantos/wordkids/internal/repo"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotSignedIn is returned by operations that need a session.
var ErrNotSignedIn = errors.New("not signed in")

const sessionTTL = 12 * time.Hour

// Provider manages the current session. Safe for concurrent use.
type Provider struct {
	users repo.UserRepository

	mu     sync.RWMutex
	secret []byte
	token  string
	user   *repo.User
}

// NewProvider creates an auth provider over the user repository. The
// signing secret is generated per process; sessions do not outlive it.
func NewProvider(users repo.UserRepository) *Provider {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		// crypto/rand failing means the platform is broken; fall back
		// to a time-derived secret rather than refusing to start.
		secret = fmt.Appendf(nil, "wordkids-%d", time.Now().UnixNano())
	}
	return &Provider{users: users, secret: secret}
}

// SignIn verifies the credentials and opens a session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*repo.User, error) {
	user, err := p.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	p.mu.Lock()
	p.token = token
	p.user = user
	p.mu.Unlock()
	return user, nil
}

// SignOut drops the current session.
func (p *Provider) SignOut() {
	p.mu.Lock()
	p.token = ""
	p.user = nil
	p.mu.Unlock()
}

// CurrentUser returns the signed-in user, or nil when there is no
// session or the token has expired.
func (p *Provider) CurrentUser() *repo.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.user == nil || !p.tokenValid() {
		return nil
	}
	return p.user
}

// RefreshProfile reloads the signed-in user's row, picking up points
// earned since sign-in.
func (p *Provider) RefreshProfile(ctx context.Context) (*repo.User, error) {
	p.mu.RLock()
	user := p.user
	p.mu.RUnlock()
	if user == nil {
		return nil, ErrNotSignedIn
	}

	fresh, err := p.users.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh profile: %w", err)
	}
	p.mu.Lock()
	p.user = fresh
	p.mu.Unlock()
	return fresh, nil
}

// tokenValid reparses the held token against the process secret.
// Callers hold p.mu.
func (p *Provider) tokenValid() bool {
	if p.token == "" {
		return false
	}
	parsed, err := jwt.ParseWithClaims(p.token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	return err == nil && parsed.Valid
}

// HashPassword produces the bcrypt hash stored with a user row. Used by
// the seed command when provisioning accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
