package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"guesthub/internal/domain"
	"guesthub/internal/pkg/apiclient"
	jwtpkg "guesthub/internal/pkg/jwt"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

type User struct {
	ID    int64           `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
}

// Provider holds the signed-in user for one client process. Create it once,
// Hydrate it at startup and pass it to whatever needs the session.
type Provider struct {
	api   AuthAPI
	store Store
	now   func() time.Time

	mu    sync.RWMutex
	user  *User
	token string
}

func NewProvider(api AuthAPI, store Store) *Provider {
	return &Provider{api: api, store: store, now: time.Now}
}

// Hydrate restores a stored session. A session whose token has expired is
// removed from the store instead.
func (p *Provider) Hydrate(ctx context.Context) error {
	token, okToken, err := p.store.GetItem(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	rawUser, okUser, err := p.store.GetItem(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("read stored user: %w", err)
	}
	if !okToken || !okUser || token == "" {
		return nil
	}

	var u User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		log.Printf("session: discarding unreadable stored user: %v", err)
		return p.clearStore(ctx)
	}
	if exp, ok := jwtpkg.ExpiresAt(token); ok && !exp.After(p.now()) {
		log.Printf("session: stored token expired at %s", exp.Format(time.RFC3339))
		return p.clearStore(ctx)
	}

	p.mu.Lock()
	p.user = &u
	p.token = token
	p.mu.Unlock()
	return nil
}

func (p *Provider) Login(ctx context.Context, email, password string) (*User, error) {
	res, err := p.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		log.Printf("session: login error: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	return p.establish(ctx, res)
}

func (p *Provider) Register(ctx context.Context, email, password, name string, role domain.UserRole) (*User, error) {
	r, ok := domain.ParseRole(string(role))
	if !ok {
		return nil, ErrInvalidRole
	}
	res, err := p.api.Register(ctx, strings.TrimSpace(email), password, strings.TrimSpace(name), string(r))
	if err != nil {
		log.Printf("session: registration error: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	return p.establish(ctx, res)
}

func (p *Provider) establish(ctx context.Context, res *apiclient.AuthResponse) (*User, error) {
	u := User{
		ID:    res.UserIDOrID(),
		Email: res.Email,
		Name:  res.Name,
		Role:  domain.UserRole(res.Role),
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	if err := p.store.SetItem(ctx, keyToken, res.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	if err := p.store.SetItem(ctx, keyUser, string(raw)); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}

	p.mu.Lock()
	p.user = &u
	p.token = res.Token
	p.mu.Unlock()

	out := u
	return &out, nil
}

// Logout forgets the session in memory and in the store.
func (p *Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	p.user = nil
	p.token = ""
	p.mu.Unlock()
	return p.clearStore(ctx)
}

func (p *Provider) clearStore(ctx context.Context) error {
	if err := p.store.RemoveItem(ctx, keyToken); err != nil {
		return err
	}
	return p.store.RemoveItem(ctx, keyUser)
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (p *Provider) CurrentUser() *User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	return &u
}

func (p *Provider) IsAuthenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.user != nil
}

// Token implements apiclient.TokenSource.
func (p *Provider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}
