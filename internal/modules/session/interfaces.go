package session

import (
	"context"

	"guesthub/internal/pkg/apiclient"
)

// Store is persistent key/value storage for the session, like browser
// localStorage.
type Store interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// AuthAPI is the booking API's authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, error)
	Register(ctx context.Context, email, password, name, role string) (*apiclient.AuthResponse, error)
}
