package proxy

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenMinter mints identity tokens for calling an upstream audience.
type TokenMinter interface {
	Mint(ctx context.Context, audience string) (string, error)
}

// GoogleIDTokenMinter mints Google-signed ID tokens from the ambient service
// account credentials. One token source is kept per audience; a source caches
// its token until expiry, so most requests reuse a still-valid token.
type GoogleIDTokenMinter struct {
	mu      sync.Mutex
	sources map[string]oauth2.TokenSource
}

// NewGoogleIDTokenMinter creates a new Google ID token minter
func NewGoogleIDTokenMinter() *GoogleIDTokenMinter {
	return &GoogleIDTokenMinter{
		sources: make(map[string]oauth2.TokenSource),
	}
}

// Mint returns a valid ID token for the audience, waiting at most until ctx
// expires
func (m *GoogleIDTokenMinter) Mint(ctx context.Context, audience string) (string, error) {
	source, err := m.source(audience)
	if err != nil {
		return "", err
	}

	type mintResult struct {
		token string
		err   error
	}

	// TokenSource.Token takes no context, so bound the wait ourselves
	resultCh := make(chan mintResult, 1)
	go func() {
		token, err := source.Token()
		if err != nil {
			resultCh <- mintResult{err: fmt.Errorf("failed to mint identity token: %w", err)}
			return
		}
		// idtoken sources carry the ID token in the AccessToken field
		resultCh <- mintResult{token: token.AccessToken}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-resultCh:
		return result.token, result.err
	}
}

func (m *GoogleIDTokenMinter) source(audience string) (oauth2.TokenSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if source, ok := m.sources[audience]; ok {
		return source, nil
	}

	// The source outlives any single request and refreshes tokens later, so
	// it must not capture a request-scoped context.
	source, err := idtoken.NewTokenSource(context.Background(), audience)
	if err != nil {
		return nil, fmt.Errorf("failed to create token source for audience %q: %w", audience, err)
	}

	m.sources[audience] = source
	return source, nil
}
