package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	ErrBusy      = fmt.Errorf("%w, please wait", models.ErrDuplicateSubmission)
	ErrSeenToken = fmt.Errorf("%w: the submission token was already used", models.ErrDuplicateSubmission)
)

// TokenSet remembers the submission tokens of a session.
//
// Tokens are forgotten after the TTL or when more than size tokens were seen.
type TokenSet struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// NewTokenSet returns a set that remembers at most size tokens for ttl each.
func NewTokenSet(size int, ttl time.Duration) *TokenSet {
	return &TokenSet{
		seen: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Mint returns a new submission token.
func (s *TokenSet) Mint() string {
	return uuid.NewString()
}

// Remember adds the token. It reports false if the token was seen before.
func (s *TokenSet) Remember(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen.Contains(token) {
		return false
	}

	s.seen.Add(token, struct{}{})
	return true
}

// Gate lets one submission of a form through at a time.
//
// Creates also need an unseen token. Updates are idempotent by id and only wait for the form.
type Gate struct {
	mu         sync.Mutex
	submitting bool
	tokens     *TokenSet
}

// NewGate returns the gate for one form. The token set is shared with the other forms of the session.
func NewGate(tokens *TokenSet) *Gate {
	return &Gate{tokens: tokens}
}

// Submitting reports whether a submission is outstanding.
func (g *Gate) Submitting() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.submitting
}

func (g *Gate) acquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.submitting {
		return false
	}

	g.submitting = true
	return true
}

func (g *Gate) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.submitting = false
}

// Create runs create with a freshly minted token.
func (g *Gate) Create(ctx context.Context, create func(ctx context.Context, token string) error) error {
	return g.CreateWithToken(ctx, g.tokens.Mint(), create)
}

// CreateWithToken runs create with a token that the submission already carries,
// e.g. when an event is delivered again. A token is only ever used once.
func (g *Gate) CreateWithToken(ctx context.Context, token string, create func(ctx context.Context, token string) error) error {
	if !g.acquire() {
		return ErrBusy
	}
	defer g.release()

	if !g.tokens.Remember(token) {
		return ErrSeenToken
	}

	return create(ctx, token)
}

// Update runs update unless another submission of the form is outstanding.
func (g *Gate) Update(ctx context.Context, update func(ctx context.Context) error) error {
	if !g.acquire() {
		return ErrBusy
	}
	defer g.release()

	return update(ctx)
}
