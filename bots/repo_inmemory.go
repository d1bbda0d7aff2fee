package bots

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	gatewayerrors "github.com/jrsteele09/steam-login-gateway/internal/errors"
)

// InMemoryRegistry is an in-memory implementation of Registry
type InMemoryRegistry struct {
	mu   sync.RWMutex
	bots map[string]*Bot
}

var _ Registry = (*InMemoryRegistry)(nil)

// NewInMemoryRegistry creates a new in-memory bot registry
func NewInMemoryRegistry(seed ...*Bot) *InMemoryRegistry {
	r := &InMemoryRegistry{bots: make(map[string]*Bot)}
	for _, bot := range seed {
		_ = r.Upsert(bot)
	}
	return r
}

// GetBot retrieves a bot by name
func (r *InMemoryRegistry) GetBot(name string) (*Bot, error) {
	if name == "" {
		return nil, gatewayerrors.ErrBotNameEmpty
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bot, ok := r.bots[name]
	if !ok {
		return nil, gatewayerrors.ErrBotNotFound
	}

	// Copy so callers can't mutate registry state
	cloned := *bot
	return &cloned, nil
}

// List returns all registered bots sorted by name
func (r *InMemoryRegistry) List() ([]*Bot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Bot, 0, len(r.bots))
	for _, bot := range r.bots {
		cloned := *bot
		all = append(all, &cloned)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Upsert creates or updates a bot
func (r *InMemoryRegistry) Upsert(bot *Bot) error {
	if bot == nil {
		return errors.New("[InMemoryRegistry.Upsert] bot is required")
	}
	if bot.Name == "" {
		return gatewayerrors.ErrBotNameEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := *bot
	r.bots[bot.Name] = &cloned
	return nil
}

// Delete removes a bot; deleting an unknown bot is not an error
func (r *InMemoryRegistry) Delete(name string) error {
	if name == "" {
		return gatewayerrors.ErrBotNameEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bots, name)
	return nil
}
