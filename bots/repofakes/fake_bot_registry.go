package fakebotregistry

import (
	"sync"

	"github.com/jrsteele09/steam-login-gateway/bots"
	gatewayerrors "github.com/jrsteele09/steam-login-gateway/internal/errors"
)

var _ bots.Registry = (*FakeBotRegistry)(nil)

// FakeBotRegistry is a test double that records lookups so tests can
// assert whether the registry was consulted.
type FakeBotRegistry struct {
	bots        map[string]*bots.Bot
	GetBotCalls []string
	lock        sync.RWMutex
}

func NewFakeBotRegistry(seed ...*bots.Bot) *FakeBotRegistry {
	r := &FakeBotRegistry{bots: make(map[string]*bots.Bot)}
	for _, bot := range seed {
		r.bots[bot.Name] = bot
	}
	return r
}

func (r *FakeBotRegistry) GetBot(name string) (*bots.Bot, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.GetBotCalls = append(r.GetBotCalls, name)
	if name == "" {
		return nil, gatewayerrors.ErrBotNameEmpty
	}
	bot, ok := r.bots[name]
	if !ok {
		return nil, gatewayerrors.ErrBotNotFound
	}
	return bot, nil
}

func (r *FakeBotRegistry) List() ([]*bots.Bot, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	all := make([]*bots.Bot, 0, len(r.bots))
	for _, bot := range r.bots {
		all = append(all, bot)
	}
	return all, nil
}

func (r *FakeBotRegistry) Upsert(bot *bots.Bot) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if bot == nil || bot.Name == "" {
		return gatewayerrors.ErrBotNameEmpty
	}
	r.bots[bot.Name] = bot
	return nil
}

func (r *FakeBotRegistry) Delete(name string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.bots, name)
	return nil
}
