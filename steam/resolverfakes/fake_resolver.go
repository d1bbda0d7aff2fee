package fakeresolver

import (
	"context"
	"sync"

	"github.com/jrsteele09/steam-login-gateway/bots"
	"github.com/jrsteele09/steam-login-gateway/steam"
)

var _ steam.Resolver = (*FakeResolver)(nil)

// Call records one resolver invocation for assertions.
type Call struct {
	Protocol string
	BotName  string
	SeedURL  string
}

// FakeResolver returns canned results and records every invocation.
type FakeResolver struct {
	Result string
	Err    error
	Calls  []Call
	lock   sync.Mutex
}

func NewFakeResolver(result string) *FakeResolver {
	return &FakeResolver{Result: result}
}

func (f *FakeResolver) LoginViaSteamOAuth(ctx context.Context, bot *bots.Bot, oauthURL string) (string, error) {
	return f.record("OAuth", bot, oauthURL)
}

func (f *FakeResolver) LoginViaSteamOpenId(ctx context.Context, bot *bots.Bot, openidURL string) (string, error) {
	return f.record("OpenId", bot, openidURL)
}

func (f *FakeResolver) record(protocol string, bot *bots.Bot, seedURL string) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	name := ""
	if bot != nil {
		name = bot.Name
	}
	f.Calls = append(f.Calls, Call{Protocol: protocol, BotName: name, SeedURL: seedURL})
	return f.Result, f.Err
}
