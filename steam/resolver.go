package steam

import (
	"context"

	"github.com/jrsteele09/steam-login-gateway/bots"
)

// Resolver performs the Steam login handoff for a bot and returns the
// resulting login URL. The contract is inherited from the community site:
// a usable result starts with "https", anything else is a failure
// indicator that should be surfaced to the caller verbatim.
type Resolver interface {
	LoginViaSteamOAuth(ctx context.Context, bot *bots.Bot, oauthURL string) (string, error)
	LoginViaSteamOpenId(ctx context.Context, bot *bots.Bot, openidURL string) (string, error)
}
