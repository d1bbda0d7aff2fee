// Package handoff implements the login handoff dispatcher: it validates
// an inbound login request, resolves the target bot, delegates to the
// Steam login-URL resolver and classifies the outcome.
package handoff

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/jrsteele09/steam-login-gateway/bots"
	gatewayerrors "github.com/jrsteele09/steam-login-gateway/internal/errors"
	"github.com/jrsteele09/steam-login-gateway/internal/localization"
	"github.com/jrsteele09/steam-login-gateway/steam"
)

// Protocol selects which Steam login handoff flow to use.
type Protocol string

const (
	ProtocolOAuth  Protocol = "OAuth"
	ProtocolOpenID Protocol = "OpenId"
)

// seedField returns the request field name carrying the protocol's
// challenge URL, used to phrase validation messages.
func (p Protocol) seedField() string {
	if p == ProtocolOpenID {
		return "OpenIdUrl"
	}
	return "OAuthUrl"
}

// LoginResponse is the classified outcome of a handoff. Success holds iff
// LoginURL starts with "https"; the raw resolver result is surfaced either
// way so callers can see failure indicators.
type LoginResponse struct {
	Success  bool   `json:"Success"`
	LoginURL string `json:"LoginUrl"`
}

// ValidationError is a per-request input failure that the HTTP layer maps
// to a 400 response carrying Message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Dispatcher validates login requests and delegates them to the resolver.
// It is stateless; concurrent calls need no coordination.
type Dispatcher struct {
	registry bots.Registry
	resolver steam.Resolver
	messages *localization.Messages
}

// NewDispatcher initializes a Dispatcher with required dependencies.
func NewDispatcher(registry bots.Registry, resolver steam.Resolver, messages *localization.Messages) (*Dispatcher, error) {
	if registry == nil {
		return nil, errors.New("[NewDispatcher] registry is required")
	}
	if resolver == nil {
		return nil, errors.New("[NewDispatcher] resolver is required")
	}
	if messages == nil {
		messages = localization.New()
	}
	return &Dispatcher{
		registry: registry,
		resolver: resolver,
		messages: messages,
	}, nil
}

// Resolve runs the full dispatch for one request: fail-fast validation,
// bot lookup, delegation and result classification. acceptLanguage is the
// caller's Accept-Language header, used only for localized failure
// messages. Validation failures return a *ValidationError; the resolver
// outcome, including its failure indicators, always maps to a
// LoginResponse rather than an error.
func (d *Dispatcher) Resolve(ctx context.Context, protocol Protocol, botName, seedURL, acceptLanguage string) (*LoginResponse, error) {
	if botName == "" {
		return nil, &ValidationError{Message: fmt.Sprintf("BotName or %s can not be null", protocol.seedField())}
	}

	bot, err := d.registry.GetBot(botName)
	if err != nil {
		if errors.Is(err, gatewayerrors.ErrBotNotFound) {
			return nil, &ValidationError{Message: d.messages.Sprintf(acceptLanguage, localization.KeyBotNotFound, botName)}
		}
		return nil, errors.Wrap(err, "[Dispatcher.Resolve] registry.GetBot")
	}

	if !bot.Enabled {
		return nil, &ValidationError{Message: fmt.Sprintf("Bot %s is currently disabled!", botName)}
	}

	if seedURL == "" {
		return nil, &ValidationError{Message: fmt.Sprintf("%s can not be null", protocol.seedField())}
	}

	var result string
	switch protocol {
	case ProtocolOAuth:
		result, err = d.resolver.LoginViaSteamOAuth(ctx, bot, seedURL)
	case ProtocolOpenID:
		result, err = d.resolver.LoginViaSteamOpenId(ctx, bot, seedURL)
	default:
		return nil, errors.Wrapf(gatewayerrors.ErrUnsupported, "[Dispatcher.Resolve] protocol %q", protocol)
	}
	if err != nil {
		// Resolver failures are semantic, not transport: fold them into a
		// failed response with the error text as the surfaced result.
		result = err.Error()
	}

	return &LoginResponse{
		Success:  strings.HasPrefix(result, "https"),
		LoginURL: result,
	}, nil
}
