package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/steam-login-gateway/bots"
)

const (
	DefaultCommunityURL = "https://steamcommunity.com"
	defaultTimeout      = 30 * time.Second

	oauthLoginPath  = "/oauth/login"
	oauthTokenPath  = "/oauth/token"
	openIDLoginPath = "/openid/login"
)

// Failure indicator strings returned in-band instead of a login URL.
// Callers classify results by the "https" prefix, so none of these may
// ever start with it.
const (
	failureTimeout = "error:timeout"
	failureNoBot   = "error:bot_unavailable"
)

var (
	openIDParamsPattern = regexp.MustCompile(`name="openidparams"\s+value="([^"]+)"`)
	openIDNoncePattern  = regexp.MustCompile(`name="nonce"\s+value="([^"]+)"`)
)

// Client performs login handoffs against the Steam community site using a
// bot's authenticated web session.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

var _ Resolver = (*Client)(nil)

type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for testing)
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client rooted at communityURL (DefaultCommunityURL
// for production use).
func NewClient(communityURL string, timeout time.Duration, options ...ClientOption) (*Client, error) {
	if communityURL == "" {
		communityURL = DefaultCommunityURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base, err := url.Parse(communityURL)
	if err != nil {
		return nil, errors.Wrap(err, "[steam.NewClient] parsing community URL")
	}

	client := &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
			// The login URL lives in the redirect target, never follow it
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// LoginViaSteamOAuth answers an OAuth-style login challenge on behalf of
// bot. The challenge URL is canonicalized through the OAuth2 endpoint
// configuration before the handoff request is made.
func (c *Client) LoginViaSteamOAuth(ctx context.Context, bot *bots.Bot, oauthURL string) (string, error) {
	if bot == nil {
		return failureNoBot, nil
	}

	seed, err := url.Parse(oauthURL)
	if err != nil || !c.trustedHost(seed) {
		return "error:untrusted_url", nil
	}

	cfg := oauth2.Config{
		ClientID: seed.Query().Get("client_id"),
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.baseURL.String() + oauthLoginPath,
			TokenURL: c.baseURL.String() + oauthTokenPath,
		},
	}
	challenge := cfg.AuthCodeURL(seed.Query().Get("state"))

	resp, failure := c.do(ctx, bot, http.MethodGet, challenge, nil)
	if failure != "" {
		return failure, nil
	}
	defer resp.Body.Close()

	return redirectTarget(resp)
}

// LoginViaSteamOpenId answers an OpenID 2.0 login challenge on behalf of
// bot: fetch the challenge page, lift the hidden form parameters, and
// submit them to the OpenID login endpoint.
func (c *Client) LoginViaSteamOpenId(ctx context.Context, bot *bots.Bot, openidURL string) (string, error) {
	if bot == nil {
		return failureNoBot, nil
	}

	seed, err := url.Parse(openidURL)
	if err != nil || !c.trustedHost(seed) {
		return "error:untrusted_url", nil
	}

	resp, failure := c.do(ctx, bot, http.MethodGet, openidURL, nil)
	if failure != "" {
		return failure, nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
	if err != nil {
		return "error:read_challenge", nil
	}

	params := openIDParamsPattern.FindSubmatch(body)
	nonce := openIDNoncePattern.FindSubmatch(body)
	if params == nil || nonce == nil {
		return "error:challenge_parse", nil
	}

	form := url.Values{
		"action":       {"steam_openid_login"},
		"openid.mode":  {"checkid_setup"},
		"openidparams": {string(params[1])},
		"nonce":        {string(nonce[1])},
	}

	resp, failure = c.do(ctx, bot, http.MethodPost, c.baseURL.String()+openIDLoginPath, form)
	if failure != "" {
		return failure, nil
	}
	defer resp.Body.Close()

	return redirectTarget(resp)
}

// do issues an authenticated request; a non-empty second return value is
// the in-band failure indicator.
func (c *Client) do(ctx context.Context, bot *bots.Bot, method, target string, form url.Values) (*http.Response, string) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, "error:request_build"
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	c.attachSession(req, bot)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("bot", bot.Name).Str("url", target).Msg("steam handoff request failed")
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, failureTimeout
		}
		return nil, "error:network"
	}
	return resp, ""
}

func (c *Client) attachSession(req *http.Request, bot *bots.Bot) {
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: bot.SessionID})
	req.AddCookie(&http.Cookie{
		Name:  "steamLoginSecure",
		Value: fmt.Sprintf("%d%%7C%%7C%s", bot.SteamID, bot.AccessToken),
	})
}

// trustedHost only allows handoff seeds pointing at the configured
// community host; anything else would leak the bot's session.
func (c *Client) trustedHost(u *url.URL) bool {
	return u != nil && u.Host != "" && u.Host == c.baseURL.Host
}

func redirectTarget(resp *http.Response) (string, error) {
	if resp.StatusCode < 300 || resp.StatusCode > 399 {
		return fmt.Sprintf("error:unexpected_status:%d", resp.StatusCode), nil
	}
	location := resp.Header.Get("Location")
	if location == "" {
		return "error:missing_redirect", nil
	}
	return location, nil
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	var t timeout
	return errors.As(err, &t) && t.Timeout()
}
