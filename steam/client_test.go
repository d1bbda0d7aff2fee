package steam_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/steam-login-gateway/bots"
	"github.com/jrsteele09/steam-login-gateway/steam"
	"github.com/stretchr/testify/require"
)

var testBot = &bots.Bot{
	Name:        "Bot1",
	SteamID:     76561198000000001,
	SessionID:   "sess-1",
	AccessToken: "access-1",
	Enabled:     true,
}

func newCommunityStub(t *testing.T, handler http.Handler) (*httptest.Server, *steam.Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := steam.NewClient(server.URL, 5*time.Second)
	require.NoError(t, err)
	return server, client
}

func TestClient_LoginViaSteamOAuth(t *testing.T) {
	t.Run("successful handoff returns redirect target", func(t *testing.T) {
		var gotCookies []*http.Cookie
		server, client := newCommunityStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/oauth/login", r.URL.Path)
			require.Equal(t, "website-client", r.URL.Query().Get("client_id"))
			require.Equal(t, "xyz", r.URL.Query().Get("state"))
			gotCookies = r.Cookies()
			http.Redirect(w, r, "https://example.com/finish?token=abc", http.StatusFound)
		}))

		result, err := client.LoginViaSteamOAuth(context.Background(), testBot,
			server.URL+"/oauth/login?client_id=website-client&state=xyz")
		require.NoError(t, err)
		require.Equal(t, "https://example.com/finish?token=abc", result)

		require.Len(t, gotCookies, 2)
		require.Equal(t, "sessionid", gotCookies[0].Name)
		require.Equal(t, "sess-1", gotCookies[0].Value)
		require.Equal(t, "steamLoginSecure", gotCookies[1].Name)
	})

	t.Run("non-redirect status is an in-band failure", func(t *testing.T) {
		server, client := newCommunityStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		result, err := client.LoginViaSteamOAuth(context.Background(), testBot, server.URL+"/oauth/login")
		require.NoError(t, err)
		require.Equal(t, "error:unexpected_status:403", result)
	})

	t.Run("foreign host is rejected without a request", func(t *testing.T) {
		requested := false
		_, client := newCommunityStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = true
		}))

		result, err := client.LoginViaSteamOAuth(context.Background(), testBot,
			"https://evil.example.com/oauth/login?client_id=x")
		require.NoError(t, err)
		require.Equal(t, "error:untrusted_url", result)
		require.False(t, requested)
	})

	t.Run("nil bot", func(t *testing.T) {
		server, client := newCommunityStub(t, http.NotFoundHandler())
		result, err := client.LoginViaSteamOAuth(context.Background(), nil, server.URL+"/oauth/login")
		require.NoError(t, err)
		require.Equal(t, "error:bot_unavailable", result)
	})
}

func TestClient_LoginViaSteamOpenId(t *testing.T) {
	t.Run("successful handoff returns redirect target", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /openid/challenge", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<form>
				<input type="hidden" name="openidparams" value="b64params"/>
				<input type="hidden" name="nonce" value="nonce123"/>
			</form>`)
		})
		mux.HandleFunc("POST /openid/login", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			require.Equal(t, "b64params", r.PostForm.Get("openidparams"))
			require.Equal(t, "nonce123", r.PostForm.Get("nonce"))
			http.Redirect(w, r, "https://example.com/openid/return?assoc=1", http.StatusFound)
		})
		server, client := newCommunityStub(t, mux)

		result, err := client.LoginViaSteamOpenId(context.Background(), testBot, server.URL+"/openid/challenge")
		require.NoError(t, err)
		require.Equal(t, "https://example.com/openid/return?assoc=1", result)
	})

	t.Run("challenge page without form fields", func(t *testing.T) {
		server, client := newCommunityStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>nothing here</html>")
		}))

		result, err := client.LoginViaSteamOpenId(context.Background(), testBot, server.URL+"/openid/challenge")
		require.NoError(t, err)
		require.Equal(t, "error:challenge_parse", result)
	})
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client, err := steam.NewClient(server.URL, 50*time.Millisecond)
	require.NoError(t, err)

	result, err := client.LoginViaSteamOAuth(context.Background(), testBot, server.URL+"/oauth/login")
	require.NoError(t, err)
	require.Equal(t, "error:timeout", result)
}
