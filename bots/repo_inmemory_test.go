package bots_test

import (
	"testing"

	"github.com/jrsteele09/steam-login-gateway/bots"
	gatewayerrors "github.com/jrsteele09/steam-login-gateway/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRegistry(t *testing.T) {
	registry := bots.NewInMemoryRegistry(
		&bots.Bot{Name: "Bot1", SteamID: 76561198000000001, Enabled: true},
		&bots.Bot{Name: "Bot2", SteamID: 76561198000000002, Enabled: true},
	)

	t.Run("get known bot", func(t *testing.T) {
		bot, err := registry.GetBot("Bot1")
		require.NoError(t, err)
		require.Equal(t, "Bot1", bot.Name)
		require.Equal(t, uint64(76561198000000001), bot.SteamID)
	})

	t.Run("get unknown bot", func(t *testing.T) {
		_, err := registry.GetBot("GhostBot")
		require.ErrorIs(t, err, gatewayerrors.ErrBotNotFound)
	})

	t.Run("get with empty name", func(t *testing.T) {
		_, err := registry.GetBot("")
		require.ErrorIs(t, err, gatewayerrors.ErrBotNameEmpty)
	})

	t.Run("returned bot is a copy", func(t *testing.T) {
		bot, err := registry.GetBot("Bot1")
		require.NoError(t, err)
		bot.SessionID = "mutated"

		again, err := registry.GetBot("Bot1")
		require.NoError(t, err)
		require.Empty(t, again.SessionID)
	})

	t.Run("list is sorted by name", func(t *testing.T) {
		all, err := registry.List()
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "Bot1", all[0].Name)
		require.Equal(t, "Bot2", all[1].Name)
	})

	t.Run("upsert updates existing bot", func(t *testing.T) {
		require.NoError(t, registry.Upsert(&bots.Bot{Name: "Bot2", Enabled: false}))
		bot, err := registry.GetBot("Bot2")
		require.NoError(t, err)
		require.False(t, bot.Enabled)
	})

	t.Run("delete removes bot", func(t *testing.T) {
		require.NoError(t, registry.Delete("Bot2"))
		_, err := registry.GetBot("Bot2")
		require.ErrorIs(t, err, gatewayerrors.ErrBotNotFound)
	})

	t.Run("delete unknown bot is not an error", func(t *testing.T) {
		require.NoError(t, registry.Delete("NeverExisted"))
	})
}
