package localization_test

import (
	"testing"

	"github.com/jrsteele09/steam-login-gateway/internal/localization"
	"github.com/stretchr/testify/require"
)

func TestMessages_Sprintf(t *testing.T) {
	m := localization.New()

	t.Run("default locale", func(t *testing.T) {
		msg := m.Sprintf("", localization.KeyBotNotFound, "Bot1")
		require.Equal(t, "Couldn't find any bot named Bot1!", msg)
	})

	t.Run("german", func(t *testing.T) {
		msg := m.Sprintf("de-DE,de;q=0.9", localization.KeyBotNotFound, "Bot1")
		require.Equal(t, "Es konnte kein Bot namens Bot1 gefunden werden!", msg)
	})

	t.Run("unsupported locale falls back to english", func(t *testing.T) {
		msg := m.Sprintf("ja-JP", localization.KeyBotNotFound, "Bot1")
		require.Equal(t, "Couldn't find any bot named Bot1!", msg)
	})

	t.Run("garbage header falls back to english", func(t *testing.T) {
		msg := m.Sprintf(";;;", localization.KeyBotNotFound, "Bot1")
		require.Equal(t, "Couldn't find any bot named Bot1!", msg)
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		require.Equal(t, "NoSuchKey", m.Sprintf("", "NoSuchKey"))
	})
}
