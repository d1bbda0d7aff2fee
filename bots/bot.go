package bots

// Bot is a managed Steam account that the gateway can initiate login
// handoffs for. The gateway never mutates a bot during dispatch; bots are
// created and updated only through registry administration.
type Bot struct {
	Name        string `json:"name" koanf:"name"`
	SteamID     uint64 `json:"steamId" koanf:"steam_id"`
	SessionID   string `json:"-" koanf:"session_id"`
	AccessToken string `json:"-" koanf:"access_token"`
	Enabled     bool   `json:"enabled" koanf:"enabled"`
}
