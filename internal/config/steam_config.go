package config

import "time"

type SteamConfig interface {
	GetCommunityURL() string
	GetRequestTimeout() time.Duration
}

func (c mainConfig) GetCommunityURL() string {
	return c.stringOr("steam.community.url", "https://steamcommunity.com")
}

func (c mainConfig) GetRequestTimeout() time.Duration {
	if d := c.k.Duration("steam.request.timeout"); d > 0 {
		return d
	}
	return 30 * time.Second
}
