package config

import "strings"

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type AllowedOrigins map[string]struct{}

func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	_, ok := a[origin]
	return ok
}

func (a AllowedOrigins) String() string {
	var origins []string
	for k := range a {
		origins = append(origins, k)
	}
	return strings.Join(origins, ", ")
}

func (c mainConfig) GetAllowedOrigins() AllowedOrigins {
	allowed := make(AllowedOrigins)
	for _, origin := range c.k.Strings("cors.allowed.origins") {
		allowed[origin] = struct{}{}
	}
	return allowed
}

func (c mainConfig) GetAllowedMethods() string {
	return c.stringOr("cors.allowed.methods", "GET, POST")
}

func (c mainConfig) GetAllowedHeaders() string {
	return c.stringOr("cors.allowed.headers", "Content-Type, Authorization, Authentication")
}
