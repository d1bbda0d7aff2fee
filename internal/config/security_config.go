package config

type SecurityConfig interface {
	// GetIPCPasswordHash returns the bcrypt hash expected in the
	// Authentication header, empty when password auth is disabled.
	GetIPCPasswordHash() string
	// GetJWTSecret returns the HS256 shared secret for bearer tokens,
	// empty when JWT auth is disabled.
	GetJWTSecret() string
	GetOIDCIssuer() string
	GetOIDCAudience() string
}

func (c mainConfig) GetIPCPasswordHash() string {
	return c.k.String("security.ipc.password.hash")
}

func (c mainConfig) GetJWTSecret() string {
	return c.k.String("security.jwt.secret")
}

func (c mainConfig) GetOIDCIssuer() string {
	return c.k.String("security.oidc.issuer")
}

func (c mainConfig) GetOIDCAudience() string {
	return c.k.String("security.oidc.audience")
}
