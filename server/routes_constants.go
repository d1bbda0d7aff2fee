package server

// API routes (JSON over HTTP, base path /Api)
const (
	RouteAPIOAuth        = "/Api/OAuth"
	RouteAPIOAuthParams  = "/Api/OAuth/{botName}/{oAuthUrl}"
	RouteAPIOpenID       = "/Api/OpenId"
	RouteAPIOpenIDParams = "/Api/OpenId/{botName}/{openIdUrl}"
)
