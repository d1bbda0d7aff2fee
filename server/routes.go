package server

import "net/http"

func (s *Server) initRoutes() {
	// Login handoff API. Each protocol accepts the same logical request as
	// a JSON body or as route parameters; both converge on the dispatcher.
	s.RegisterRouteHandler("POST "+RouteAPIOAuth, ChainMiddleware(s.OAuthBodyHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIOAuthParams, ChainMiddleware(s.OAuthRouteHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIOAuthParams, ChainMiddleware(s.OAuthRouteHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteAPIOpenID, ChainMiddleware(s.OpenIDBodyHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIOpenIDParams, ChainMiddleware(s.OpenIDRouteHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIOpenIDParams, ChainMiddleware(s.OpenIDRouteHandler(), s.APIMiddleware()...))

	s.RegisterRouteFunc("/", s.NotFoundHandler())
}

// NotFoundHandler handles unknown paths with the JSON envelope
func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "404 - Not found")
	}
}
