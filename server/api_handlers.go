package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/steam-login-gateway/handoff"
)

// loginRequest is the JSON body shape shared by both protocols; only the
// seed URL field differs.
type loginRequest struct {
	BotName   string `json:"BotName"`
	OAuthUrl  string `json:"OAuthUrl"`
	OpenIdUrl string `json:"OpenIdUrl"`
}

// OAuthBodyHandler handles POST /Api/OAuth with a JSON body
func (s *Server) OAuthBodyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLoginRequest(w, r)
		if !ok {
			return
		}
		s.dispatch(w, r, handoff.ProtocolOAuth, req.BotName, req.OAuthUrl)
	}
}

// OAuthRouteHandler handles GET/POST /Api/OAuth/{botName}/{oAuthUrl}.
// The mux hands back unescaped wildcard values, so a percent-encoded
// seed URL arrives ready to use.
func (s *Server) OAuthRouteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.dispatch(w, r, handoff.ProtocolOAuth, r.PathValue("botName"), r.PathValue("oAuthUrl"))
	}
}

// OpenIDBodyHandler handles POST /Api/OpenId with a JSON body
func (s *Server) OpenIDBodyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLoginRequest(w, r)
		if !ok {
			return
		}
		s.dispatch(w, r, handoff.ProtocolOpenID, req.BotName, req.OpenIdUrl)
	}
}

// OpenIDRouteHandler handles GET/POST /Api/OpenId/{botName}/{openIdUrl}
func (s *Server) OpenIDRouteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.dispatch(w, r, handoff.ProtocolOpenID, r.PathValue("botName"), r.PathValue("openIdUrl"))
	}
}

// dispatch runs the shared resolution path for all four entry variants and
// maps the outcome onto the response envelope.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, protocol handoff.Protocol, botName, seedURL string) {
	resp, err := s.dispatcher.Resolve(r.Context(), protocol, botName, seedURL, r.Header.Get("Accept-Language"))
	if err != nil {
		var validationErr *handoff.ValidationError
		if errors.As(err, &validationErr) {
			respondBadRequest(w, validationErr.Message)
			return
		}
		log.Error().Err(err).Str("protocol", string(protocol)).Str("bot", botName).Msg("login dispatch failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondOK(w, resp)
}

// decodeLoginRequest reads the JSON body; an absent or malformed body is
// reported as an ordinary 400, never propagated as a fault.
func decodeLoginRequest(w http.ResponseWriter, r *http.Request) (*loginRequest, bool) {
	var req loginRequest
	if r.Body == nil {
		respondBadRequest(w, "Request body can not be null")
		return nil, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Request body can not be null")
		return nil, false
	}
	return &req, true
}
