package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"

	"github.com/jrsteele09/steam-login-gateway/bots"
	"github.com/jrsteele09/steam-login-gateway/handoff"
	"github.com/jrsteele09/steam-login-gateway/internal/config"
	"github.com/jrsteele09/steam-login-gateway/internal/localization"
	"github.com/jrsteele09/steam-login-gateway/steam"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	dispatcher *handoff.Dispatcher
	registry   bots.Registry

	oidcOnce     sync.Once
	oidcVerifier *oidc.IDTokenVerifier
	oidcErr      error
}

func New(config config.Config, registry bots.Registry, resolver steam.Resolver) (*Server, error) {
	dispatcher, err := handoff.NewDispatcher(registry, resolver, localization.New())
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to create dispatcher")
	}

	s := &Server{
		mux:        http.NewServeMux(),
		config:     config,
		dispatcher: dispatcher,
		registry:   registry,
	}
	s.env = config.GetEnv()

	if err := s.seedRegistry(); err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to seed bot registry")
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

// seedRegistry upserts bot definitions from config so a fresh database
// starts with the configured fleet.
func (s *Server) seedRegistry() error {
	seed, err := s.config.GetBots()
	if err != nil {
		return err
	}
	for _, bot := range seed {
		if err := s.registry.Upsert(bot); err != nil {
			return errors.Wrapf(err, "upserting bot %q", bot.Name)
		}
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
