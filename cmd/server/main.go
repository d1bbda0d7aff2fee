package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/steam-login-gateway/bots"
	botsqlite "github.com/jrsteele09/steam-login-gateway/bots/sqlite"
	"github.com/jrsteele09/steam-login-gateway/internal/config"
	"github.com/jrsteele09/steam-login-gateway/server"
	"github.com/jrsteele09/steam-login-gateway/steam"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Error().Err(err).Msg("error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()

	c, err := config.New(os.Getenv("GATEWAY_CONFIG_FILE"))
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	setupLogging(c.GetEnv())
	displayAppname(c.GetAppName())

	registry, closeRegistry, err := openRegistry(c)
	if err != nil {
		return errors.Wrap(err, "opening bot registry")
	}
	defer closeRegistry()

	resolver, err := steam.NewClient(c.GetCommunityURL(), c.GetRequestTimeout())
	if err != nil {
		return errors.Wrap(err, "creating steam client")
	}

	gateway, err := server.New(c, registry, resolver)
	if err != nil {
		return errors.Wrap(err, "creating server")
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: gateway}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func openRegistry(c config.Config) (bots.Registry, func(), error) {
	if path := c.GetDatabasePath(); path != "" {
		registry, err := botsqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return registry, func() { _ = registry.Close() }, nil
	}
	return bots.NewInMemoryRegistry(), func() {}, nil
}

func setupLogging(env string) {
	if env == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
