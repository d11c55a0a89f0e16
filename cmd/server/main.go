package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	fakeblogrepo "github.com/jrsteele09/go-blog-client/blogs/repofake"
	"github.com/jrsteele09/go-blog-client/internal/config"
	"github.com/jrsteele09/go-blog-client/internal/logging"
	"github.com/jrsteele09/go-blog-client/server"
	tokenfakerepo "github.com/jrsteele09/go-blog-client/token/repofake"
	fakeuserrepo "github.com/jrsteele09/go-blog-client/users/repofake"
	"github.com/rs/zerolog/log"
)

const revokedCleanupInterval = 10 * time.Minute

func main() {
	for {
		if err := run(); err != nil {
			log.Error().Err(err).Msg("Error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	logging.Setup(c.GetEnv(), c.GetLogLevel())
	displayAppname(c.GetAppName())

	// The development API keeps everything in memory; a restart starts from scratch
	repos := server.Repos{
		Users:    fakeuserrepo.NewFakeUserRepo(),
		Blogs:    fakeblogrepo.NewFakeBlogRepo(),
		Comments: fakeblogrepo.NewFakeCommentRepo(),
		Tokens:   tokenfakerepo.NewFakeTokensRepo(),
	}
	api, err := server.New(c, repos)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	if c.GetEnv() == "DEV" {
		if _, err := api.SeedDemoData(); err != nil {
			return fmt.Errorf("SeedDemoData: %w", err)
		}
	}

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	go cleanupRevokedTokens(api, stopCleanup)

	httpServer := &http.Server{
		Addr:              c.GetPort(),
		Handler:           api,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() { serveErr <- listenAndServe(httpServer) }()

	select {
	case err := <-serveErr:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(httpServer)
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func cleanupRevokedTokens(api *server.Server, stop <-chan struct{}) {
	ticker := time.NewTicker(revokedCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := api.CleanupRevokedTokens(); n > 0 {
				log.Debug().Int("purged", n).Msg("expired revoked tokens removed")
			}
		case <-stop:
			return
		}
	}
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
