package app

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"acconsole/internal/config"
	"acconsole/internal/console"
	"acconsole/internal/domain"
	"acconsole/internal/logging"
	"acconsole/internal/session"
	"acconsole/internal/storage"
	"acconsole/pkg/sdk"
)

type Container struct {
	Logger   *slog.Logger
	Store    domain.LocalStorage
	Sessions *session.Manager
	Client   *sdk.Client
	Console  *console.Controller

	closers []io.Closer
}

// Open builds the container from configuration. baseURL, when set, takes
// precedence over the configured backend address.
func Open(cfg *config.Config, baseURL string) (*Container, error) {
	logger, logFile, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewGormStore(cfg.DatabasePath)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	if baseURL == "" {
		baseURL = cfg.BaseURL
	}

	c := Wire(baseURL, store, logger, cfg.Timeout())
	c.closers = append(c.closers, store, logFile)

	if _, err := c.Sessions.Restore(); err != nil {
		logger.Warn("Failed to restore session", slog.Any("error", err))
	}
	return c, nil
}

// Wire connects the session manager, API client and console controller.
// The client authenticates with the manager's token, and the manager logs
// in through the client.
func Wire(baseURL string, store domain.LocalStorage, logger *slog.Logger, timeout time.Duration) *Container {
	mgr := session.NewManager(store, logger)
	client := sdk.NewClient(baseURL,
		sdk.WithHTTPClient(&http.Client{Timeout: timeout}),
		sdk.WithTokenSource(mgr),
		sdk.WithMiddleware(
			sdk.Logging(logger),
			sdk.OnUnauthorized(mgr.Expire),
		),
	)
	mgr.SetAuthenticator(client)

	return &Container{
		Logger:   logger,
		Store:    store,
		Sessions: mgr,
		Client:   client,
		Console:  console.NewController(client, mgr, logger),
	}
}

func (c *Container) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
