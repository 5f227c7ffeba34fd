package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"movieshelf/internal/config"
	"movieshelf/internal/library"
	"movieshelf/internal/logging"
)

type commandContext struct {
	configFlag *string
	userFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, userFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		userFlag:   userFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger.With(logging.FieldRunID, uuid.NewString())
	})
	return c.logger
}

// withStore opens the configured store, runs fn, and closes the store.
func (c *commandContext) withStore(fn func(store library.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := library.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// resolveUser determines the collection owner for the current invocation.
// Single-user mode resolves the configured default user, creating it on
// first use; otherwise the --user flag must name an existing user.
func (c *commandContext) resolveUser(ctx context.Context, store library.Store) (library.User, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return library.User{}, err
	}

	if cfg.Library.SingleUser {
		return library.EnsureUser(ctx, store, cfg.Library.DefaultUser)
	}

	var name string
	if c.userFlag != nil {
		name = strings.TrimSpace(*c.userFlag)
	}
	if name == "" {
		return library.User{}, fmt.Errorf("--user is required (list known users with 'movieshelf users list')")
	}
	user, err := store.GetUserByName(ctx, name)
	if err != nil {
		return library.User{}, err
	}
	if user == nil {
		return library.User{}, fmt.Errorf("user %q not found; create it with 'movieshelf users create %s'", name, name)
	}
	return *user, nil
}
