package di

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"

	"github.com/omarluq/curryhoward/internal/config"
)

// Override adjusts a loaded configuration, e.g. from CLI flags.
type Override func(*config.Config)

// ConfigService holds the effective configuration with hot-reload support.
// The file contents are kept separately from the overrides so that a reload
// keeps flag settings in force.
type ConfigService struct {
	runtime   *config.Runtime
	base      *config.Config
	watcher   *config.Watcher
	path      string
	overrides []Override
	mu        sync.Mutex
}

// Get returns the current effective configuration.
func (c *ConfigService) Get() *config.Config {
	return c.runtime.Get()
}

// Path returns the config file path, which may not exist.
func (c *ConfigService) Path() string {
	return c.path
}

// Apply registers overrides and recomputes the effective configuration.
func (c *ConfigService) Apply(overrides ...Override) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.overrides = append(c.overrides, overrides...)
	c.runtime.Store(c.effective())
}

// replaceBase swaps in a freshly loaded file configuration.
func (c *ConfigService) replaceBase(cfg *config.Config) *config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.base = cfg
	eff := c.effective()
	c.runtime.Store(eff)
	return eff
}

// effective copies base and applies overrides. Callers hold mu.
func (c *ConfigService) effective() *config.Config {
	cfg := *c.base
	for _, o := range c.overrides {
		o(&cfg)
	}
	return &cfg
}

// StartWatching reloads the config file on change until ctx is canceled.
// Each successful reload stores the new configuration and then calls onReload
// with the effective configuration.
func (c *ConfigService) StartWatching(ctx context.Context, onReload func(*config.Config)) error {
	c.mu.Lock()
	if c.watcher != nil {
		c.mu.Unlock()
		return fmt.Errorf("config watcher already started for %s", c.path)
	}
	watcher, err := config.NewWatcher(c.path)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("failed to watch config %s: %w", c.path, err)
	}
	c.watcher = watcher
	c.mu.Unlock()

	watcher.OnReload(func(newCfg *config.Config) error {
		eff := c.replaceBase(newCfg)
		log.Info().Str("path", c.path).Msg("config hot-reloaded successfully")
		if onReload != nil {
			onReload(eff)
		}
		return nil
	})

	go func() {
		if err := watcher.Watch(ctx); err != nil {
			log.Error().Err(err).Msg("config watcher error")
		}
	}()

	log.Info().Str("path", c.path).Msg("config file watcher started")
	return nil
}

// Shutdown implements do.Shutdowner for graceful watcher cleanup.
func (c *ConfigService) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}

// NewConfig loads and validates the configuration at the config path.
// A missing file yields the defaults.
func NewConfig(i do.Injector) (*ConfigService, error) {
	path := do.MustInvokeNamed[string](i, ConfigPathKey)

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newConfigService(path, cfg), nil
}

func newConfigService(path string, cfg *config.Config) *ConfigService {
	return &ConfigService{
		runtime: config.NewRuntime(cfg),
		base:    cfg,
		path:    path,
	}
}
